package gmnx

import (
	"context"
	"errors"
	"io"
	"os"
)

const (
	thinkingIndicator = "🤖 let me think......"
	clearLine         = "\033[F\033[K"
)

// Client runs a single question through a hosted model and renders the
// answer. It holds no state between calls to Ask.
type Client struct {
	cfg          Config
	newGenerator GeneratorFactory
	renderer     Renderer
	output       io.Writer
	transcript   io.Writer
}

// ClientOption is used to configure a Client, mostly to swap out the
// network, the terminal or the transcript in tests.
type ClientOption func(*Client) *Client

// WithOutput sets where answers and diagnostics are written.
func WithOutput(output io.Writer) ClientOption {
	return func(c *Client) *Client {
		c.output = output
		return c
	}
}

// WithTranscript keeps a role-prefixed record of each exchange.
func WithTranscript(transcript io.Writer) ClientOption {
	return func(c *Client) *Client {
		c.transcript = transcript
		return c
	}
}

// WithRenderer replaces the markdown renderer.
func WithRenderer(r Renderer) ClientOption {
	return func(c *Client) *Client {
		c.renderer = r
		return c
	}
}

// WithGeneratorFactory replaces the function used to construct the model
// client once the credential check has passed.
func WithGeneratorFactory(f GeneratorFactory) ClientOption {
	return func(c *Client) *Client {
		c.newGenerator = f
		return c
	}
}

// WithGenerator makes the client use g instead of constructing one.
func WithGenerator(g Generator) ClientOption {
	return WithGeneratorFactory(func(context.Context, Config) (Generator, error) {
		return g, nil
	})
}

// WithFixedResponse answers every question with response and never touches
// the network.
func WithFixedResponse(response string) ClientOption {
	return WithGenerator(GeneratorFunc(func(context.Context, Request) (string, error) {
		return response, nil
	}))
}

// NewClient returns a Client for cfg writing to stdout.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	c := &Client{
		cfg:          cfg,
		newGenerator: NewGenerator,
		output:       os.Stdout,
		transcript:   io.Discard,
	}
	for _, opt := range opts {
		c = opt(c)
	}
	return c
}

// Ask checks the credential, builds the model client, sends the query made
// from args and renders the answer. Called with no args it prints usage and
// returns nil. Failures come back as ErrMissingCredential, *ClientInitError
// or *RemoteCallError and are left for Report to print.
func (c *Client) Ask(ctx context.Context, args []string) error {
	if c.cfg.APIKey == "" {
		return ErrMissingCredential
	}

	gen, err := c.newGenerator(ctx, c.cfg)
	if err != nil {
		return &ClientInitError{Err: err}
	}

	if len(args) < 1 {
		c.Usage()
		return nil
	}

	query := JoinQuery(args)
	c.Log(RoleSystem, SystemInstruction)
	c.Log(RoleUser, query)

	c.Thinking()
	answer, err := gen.Generate(ctx, Request{
		Model:             c.cfg.Model,
		SystemInstruction: SystemInstruction,
		Contents:          query,
	})
	if err != nil {
		return &RemoteCallError{Err: err}
	}
	c.Log(RoleBot, answer)

	c.ClearThinking()
	return c.render(answer)
}

func (c *Client) render(answer string) error {
	r := c.renderer
	if r == nil {
		mr, err := RendererFor(c.cfg)
		if err != nil {
			c.LogErr(err)
			r = plainRenderer{}
		} else {
			r = mr
		}
	}
	out, err := r.Render(answer)
	if err != nil {
		c.LogErr(err)
		out = answer + "\n"
	}
	_, err = io.WriteString(c.output, out)
	return err
}

// Usage prints the command syntax and an example.
func (c *Client) Usage() {
	c.Println(`Usage: ask "Your question here"`)
	c.Println(`Example: ask "how to list all running docker containers"`)
}

// Report prints the message for err and returns the matching exit code.
func (c *Client) Report(err error) int {
	if err == nil {
		return 0
	}
	c.LogErr(err)

	var initErr *ClientInitError
	var callErr *RemoteCallError
	switch {
	case errors.Is(err, ErrMissingCredential):
		c.Failure("Error: %s.", ErrMissingCredential)
		c.Println("Set it by running: export " + EnvAPIKey + "='your_api_key'")
	case errors.As(err, &initErr):
		c.Failure("Error initializing GenAI Client: %v", initErr.Err)
	case errors.As(err, &callErr):
		c.Failure("\nAn error occurred while calling the Gemini API: %v", callErr.Err)
	default:
		c.Failure("Error: %v", err)
	}
	return ExitCode(err)
}
