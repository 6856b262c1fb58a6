package gmnx

import "context"

// Run answers the question formed from args and returns the process exit
// code: 0 for an answer or the usage text, 1 for any failure. Everything,
// errors included, is written to the configured output, stdout by default.
func Run(ctx context.Context, args []string, cfg Config, opts ...ClientOption) int {
	transcript, err := OpenTranscript(cfg.Transcript)
	if err == nil {
		defer transcript.Close()
		// Options passed by the caller still take precedence.
		opts = append([]ClientOption{WithTranscript(transcript)}, opts...)
	}
	c := NewClient(cfg, opts...)
	if err != nil {
		c.Println("Warning: cannot open transcript:", err)
	}
	return c.Report(c.Ask(ctx, args))
}
