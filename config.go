package gmnx

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvAPIKey     = "GEMINI_API_KEY"
	EnvProvider   = "ASK_PROVIDER"
	EnvBaseURL    = "ASK_BASE_URL"
	EnvTranscript = "ASK_TRANSCRIPT"
	EnvStyle      = "GLAMOUR_STYLE"
	EnvWidth      = "ASK_WIDTH"
)

// Config holds everything a single invocation needs from its environment.
// It is read once at startup and handed to Run, so nothing downstream
// reaches into process-wide state.
type Config struct {
	APIKey     string
	Provider   string
	BaseURL    string
	Model      string
	Style      string
	Width      int
	Transcript string
}

// LoadConfig builds a Config using getenv to look up variables.
func LoadConfig(getenv func(string) string) Config {
	cfg := Config{
		APIKey:     getenv(EnvAPIKey),
		Provider:   getenv(EnvProvider),
		BaseURL:    getenv(EnvBaseURL),
		Model:      DefaultModel,
		Style:      getenv(EnvStyle),
		Transcript: getenv(EnvTranscript),
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderGemini
	}
	if w, err := strconv.Atoi(getenv(EnvWidth)); err == nil && w > 0 {
		cfg.Width = w
	}
	return cfg
}

// ConfigFromEnv loads a .env file from the working directory, if there is
// one, and then reads the process environment. Variables already set in the
// environment take precedence over the file.
func ConfigFromEnv() Config {
	_ = godotenv.Load()
	return LoadConfig(os.Getenv)
}
