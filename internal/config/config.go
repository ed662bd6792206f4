// Package config resolves the client configuration from flags, environment
// variables, and an optional .env file. Flags win over environment values;
// the token may come from AYURVAID_TOKEN directly or from a token file
// written by whatever performs the login exchange.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the resolved client configuration.
type Config struct {
	APIBase        string
	Token          string
	TokenFile      string
	ConversationID string
	SpeechCommand  string
	SpeechTimeout  time.Duration
	RequestTimeout time.Duration
	AltScreen      bool
}

// Load parses args (argv including the program name) after reading .env if
// one is present in the working directory.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.StringVar(&cfg.APIBase, "api", envOr("AYURVAID_API", "http://127.0.0.1:8000"), "Backend base URL")
	flags.StringVar(&cfg.Token, "token", envOr("AYURVAID_TOKEN", ""), "Bearer token (overrides the token file)")
	flags.StringVar(&cfg.TokenFile, "token-file", envOr("AYURVAID_TOKEN_FILE", defaultTokenFile()), "File holding the bearer token")
	flags.StringVar(&cfg.ConversationID, "conversation", envOr("AYURVAID_CONVERSATION", ""), "Resume an existing conversation id")
	flags.StringVar(&cfg.SpeechCommand, "speech-command", envOr("AYURVAID_SPEECH_CMD", ""), "Speech-to-text command printing a transcript on stdout")
	speechTimeout := flags.Int("speech-timeout", envOrInt("AYURVAID_SPEECH_TIMEOUT", 30), "Speech capture timeout seconds")
	requestTimeout := flags.Int("request-timeout", envOrInt("AYURVAID_REQUEST_TIMEOUT", 60), "Per-request timeout seconds")
	flags.BoolVar(&cfg.AltScreen, "alt-screen", envOrBool("AYURVAID_ALT_SCREEN", true), "Use alternate screen buffer")
	if err := flags.Parse(args[1:]); err != nil {
		return Config{}, err
	}

	cfg.APIBase = strings.TrimRight(strings.TrimSpace(cfg.APIBase), "/")
	cfg.Token = strings.TrimSpace(cfg.Token)
	if cfg.Token == "" {
		cfg.Token = readTokenFile(cfg.TokenFile)
	}
	cfg.SpeechTimeout = time.Duration(clampInt(*speechTimeout, 1, 300)) * time.Second
	cfg.RequestTimeout = time.Duration(clampInt(*requestTimeout, 1, 300)) * time.Second
	return cfg, nil
}

// readTokenFile returns the trimmed file contents, or empty when the file is
// missing. A missing token is not an error: the client starts unauthenticated
// and the chat view says so.
func readTokenFile(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ayurvaid", "token")
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(key string, fallback bool) bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if value == "" {
		return fallback
	}
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
