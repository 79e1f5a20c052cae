package gateway

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/priyankac/axon/internal/retry"
)

// Config holds all answering-service configuration.
type Config struct {
	// Client selects which backend answers questions.
	// Values: "gateway", "openai", "anthropic", "gemini", "mock"
	Client string

	Gateway   GatewayConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
	Retry     retry.Config
}

// GatewayConfig holds hosted-endpoint configuration.
type GatewayConfig struct {
	// Endpoint is the URL questions are POSTed to.
	Endpoint string

	// Token is sent as a bearer authorization header.
	Token string

	// Timeout bounds a single HTTP request. Default: 30s.
	Timeout time.Duration
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Client: "gateway",
		Gateway: GatewayConfig{
			Timeout: 30 * time.Second,
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: retry.DefaultConfig(),
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if c := os.Getenv("AXON_CLIENT"); c != "" {
		cfg.Client = c
	}

	if u := os.Getenv("AXON_GATEWAY_URL"); u != "" {
		cfg.Gateway.Endpoint = u
	}
	if t := os.Getenv("AXON_GATEWAY_TOKEN"); t != "" {
		cfg.Gateway.Token = t
	}
	if d := os.Getenv("AXON_GATEWAY_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Gateway.Timeout = parsed
		}
	}

	if k := os.Getenv("AXON_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("AXON_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("AXON_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("AXON_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("AXON_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("AXON_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("AXON_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	// Retry constants are tunable, but the budget always stays bounded:
	// attempt counts below 1 are rejected here and clamped by the
	// orchestrator.
	if n := os.Getenv("AXON_RETRY_MAX_ATTEMPTS"); n != "" {
		if parsed, err := strconv.Atoi(n); err == nil && parsed >= 1 {
			cfg.Retry.MaxAttempts = parsed
		}
	}
	if d := os.Getenv("AXON_RETRY_INITIAL_WAIT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil && parsed >= 0 {
			cfg.Retry.InitialWait = parsed
		}
	}
	if d := os.Getenv("AXON_RETRY_MAX_WAIT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil && parsed >= 0 {
			cfg.Retry.MaxWait = parsed
		}
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (gateway → Gemini → OpenAI → Anthropic) and returns a Config for the
// first backend whose credentials are found. Returns (Config{}, false)
// if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if u := os.Getenv("AXON_GATEWAY_URL"); u != "" {
		cfg.Client = "gateway"
		cfg.Gateway.Endpoint = u
		cfg.Gateway.Token = os.Getenv("AXON_GATEWAY_TOKEN")
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Client = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Client = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Client = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected client has its required credentials.
func (c Config) Validate() error {
	switch c.Client {
	case "gateway":
		if c.Gateway.Endpoint == "" {
			return fmt.Errorf("AXON_GATEWAY_URL is required for the gateway client")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("AXON_OPENAI_API_KEY is required for the openai client")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("AXON_ANTHROPIC_API_KEY is required for the anthropic client")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("AXON_GEMINI_API_KEY is required for the gemini client")
		}
	case "mock":
		// No credentials needed.
	default:
		return fmt.Errorf("unknown answering client: %q", c.Client)
	}
	return nil
}
