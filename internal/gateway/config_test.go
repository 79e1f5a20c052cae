package gateway

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "gateway without endpoint",
			mutate:  func(c *Config) { c.Client = "gateway" },
			wantErr: true,
		},
		{
			name: "gateway with endpoint",
			mutate: func(c *Config) {
				c.Client = "gateway"
				c.Gateway.Endpoint = "https://example.test/ask"
			},
			wantErr: false,
		},
		{
			name:    "openai without key",
			mutate:  func(c *Config) { c.Client = "openai" },
			wantErr: true,
		},
		{
			name: "openai with key",
			mutate: func(c *Config) {
				c.Client = "openai"
				c.OpenAI.APIKey = "sk-test"
			},
			wantErr: false,
		},
		{
			name:    "anthropic without key",
			mutate:  func(c *Config) { c.Client = "anthropic" },
			wantErr: true,
		},
		{
			name:    "gemini without key",
			mutate:  func(c *Config) { c.Client = "gemini" },
			wantErr: true,
		},
		{
			name:    "mock needs nothing",
			mutate:  func(c *Config) { c.Client = "mock" },
			wantErr: false,
		},
		{
			name:    "unknown client",
			mutate:  func(c *Config) { c.Client = "psychic" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("AXON_CLIENT", "gateway")
	t.Setenv("AXON_GATEWAY_URL", "https://example.test/ask")
	t.Setenv("AXON_GATEWAY_TOKEN", "tok")
	t.Setenv("AXON_RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("AXON_RETRY_INITIAL_WAIT", "250ms")

	cfg := ConfigFromEnv()
	if cfg.Client != "gateway" {
		t.Fatalf("unexpected client: %q", cfg.Client)
	}
	if cfg.Gateway.Endpoint != "https://example.test/ask" || cfg.Gateway.Token != "tok" {
		t.Fatalf("unexpected gateway config: %+v", cfg.Gateway)
	}
	if cfg.Retry.MaxAttempts != 5 {
		t.Fatalf("unexpected retry attempts: %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Retry.InitialWait != 250*time.Millisecond {
		t.Fatalf("unexpected initial wait: %v", cfg.Retry.InitialWait)
	}
}

func TestConfigFromEnv_RejectsUnboundedRetry(t *testing.T) {
	t.Setenv("AXON_RETRY_MAX_ATTEMPTS", "0")

	cfg := ConfigFromEnv()
	if cfg.Retry.MaxAttempts != DefaultConfig().Retry.MaxAttempts {
		t.Fatalf("expected default attempts to be kept, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, key := range []string{"AXON_GATEWAY_URL", "AXON_GATEWAY_TOKEN", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"} {
		t.Setenv(key, "")
	}

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no discovery with empty environment")
	}

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Client != "openai" {
		t.Fatalf("expected openai discovery, got %+v ok=%v", cfg, ok)
	}

	// Gateway endpoint wins over provider keys.
	t.Setenv("AXON_GATEWAY_URL", "https://example.test/ask")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Client != "gateway" {
		t.Fatalf("expected gateway discovery, got %+v ok=%v", cfg, ok)
	}
}
