package server

import (
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}

	if cfg.RateLimit != 100 {
		t.Errorf("expected default rate limit 100, got %v", cfg.RateLimit)
	}

	if cfg.RateLimitBurst != 200 {
		t.Errorf("expected default burst 200, got %d", cfg.RateLimitBurst)
	}
}

func TestConfigPortFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg := NewConfig()
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090 from PORT env, got %d", cfg.Port)
	}
}

func TestConfigPortEnvInvalid(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := NewConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port on invalid PORT env, got %d", cfg.Port)
	}
}

func TestConfigShutdownTimeoutFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{
			name:  "valid seconds",
			value: "45",
			want:  45 * time.Second,
		},
		{
			name:  "zero keeps default",
			value: "0",
			want:  NewConfig().ShutdownTimeout,
		},
		{
			name:  "garbage keeps default",
			value: "soon",
			want:  NewConfig().ShutdownTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", tt.value)

			cfg := NewConfig()
			if cfg.ShutdownTimeout != tt.want {
				t.Errorf("expected shutdown timeout %v, got %v", tt.want, cfg.ShutdownTimeout)
			}
		})
	}
}
