package restclient

import (
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{BaseURL: "http://host"}
	cfg.ApplyDefaults()
	if cfg.Timeout != defaultTimeout {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}

	cfg = Config{BaseURL: "http://host", Timeout: 3 * time.Second}
	cfg.ApplyDefaults()
	if cfg.Timeout != 3*time.Second {
		t.Errorf("explicit timeout must survive, got %v", cfg.Timeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{BaseURL: "http://host/api"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		cfg  Config
	}{
		{"missing base url", Config{}},
		{"relative base url", Config{BaseURL: "/just/a/path"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
