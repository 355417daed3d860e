package restclient

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kbukum/restclient/validation"
)

const defaultTimeout = 30 * time.Second

// Config configures the REST client. It is immutable after New.
type Config struct {
	// Name identifies the client in logs and component summaries.
	Name string `yaml:"name" mapstructure:"name"`

	// BaseURL is the base URL that all request paths are joined onto.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Timeout is the session-level request timeout. Defaults to 30s.
	// Per-call deadlines are set through the Call context.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// UserAgent sets the User-Agent header of every request, suffixed
	// with the underlying library version.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Auth configures the credential forwarded to the session.
	// Individual requests can override it.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Defaults are default request options applied to every call unless
	// overridden per-call. Redirects are treated as failures unless
	// FollowRedirects is set explicitly.
	Defaults Options `yaml:"-" mapstructure:"-"`

	// LegacyJSONBody enables the compatibility path for underlying
	// library generations without native JSON body support: JSON
	// payloads are serialized into the raw body and a JSON content type
	// is injected.
	LegacyJSONBody bool `yaml:"legacy_json_body" mapstructure:"legacy_json_body"`

	// RequestID injects a unique X-Request-Id header into every request.
	RequestID bool `yaml:"request_id" mapstructure:"request_id"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("restclient: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("restclient: base url %q must include scheme and host", c.BaseURL)
	}
	return nil
}
