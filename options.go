package restclient

import "strings"

// Options are per-request options. The client's default options are
// merged with the per-call options before each request; per-call values
// win on key conflicts.
type Options struct {
	// Headers are request headers (merged over the client defaults).
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// JSON is a value to send as a JSON-encoded request body.
	JSON any
	// Body is a raw request body. Ignored when JSON is set.
	Body []byte
	// Auth overrides the client-level auth for this request.
	Auth *AuthConfig
	// FollowRedirects enables following redirects for this request.
	// When unset, redirects are treated as failures.
	FollowRedirects *bool
}

// merge layers override on top of o and returns the effective options.
// Maps are merged key-wise with override winning; scalar fields from
// override win when set. Neither receiver nor argument is mutated.
func (o Options) merge(override Options) Options {
	out := Options{
		Headers: mergeMaps(o.Headers, override.Headers),
		Query:   mergeMaps(o.Query, override.Query),
		JSON:    o.JSON,
		Body:    o.Body,
		Auth:    o.Auth,
	}
	if override.JSON != nil {
		out.JSON = override.JSON
	}
	if override.Body != nil {
		out.Body = override.Body
	}
	if override.Auth != nil {
		out.Auth = override.Auth
	}
	out.FollowRedirects = o.FollowRedirects
	if override.FollowRedirects != nil {
		out.FollowRedirects = override.FollowRedirects
	}
	return out
}

// followRedirects reports the effective redirect policy; the default is
// to treat redirects as failures.
func (o Options) followRedirects() bool {
	return o.FollowRedirects != nil && *o.FollowRedirects
}

// mergeMaps copies base and layers override on top. Returns nil when
// both inputs are empty.
func mergeMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// hasHeader reports whether headers contains name, ignoring case.
func hasHeader(headers map[string]string, name string) bool {
	for k := range headers {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

// RequestOption configures a single request.
type RequestOption func(*Options)

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(o *Options) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers[key] = value
	}
}

// WithHeaders adds headers to the request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(o *Options) {
		if o.Headers == nil {
			o.Headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			o.Headers[k] = v
		}
	}
}

// WithQueryParam adds a query parameter to the request.
func WithQueryParam(key, value string) RequestOption {
	return func(o *Options) {
		if o.Query == nil {
			o.Query = make(map[string]string)
		}
		o.Query[key] = value
	}
}

// WithQuery adds query parameters to the request.
func WithQuery(params map[string]string) RequestOption {
	return func(o *Options) {
		if o.Query == nil {
			o.Query = make(map[string]string, len(params))
		}
		for k, v := range params {
			o.Query[k] = v
		}
	}
}

// WithJSON sets a JSON-encoded request body.
func WithJSON(v any) RequestOption {
	return func(o *Options) {
		o.JSON = v
	}
}

// WithBody sets a raw request body.
func WithBody(body []byte) RequestOption {
	return func(o *Options) {
		o.Body = body
	}
}

// WithRequestAuth overrides authentication for the request.
func WithRequestAuth(auth *AuthConfig) RequestOption {
	return func(o *Options) {
		o.Auth = auth
	}
}

// WithFollowRedirects overrides the redirect policy for the request.
func WithFollowRedirects(follow bool) RequestOption {
	return func(o *Options) {
		o.FollowRedirects = &follow
	}
}

// Bool returns a pointer to b, for use in Options literals.
func Bool(b bool) *bool {
	return &b
}

// applyRequestOptions folds functional options into an Options value.
func applyRequestOptions(opts []RequestOption) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
