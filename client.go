package restclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kbukum/restclient/logger"
)

const maxRedirects = 10

// Client is a thin REST/JSON convenience layer over a resty session.
// It joins URL path segments onto a base URL, applies default request
// options, accepts only JSON responses, and treats redirects as
// failures. Everything transport-level is delegated to the session.
type Client struct {
	rc       *resty.Client
	config   Config
	defaults Options
	log      zerolog.Logger
}

// Option configures the client at construction time.
type Option func(*Client)

// WithLogger sets the logger used for error and debug lines.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithSession sets the resty session the client will use for all
// requests. The session's redirect policy is overwritten by New.
func WithSession(rc *resty.Client) Option {
	return func(c *Client) {
		c.rc = rc
	}
}

// New creates a new REST client. No I/O occurs at construction.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	name := cfg.Name
	if name == "" {
		name = "restclient"
	}

	c := &Client{
		config:   cfg,
		defaults: cfg.Defaults,
		log:      logger.GetGlobalLogger().GetLogger().With().Str(logger.FieldComponent, name).Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rc == nil {
		c.rc = resty.New()
	}

	c.rc.SetTimeout(cfg.Timeout)
	c.rc.SetRedirectPolicy(resty.RedirectPolicyFunc(redirectPolicy))

	// Accept only JSON responses.
	c.rc.SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		c.rc.SetHeader("User-Agent", cfg.UserAgent+" resty/"+resty.Version)
	}
	for k, v := range cfg.Headers {
		c.rc.SetHeader(k, v)
	}

	return c, nil
}

// followKey carries the per-request redirect override through the
// request context to the session's redirect policy.
type followKey struct{}

// redirectPolicy returns the last response unfollowed unless the request
// context explicitly enables redirects.
func redirectPolicy(req *http.Request, via []*http.Request) error {
	if follow, ok := req.Context().Value(followKey{}).(bool); ok && follow {
		if len(via) >= maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		return nil
	}
	return http.ErrUseLastResponse
}

// Call initiates a REST request. Segments are stringified and joined
// onto the base URL path; per-call options override the client defaults
// key by key.
//
// On a transport failure the returned error is KindTransport and wraps
// the underlying cause. Redirect responses and HTTP error statuses
// return both the response and a classified error, so callers keep
// access to the status and body.
func (c *Client) Call(ctx context.Context, method string, segments []any, opts ...RequestOption) (*Response, error) {
	if strings.TrimSpace(method) == "" {
		return nil, newArgumentError("method must not be empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	target, err := joinURL(c.config.BaseURL, segments)
	if err != nil {
		return nil, newArgumentError(fmt.Sprintf("compose url: %v", err))
	}

	o := c.defaults.merge(applyRequestOptions(opts))

	// Compatibility path for library generations without native JSON
	// body support: serialize the payload and inject the content type.
	if c.config.LegacyJSONBody && o.JSON != nil {
		data, err := json.Marshal(o.JSON)
		if err != nil {
			return nil, newArgumentError(fmt.Sprintf("encode json body: %v", err))
		}
		o.Body = data
		o.JSON = nil
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers["Content-Type"] = "application/json"
	}

	c.log.Debug().Str("method", method).Str("url", target).Msg("dispatching request")

	ctx = context.WithValue(ctx, followKey{}, o.followRedirects())
	req := c.rc.R().SetContext(ctx)
	if len(o.Headers) > 0 {
		req.SetHeaders(o.Headers)
	}
	if len(o.Query) > 0 {
		req.SetQueryParams(o.Query)
	}
	switch {
	case o.JSON != nil:
		req.SetBody(o.JSON)
	case o.Body != nil:
		req.SetBody(o.Body)
	}

	auth := o.Auth
	if auth == nil {
		auth = c.config.Auth
	}
	auth.apply(req)

	// A caller-supplied request id wins over the generated one.
	if c.config.RequestID && !hasHeader(o.Headers, "X-Request-Id") {
		req.SetHeader("X-Request-Id", uuid.New().String())
	}

	rr, err := req.Execute(strings.ToUpper(method), target)
	if err != nil {
		terr := newTransportError(err)
		c.errorlog(terr.Kind.String(), terr.Code, method, target, err.Error(), 0, nil)
		return nil, terr
	}

	resp := newResponse(rr)

	// Treat redirect as a failure.
	if resp.IsRedirect() {
		rerr := newRedirectError(resp)
		c.errorlog(rerr.Kind.String(), rerr.Code, method, target, rerr.Location, resp.StatusCode, resp.Body)
		return resp, rerr
	}

	if resp.IsError() {
		cerr := classifyResponse(resp)
		c.errorlog(cerr.Kind.String(), cerr.Code, method, target, cerr.Message, resp.StatusCode, resp.Body)
		return resp, cerr
	}

	c.log.Debug().Str("method", method).Str("url", target).Int("status", resp.StatusCode).Msg("request completed")
	return resp, nil
}

// Unwrap returns the underlying resty session for advanced use cases.
func (c *Client) Unwrap() *resty.Client {
	return c.rc
}

// Config returns the client's configuration.
func (c *Client) Config() Config {
	return c.config
}

// Close releases idle connections held by the session.
func (c *Client) Close(_ context.Context) error {
	c.rc.GetClient().CloseIdleConnections()
	return nil
}
