package restclient

import (
	"context"

	"github.com/kbukum/restclient/component"
)

// Component wraps a Client with lifecycle management, for use in
// applications that start and stop their infrastructure as components.
type Component struct {
	client *Client
	config Config
	opts   []Option
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a new REST client component. The client is
// created lazily in Start().
func NewComponent(cfg Config, opts ...Option) *Component {
	return &Component{config: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	if c.config.Name != "" {
		return c.config.Name
	}
	return "rest"
}

// Start initializes the REST client.
func (c *Component) Start(_ context.Context) error {
	cl, err := New(c.config, c.opts...)
	if err != nil {
		return err
	}
	c.client = cl
	return nil
}

// Stop closes the REST client and releases resources.
func (c *Component) Stop(ctx context.Context) error {
	if c.client != nil {
		return c.client.Close(ctx)
	}
	return nil
}

// Health returns the component health status.
func (c *Component) Health(_ context.Context) component.Health {
	status := component.StatusHealthy
	if c.client == nil {
		status = component.StatusUnhealthy
	}
	return component.Health{
		Name:   c.Name(),
		Status: status,
	}
}

// Describe returns the component description for startup summaries.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    c.Name(),
		Type:    "rest-client",
		Details: c.config.BaseURL,
	}
}

// Client returns the underlying REST client. Must be called after Start().
func (c *Component) Client() *Client {
	return c.client
}
