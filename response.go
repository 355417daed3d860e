package restclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Response is the result of a REST call.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte

	raw *resty.Response
}

// newResponse wraps the underlying library's response.
func newResponse(r *resty.Response) *Response {
	return &Response{
		StatusCode: r.StatusCode(),
		Headers:    flattenHeaders(r.Header()),
		Body:       r.Body(),
		raw:        r,
	}
}

// JSON decodes the response body into v. An empty body is a no-op.
func (r *Response) JSON(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("restclient: decode response: %w", err)
	}
	return nil
}

// String returns the response body as text.
func (r *Response) String() string {
	return string(r.Body)
}

// Status returns the status line, e.g. "200 OK".
func (r *Response) Status() string {
	if r.raw != nil && r.raw.Status() != "" {
		return r.raw.Status()
	}
	return fmt.Sprintf("%d %s", r.StatusCode, http.StatusText(r.StatusCode))
}

// Header returns a response header value by its canonical name.
func (r *Response) Header(key string) string {
	return r.Headers[http.CanonicalHeaderKey(key)]
}

// Location returns the Location header, set on redirect responses.
func (r *Response) Location() string {
	return r.Header("Location")
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// IsRedirect returns true if the response carries a Location header and
// one of the redirect status codes.
func (r *Response) IsRedirect() bool {
	if r.Location() == "" {
		return false
	}
	switch r.StatusCode {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	}
	return false
}

// Raw returns the underlying resty response for advanced use cases.
func (r *Response) Raw() *resty.Response {
	return r.raw
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
