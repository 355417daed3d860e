// Package restclient provides a thin REST/JSON convenience layer over
// a resty session: URL path segment joining, default request options,
// accept-JSON semantics, redirect-as-failure policy, and normalized
// error logging for client and server errors.
//
// Connection management, pooling, retries, and protocol concerns are
// owned by the underlying library; transport errors are classified but
// never re-wrapped beyond one typed layer, so the cause stays reachable
// through errors.As.
//
// # Basic Usage
//
//	client, err := restclient.New(restclient.Config{
//	    BaseURL:   "https://api.example.com",
//	    Timeout:   3 * time.Second,
//	    Auth:      restclient.BasicAuth("user", "pass"),
//	    UserAgent: "ExampleClient/1.0",
//	})
//
//	resp, err := client.Call(ctx, http.MethodGet, []any{"posts", 1})
//	if err != nil {
//	    // *restclient.Error carries the kind, status, and payload fields
//	}
//	var post Post
//	err = resp.JSON(&post)
//
// # Error Classification
//
// Every failure is logged once and surfaced as *Error with a Kind:
// KindArgument before any I/O, KindTransport for network failures,
// KindRedirect for any 3xx response (redirects are never followed
// unless explicitly enabled), KindClient for 4xx, KindServer for 5xx.
package restclient
