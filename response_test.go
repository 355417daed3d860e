package restclient

import (
	"net/http"
	"testing"
)

func TestResponse_JSON(t *testing.T) {
	resp := &Response{Body: []byte(`{"name":"Alice"}`)}
	var body map[string]string
	if err := resp.JSON(&body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["name"] != "Alice" {
		t.Errorf("expected Alice, got %q", body["name"])
	}

	resp = &Response{Body: []byte("not json")}
	if err := resp.JSON(&body); err == nil {
		t.Error("expected decode error")
	}

	resp = &Response{}
	if err := resp.JSON(&body); err != nil {
		t.Errorf("empty body must be a no-op, got %v", err)
	}
}

func TestResponse_IsRedirect(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		location string
		want     bool
	}{
		{"found with location", 302, "/next", true},
		{"moved permanently", 301, "/next", true},
		{"see other", 303, "/next", true},
		{"temporary", 307, "/next", true},
		{"permanent", 308, "/next", true},
		{"redirect status without location", 302, "", false},
		{"not modified", 304, "/next", false},
		{"ok", 200, "/next", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			headers := map[string]string{}
			if tc.location != "" {
				headers["Location"] = tc.location
			}
			resp := &Response{StatusCode: tc.status, Headers: headers}
			if got := resp.IsRedirect(); got != tc.want {
				t.Errorf("IsRedirect() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResponse_Header(t *testing.T) {
	resp := &Response{Headers: map[string]string{"Content-Type": "application/json"}}
	if got := resp.Header("content-type"); got != "application/json" {
		t.Errorf("expected canonical lookup, got %q", got)
	}
}

func TestResponse_Status(t *testing.T) {
	resp := &Response{StatusCode: 404}
	if got := resp.Status(); got != "404 Not Found" {
		t.Errorf("expected fallback status line, got %q", got)
	}
}

func TestResponse_Predicates(t *testing.T) {
	if !(&Response{StatusCode: 204}).IsSuccess() {
		t.Error("204 should be success")
	}
	if (&Response{StatusCode: 302}).IsError() {
		t.Error("302 is not an error status")
	}
	if !(&Response{StatusCode: 500}).IsError() {
		t.Error("500 should be an error status")
	}
}

func TestFlattenHeaders(t *testing.T) {
	h := http.Header{}
	h.Add("X-Multi", "first")
	h.Add("X-Multi", "second")
	flat := flattenHeaders(h)
	if flat["X-Multi"] != "first" {
		t.Errorf("expected first value, got %q", flat["X-Multi"])
	}
}
