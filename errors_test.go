package restclient

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorKind_String(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want string
	}{
		{KindArgument, "argument"},
		{KindTransport, "failure"},
		{KindRedirect, "redirect"},
		{KindClient, "client"},
		{KindServer, "server"},
		{ErrorKind(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestClassifyResponse(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
		wantCode string
		wantMsg  string
	}{
		{
			name:     "client error with payload",
			status:   400,
			body:     `{"error":"BadInput","message":"name is missing"}`,
			wantKind: KindClient,
			wantCode: "BadInput",
			wantMsg:  "name is missing",
		},
		{
			name:     "server error with payload",
			status:   503,
			body:     `{"error":"Overloaded","message":"try later"}`,
			wantKind: KindServer,
			wantCode: "Overloaded",
			wantMsg:  "try later",
		},
		{
			name:     "boundary is 500",
			status:   499,
			body:     "",
			wantKind: KindClient,
			wantCode: "-",
			wantMsg:  "-",
		},
		{
			name:     "malformed payload",
			status:   500,
			body:     "<html>oops</html>",
			wantKind: KindServer,
			wantCode: "-",
			wantMsg:  "-",
		},
		{
			name:     "partial payload",
			status:   404,
			body:     `{"error":"NotFound"}`,
			wantKind: KindClient,
			wantCode: "NotFound",
			wantMsg:  "-",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := &Response{StatusCode: tc.status, Body: []byte(tc.body)}
			err := classifyResponse(resp)
			if err.Kind != tc.wantKind {
				t.Errorf("kind = %v, want %v", err.Kind, tc.wantKind)
			}
			if err.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", err.Code, tc.wantCode)
			}
			if err.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", err.Message, tc.wantMsg)
			}
			if err.Status != tc.status {
				t.Errorf("status = %d, want %d", err.Status, tc.status)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := newTransportError(cause)
	if !errors.Is(err, cause) {
		t.Error("expected cause to stay reachable")
	}
}

func TestError_Error(t *testing.T) {
	e := &Error{Kind: KindClient, Status: 404, Message: "not found"}
	want := "restclient: client (HTTP 404): not found"
	if e.Error() != want {
		t.Errorf("got %q, want %q", e.Error(), want)
	}

	e = &Error{Kind: KindArgument, Message: "bad segments"}
	want = "restclient: argument: bad segments"
	if e.Error() != want {
		t.Errorf("got %q, want %q", e.Error(), want)
	}
}

func TestTransportCode(t *testing.T) {
	if got := transportCode(context.DeadlineExceeded); got != "timeout" {
		t.Errorf("expected timeout, got %q", got)
	}
	if got := transportCode(fmt.Errorf("connection refused")); got != "connection" {
		t.Errorf("expected connection, got %q", got)
	}
}

func TestIsHelpers(t *testing.T) {
	cases := []struct {
		err  error
		pred func(error) bool
	}{
		{newArgumentError("x"), IsArgument},
		{newTransportError(fmt.Errorf("x")), IsTransport},
		{&Error{Kind: KindRedirect}, IsRedirect},
		{&Error{Kind: KindClient}, IsClientError},
		{&Error{Kind: KindServer}, IsServerError},
	}
	for i, tc := range cases {
		if !tc.pred(tc.err) {
			t.Errorf("case %d: predicate returned false", i)
		}
	}
	if IsClientError(newArgumentError("x")) {
		t.Error("predicate matched the wrong kind")
	}
	if IsTransport(nil) {
		t.Error("predicate matched nil")
	}
}
