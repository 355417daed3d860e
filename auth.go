package restclient

import "github.com/go-resty/resty/v2"

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthCustom uses a custom function to decorate the request.
	AuthCustom
)

// AuthConfig configures request authentication. The credential is
// forwarded to the underlying library as-is; no scheme is implemented
// here.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Username is the basic auth username (AuthBasic).
	Username string
	// Password is the basic auth password (AuthBasic).
	Password string
	// Token is the bearer token (AuthBearer).
	Token string
	// Apply is a custom function to modify the request (AuthCustom).
	Apply func(*resty.Request)
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// CustomAuth creates an auth config backed by a request-decorating function.
func CustomAuth(apply func(*resty.Request)) *AuthConfig {
	return &AuthConfig{Type: AuthCustom, Apply: apply}
}

// apply forwards the credential to the outgoing request.
func (a *AuthConfig) apply(req *resty.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBasic:
		req.SetBasicAuth(a.Username, a.Password)
	case AuthBearer:
		req.SetAuthToken(a.Token)
	case AuthCustom:
		if a.Apply != nil {
			a.Apply(req)
		}
	}
}
