package restclient

import (
	"fmt"
	"net/url"
	"strings"
)

// joinURL joins path segments onto the base URL. The base's query string
// and fragment are preserved unchanged; segments are stringified and
// appended literally, with no cleaning of ".." or duplicate slashes.
// A segment starting with "/" replaces the path built so far.
func joinURL(base string, segments []any) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	p := u.Path
	if p == "" {
		p = "/"
	}
	for _, seg := range segments {
		s := fmt.Sprint(seg)
		switch {
		case strings.HasPrefix(s, "/"):
			p = s
		case strings.HasSuffix(p, "/"):
			p += s
		default:
			p += "/" + s
		}
	}

	u.Path = p
	u.RawPath = ""
	return u.String(), nil
}
