package restclient

// Canonical error-log schema. Every failure produces exactly one error
// event with these fields:
//
//	type    failure | redirect | client | server
//	error   machine-readable code ("-" when the payload has none)
//	detail  cause text, redirect target, or payload message
//	method  HTTP method
//	url     composed request URL
//	status  HTTP status code (omitted for transport failures)
//	body    raw response body (omitted when empty)
func (c *Client) errorlog(kind, code, method, url, detail string, status int, body []byte) {
	ev := c.log.Error().
		Str("type", kind).
		Str("error", code).
		Str("detail", detail).
		Str("method", method).
		Str("url", url)
	if status > 0 {
		ev = ev.Int("status", status)
	}
	if len(body) > 0 {
		ev = ev.Bytes("body", body)
	}
	ev.Msg("rest call failed")
}
