package sanitize

import (
	"fmt"
	"net/url"
)

// MaskQueryString replaces every value of every sensitive query parameter in
// a URL with the redaction marker, preserving the count of repeated values.
// Scheme, authority, path, and fragment pass through unchanged; the query
// string is re-encoded in net/url's canonical form. An unparseable URL is an
// error rather than passed through, since it could still carry credentials.
func MaskQueryString(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("sanitize.MaskQueryString: %w", err)
	}

	q := u.Query()
	for _, key := range SensitiveKeys {
		vals, ok := q[key]
		if !ok {
			continue
		}
		for i := range vals {
			vals[i] = Redacted
		}
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
