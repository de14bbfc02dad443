package utils

import "net/url"

// DomainOf extracts the host portion of a URL for the response's domain
// field and the stealth policy lookup. Invalid URLs yield an empty string;
// the caller validates URLs before the cascade runs.
func DomainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u == nil {
		return ""
	}
	return u.Host
}
