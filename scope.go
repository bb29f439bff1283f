package sitereport

import (
	"net/url"
	"strings"
)

// Normalize strips the fragment and the query from rawURL.
// URLs differing only by fragment or query normalize to the same string.
func Normalize(rawURL string) string {
	if i := strings.IndexByte(rawURL, '#'); i != -1 {
		rawURL = rawURL[:i]
	}
	if i := strings.IndexByte(rawURL, '?'); i != -1 {
		rawURL = rawURL[:i]
	}
	return rawURL
}

// Resolve resolves href against base and normalizes the result.
// Returns an empty string if href cannot be parsed.
func Resolve(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return Normalize(base.ResolveReference(ref).String())
}

// InScope reports whether rawURL belongs to the crawl domain: it must have
// an http or https scheme and a host exactly equal to domain.
// Subdomains are out of scope. Malformed URLs are out of scope.
func InScope(rawURL, domain string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Host == "" || u.Host != domain {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// HasHost reports whether rawURL parses with a non-empty host.
func HasHost(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host != ""
}

// SeedDomain validates a seed URL and returns the domain that scopes the crawl.
// Returns EINVALID if the seed is empty, unparseable, not http(s), or has no host.
func SeedDomain(seedURL string) (string, error) {
	if strings.TrimSpace(seedURL) == "" {
		return "", Errorf(EINVALID, "seed URL required")
	}
	u, err := url.Parse(seedURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid seed URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", Errorf(EINVALID, "seed URL must use http or https: %q", seedURL)
	}
	if u.Host == "" {
		return "", Errorf(EINVALID, "seed URL has no host: %q", seedURL)
	}
	return u.Host, nil
}
