// Package requestmeta derives request origin facts used by the cookie and
// same-origin checks.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// Policy controls which proxy headers are trusted.
type Policy struct {
	TrustForwardedProto bool
}

type origin struct {
	scheme string
	host   string
	port   string
}

// IsHTTPS reports whether the request arrived over TLS.
func IsHTTPS(r *http.Request) bool {
	return Scheme(r, Policy{}) == "https"
}

// Scheme returns http or https for the request under policy.
func Scheme(r *http.Request, policy Policy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(r.URL.Scheme); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// HasSameOriginProof reports whether Origin, or Referer when Origin is
// absent, names the host the request was sent to.
func HasSameOriginProof(r *http.Request) bool {
	return HasSameOriginProofWithPolicy(r, Policy{})
}

// HasSameOriginProofWithPolicy is HasSameOriginProof under policy.
func HasSameOriginProofWithPolicy(r *http.Request, policy Policy) bool {
	if r == nil {
		return false
	}
	self := requestOrigin(r, policy)
	if self.host == "" {
		return false
	}
	claimed := strings.TrimSpace(r.Header.Get("Origin"))
	if claimed == "" {
		claimed = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if claimed == "" {
		return false
	}
	other, ok := parseOrigin(claimed)
	return ok && other == self
}

func requestOrigin(r *http.Request, policy Policy) origin {
	scheme := Scheme(r, policy)
	host := r.Host
	if host == "" && r.URL != nil {
		host = r.URL.Host
	}
	parsed, err := url.Parse("//" + strings.TrimSpace(host))
	if err != nil {
		return origin{}
	}
	return withDefaultPort(origin{
		scheme: scheme,
		host:   strings.ToLower(parsed.Hostname()),
		port:   parsed.Port(),
	})
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Hostname() == "" {
		return origin{}, false
	}
	o := withDefaultPort(origin{
		scheme: strings.ToLower(parsed.Scheme),
		host:   strings.ToLower(parsed.Hostname()),
		port:   parsed.Port(),
	})
	return o, o.port != ""
}

func withDefaultPort(o origin) origin {
	if o.port != "" {
		return o
	}
	switch o.scheme {
	case "https":
		o.port = "443"
	case "http":
		o.port = "80"
	}
	return o
}
