package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves a request path and method to its rate limit
// tier, or nil when only the global default applies. Exact paths win
// over prefix tiers, so "/resumes/" covers every per-resume route
// ("/resumes/{id}", "/resumes/{id}/skills", ...) without enumerating
// them.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check stays reachable no matter how hot a client runs
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		c := &configs[i]
		if c.Path == path && c.Method == method {
			return c
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
