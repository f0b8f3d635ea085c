package baseurl

import "strings"

// Fallback is used when nothing else identifies the public origin.
const Fallback = "http://localhost:3000"

// Source records which input produced a Context.
type Source string

const (
	SourceOverride   Source = "override"
	SourceRequest    Source = "request"
	SourceDeployment Source = "deployment"
	SourceFallback   Source = "fallback"
)

/**
 * Externally visible origin of the service
 * @property {string} Scheme - http or https, empty for a verbatim override
 * @property {string} Host - host[:port], empty for a verbatim override
 * @property {Source} Source - which input won
 */
type Context struct {
	Scheme string
	Host   string
	Source Source

	raw string
}

// String renders the origin. An operator override is returned untouched.
func (c Context) String() string {
	if c.Source == SourceOverride {
		return c.raw
	}
	return c.Scheme + "://" + c.Host
}

// Join appends an absolute path to the origin.
func (c Context) Join(path string) string {
	return strings.TrimRight(c.String(), "/") + "/" + strings.TrimLeft(path, "/")
}

/**
 * Resolve the public origin, first match wins
 * @param {string} override - operator supplied base URL, trusted verbatim
 * @param {string} requestHost - Host declared by the inbound request
 * @param {string} deploymentHost - hostname provided by the hosting platform
 * @returns {Context} resolved origin, never fails
 * @description
 * - Request hosts containing "localhost" are served over http, others https
 * - Deployment hosts are always https
 * - Falls back to http://localhost:3000
 */
func Resolve(override, requestHost, deploymentHost string) Context {
	if override != "" {
		return Context{Source: SourceOverride, raw: override}
	}
	if requestHost != "" {
		scheme := "https"
		if strings.Contains(requestHost, "localhost") {
			scheme = "http"
		}
		return Context{Scheme: scheme, Host: requestHost, Source: SourceRequest}
	}
	if deploymentHost != "" {
		return Context{Scheme: "https", Host: deploymentHost, Source: SourceDeployment}
	}
	return Context{Scheme: "http", Host: "localhost:3000", Source: SourceFallback}
}
