// Package gateway is the stateless edge of the system: it maps path prefixes
// to domain-service addresses and forwards requests untouched. It holds no
// entity data and performs no validation.
package gateway

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Upstream describes one domain service behind the gateway.
type Upstream struct {
	Prefix string
	Target *url.URL
}

// ParseUpstream builds an Upstream from a path prefix and a base URL.
func ParseUpstream(prefix, baseURL string) (Upstream, error) {
	target, err := url.Parse(baseURL)
	if err != nil {
		return Upstream{}, fmt.Errorf("parse upstream for %s: %w", prefix, err)
	}
	return Upstream{Prefix: prefix, Target: target}, nil
}

type route struct {
	prefix string
	proxy  *httputil.ReverseProxy
}

type Gateway struct {
	routes []route
	logger *slog.Logger
}

// New builds a gateway over the given upstreams. timeout bounds both the dial
// and the wait for upstream response headers; on expiry or connection failure
// the caller gets a 502 instead of hanging.
func New(logger *slog.Logger, timeout time.Duration, upstreams ...Upstream) *Gateway {
	transport := &http.Transport{
		DialContext:           (&net.Dialer{Timeout: timeout}).DialContext,
		ResponseHeaderTimeout: timeout,
	}

	g := &Gateway{logger: logger}
	for _, up := range upstreams {
		proxy := httputil.NewSingleHostReverseProxy(up.Target)
		proxy.Transport = transport
		director := proxy.Director
		proxy.Director = func(req *http.Request) {
			director(req)
			// upstreams route by their own host, not the gateway's
			req.Host = up.Target.Host
		}
		proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("upstream unavailable",
				"prefix", up.Prefix, "path", r.URL.Path, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			fmt.Fprint(w, `{"error":"Bad gateway"}`)
		}
		g.routes = append(g.routes, route{prefix: up.Prefix, proxy: proxy})
	}
	return g
}

// Handler dispatches by path prefix. It is mounted as the router's NoRoute
// fallback so the gateway's own endpoints (/health, /metrics) keep precedence.
func (g *Gateway) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, rt := range g.routes {
			if path == rt.prefix || strings.HasPrefix(path, rt.prefix+"/") {
				rt.proxy.ServeHTTP(c.Writer, c.Request)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	}
}
