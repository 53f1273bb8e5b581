package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the caller through gin, which only honours
// X-Forwarded-For and X-Real-IP when the direct peer is one of the engine's
// trusted proxies.
func getClientIP(c *gin.Context) string {
	return c.ClientIP()
}

// TrustedProxies cleans the TRUSTED_PROXIES setting for
// gin.Engine.SetTrustedProxies. An empty list trusts no proxy, so forwarded
// headers are ignored and the socket address is used.
func TrustedProxies(raw []string) []string {
	var out []string
	for _, entry := range raw {
		for _, p := range strings.Split(entry, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
