package api

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	clientIPKey     = "clientIP"
)

// RequestID attaches a request id to every request, generating one when the
// caller did not supply its own.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// ClientIP resolves the effective client address used for rate limiting.
// When the direct peer is a trusted proxy and X-Forwarded-For is present,
// the first forwarded address substitutes for the peer address.
func ClientIP(trustedProxies []string) gin.HandlerFunc {
	trusted := make(map[string]bool, len(trustedProxies))
	for _, proxy := range trustedProxies {
		if proxy = strings.TrimSpace(proxy); proxy != "" {
			trusted[proxy] = true
		}
	}

	return func(c *gin.Context) {
		peer := peerAddress(c)
		ip := peer

		if trusted[peer] {
			if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
				ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
			}
		}

		c.Set(clientIPKey, ip)
		c.Next()
	}
}

func peerAddress(c *gin.Context) string {
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}

// effectiveClientIP returns the address resolved by the ClientIP middleware
func effectiveClientIP(c *gin.Context) string {
	if ip, ok := c.Get(clientIPKey); ok {
		if s, ok := ip.(string); ok {
			return s
		}
	}
	return peerAddress(c)
}
