package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewCORS creates a new CORS middleware handler
func NewCORS(origins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLogger(c)
		origin := "*"
		reqOrigin := c.GetHeader("Origin")

		// If no origins specified, allow all
		if len(origins) == 0 {
			origin = "*"
		} else if len(origins) == 1 {
			origin = strings.TrimSpace(origins[0])
			if origin == "" {
				origin = "*"
			}
		} else {
			originAllowed := false
			for _, o := range origins {
				o = strings.TrimSpace(o)
				if strings.EqualFold(o, reqOrigin) {
					origin = reqOrigin
					originAllowed = true
					break
				}
			}

			if !originAllowed && reqOrigin != "" {
				logger.Debug("CORS: Origin not in allowed list",
					zap.String("origin", reqOrigin),
					zap.Strings("allowed_origins", origins),
					zap.String("path", c.Request.URL.Path),
				)
				origin = origins[0]
			}
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Requested-With")
		c.Header("Access-Control-Max-Age", "3600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
