package middlewares

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const adminRealm = `Basic realm="TechSpace Admin"`

// AdminAuth guards the admin page and the admin API with HTTP basic auth.
// Both credentials must match exactly; any malformed header, wrong scheme
// or mismatch gets the same 401 challenge with no hint at what was wrong.
func AdminAuth(username, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Basic" || parts[1] == "" {
			challenge(c)
			return
		}

		decoded, err := base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			challenge(c)
			return
		}

		creds := strings.SplitN(string(decoded), ":", 2)
		if len(creds) != 2 || creds[0] != username || creds[1] != password {
			challenge(c)
			return
		}

		c.Next()
	}
}

func challenge(c *gin.Context) {
	c.Header("WWW-Authenticate", adminRealm)
	c.AbortWithStatus(http.StatusUnauthorized)
}
