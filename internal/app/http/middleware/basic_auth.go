package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates a route group behind HTTP Basic credentials. Every
// request is verified independently; there is no session, lockout or rate
// limit. Both comparisons run in constant time and are evaluated
// unconditionally so a mismatch reveals nothing about where the strings
// differ.
func RequireAdmin(username, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()

		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1

		if !ok || !userMatch || !passMatch {
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		c.Next()
	}
}
