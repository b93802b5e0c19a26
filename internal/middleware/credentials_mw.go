package middleware

import (
	"errors"
	"net/http"

	"online_tuition/internal/model"
	"online_tuition/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	AuthAccountKey = "authAccount"
	AuthKindKey    = "authKind"
)

// CredentialsMiddleware authenticates every request on its own. There is no session or token:
// the caller sends HTTP Basic credentials or <kind>Email / <kind>Password form fields
// (adminEmail and adminPassword for admins) and they go through the same login flow.
func CredentialsMiddleware(auth service.AuthService, kind model.AccountKind) gin.HandlerFunc {
	emailField := string(kind) + "Email"
	passwordField := string(kind) + "Password"

	return func(c *gin.Context) {
		email, password, basic := c.Request.BasicAuth()
		if !basic {
			email = c.PostForm(emailField)
			password = c.PostForm(passwordField)
		}

		decision, err := auth.Login(c.Request.Context(), kind, email, password)
		if err != nil {
			if errors.Is(err, service.ErrStorageUnavailable) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify credentials"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if !decision.Accepted {
			if basic {
				c.Header("WWW-Authenticate", `Basic realm="`+string(kind)+`"`)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": decision.Message()})
			return
		}

		c.Set(AuthAccountKey, decision.AccountID)
		c.Set(AuthKindKey, decision.Kind)

		c.Next()
	}
}
