package middleware

import (
	"net/http"

	"online_tuition/internal/model"

	"github.com/gin-gonic/gin"
)

// KindMiddleware only lets through requests authenticated as one of the allowed account kinds
func KindMiddleware(allowed ...model.AccountKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		kindVal, exists := c.Get(AuthKindKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account kind not found, ensure credentials middleware runs first"})
			return
		}

		kind, ok := kindVal.(model.AccountKind)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid account kind"})
			return
		}

		isAllowed := false
		for _, k := range allowed {
			if kind == k {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			return
		}

		c.Next()
	}
}

// AdminMiddleware checks if the caller authenticated as an admin
func AdminMiddleware() gin.HandlerFunc {
	return KindMiddleware(model.KindAdmin)
}
