package middleware

import (
	"net/http"
	"strings"

	sharedContext "github.com/pmadriaga/studorg/go-api-server/internal/shared/context"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
)

// JWT verifies the Bearer token and stores the decoded principal in the
// request context. Requests without a valid token are rejected with 401.
func JWT(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "Authentication required.")
			return
		}

		claims, err := tokenManager.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.Error(err)
			abortUnauthorized(c, "Invalid or expired token.")
			return
		}

		sharedContext.SetPrincipal(c, sharedContext.Principal{
			Username:      claims.Username,
			Role:          claims.Role,
			StudentNumber: claims.StudentNumber,
		})

		c.Next()
	}
}

// RequireAdmin allows only admin principals past this point. Must run after
// JWT.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := sharedContext.RequirePrincipal(c)
		if !ok {
			return
		}
		if !p.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  http.StatusForbidden,
				"code":    "AUTH-403",
				"message": "Administrator access required.",
			})
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  http.StatusUnauthorized,
		"code":    "AUTH-401",
		"message": message,
	})
}
