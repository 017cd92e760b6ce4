package context

import (
	"net/http"

	"github.com/pmadriaga/studorg/go-api-server/internal/model"
	"github.com/gin-gonic/gin"
)

const principalKey = "auth_principal"

// Principal is the verified identity of the caller, extracted from the JWT by
// the auth middleware. Role is model.RoleAdmin or model.RoleStudent; a
// student principal also carries the student number it may act on.
type Principal struct {
	Username      string
	Role          string
	StudentNumber string
}

// IsAdmin reports whether the principal has the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

// CanViewStudent reports whether the principal may read data belonging to
// the given student number. Admins can see everyone; students only
// themselves.
func (p Principal) CanViewStudent(studentNumber string) bool {
	return p.IsAdmin() || p.StudentNumber == studentNumber
}

// SetPrincipal stores the principal in the gin context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// GetPrincipal returns the principal if the request is authenticated.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// RequirePrincipal returns the principal or aborts with 401.
func RequirePrincipal(c *gin.Context) (Principal, bool) {
	p, ok := GetPrincipal(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"status":  http.StatusUnauthorized,
			"code":    "AUTH-401",
			"message": "Authentication required.",
		})
		return Principal{}, false
	}
	return p, true
}
