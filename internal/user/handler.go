package user

import (
	"net/http"

	sharedContext "github.com/pmadriaga/studorg/go-api-server/internal/shared/context"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *UserService
}

func NewUserHandler(userService *UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Get handles GET /api/users/:studentNumber
func (h *UserHandler) Get(c *gin.Context) {
	principal, ok := sharedContext.RequirePrincipal(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), principal, c.Param("studentNumber"))
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// LateFees handles GET /api/users/late-fees?studentNumber=...
func (h *UserHandler) LateFees(c *gin.Context) {
	principal, ok := sharedContext.RequirePrincipal(c)
	if !ok {
		return
	}

	var query LateFeesQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	rows, err := h.userService.LateFees(c.Request.Context(), principal, query.StudentNumber)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
