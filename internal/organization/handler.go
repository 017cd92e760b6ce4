package organization

import (
	"net/http"

	"github.com/pmadriaga/studorg/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	orgService *OrganizationService
}

func NewOrganizationHandler(orgService *OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
	}
}

func (h *OrganizationHandler) List(c *gin.Context) {
	orgs, err := h.orgService.List(c.Request.Context())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, orgs)
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	org, err := h.orgService.Get(c.Request.Context(), c.Param("orgId"))
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	var request CreateOrganizationRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	org, err := h.orgService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, org)
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	var request UpdateOrganizationRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	org, err := h.orgService.Update(c.Request.Context(), c.Param("orgId"), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
	if err := h.orgService.Delete(c.Request.Context(), c.Param("orgId")); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Organization deleted"})
}

func (h *OrganizationHandler) ListMemberships(c *gin.Context) {
	rows, err := h.orgService.ListMemberships(c.Request.Context(), c.Param("orgId"))
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *OrganizationHandler) AddMembership(c *gin.Context) {
	var request AddMembershipRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	membership, err := h.orgService.AddMembership(c.Request.Context(), c.Param("orgId"), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, membership)
}

func (h *OrganizationHandler) UpdateMembership(c *gin.Context) {
	var request UpdateMembershipRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	membership, err := h.orgService.UpdateMembership(c.Request.Context(), c.Param("orgId"), c.Param("studentNumber"), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

func (h *OrganizationHandler) RemoveMembership(c *gin.Context) {
	err := h.orgService.RemoveMembership(c.Request.Context(), c.Param("orgId"), c.Param("studentNumber"))
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Member removed from organization successfully"})
}
