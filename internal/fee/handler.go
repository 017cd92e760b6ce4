package fee

import (
	"net/http"

	"github.com/pmadriaga/studorg/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type FeeHandler struct {
	feeService *FeeService
}

func NewFeeHandler(feeService *FeeService) *FeeHandler {
	return &FeeHandler{
		feeService: feeService,
	}
}

func (h *FeeHandler) List(c *gin.Context) {
	rows, err := h.feeService.List(c.Request.Context())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *FeeHandler) Get(c *gin.Context) {
	fee, err := h.feeService.Get(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, fee)
}

func (h *FeeHandler) Create(c *gin.Context) {
	var request CreateFeeRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	fee, err := h.feeService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fee)
}

func (h *FeeHandler) Update(c *gin.Context) {
	var request UpdateFeeRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	fee, err := h.feeService.Update(c.Request.Context(), c.Param("transactionId"), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, fee)
}

func (h *FeeHandler) Delete(c *gin.Context) {
	if err := h.feeService.Delete(c.Request.Context(), c.Param("transactionId")); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Fee deleted"})
}
