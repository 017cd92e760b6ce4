package report

import (
	"errors"
	"net/http"

	sharedError "github.com/pmadriaga/studorg/go-api-server/internal/shared/error"
	"github.com/pmadriaga/studorg/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

// ReportHandler maps /api/reports/1..10 onto the report service. Filters
// arrive as query-string parameters; responses are flat JSON arrays.
type ReportHandler struct {
	reportService *ReportService
}

func NewReportHandler(reportService *ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// OrganizationMembers handles GET /api/reports/1
func (h *ReportHandler) OrganizationMembers(c *gin.Context) {
	var filter MembersFilter
	if !handler.BindQuery(c, &filter) {
		return
	}
	rows, err := h.reportService.OrganizationMembers(c.Request.Context(), &filter)
	respond(c, rows, err)
}

// UnpaidByStudent handles GET /api/reports/2
func (h *ReportHandler) UnpaidByStudent(c *gin.Context) {
	var filter OrgTermFilter
	if !handler.BindQuery(c, &filter) {
		return
	}
	rows, err := h.reportService.UnpaidByStudent(c.Request.Context(), &filter)
	respond(c, rows, err)
}

// StudentUnpaidFees handles GET /api/reports/3
func (h *ReportHandler) StudentUnpaidFees(c *gin.Context) {
	var filter StudentFilter
	if !handler.BindQuery(c, &filter) {
		return
	}
	rows, err := h.reportService.StudentUnpaidFees(c.Request.Context(), &filter)
	respond(c, rows, err)
}

// ExecutiveCommittee handles GET /api/reports/4
func (h *ReportHandler) ExecutiveCommittee(c *gin.Context) {
	var filter OrgYearFilter
	if !handler.BindQuery(c, &filter) {
		return
	}
	rows, err := h.reportService.ExecutiveCommittee(c.Request.Context(), &filter)
	respond(c, rows, err)
}

// RoleHistory handles GET /api/reports/5
func (h *ReportHandler) RoleHistory(c *gin.Context) {
	var filter RoleHistoryFilter
	if !handler.BindQuery(c, &filter) {
		return
	}
	rows, err := h.reportService.RoleHistory(c.Request.Context(), &filter)
	respond(c, rows, err)
}

// LatePayments handles GET /api/reports/6
func (h *ReportHandler) LatePayments(c *gin.Context) {
	var filter OrgTermFilter
	if !handler.BindQuery(c, &filter) {
		return
	}
	rows, err := h.reportService.LatePayments(c.Request.Context(), &filter)
	respond(c, rows, err)
}

// StatusShares handles GET /api/reports/7
func (h *ReportHandler) StatusShares(c *gin.Context) {
	var filter SemesterWindowFilter
	if !handler.BindQuery(c, &filter) {
		return
	}
	rows, err := h.reportService.StatusShares(c.Request.Context(), &filter)
	respond(c, rows, err)
}

// Alumni handles GET /api/reports/8
func (h *ReportHandler) Alumni(c *gin.Context) {
	var filter OrgDateFilter
	if !handler.BindQuery(c, &filter) {
		return
	}
	rows, err := h.reportService.Alumni(c.Request.Context(), &filter)
	respond(c, rows, err)
}

// FeeTotals handles GET /api/reports/9
func (h *ReportHandler) FeeTotals(c *gin.Context) {
	var filter OrgDateFilter
	if !handler.BindQuery(c, &filter) {
		return
	}
	rows, err := h.reportService.FeeTotals(c.Request.Context(), &filter)
	respond(c, rows, err)
}

// HighestDebt handles GET /api/reports/10
func (h *ReportHandler) HighestDebt(c *gin.Context) {
	var filter OrgTermFilter
	if !handler.BindQuery(c, &filter) {
		return
	}
	rows, err := h.reportService.HighestDebt(c.Request.Context(), &filter)
	respond(c, rows, err)
}

// respond writes the rows or classifies the error: filter problems become
// 400 with the field-naming message, everything else 500.
func respond[T any](c *gin.Context, rows []T, err error) {
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			handler.RespondError(c, err, missingFiltersResponse.WithMessage(validationErr.Error()))
			return
		}
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}
	c.JSON(http.StatusOK, rows)
}
