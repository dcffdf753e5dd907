package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// ReportController serves per-student PDF document downloads
type ReportController struct {
	reportService *services.ReportService
	logger        zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService, logger zerolog.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

func (c *ReportController) serve(ctx *gin.Context, doc *services.GeneratedDocument) {
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	ctx.Data(http.StatusOK, doc.ContentType, doc.Data)
}

// HallTicket renders and downloads a student's hall ticket
// @Summary Download a hall ticket
// @Tags admin
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.APIResponse
// @Router /admin/students/{id}/hall-ticket [get]
func (c *ReportController) HallTicket(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	doc, err := c.reportService.HallTicket(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.serve(ctx, doc)
}

// Result renders and downloads a student's semester result
// @Summary Download a result sheet
// @Tags admin
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.APIResponse
// @Router /admin/students/{id}/result [get]
func (c *ReportController) Result(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	doc, err := c.reportService.Result(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.serve(ctx, doc)
}

// FeeStructure renders and downloads a student's fee statement
// @Summary Download a fee structure statement
// @Tags admin
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.APIResponse
// @Router /admin/students/{id}/fee-structure [get]
func (c *ReportController) FeeStructure(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	doc, err := c.reportService.FeeStructure(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.serve(ctx, doc)
}
