package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// AdminController handles the admin student-management surface
type AdminController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(studentService *services.StudentService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		studentService: studentService,
		logger:         logger,
	}
}

func parseIDParam(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("validation failed", map[string]string{
			"id": "id must be a positive integer",
		})
	}
	return id, nil
}

// Dashboard returns aggregate figures for the admin overview
// @Summary Admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse}
// @Router /admin/dashboard [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	resp, err := c.studentService.Dashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// ListStudents returns a filtered, paginated list of student records
// @Summary List students
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "Page size, capped at 100" default(10)
// @Param search query string false "Substring match over student ID, name and email"
// @Param department query string false "Department filter"
// @Param status query string false "Lifecycle status filter"
// @Param year query int false "Academic year filter"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Router /admin/students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	year, _ := strconv.Atoi(ctx.Query("year"))
	filter := dto.StudentFilter{
		Search:     ctx.Query("search"),
		Department: ctx.Query("department"),
		Status:     models.StudentStatus(ctx.Query("status")),
		Year:       year,
	}

	resp, err := c.studentService.ListStudents(ctx.Request.Context(), filter, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// GetStudent returns a single student record
// @Summary Get a student
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Success 200 {object} dto.APIResponse{data=models.StudentRecord}
// @Failure 404 {object} dto.APIResponse
// @Router /admin/students/{id} [get]
func (c *AdminController) GetStudent(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rec, err := c.studentService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rec, ""))
}

// CreateStudent creates a student user with its full record
// @Summary Create a student
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student creation payload"
// @Success 201 {object} dto.APIResponse{data=models.StudentRecord}
// @Failure 400 {object} dto.APIResponse "Validation failure or duplicate username/email/student ID"
// @Router /admin/students [post]
func (c *AdminController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	rec, err := c.studentService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(rec, "Student created successfully"))
}

// UpdateStudent applies the admin full-field update
// @Summary Update a student
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Param request body dto.UpdateStudentRequest true "Student update payload"
// @Success 200 {object} dto.APIResponse{data=models.StudentRecord}
// @Failure 404 {object} dto.APIResponse
// @Router /admin/students/{id} [put]
func (c *AdminController) UpdateStudent(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	rec, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rec, "Student updated successfully"))
}

// DeleteStudent removes a student record; the owning account is kept
// @Summary Delete a student
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /admin/students/{id} [delete]
func (c *AdminController) DeleteStudent(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student deleted successfully"))
}

// SetStatus sets a student's lifecycle status
// @Summary Set a student's status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Param request body dto.SetStatusRequest true "Status payload"
// @Success 200 {object} dto.APIResponse{data=models.StudentRecord}
// @Failure 400 {object} dto.APIResponse "Invalid status value"
// @Router /admin/students/{id}/status [put]
func (c *AdminController) SetStatus(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.SetStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	rec, err := c.studentService.SetStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rec, "Student status updated successfully"))
}
