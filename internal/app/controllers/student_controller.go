package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// StudentController handles the student self-service surface. Every handler
// resolves the record through the authenticated user, never through a
// client-supplied ID.
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

func (c *StudentController) callerID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return 0, false
	}
	return userID, true
}

// GetProfile returns the calling student's full record
// @Summary Get own student profile
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.StudentRecord}
// @Failure 404 {object} dto.APIResponse "No student record for this account"
// @Router /student/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	userID, ok := c.callerID(ctx)
	if !ok {
		return
	}

	rec, err := c.studentService.GetOwnProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rec, ""))
}

// UpdateProfile applies the restricted self-service update
// @Summary Update own student profile
// @Description Updates phone, address and emergency contact. Any other supplied field is ignored.
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateOwnProfileRequest true "Profile update payload"
// @Success 200 {object} dto.APIResponse{data=models.StudentRecord}
// @Router /student/profile [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	userID, ok := c.callerID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateOwnProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	rec, err := c.studentService.UpdateOwnProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rec, "Profile updated successfully"))
}

// GetAcademicRecord returns the calling student's academic projection
// @Summary Get own academic record
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AcademicRecordResponse}
// @Router /student/academic-record [get]
func (c *StudentController) GetAcademicRecord(ctx *gin.Context) {
	userID, ok := c.callerID(ctx)
	if !ok {
		return
	}

	resp, err := c.studentService.GetOwnAcademicRecord(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// GetPersonalInfo returns the calling student's personal projection
// @Summary Get own personal information
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PersonalInfoResponse}
// @Router /student/personal-info [get]
func (c *StudentController) GetPersonalInfo(ctx *gin.Context) {
	userID, ok := c.callerID(ctx)
	if !ok {
		return
	}

	resp, err := c.studentService.GetOwnPersonalInfo(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// GetDocuments returns the calling student's document references
// @Summary Get own documents
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Documents}
// @Router /student/documents [get]
func (c *StudentController) GetDocuments(ctx *gin.Context) {
	userID, ok := c.callerID(ctx)
	if !ok {
		return
	}

	docs, err := c.studentService.GetOwnDocuments(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(docs, ""))
}

// GetStatus returns the calling student's lifecycle projection
// @Summary Get own enrollment status
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StatusResponse}
// @Router /student/status [get]
func (c *StudentController) GetStatus(ctx *gin.Context) {
	userID, ok := c.callerID(ctx)
	if !ok {
		return
	}

	resp, err := c.studentService.GetOwnStatus(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}
