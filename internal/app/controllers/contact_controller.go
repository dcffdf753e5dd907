package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// ContactController handles the public contact form
type ContactController struct {
	contactService *services.ContactService
	logger         zerolog.Logger
}

// NewContactController creates a new ContactController
func NewContactController(contactService *services.ContactService, logger zerolog.Logger) *ContactController {
	return &ContactController{
		contactService: contactService,
		logger:         logger,
	}
}

// Submit accepts a contact-form submission
// @Summary Submit a contact message
// @Description Stores the message and relays it to the configured mailbox
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact message"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Missing or invalid fields"
// @Failure 500 {object} dto.APIResponse "Relay failure"
// @Router /contact [post]
func (c *ContactController) Submit(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	msg, err := c.contactService.Submit(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{"id": msg.ID}, "Message sent successfully"))
}
