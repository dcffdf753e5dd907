package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/email"
)

// ContactService handles public contact-form submissions
type ContactService struct {
	contactRepo  repositories.IContactRepository
	emailService email.EmailService
	logger       zerolog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(
	contactRepo repositories.IContactRepository,
	emailService email.EmailService,
	logger zerolog.Logger,
) *ContactService {
	return &ContactService{
		contactRepo:  contactRepo,
		emailService: emailService,
		logger:       logger,
	}
}

// Submit validates, persists and relays a contact message. The message is
// stored before the relay is attempted; a relay failure is reported to the
// caller even though the message is already durable.
func (s *ContactService) Submit(ctx context.Context, req *dto.ContactRequest) (*models.ContactMessage, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(req.Subject) == "" {
		fields["subject"] = "subject is required"
	}
	if strings.TrimSpace(req.Message) == "" {
		fields["message"] = "message is required"
	}
	if err := validateEmail(req.Email); err != nil {
		fields["email"] = "a valid email address is required"
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError("validation failed", fields)
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if err := s.emailService.SendContactMessage(msg); err != nil {
		s.logger.Error().Err(err).Int64("messageId", msg.ID).Msg("Failed to relay contact message")
		return nil, apperrors.NewCustomError(apperrors.ErrInternal, "failed to send contact message")
	}

	s.logger.Info().Int64("messageId", msg.ID).Str("subject", msg.Subject).Msg("Contact message received")
	return msg, nil
}
