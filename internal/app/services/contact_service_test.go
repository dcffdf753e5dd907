package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

func contactRequest() *dto.ContactRequest {
	return &dto.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Admission query",
		Message: "When do applications open?",
	}
}

func TestSubmitStoresAndRelays(t *testing.T) {
	repo := &fakeContactRepo{}
	mailer := &fakeEmailService{}
	svc := NewContactService(repo, mailer, zerolog.Nop())

	msg, err := svc.Submit(context.Background(), contactRequest())
	require.NoError(t, err)

	assert.NotZero(t, msg.ID)
	require.Len(t, repo.messages, 1)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Admission query", mailer.sent[0].Subject)
}

func TestSubmitRejectsEmptyFields(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakeEmailService{}, zerolog.Nop())

	req := contactRequest()
	req.Subject = "   "
	_, err := svc.Submit(context.Background(), req)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, repo.messages)
}

func TestSubmitRejectsInvalidEmail(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakeEmailService{}, zerolog.Nop())

	req := contactRequest()
	req.Email = "not-an-email"
	_, err := svc.Submit(context.Background(), req)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSubmitRelayFailureAfterDurableSave(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakeEmailService{fail: true}, zerolog.Nop())

	_, err := svc.Submit(context.Background(), contactRequest())

	// The relay failure surfaces to the caller even though the message
	// was already persisted
	assert.ErrorIs(t, err, apperrors.ErrInternal)
	assert.Len(t, repo.messages, 1)
}
