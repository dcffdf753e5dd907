package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
)

// IContactRepository defines the interface for contact-message persistence
type IContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}

// ContactRepository handles the append-only 'contact_messages' table
type ContactRepository struct {
	db *pgxpool.Pool
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create appends a contact message
func (r *ContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Subject, msg.Message).Scan(&msg.ID, &msg.CreatedAt)

	if err != nil {
		return fmt.Errorf("error saving contact message: %w", err)
	}

	return nil
}
