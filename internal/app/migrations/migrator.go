package migrations

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/pkg/logger"
)

// Migrator applies the schema migrations at startup
type Migrator struct {
	db *pgxpool.Pool
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{db: db}
}

// migration is a versioned SQL statement batch
type migration struct {
	version string
	sql     string
}

var schema = []migration{
	{
		version: "001",
		sql: `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(30) NOT NULL,
			email VARCHAR(255) NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			role VARCHAR(20) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			last_login_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT users_username_key UNIQUE (username),
			CONSTRAINT users_email_key UNIQUE (email)
		);`,
	},
	{
		version: "002",
		sql: `
		CREATE TABLE IF NOT EXISTS student_records (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			student_id VARCHAR(50) NOT NULL,
			date_of_birth TIMESTAMPTZ,
			gender VARCHAR(10) NOT NULL DEFAULT 'other',
			phone VARCHAR(20) NOT NULL DEFAULT '',
			address JSONB NOT NULL DEFAULT '{}',
			academic_info JSONB NOT NULL DEFAULT '{}',
			guardian_info JSONB NOT NULL DEFAULT '{}',
			emergency_contact JSONB NOT NULL DEFAULT '{}',
			documents JSONB NOT NULL DEFAULT '{}',
			academic_performance JSONB NOT NULL DEFAULT '{}',
			financial_info JSONB NOT NULL DEFAULT '{}',
			hostel_info JSONB NOT NULL DEFAULT '{}',
			placement_info JSONB NOT NULL DEFAULT '{}',
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			enrollment_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			graduation_date TIMESTAMPTZ,
			last_attendance_date TIMESTAMPTZ,
			remarks TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT student_records_student_id_key UNIQUE (student_id),
			CONSTRAINT student_records_user_id_key UNIQUE (user_id)
		);
		CREATE INDEX IF NOT EXISTS idx_student_records_status ON student_records(status);
		CREATE INDEX IF NOT EXISTS idx_student_records_created_at ON student_records(created_at DESC);`,
	},
	{
		version: "003",
		sql: `
		CREATE TABLE IF NOT EXISTS contact_messages (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL,
			subject VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
	},
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := m.db.Exec(ctx, createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	err := m.db.QueryRow(ctx, query, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// Migrate applies all pending migrations in order
func (m *Migrator) Migrate(ctx context.Context) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	for _, mig := range schema {
		applied, err := m.isMigrationApplied(ctx, mig.version)
		if err != nil {
			return err
		}
		if applied {
			logger.Debug().Str("version", mig.version).Msg("Migration already applied, skipping")
			continue
		}

		tx, err := m.db.Begin(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}

		if _, err := tx.Exec(ctx, mig.sql); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("error applying migration %s: %w", mig.version, err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
			mig.version, time.Now()); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("failed to record migration: %w", err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}

		logger.Info().Str("version", mig.version).Msg("Migration applied")
	}

	return nil
}
