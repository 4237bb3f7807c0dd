// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"rtaweb/internal/models"
)

// NewsletterStore handles all newsletter subscription database operations.
type NewsletterStore struct {
	db *sql.DB
}

// NewNewsletterStore creates a new NewsletterStore with the given database connection.
func NewNewsletterStore(db *sql.DB) *NewsletterStore {
	return &NewsletterStore{db: db}
}

const newsletterColumns = `id, email, is_active, source, created_at, updated_at`

func scanNewsletter(row interface{ Scan(...any) error }, n *models.NewsletterSubscription) error {
	return row.Scan(&n.ID, &n.Email, &n.IsActive, &n.Source, &n.CreatedAt, &n.UpdatedAt)
}

// List returns all subscriptions, newest first. When activeOnly is set,
// unsubscribed entries are excluded.
func (s *NewsletterStore) List(activeOnly bool) ([]models.NewsletterSubscription, error) {
	query := `SELECT ` + newsletterColumns + ` FROM newsletter_subscriptions ORDER BY created_at DESC`
	if activeOnly {
		query = `SELECT ` + newsletterColumns + ` FROM newsletter_subscriptions WHERE is_active = TRUE ORDER BY created_at DESC`
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list newsletter subscriptions: %w", err)
	}
	defer rows.Close()

	var items []models.NewsletterSubscription
	for rows.Next() {
		var n models.NewsletterSubscription
		if err := scanNewsletter(rows, &n); err != nil {
			return nil, fmt.Errorf("scan newsletter subscription: %w", err)
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// FindByID retrieves a subscription by its UUID. Returns nil if not found.
func (s *NewsletterStore) FindByID(id uuid.UUID) (*models.NewsletterSubscription, error) {
	n := &models.NewsletterSubscription{}
	err := scanNewsletter(s.db.QueryRow(`SELECT `+newsletterColumns+` FROM newsletter_subscriptions WHERE id = $1`, id), n)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find newsletter subscription by id: %w", err)
	}
	return n, nil
}

// Subscribe upserts a subscription by email. A previously unsubscribed
// address is reactivated, so repeated opt-ins are idempotent.
func (s *NewsletterStore) Subscribe(email, source string) (*models.NewsletterSubscription, error) {
	result := &models.NewsletterSubscription{}
	err := scanNewsletter(s.db.QueryRow(`
		INSERT INTO newsletter_subscriptions (email, source, is_active)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (email) DO UPDATE SET is_active = TRUE, source = EXCLUDED.source, updated_at = NOW()
		RETURNING `+newsletterColumns,
		email, source,
	), result)
	if err != nil {
		return nil, fmt.Errorf("subscribe newsletter: %w", err)
	}
	return result, nil
}

// SoftDelete marks a subscription inactive.
func (s *NewsletterStore) SoftDelete(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE newsletter_subscriptions SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete newsletter subscription: %w", err)
	}
	return nil
}
