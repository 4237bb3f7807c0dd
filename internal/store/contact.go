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

// ContactStore handles all contact submission database operations.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore creates a new ContactStore with the given database connection.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

const contactColumns = `id, name, email, phone, company, service, message,
       status, source, newsletter_opt_in, created_at, updated_at`

func scanContact(row interface{ Scan(...any) error }, c *models.ContactSubmission) error {
	return row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Service,
		&c.Message, &c.Status, &c.Source, &c.NewsletterOptIn,
		&c.CreatedAt, &c.UpdatedAt,
	)
}

// List returns all contact submissions, newest first.
func (s *ContactStore) List() ([]models.ContactSubmission, error) {
	rows, err := s.db.Query(`SELECT ` + contactColumns + ` FROM contact_submissions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	var items []models.ContactSubmission
	for rows.Next() {
		var c models.ContactSubmission
		if err := scanContact(rows, &c); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a contact submission by its UUID. Returns nil if not found.
func (s *ContactStore) FindByID(id uuid.UUID) (*models.ContactSubmission, error) {
	c := &models.ContactSubmission{}
	err := scanContact(s.db.QueryRow(`SELECT `+contactColumns+` FROM contact_submissions WHERE id = $1`, id), c)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find contact submission by id: %w", err)
	}
	return c, nil
}

// Create inserts a new contact submission and returns it with the generated ID.
func (s *ContactStore) Create(c *models.ContactSubmission) (*models.ContactSubmission, error) {
	if c.Status == "" {
		c.Status = models.SubmissionNew
	}

	result := &models.ContactSubmission{}
	err := scanContact(s.db.QueryRow(`
		INSERT INTO contact_submissions (name, email, phone, company, service,
		                                 message, status, source, newsletter_opt_in)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+contactColumns,
		c.Name, c.Email, c.Phone, c.Company, c.Service,
		c.Message, c.Status, c.Source, c.NewsletterOptIn,
	), result)
	if err != nil {
		return nil, fmt.Errorf("create contact submission: %w", err)
	}
	return result, nil
}

// UpdateStatus transitions a submission's handling status and stamps updated_at.
func (s *ContactStore) UpdateStatus(id uuid.UUID, status models.SubmissionStatus) (*models.ContactSubmission, error) {
	result := &models.ContactSubmission{}
	err := scanContact(s.db.QueryRow(`
		UPDATE contact_submissions SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+contactColumns,
		status, id,
	), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update contact submission status: %w", err)
	}
	return result, nil
}

// Delete removes a contact submission by ID. Exists for completeness; the
// normal flow only transitions status.
func (s *ContactStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact submission: %w", err)
	}
	return nil
}

// Count returns the number of submissions with the given status, or all
// submissions when status is empty.
func (s *ContactStore) Count(status models.SubmissionStatus) (int, error) {
	var count int
	var err error
	if status == "" {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM contact_submissions`).Scan(&count)
	} else {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM contact_submissions WHERE status = $1`, status).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("count contact submissions: %w", err)
	}
	return count, nil
}
