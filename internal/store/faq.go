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

// FAQStore handles all FAQ database operations.
type FAQStore struct {
	db *sql.DB
}

// NewFAQStore creates a new FAQStore with the given database connection.
func NewFAQStore(db *sql.DB) *FAQStore {
	return &FAQStore{db: db}
}

const faqColumns = `id, question, answer, category, sort_order, is_active, created_at, updated_at`

func scanFAQ(row interface{ Scan(...any) error }, f *models.FAQ) error {
	return row.Scan(
		&f.ID, &f.Question, &f.Answer, &f.Category, &f.SortOrder,
		&f.IsActive, &f.CreatedAt, &f.UpdatedAt,
	)
}

// List returns all FAQs in their manually assigned order. When activeOnly
// is set, inactive entries are excluded.
func (s *FAQStore) List(activeOnly bool) ([]models.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs ORDER BY sort_order ASC, created_at ASC`
	if activeOnly {
		query = `SELECT ` + faqColumns + ` FROM faqs WHERE is_active = TRUE ORDER BY sort_order ASC, created_at ASC`
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	var items []models.FAQ
	for rows.Next() {
		var f models.FAQ
		if err := scanFAQ(rows, &f); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

// FindByID retrieves an FAQ by its UUID. Returns nil if not found.
func (s *FAQStore) FindByID(id uuid.UUID) (*models.FAQ, error) {
	f := &models.FAQ{}
	err := scanFAQ(s.db.QueryRow(`SELECT `+faqColumns+` FROM faqs WHERE id = $1`, id), f)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find faq by id: %w", err)
	}
	return f, nil
}

// Create inserts a new FAQ and returns it with the generated ID.
func (s *FAQStore) Create(f *models.FAQ) (*models.FAQ, error) {
	result := &models.FAQ{}
	err := scanFAQ(s.db.QueryRow(`
		INSERT INTO faqs (question, answer, category, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+faqColumns,
		f.Question, f.Answer, f.Category, f.SortOrder, f.IsActive,
	), result)
	if err != nil {
		return nil, fmt.Errorf("create faq: %w", err)
	}
	return result, nil
}

// Update modifies an existing FAQ and stamps updated_at.
func (s *FAQStore) Update(f *models.FAQ) (*models.FAQ, error) {
	result := &models.FAQ{}
	err := scanFAQ(s.db.QueryRow(`
		UPDATE faqs SET
			question = $1, answer = $2, category = $3, sort_order = $4,
			is_active = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+faqColumns,
		f.Question, f.Answer, f.Category, f.SortOrder, f.IsActive, f.ID,
	), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update faq: %w", err)
	}
	return result, nil
}

// Delete removes an FAQ by ID.
func (s *FAQStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	return nil
}
