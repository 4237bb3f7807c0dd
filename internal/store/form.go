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

// FormStore handles form categories and the downloadable forms within them.
type FormStore struct {
	db *sql.DB
}

// NewFormStore creates a new FormStore with the given database connection.
func NewFormStore(db *sql.DB) *FormStore {
	return &FormStore{db: db}
}

const formCategoryColumns = `id, title, description, icon, gradient, sort_order, created_at, updated_at`

const formColumns = `id, name, file_type, file_size, file_url, category_id, sort_order, created_at, updated_at`

func scanFormCategory(row interface{ Scan(...any) error }, c *models.FormCategory) error {
	return row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Icon, &c.Gradient,
		&c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	)
}

func scanForm(row interface{ Scan(...any) error }, f *models.Form) error {
	return row.Scan(
		&f.ID, &f.Name, &f.FileType, &f.FileSize, &f.FileURL,
		&f.CategoryID, &f.SortOrder, &f.CreatedAt, &f.UpdatedAt,
	)
}

// ListCategories returns all form categories in their manual order.
func (s *FormStore) ListCategories() ([]models.FormCategory, error) {
	rows, err := s.db.Query(`SELECT ` + formCategoryColumns + ` FROM form_categories ORDER BY sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list form categories: %w", err)
	}
	defer rows.Close()

	var items []models.FormCategory
	for rows.Next() {
		var c models.FormCategory
		if err := scanFormCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("scan form category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindCategoryByID retrieves a form category by its UUID. Returns nil if not found.
func (s *FormStore) FindCategoryByID(id uuid.UUID) (*models.FormCategory, error) {
	c := &models.FormCategory{}
	err := scanFormCategory(s.db.QueryRow(`SELECT `+formCategoryColumns+` FROM form_categories WHERE id = $1`, id), c)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find form category by id: %w", err)
	}
	return c, nil
}

// CreateCategory inserts a new form category.
func (s *FormStore) CreateCategory(c *models.FormCategory) (*models.FormCategory, error) {
	result := &models.FormCategory{}
	err := scanFormCategory(s.db.QueryRow(`
		INSERT INTO form_categories (title, description, icon, gradient, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+formCategoryColumns,
		c.Title, c.Description, c.Icon, c.Gradient, c.SortOrder,
	), result)
	if err != nil {
		return nil, fmt.Errorf("create form category: %w", err)
	}
	return result, nil
}

// UpdateCategory modifies an existing form category and stamps updated_at.
func (s *FormStore) UpdateCategory(c *models.FormCategory) (*models.FormCategory, error) {
	result := &models.FormCategory{}
	err := scanFormCategory(s.db.QueryRow(`
		UPDATE form_categories SET
			title = $1, description = $2, icon = $3, gradient = $4,
			sort_order = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+formCategoryColumns,
		c.Title, c.Description, c.Icon, c.Gradient, c.SortOrder, c.ID,
	), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update form category: %w", err)
	}
	return result, nil
}

// DeleteCategory removes a form category. Forms within it cascade at the
// schema level.
func (s *FormStore) DeleteCategory(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM form_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete form category: %w", err)
	}
	return nil
}

// ListForms returns all forms in category-then-manual order.
func (s *FormStore) ListForms() ([]models.Form, error) {
	rows, err := s.db.Query(`SELECT ` + formColumns + ` FROM forms ORDER BY category_id, sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	defer rows.Close()

	var items []models.Form
	for rows.Next() {
		var f models.Form
		if err := scanForm(rows, &f); err != nil {
			return nil, fmt.Errorf("scan form: %w", err)
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

// ListFormsByCategory returns the forms of one category in manual order.
func (s *FormStore) ListFormsByCategory(categoryID uuid.UUID) ([]models.Form, error) {
	rows, err := s.db.Query(`
		SELECT `+formColumns+` FROM forms
		WHERE category_id = $1 ORDER BY sort_order ASC, created_at ASC
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list forms by category: %w", err)
	}
	defer rows.Close()

	var items []models.Form
	for rows.Next() {
		var f models.Form
		if err := scanForm(rows, &f); err != nil {
			return nil, fmt.Errorf("scan form: %w", err)
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

// FindFormByID retrieves a form by its UUID. Returns nil if not found.
func (s *FormStore) FindFormByID(id uuid.UUID) (*models.Form, error) {
	f := &models.Form{}
	err := scanForm(s.db.QueryRow(`SELECT `+formColumns+` FROM forms WHERE id = $1`, id), f)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find form by id: %w", err)
	}
	return f, nil
}

// CreateForm inserts a new form.
func (s *FormStore) CreateForm(f *models.Form) (*models.Form, error) {
	result := &models.Form{}
	err := scanForm(s.db.QueryRow(`
		INSERT INTO forms (name, file_type, file_size, file_url, category_id, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+formColumns,
		f.Name, f.FileType, f.FileSize, f.FileURL, f.CategoryID, f.SortOrder,
	), result)
	if err != nil {
		return nil, fmt.Errorf("create form: %w", err)
	}
	return result, nil
}

// UpdateForm modifies an existing form and stamps updated_at.
func (s *FormStore) UpdateForm(f *models.Form) (*models.Form, error) {
	result := &models.Form{}
	err := scanForm(s.db.QueryRow(`
		UPDATE forms SET
			name = $1, file_type = $2, file_size = $3, file_url = $4,
			category_id = $5, sort_order = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+formColumns,
		f.Name, f.FileType, f.FileSize, f.FileURL, f.CategoryID, f.SortOrder, f.ID,
	), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update form: %w", err)
	}
	return result, nil
}

// DeleteForm removes a form by ID.
func (s *FormStore) DeleteForm(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM forms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete form: %w", err)
	}
	return nil
}
