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

// LogoStore handles all client logo database operations.
type LogoStore struct {
	db *sql.DB
}

// NewLogoStore creates a new LogoStore with the given database connection.
func NewLogoStore(db *sql.DB) *LogoStore {
	return &LogoStore{db: db}
}

const logoColumns = `id, company_name, subtitle, logo_url, website_url,
       sort_order, is_active, created_at, updated_at`

func scanLogo(row interface{ Scan(...any) error }, l *models.ClientLogo) error {
	return row.Scan(
		&l.ID, &l.CompanyName, &l.Subtitle, &l.LogoURL, &l.WebsiteURL,
		&l.SortOrder, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	)
}

// List returns all client logos in their manual order. When activeOnly is
// set, hidden logos are excluded.
func (s *LogoStore) List(activeOnly bool) ([]models.ClientLogo, error) {
	query := `SELECT ` + logoColumns + ` FROM client_logos ORDER BY sort_order ASC, created_at ASC`
	if activeOnly {
		query = `SELECT ` + logoColumns + ` FROM client_logos WHERE is_active = TRUE ORDER BY sort_order ASC, created_at ASC`
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list client logos: %w", err)
	}
	defer rows.Close()

	var items []models.ClientLogo
	for rows.Next() {
		var l models.ClientLogo
		if err := scanLogo(rows, &l); err != nil {
			return nil, fmt.Errorf("scan client logo: %w", err)
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// FindByID retrieves a client logo by its UUID. Returns nil if not found.
func (s *LogoStore) FindByID(id uuid.UUID) (*models.ClientLogo, error) {
	l := &models.ClientLogo{}
	err := scanLogo(s.db.QueryRow(`SELECT `+logoColumns+` FROM client_logos WHERE id = $1`, id), l)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find client logo by id: %w", err)
	}
	return l, nil
}

// Create inserts a new client logo.
func (s *LogoStore) Create(l *models.ClientLogo) (*models.ClientLogo, error) {
	result := &models.ClientLogo{}
	err := scanLogo(s.db.QueryRow(`
		INSERT INTO client_logos (company_name, subtitle, logo_url, website_url, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+logoColumns,
		l.CompanyName, l.Subtitle, l.LogoURL, l.WebsiteURL, l.SortOrder, l.IsActive,
	), result)
	if err != nil {
		return nil, fmt.Errorf("create client logo: %w", err)
	}
	return result, nil
}

// Update modifies an existing client logo and stamps updated_at.
func (s *LogoStore) Update(l *models.ClientLogo) (*models.ClientLogo, error) {
	result := &models.ClientLogo{}
	err := scanLogo(s.db.QueryRow(`
		UPDATE client_logos SET
			company_name = $1, subtitle = $2, logo_url = $3, website_url = $4,
			sort_order = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+logoColumns,
		l.CompanyName, l.Subtitle, l.LogoURL, l.WebsiteURL, l.SortOrder, l.IsActive, l.ID,
	), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update client logo: %w", err)
	}
	return result, nil
}

// Delete removes a client logo by ID.
func (s *LogoStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM client_logos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client logo: %w", err)
	}
	return nil
}
