// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the native data-access layer: one store per entity,
// each a thin typed wrapper over *sql.DB. Stores speak the native shape
// (snake_case columns, UUID keys); the legacy shape translation lives in the
// legacy package.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"rtaweb/internal/models"
)

// ClientStore handles all client-related database operations.
type ClientStore struct {
	db *sql.DB
}

// NewClientStore creates a new ClientStore with the given database connection.
func NewClientStore(db *sql.DB) *ClientStore {
	return &ClientStore{db: db}
}

const clientColumns = `id, serial_number, company_name, security_type, isin_code,
       is_active, created_at, updated_at`

func scanClient(row interface{ Scan(...any) error }, c *models.Client) error {
	return row.Scan(
		&c.ID, &c.SerialNumber, &c.CompanyName, &c.SecurityType,
		&c.ISINCode, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
}

// List returns all clients ordered by serial number. When activeOnly is set,
// soft-deleted clients are excluded.
func (s *ClientStore) List(activeOnly bool) ([]models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY serial_number ASC, created_at DESC`
	if activeOnly {
		query = `SELECT ` + clientColumns + ` FROM clients WHERE is_active = TRUE ORDER BY serial_number ASC, created_at DESC`
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var items []models.Client
	for rows.Next() {
		var c models.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a client by its UUID. Returns nil if not found.
func (s *ClientStore) FindByID(id uuid.UUID) (*models.Client, error) {
	c := &models.Client{}
	err := scanClient(s.db.QueryRow(`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id), c)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find client by id: %w", err)
	}
	return c, nil
}

// Create inserts a new client and returns it with the generated ID.
func (s *ClientStore) Create(c *models.Client) (*models.Client, error) {
	result := &models.Client{}
	err := scanClient(s.db.QueryRow(`
		INSERT INTO clients (serial_number, company_name, security_type, isin_code, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+clientColumns,
		c.SerialNumber, c.CompanyName, c.SecurityType, c.ISINCode, c.IsActive,
	), result)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return result, nil
}

// Update modifies an existing client and stamps updated_at.
func (s *ClientStore) Update(c *models.Client) (*models.Client, error) {
	result := &models.Client{}
	err := scanClient(s.db.QueryRow(`
		UPDATE clients SET
			serial_number = $1, company_name = $2, security_type = $3,
			isin_code = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+clientColumns,
		c.SerialNumber, c.CompanyName, c.SecurityType, c.ISINCode, c.IsActive, c.ID,
	), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return result, nil
}

// SoftDelete marks a client inactive. The row stays in the store so the
// legacy ID remains resolvable.
func (s *ClientStore) SoftDelete(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE clients SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete client: %w", err)
	}
	return nil
}

// Count returns the number of clients, optionally active only.
func (s *ClientStore) Count(activeOnly bool) (int, error) {
	query := `SELECT COUNT(*) FROM clients`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	var count int
	if err := s.db.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return count, nil
}
