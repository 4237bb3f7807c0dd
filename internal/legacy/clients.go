// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package legacy

import (
	"log/slog"

	"github.com/google/uuid"

	"rtaweb/internal/models"
)

// ClientInput is the legacy-shaped payload for creating a client.
type ClientInput struct {
	SerialNumber int    `json:"serialNumber"`
	CompanyName  string `json:"companyName"`
	SecurityType string `json:"securityType"`
	ISINCode     string `json:"isinCode"`
	IsActive     *bool  `json:"isActive,omitempty"`
}

// ClientPatch is the legacy-shaped partial update for a client. Nil fields
// are left unchanged.
type ClientPatch struct {
	SerialNumber *int    `json:"serialNumber,omitempty"`
	CompanyName  *string `json:"companyName,omitempty"`
	SecurityType *string `json:"securityType,omitempty"`
	ISINCode     *string `json:"isinCode,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

// ListClients returns all clients in legacy shape. When activeOnly is set,
// soft-deleted clients are excluded. Store errors degrade to an empty list.
func (s *Service) ListClients(activeOnly bool) []Client {
	rows, err := s.clients.List(activeOnly)
	if err != nil {
		slog.Error("legacy list clients failed", "error", err)
		return []Client{}
	}
	items := make([]Client, 0, len(rows))
	for i := range rows {
		items = append(items, *toClient(&rows[i]))
	}
	return items
}

// GetClient resolves a legacy ID and returns the client, or nil if no record
// derives that ID.
func (s *Service) GetClient(legacyID int64) *Client {
	row, ok := s.resolveClient(legacyID)
	if !ok {
		return nil
	}
	return toClient(row)
}

// CreateClient inserts a new client from legacy-shaped input. Returns nil
// if the store rejects the insert.
func (s *Service) CreateClient(in ClientInput) *Client {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	row, err := s.clients.Create(&models.Client{
		SerialNumber: in.SerialNumber,
		CompanyName:  in.CompanyName,
		SecurityType: models.SecurityType(in.SecurityType),
		ISINCode:     in.ISINCode,
		IsActive:     active,
	})
	if err != nil {
		slog.Error("legacy create client failed", "error", err)
		return nil
	}
	return toClient(row)
}

// UpdateClient resolves a legacy ID, applies the non-nil patch fields, and
// returns the updated client. Returns nil when the ID does not resolve or
// the store rejects the update. The resolve-then-update sequence is not
// atomic with respect to concurrent deletes.
func (s *Service) UpdateClient(legacyID int64, patch ClientPatch) *Client {
	row, ok := s.resolveClient(legacyID)
	if !ok {
		return nil
	}

	if patch.SerialNumber != nil {
		row.SerialNumber = *patch.SerialNumber
	}
	if patch.CompanyName != nil {
		row.CompanyName = *patch.CompanyName
	}
	if patch.SecurityType != nil {
		row.SecurityType = models.SecurityType(*patch.SecurityType)
	}
	if patch.ISINCode != nil {
		row.ISINCode = *patch.ISINCode
	}
	if patch.IsActive != nil {
		row.IsActive = *patch.IsActive
	}

	updated, err := s.clients.Update(row)
	if err != nil || updated == nil {
		slog.Error("legacy update client failed", "legacy_id", legacyID, "error", err)
		return nil
	}
	return toClient(updated)
}

// DeleteClient soft-deletes the client for a legacy ID. Returns false when
// the ID does not resolve, so callers can emit a 404 instead of an error.
func (s *Service) DeleteClient(legacyID int64) bool {
	row, ok := s.resolveClient(legacyID)
	if !ok {
		return false
	}
	if err := s.clients.SoftDelete(row.ID); err != nil {
		slog.Error("legacy delete client failed", "legacy_id", legacyID, "error", err)
		return false
	}
	return true
}

// resolveClient scans the full client set (soft-deleted rows included, so
// their legacy IDs stay resolvable) for the record deriving legacyID.
func (s *Service) resolveClient(legacyID int64) (*models.Client, bool) {
	rows, err := s.clients.List(false)
	if err != nil {
		slog.Error("legacy resolve client failed", "legacy_id", legacyID, "error", err)
		return nil, false
	}
	return findByLegacyID(legacyID, rows, func(c models.Client) uuid.UUID { return c.ID })
}
