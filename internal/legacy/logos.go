// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package legacy

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"rtaweb/internal/models"
)

// LogoInput is the legacy-shaped payload for creating a client logo.
type LogoInput struct {
	CompanyName string `json:"companyName"`
	Subtitle    string `json:"subtitle"`
	LogoURL     string `json:"logoUrl"`
	WebsiteURL  string `json:"websiteUrl"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// LogoPatch is the legacy-shaped partial update for a client logo.
type LogoPatch struct {
	CompanyName *string `json:"companyName,omitempty"`
	Subtitle    *string `json:"subtitle,omitempty"`
	LogoURL     *string `json:"logoUrl,omitempty"`
	WebsiteURL  *string `json:"websiteUrl,omitempty"`
	Order       *int    `json:"order,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ListLogos returns all client logos in legacy shape in their manual order.
func (s *Service) ListLogos(activeOnly bool) []ClientLogo {
	rows, err := s.logos.List(activeOnly)
	if err != nil {
		slog.Error("legacy list logos failed", "error", err)
		return []ClientLogo{}
	}
	items := make([]ClientLogo, 0, len(rows))
	for i := range rows {
		items = append(items, *toClientLogo(&rows[i]))
	}
	return items
}

// GetLogo resolves a legacy ID and returns the logo, or nil.
func (s *Service) GetLogo(legacyID int64) *ClientLogo {
	row, ok := s.resolveLogo(legacyID)
	if !ok {
		return nil
	}
	return toClientLogo(row)
}

// CreateLogo inserts a new client logo from legacy input.
func (s *Service) CreateLogo(in LogoInput) *ClientLogo {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	row, err := s.logos.Create(&models.ClientLogo{
		CompanyName: in.CompanyName,
		Subtitle:    in.Subtitle,
		LogoURL:     in.LogoURL,
		WebsiteURL:  in.WebsiteURL,
		SortOrder:   in.Order,
		IsActive:    active,
	})
	if err != nil {
		slog.Error("legacy create logo failed", "error", err)
		return nil
	}
	return toClientLogo(row)
}

// UpdateLogo resolves a legacy ID and applies the non-nil patch fields.
func (s *Service) UpdateLogo(legacyID int64, patch LogoPatch) *ClientLogo {
	row, ok := s.resolveLogo(legacyID)
	if !ok {
		return nil
	}

	if patch.CompanyName != nil {
		row.CompanyName = *patch.CompanyName
	}
	if patch.Subtitle != nil {
		row.Subtitle = *patch.Subtitle
	}
	if patch.LogoURL != nil {
		row.LogoURL = *patch.LogoURL
	}
	if patch.WebsiteURL != nil {
		row.WebsiteURL = *patch.WebsiteURL
	}
	if patch.Order != nil {
		row.SortOrder = *patch.Order
	}
	if patch.IsActive != nil {
		row.IsActive = *patch.IsActive
	}

	updated, err := s.logos.Update(row)
	if err != nil || updated == nil {
		slog.Error("legacy update logo failed", "legacy_id", legacyID, "error", err)
		return nil
	}
	return toClientLogo(updated)
}

// DeleteLogo hard-deletes the logo for a legacy ID, cleaning up the stored
// image best-effort. Returns false when the ID does not resolve.
func (s *Service) DeleteLogo(ctx context.Context, legacyID int64) bool {
	row, ok := s.resolveLogo(legacyID)
	if !ok {
		return false
	}
	if err := s.logos.Delete(row.ID); err != nil {
		slog.Error("legacy delete logo failed", "legacy_id", legacyID, "error", err)
		return false
	}
	s.deleteStoredFile(ctx, row.LogoURL)
	return true
}

func (s *Service) resolveLogo(legacyID int64) (*models.ClientLogo, bool) {
	rows, err := s.logos.List(false)
	if err != nil {
		slog.Error("legacy resolve logo failed", "legacy_id", legacyID, "error", err)
		return nil, false
	}
	return findByLegacyID(legacyID, rows, func(l models.ClientLogo) uuid.UUID { return l.ID })
}
