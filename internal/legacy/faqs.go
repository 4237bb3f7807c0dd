// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package legacy

import (
	"log/slog"

	"github.com/google/uuid"

	"rtaweb/internal/models"
)

// FAQInput is the legacy-shaped payload for creating an FAQ.
type FAQInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// FAQPatch is the legacy-shaped partial update for an FAQ.
type FAQPatch struct {
	Question *string `json:"question,omitempty"`
	Answer   *string `json:"answer,omitempty"`
	Category *string `json:"category,omitempty"`
	Order    *int    `json:"order,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ListFAQs returns all FAQs in legacy shape in their manual order.
func (s *Service) ListFAQs(activeOnly bool) []FAQ {
	rows, err := s.faqs.List(activeOnly)
	if err != nil {
		slog.Error("legacy list faqs failed", "error", err)
		return []FAQ{}
	}
	items := make([]FAQ, 0, len(rows))
	for i := range rows {
		items = append(items, *toFAQ(&rows[i]))
	}
	return items
}

// GetFAQ resolves a legacy ID and returns the FAQ, or nil.
func (s *Service) GetFAQ(legacyID int64) *FAQ {
	row, ok := s.resolveFAQ(legacyID)
	if !ok {
		return nil
	}
	return toFAQ(row)
}

// CreateFAQ inserts a new FAQ from legacy input.
func (s *Service) CreateFAQ(in FAQInput) *FAQ {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	row, err := s.faqs.Create(&models.FAQ{
		Question:  in.Question,
		Answer:    in.Answer,
		Category:  in.Category,
		SortOrder: in.Order,
		IsActive:  active,
	})
	if err != nil {
		slog.Error("legacy create faq failed", "error", err)
		return nil
	}
	return toFAQ(row)
}

// UpdateFAQ resolves a legacy ID and applies the non-nil patch fields.
func (s *Service) UpdateFAQ(legacyID int64, patch FAQPatch) *FAQ {
	row, ok := s.resolveFAQ(legacyID)
	if !ok {
		return nil
	}

	if patch.Question != nil {
		row.Question = *patch.Question
	}
	if patch.Answer != nil {
		row.Answer = *patch.Answer
	}
	if patch.Category != nil {
		row.Category = *patch.Category
	}
	if patch.Order != nil {
		row.SortOrder = *patch.Order
	}
	if patch.IsActive != nil {
		row.IsActive = *patch.IsActive
	}

	updated, err := s.faqs.Update(row)
	if err != nil || updated == nil {
		slog.Error("legacy update faq failed", "legacy_id", legacyID, "error", err)
		return nil
	}
	return toFAQ(updated)
}

// DeleteFAQ hard-deletes the FAQ for a legacy ID. Returns false when the ID
// does not resolve.
func (s *Service) DeleteFAQ(legacyID int64) bool {
	row, ok := s.resolveFAQ(legacyID)
	if !ok {
		return false
	}
	if err := s.faqs.Delete(row.ID); err != nil {
		slog.Error("legacy delete faq failed", "legacy_id", legacyID, "error", err)
		return false
	}
	return true
}

func (s *Service) resolveFAQ(legacyID int64) (*models.FAQ, bool) {
	rows, err := s.faqs.List(false)
	if err != nil {
		slog.Error("legacy resolve faq failed", "legacy_id", legacyID, "error", err)
		return nil, false
	}
	return findByLegacyID(legacyID, rows, func(f models.FAQ) uuid.UUID { return f.ID })
}
