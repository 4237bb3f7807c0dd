// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package legacy

import (
	"log/slog"

	"github.com/google/uuid"

	"rtaweb/internal/models"
)

// ContactInput is the legacy-shaped payload from the public contact form.
type ContactInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Service    string `json:"service"`
	Message    string `json:"message"`
	Source     string `json:"source"`
	Newsletter bool   `json:"newsletter"`
}

// ListSubmissions returns all contact submissions in legacy shape, newest first.
func (s *Service) ListSubmissions() []ContactSubmission {
	rows, err := s.contacts.List()
	if err != nil {
		slog.Error("legacy list submissions failed", "error", err)
		return []ContactSubmission{}
	}
	items := make([]ContactSubmission, 0, len(rows))
	for i := range rows {
		items = append(items, *toContactSubmission(&rows[i]))
	}
	return items
}

// GetSubmission resolves a legacy ID and returns the submission, or nil.
func (s *Service) GetSubmission(legacyID int64) *ContactSubmission {
	row, ok := s.resolveSubmission(legacyID)
	if !ok {
		return nil
	}
	return toContactSubmission(row)
}

// CreateSubmission records a contact form submission. When the sender opted
// into the newsletter the subscription is created best-effort: a failure
// there is logged but never loses the submission itself.
func (s *Service) CreateSubmission(in ContactInput) *ContactSubmission {
	row, err := s.contacts.Create(&models.ContactSubmission{
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		Company:         in.Company,
		Service:         in.Service,
		Message:         in.Message,
		Status:          models.SubmissionNew,
		Source:          in.Source,
		NewsletterOptIn: in.Newsletter,
	})
	if err != nil {
		slog.Error("legacy create submission failed", "error", err)
		return nil
	}

	if in.Newsletter {
		if _, err := s.newsletter.Subscribe(in.Email, "contact_form"); err != nil {
			slog.Error("newsletter opt-in from contact form failed", "email", in.Email, "error", err)
		}
	}

	return toContactSubmission(row)
}

// UpdateSubmissionStatus transitions a submission between new/read/responded.
// Returns nil when the legacy ID does not resolve or the status is unknown.
func (s *Service) UpdateSubmissionStatus(legacyID int64, status string) *ContactSubmission {
	switch models.SubmissionStatus(status) {
	case models.SubmissionNew, models.SubmissionRead, models.SubmissionResponded:
	default:
		return nil
	}

	row, ok := s.resolveSubmission(legacyID)
	if !ok {
		return nil
	}
	updated, err := s.contacts.UpdateStatus(row.ID, models.SubmissionStatus(status))
	if err != nil || updated == nil {
		slog.Error("legacy update submission status failed", "legacy_id", legacyID, "error", err)
		return nil
	}
	return toContactSubmission(updated)
}

// DeleteSubmission hard-deletes the submission for a legacy ID. Outside the
// normal status-transition flow but kept for parity with the old API.
func (s *Service) DeleteSubmission(legacyID int64) bool {
	row, ok := s.resolveSubmission(legacyID)
	if !ok {
		return false
	}
	if err := s.contacts.Delete(row.ID); err != nil {
		slog.Error("legacy delete submission failed", "legacy_id", legacyID, "error", err)
		return false
	}
	return true
}

func (s *Service) resolveSubmission(legacyID int64) (*models.ContactSubmission, bool) {
	rows, err := s.contacts.List()
	if err != nil {
		slog.Error("legacy resolve submission failed", "legacy_id", legacyID, "error", err)
		return nil, false
	}
	return findByLegacyID(legacyID, rows, func(c models.ContactSubmission) uuid.UUID { return c.ID })
}
