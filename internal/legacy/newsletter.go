// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package legacy

import (
	"log/slog"

	"github.com/google/uuid"

	"rtaweb/internal/models"
)

// ListSubscriptions returns all newsletter subscriptions in legacy shape.
// When activeOnly is set, unsubscribed addresses are excluded.
func (s *Service) ListSubscriptions(activeOnly bool) []NewsletterSubscription {
	rows, err := s.newsletter.List(activeOnly)
	if err != nil {
		slog.Error("legacy list subscriptions failed", "error", err)
		return []NewsletterSubscription{}
	}
	items := make([]NewsletterSubscription, 0, len(rows))
	for i := range rows {
		items = append(items, *toNewsletterSubscription(&rows[i]))
	}
	return items
}

// Subscribe records a newsletter opt-in. Re-subscribing an unsubscribed
// address reactivates it; the operation is idempotent per email.
func (s *Service) Subscribe(email, source string) *NewsletterSubscription {
	row, err := s.newsletter.Subscribe(email, source)
	if err != nil {
		slog.Error("legacy subscribe failed", "email", email, "error", err)
		return nil
	}
	return toNewsletterSubscription(row)
}

// DeleteSubscription soft-deletes the subscription for a legacy ID. Returns
// false when the ID does not resolve.
func (s *Service) DeleteSubscription(legacyID int64) bool {
	rows, err := s.newsletter.List(false)
	if err != nil {
		slog.Error("legacy resolve subscription failed", "legacy_id", legacyID, "error", err)
		return false
	}
	row, ok := findByLegacyID(legacyID, rows, func(n models.NewsletterSubscription) uuid.UUID { return n.ID })
	if !ok {
		return false
	}
	if err := s.newsletter.SoftDelete(row.ID); err != nil {
		slog.Error("legacy delete subscription failed", "legacy_id", legacyID, "error", err)
		return false
	}
	return true
}
