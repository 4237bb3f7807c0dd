// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus tracks the handling state of a contact submission.
type SubmissionStatus string

const (
	SubmissionNew       SubmissionStatus = "new"
	SubmissionRead      SubmissionStatus = "read"
	SubmissionResponded SubmissionStatus = "responded"
)

// ContactSubmission is an inquiry sent through the public contact form.
// Normal lifecycle is status transitions only; deletion exists but is not
// part of the regular flow.
type ContactSubmission struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Company          string           `json:"company"`
	Service          string           `json:"service"`
	Message          string           `json:"message"`
	Status           SubmissionStatus `json:"status"`
	Source           string           `json:"source"`
	NewsletterOptIn  bool             `json:"newsletter_opt_in"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
