// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ClientLogo is a client logo shown in the "our clients" strip on the
// public site.
type ClientLogo struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"company_name"`
	Subtitle    string    `json:"subtitle"`
	LogoURL     string    `json:"logo_url"`
	WebsiteURL  string    `json:"website_url"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
