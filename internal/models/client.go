// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the native row representations for every entity
// stored in PostgreSQL. All primary keys are UUIDs assigned by the database;
// the legacy numeric IDs consumed by older clients are derived in the legacy
// package and never stored.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SecurityType classifies the kind of security a client company has issued.
type SecurityType string

const (
	SecurityEquity     SecurityType = "EQUITY"
	SecurityPreference SecurityType = "PREFERENCE"
	SecurityDebenture  SecurityType = "DEBENTURE"
)

// Client represents a company serviced by the registrar. The serial number
// is business-assigned and carries no uniqueness guarantee. Clients are
// soft-deleted by flipping IsActive so historical records stay resolvable.
type Client struct {
	ID           uuid.UUID    `json:"id"`
	SerialNumber int          `json:"serial_number"`
	CompanyName  string       `json:"company_name"`
	SecurityType SecurityType `json:"security_type"`
	ISINCode     string       `json:"isin_code"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
