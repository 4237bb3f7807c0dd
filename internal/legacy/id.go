// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package legacy implements the compatibility layer between the native
// UUID-keyed store rows and the numeric-ID camelCase view models that older
// admin and API clients consume. It owns two things: the identifier bridge
// (DeriveID/Resolve) and the Service exposing legacy-shaped CRUD per entity.
package legacy

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// idHexWidth is how many leading hex digits of the UUID feed the derived ID.
// Eight digits keep the result within 32 bits, small enough for every legacy
// consumer, at a collision risk accepted for the record volumes involved.
const idHexWidth = 8

// DeriveID deterministically derives the legacy numeric ID for a UUID by
// parsing a fixed-width prefix of its hex digits. Pure function; the result
// is never stored, always recomputed.
func DeriveID(id uuid.UUID) int64 {
	hex := strings.ReplaceAll(id.String(), "-", "")
	n, err := strconv.ParseInt(hex[:idHexWidth], 16, 64)
	if err != nil {
		// Unreachable for a well-formed UUID; uuid.UUID strings are hex.
		return 0
	}
	return n
}

// Resolve scans records for the one whose derived ID matches legacyID and
// returns its UUID. The scan recomputes DeriveID per record, so the cost is
// O(n) per lookup. Returns (uuid.Nil, false) when nothing matches; callers
// must treat that as not-found, never as an error.
//
// If two records derive the same ID the first match wins, mirroring the
// behavior legacy consumers already depend on; the duplicate is logged so
// operators can spot a collision before it corrupts a write.
func Resolve[T any](legacyID int64, records []T, idOf func(T) uuid.UUID) (uuid.UUID, bool) {
	found := uuid.Nil
	matches := 0
	for _, rec := range records {
		if DeriveID(idOf(rec)) == legacyID {
			if matches == 0 {
				found = idOf(rec)
			}
			matches++
		}
	}
	if matches > 1 {
		slog.Warn("legacy id collision detected",
			"legacy_id", legacyID,
			"matches", matches,
			"resolved", found,
		)
	}
	return found, matches > 0
}

// findByLegacyID resolves legacyID against records and returns a pointer to
// the matching record itself. Shared by every per-entity resolve path in the
// Service.
func findByLegacyID[T any](legacyID int64, records []T, idOf func(T) uuid.UUID) (*T, bool) {
	id, ok := Resolve(legacyID, records, idOf)
	if !ok {
		return nil, false
	}
	for i := range records {
		if idOf(records[i]) == id {
			return &records[i], true
		}
	}
	return nil, false
}
