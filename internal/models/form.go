// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// FormCategory groups downloadable forms on the public downloads page.
// Icon and Gradient are presentation tags interpreted by the UI.
type FormCategory struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Gradient    string    `json:"gradient"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Form is a downloadable document (PDF, DOC, ...) belonging to a category.
// FileURL points into object storage; deleting a form attempts a best-effort
// deletion of the underlying stored file.
type Form struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	FileType   string    `json:"file_type"`
	FileSize   string    `json:"file_size"`
	FileURL    string    `json:"file_url"`
	CategoryID uuid.UUID `json:"category_id"`
	SortOrder  int       `json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
