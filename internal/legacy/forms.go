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

// FormCategoryInput is the legacy-shaped payload for creating a category.
type FormCategoryInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Gradient    string `json:"gradient"`
	Order       int    `json:"order"`
}

// FormCategoryPatch is the legacy-shaped partial update for a category.
type FormCategoryPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Gradient    *string `json:"gradient,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

// FormInput is the legacy-shaped payload for creating a form. CategoryID is
// the parent category's legacy numeric ID.
type FormInput struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Size       string `json:"size"`
	URL        string `json:"url"`
	CategoryID int64  `json:"categoryId"`
	Order      int    `json:"order"`
}

// FormPatch is the legacy-shaped partial update for a form.
type FormPatch struct {
	Name       *string `json:"name,omitempty"`
	Type       *string `json:"type,omitempty"`
	Size       *string `json:"size,omitempty"`
	URL        *string `json:"url,omitempty"`
	CategoryID *int64  `json:"categoryId,omitempty"`
	Order      *int    `json:"order,omitempty"`
}

// ListFormCategories returns all categories in legacy shape with their
// forms nested, both in manual order. A failure loading the forms of one
// category degrades that category to an empty list, not the whole response.
func (s *Service) ListFormCategories() []FormCategory {
	rows, err := s.forms.ListCategories()
	if err != nil {
		slog.Error("legacy list form categories failed", "error", err)
		return []FormCategory{}
	}

	items := make([]FormCategory, 0, len(rows))
	for i := range rows {
		cat := toFormCategory(&rows[i])
		forms, err := s.forms.ListFormsByCategory(rows[i].ID)
		if err != nil {
			slog.Error("legacy list category forms failed", "category", rows[i].ID, "error", err)
		}
		for j := range forms {
			cat.Forms = append(cat.Forms, *toForm(&forms[j]))
		}
		items = append(items, *cat)
	}
	return items
}

// CreateFormCategory inserts a new category from legacy input.
func (s *Service) CreateFormCategory(in FormCategoryInput) *FormCategory {
	row, err := s.forms.CreateCategory(&models.FormCategory{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Gradient:    in.Gradient,
		SortOrder:   in.Order,
	})
	if err != nil {
		slog.Error("legacy create form category failed", "error", err)
		return nil
	}
	return toFormCategory(row)
}

// UpdateFormCategory resolves a legacy ID and applies the non-nil patch fields.
func (s *Service) UpdateFormCategory(legacyID int64, patch FormCategoryPatch) *FormCategory {
	row, ok := s.resolveFormCategory(legacyID)
	if !ok {
		return nil
	}

	if patch.Title != nil {
		row.Title = *patch.Title
	}
	if patch.Description != nil {
		row.Description = *patch.Description
	}
	if patch.Icon != nil {
		row.Icon = *patch.Icon
	}
	if patch.Gradient != nil {
		row.Gradient = *patch.Gradient
	}
	if patch.Order != nil {
		row.SortOrder = *patch.Order
	}

	updated, err := s.forms.UpdateCategory(row)
	if err != nil || updated == nil {
		slog.Error("legacy update form category failed", "legacy_id", legacyID, "error", err)
		return nil
	}
	return toFormCategory(updated)
}

// DeleteFormCategory hard-deletes the category for a legacy ID; its forms
// cascade at the schema level. Stored files of the cascaded forms are
// cleaned up best-effort first.
func (s *Service) DeleteFormCategory(ctx context.Context, legacyID int64) bool {
	row, ok := s.resolveFormCategory(legacyID)
	if !ok {
		return false
	}

	if forms, err := s.forms.ListFormsByCategory(row.ID); err == nil {
		for i := range forms {
			s.deleteStoredFile(ctx, forms[i].FileURL)
		}
	}

	if err := s.forms.DeleteCategory(row.ID); err != nil {
		slog.Error("legacy delete form category failed", "legacy_id", legacyID, "error", err)
		return false
	}
	return true
}

// CreateForm inserts a new form from legacy input, resolving the parent
// category's legacy ID. Returns nil when the category does not resolve.
func (s *Service) CreateForm(in FormInput) *Form {
	cat, ok := s.resolveFormCategory(in.CategoryID)
	if !ok {
		slog.Warn("legacy create form: unknown category", "category_id", in.CategoryID)
		return nil
	}
	row, err := s.forms.CreateForm(&models.Form{
		Name:       in.Name,
		FileType:   in.Type,
		FileSize:   in.Size,
		FileURL:    in.URL,
		CategoryID: cat.ID,
		SortOrder:  in.Order,
	})
	if err != nil {
		slog.Error("legacy create form failed", "error", err)
		return nil
	}
	return toForm(row)
}

// UpdateForm resolves a legacy ID and applies the non-nil patch fields.
func (s *Service) UpdateForm(legacyID int64, patch FormPatch) *Form {
	row, ok := s.resolveForm(legacyID)
	if !ok {
		return nil
	}

	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.Type != nil {
		row.FileType = *patch.Type
	}
	if patch.Size != nil {
		row.FileSize = *patch.Size
	}
	if patch.URL != nil {
		row.FileURL = *patch.URL
	}
	if patch.CategoryID != nil {
		cat, ok := s.resolveFormCategory(*patch.CategoryID)
		if !ok {
			slog.Warn("legacy update form: unknown category", "category_id", *patch.CategoryID)
			return nil
		}
		row.CategoryID = cat.ID
	}
	if patch.Order != nil {
		row.SortOrder = *patch.Order
	}

	updated, err := s.forms.UpdateForm(row)
	if err != nil || updated == nil {
		slog.Error("legacy update form failed", "legacy_id", legacyID, "error", err)
		return nil
	}
	return toForm(updated)
}

// DeleteForm hard-deletes the form for a legacy ID and attempts a
// best-effort deletion of its stored file. A storage failure does not fail
// the delete.
func (s *Service) DeleteForm(ctx context.Context, legacyID int64) bool {
	row, ok := s.resolveForm(legacyID)
	if !ok {
		return false
	}
	if err := s.forms.DeleteForm(row.ID); err != nil {
		slog.Error("legacy delete form failed", "legacy_id", legacyID, "error", err)
		return false
	}
	s.deleteStoredFile(ctx, row.FileURL)
	return true
}

// deleteStoredFile removes a form's document from object storage when the
// URL belongs to our bucket. Failures are logged and swallowed.
func (s *Service) deleteStoredFile(ctx context.Context, fileURL string) {
	if s.storageClient == nil || fileURL == "" {
		return
	}
	key, ok := s.storageClient.ExtractKey(fileURL)
	if !ok {
		return
	}
	if err := s.storageClient.Delete(ctx, key); err != nil {
		slog.Warn("stored file cleanup failed", "key", key, "error", err)
	}
}

func (s *Service) resolveFormCategory(legacyID int64) (*models.FormCategory, bool) {
	rows, err := s.forms.ListCategories()
	if err != nil {
		slog.Error("legacy resolve form category failed", "legacy_id", legacyID, "error", err)
		return nil, false
	}
	return findByLegacyID(legacyID, rows, func(c models.FormCategory) uuid.UUID { return c.ID })
}

func (s *Service) resolveForm(legacyID int64) (*models.Form, bool) {
	rows, err := s.forms.ListForms()
	if err != nil {
		slog.Error("legacy resolve form failed", "legacy_id", legacyID, "error", err)
		return nil, false
	}
	return findByLegacyID(legacyID, rows, func(f models.Form) uuid.UUID { return f.ID })
}
