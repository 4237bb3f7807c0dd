// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package legacy

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rtaweb/internal/cache"
	"rtaweb/internal/models"
	"rtaweb/internal/slug"
)

// PostInput is the legacy-shaped payload for creating or upserting a post.
// An empty slug is derived from the title. Published takes precedence over
// Status when both are supplied, matching how the old admin UI submits.
type PostInput struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Published *bool    `json:"published,omitempty"`
	Status    string   `json:"status,omitempty"`
	Author    string   `json:"author"`
	Date      string   `json:"date,omitempty"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Image     string   `json:"image,omitempty"`
}

// PostPatch is the legacy-shaped partial update for a post.
type PostPatch struct {
	Title     *string   `json:"title,omitempty"`
	Slug      *string   `json:"slug,omitempty"`
	Excerpt   *string   `json:"excerpt,omitempty"`
	Content   *string   `json:"content,omitempty"`
	Published *bool     `json:"published,omitempty"`
	Status    *string   `json:"status,omitempty"`
	Author    *string   `json:"author,omitempty"`
	Date      *string   `json:"date,omitempty"`
	Category  *string   `json:"category,omitempty"`
	Tags      *[]string `json:"tags,omitempty"`
	Image     *string   `json:"image,omitempty"`
}

// status derives the native status enum from the legacy input, where a bare
// published boolean is still the common way old callers express state.
func (in *PostInput) status() models.PostStatus {
	if in.Published != nil {
		if *in.Published {
			return models.PostStatusPublished
		}
		return models.PostStatusDraft
	}
	switch models.PostStatus(in.Status) {
	case models.PostStatusPublished, models.PostStatusDraft, models.PostStatusScheduled:
		return models.PostStatus(in.Status)
	}
	return models.PostStatusDraft
}

// ListPosts returns all posts in legacy shape, optionally published only.
func (s *Service) ListPosts(publishedOnly bool) []BlogPost {
	rows, err := s.posts.List(publishedOnly)
	if err != nil {
		slog.Error("legacy list posts failed", "error", err)
		return []BlogPost{}
	}
	items := make([]BlogPost, 0, len(rows))
	for i := range rows {
		items = append(items, *toBlogPost(&rows[i]))
	}
	return items
}

// GetPost resolves a legacy ID and returns the post, or nil.
func (s *Service) GetPost(legacyID int64) *BlogPost {
	row, ok := s.resolvePost(legacyID)
	if !ok {
		return nil
	}
	return toBlogPost(row)
}

// CreatePost inserts a new post from legacy input. A published post
// invalidates the public blog routes it affects.
func (s *Service) CreatePost(ctx context.Context, in PostInput) *BlogPost {
	row, err := s.posts.Create(s.postFromInput(in))
	if err != nil {
		slog.Error("legacy create post failed", "error", err)
		return nil
	}
	if row.IsPublished() {
		s.invalidateBlog(ctx, row.Slug)
	}
	return toBlogPost(row)
}

// UpdatePost resolves a legacy ID, applies the non-nil patch fields, and
// returns the updated post. Public blog routes are invalidated whenever the
// post is or was publicly visible, covering slug changes and unpublishing.
func (s *Service) UpdatePost(ctx context.Context, legacyID int64, patch PostPatch) *BlogPost {
	row, ok := s.resolvePost(legacyID)
	if !ok {
		return nil
	}
	wasPublished := row.IsPublished()
	oldSlug := row.Slug

	if patch.Title != nil {
		row.Title = *patch.Title
	}
	if patch.Slug != nil {
		row.Slug = *patch.Slug
	}
	if patch.Excerpt != nil {
		row.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		row.Body = *patch.Content
	}
	if patch.Published != nil {
		if *patch.Published {
			row.Status = models.PostStatusPublished
		} else {
			row.Status = models.PostStatusDraft
		}
	} else if patch.Status != nil {
		row.Status = models.PostStatus(*patch.Status)
	}
	if patch.Author != nil {
		row.Author = *patch.Author
	}
	if patch.Date != nil {
		row.PublishedAt = parseLegacyDate(*patch.Date)
	}
	if patch.Category != nil {
		row.Category = *patch.Category
	}
	if patch.Tags != nil {
		row.Tags = *patch.Tags
	}
	if patch.Image != nil {
		if *patch.Image == "" {
			row.ImageURL = nil
		} else {
			row.ImageURL = patch.Image
		}
	}

	updated, err := s.posts.Update(row)
	if err != nil || updated == nil {
		slog.Error("legacy update post failed", "legacy_id", legacyID, "error", err)
		return nil
	}
	if wasPublished || updated.IsPublished() {
		s.invalidateBlog(ctx, oldSlug, updated.Slug)
	}
	return toBlogPost(updated)
}

// DeletePost hard-deletes the post for a legacy ID. Returns false when the
// ID does not resolve.
func (s *Service) DeletePost(ctx context.Context, legacyID int64) bool {
	row, ok := s.resolvePost(legacyID)
	if !ok {
		return false
	}
	if err := s.posts.Delete(row.ID); err != nil {
		slog.Error("legacy delete post failed", "legacy_id", legacyID, "error", err)
		return false
	}
	if row.IsPublished() {
		s.invalidateBlog(ctx, row.Slug)
	}
	return true
}

// UpsertPostBySlug creates the post when its slug is unknown and updates the
// existing row otherwise, so revalidation callers can replay the same
// payload any number of times without duplicating posts.
func (s *Service) UpsertPostBySlug(ctx context.Context, in PostInput) *BlogPost {
	target := s.postFromInput(in)

	existing, err := s.posts.FindBySlug(target.Slug)
	if err != nil {
		slog.Error("legacy upsert post lookup failed", "slug", target.Slug, "error", err)
		return nil
	}

	var row *models.BlogPost
	if existing == nil {
		row, err = s.posts.Create(target)
	} else {
		target.ID = existing.ID
		target.Views = existing.Views
		row, err = s.posts.Update(target)
	}
	if err != nil || row == nil {
		slog.Error("legacy upsert post failed", "slug", target.Slug, "error", err)
		return nil
	}
	if row.IsPublished() || (existing != nil && existing.IsPublished()) {
		s.invalidateBlog(ctx, row.Slug)
	}
	return toBlogPost(row)
}

// postFromInput maps legacy input to a native row, deriving slug and status.
func (s *Service) postFromInput(in PostInput) *models.BlogPost {
	postSlug := in.Slug
	if postSlug == "" {
		postSlug = slug.Generate(in.Title)
	}
	var image *string
	if in.Image != "" {
		image = &in.Image
	}
	return &models.BlogPost{
		Title:       in.Title,
		Slug:        postSlug,
		Excerpt:     in.Excerpt,
		Body:        in.Content,
		Status:      in.status(),
		Author:      in.Author,
		PublishedAt: parseLegacyDate(in.Date),
		Category:    in.Category,
		Tags:        in.Tags,
		ImageURL:    image,
	}
}

// invalidateBlog drops the blog index and the given slug routes from the
// page cache. No-op without a cache.
func (s *Service) invalidateBlog(ctx context.Context, slugs ...string) {
	if s.pageCache == nil {
		return
	}
	keys := []string{cache.BlogIndexKey()}
	seen := map[string]bool{}
	for _, sl := range slugs {
		if sl != "" && !seen[sl] {
			keys = append(keys, cache.BlogPostKey(sl))
			seen[sl] = true
		}
	}
	s.pageCache.Invalidate(ctx, keys...)
}

// parseLegacyDate parses the flattened YYYY-MM-DD publish date. Returns nil
// for an empty or malformed value.
func parseLegacyDate(date string) *time.Time {
	if date == "" {
		return nil
	}
	t, err := time.Parse(legacyDateLayout, date)
	if err != nil {
		return nil
	}
	return &t
}

func (s *Service) resolvePost(legacyID int64) (*models.BlogPost, bool) {
	rows, err := s.posts.List(false)
	if err != nil {
		slog.Error("legacy resolve post failed", "legacy_id", legacyID, "error", err)
		return nil, false
	}
	return findByLegacyID(legacyID, rows, func(p models.BlogPost) uuid.UUID { return p.ID })
}
