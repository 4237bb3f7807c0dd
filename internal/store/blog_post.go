// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rtaweb/internal/models"
)

// BlogPostStore handles all blog post database operations.
type BlogPostStore struct {
	db *sql.DB
}

// NewBlogPostStore creates a new BlogPostStore with the given database connection.
func NewBlogPostStore(db *sql.DB) *BlogPostStore {
	return &BlogPostStore{db: db}
}

const blogPostColumns = `id, title, slug, excerpt, body, status, author,
       published_at, category, views, tags, image_url, created_at, updated_at`

func scanBlogPost(row interface{ Scan(...any) error }, p *models.BlogPost) error {
	var tags string
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Body, &p.Status, &p.Author,
		&p.PublishedAt, &p.Category, &p.Views, &tags, &p.ImageURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	p.Tags = splitTags(tags)
	return nil
}

// joinTags serializes a tag list into the comma-separated column format.
func joinTags(tags []string) string {
	var clean []string
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, ",")
}

// splitTags deserializes the comma-separated tags column.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// List returns all blog posts ordered by publish date (newest first), with
// unpublished posts sorted by creation date. When publishedOnly is set, only
// published posts are returned.
func (s *BlogPostStore) List(publishedOnly bool) ([]models.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts ORDER BY created_at DESC`
	if publishedOnly {
		query = `SELECT ` + blogPostColumns + ` FROM blog_posts
			WHERE status = 'published' ORDER BY published_at DESC NULLS LAST`
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var items []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		if err := scanBlogPost(rows, &p); err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// FindByID retrieves a blog post by its UUID. Returns nil if not found.
func (s *BlogPostStore) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	err := scanBlogPost(s.db.QueryRow(`SELECT `+blogPostColumns+` FROM blog_posts WHERE id = $1`, id), p)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a blog post by its slug regardless of status.
// When multiple rows share a slug the most recently created wins.
func (s *BlogPostStore) FindBySlug(slug string) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	err := scanBlogPost(s.db.QueryRow(`
		SELECT `+blogPostColumns+` FROM blog_posts
		WHERE slug = $1 ORDER BY created_at DESC LIMIT 1
	`, slug), p)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post by slug: %w", err)
	}
	return p, nil
}

// FindPublishedBySlug retrieves a published blog post by slug for public
// rendering. Returns nil if not found or not published.
func (s *BlogPostStore) FindPublishedBySlug(slug string) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	err := scanBlogPost(s.db.QueryRow(`
		SELECT `+blogPostColumns+` FROM blog_posts
		WHERE slug = $1 AND status = 'published'
		ORDER BY published_at DESC NULLS LAST LIMIT 1
	`, slug), p)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find published blog post: %w", err)
	}
	return p, nil
}

// Create inserts a new blog post and returns it with the generated ID.
// Publishing without an explicit date stamps published_at with now.
func (s *BlogPostStore) Create(p *models.BlogPost) (*models.BlogPost, error) {
	if p.Status == models.PostStatusPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	result := &models.BlogPost{}
	err := scanBlogPost(s.db.QueryRow(`
		INSERT INTO blog_posts (title, slug, excerpt, body, status, author,
		                        published_at, category, views, tags, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+blogPostColumns,
		p.Title, p.Slug, p.Excerpt, p.Body, p.Status, p.Author,
		p.PublishedAt, p.Category, p.Views, joinTags(p.Tags), p.ImageURL,
	), result)
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return result, nil
}

// Update modifies an existing blog post and stamps updated_at.
func (s *BlogPostStore) Update(p *models.BlogPost) (*models.BlogPost, error) {
	if p.Status == models.PostStatusPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	result := &models.BlogPost{}
	err := scanBlogPost(s.db.QueryRow(`
		UPDATE blog_posts SET
			title = $1, slug = $2, excerpt = $3, body = $4, status = $5,
			author = $6, published_at = $7, category = $8, tags = $9,
			image_url = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING `+blogPostColumns,
		p.Title, p.Slug, p.Excerpt, p.Body, p.Status, p.Author,
		p.PublishedAt, p.Category, joinTags(p.Tags), p.ImageURL, p.ID,
	), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update blog post: %w", err)
	}
	return result, nil
}

// Delete removes a blog post by ID.
func (s *BlogPostStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	return nil
}

// IncrementViews bumps the view counter for a post. Lost increments under
// concurrent reads are acceptable; the counter is informational.
func (s *BlogPostStore) IncrementViews(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE blog_posts SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment blog post views: %w", err)
	}
	return nil
}

// Count returns the number of blog posts.
func (s *BlogPostStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM blog_posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return count, nil
}
