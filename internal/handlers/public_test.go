// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"rtaweb/internal/models"
)

func TestBlogIndex_ExcludesDrafts(t *testing.T) {
	env := newTestEnv(t)

	suffix := uuid.NewString()[:8]
	pubSlug := "published-" + suffix
	draftSlug := "draft-" + suffix
	t.Cleanup(func() { cleanPosts(t, env.DB, pubSlug, draftSlug) })

	now := time.Now()
	if _, err := env.Posts.Create(&models.BlogPost{
		Title:       "Published " + suffix,
		Slug:        pubSlug,
		Body:        "# Visible",
		Status:      models.PostStatusPublished,
		PublishedAt: &now,
	}); err != nil {
		t.Fatalf("create published post: %v", err)
	}
	if _, err := env.Posts.Create(&models.BlogPost{
		Title:  "Draft " + suffix,
		Slug:   draftSlug,
		Body:   "# Hidden",
		Status: models.PostStatusDraft,
	}); err != nil {
		t.Fatalf("create draft post: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
	rec := httptest.NewRecorder()
	env.Public.BlogIndex(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("BlogIndex: got status %d, want %d", rec.Code, http.StatusOK)
	}

	var items []struct {
		Slug string   `json:"slug"`
		Tags []string `json:"tags"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
		t.Fatalf("BlogIndex: decode: %v", err)
	}

	var sawPublished, sawDraft bool
	for _, it := range items {
		if it.Slug == pubSlug {
			sawPublished = true
			if it.Tags == nil {
				t.Error("BlogIndex: tags should serialize as [] not null")
			}
		}
		if it.Slug == draftSlug {
			sawDraft = true
		}
	}
	if !sawPublished {
		t.Error("BlogIndex: published post missing from listing")
	}
	if sawDraft {
		t.Error("BlogIndex: draft post must not appear in listing")
	}
}

func TestBlogPost_RendersMarkdownAndCountsView(t *testing.T) {
	env := newTestEnv(t)

	slug := "detail-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, env.DB, slug) })

	now := time.Now()
	created, err := env.Posts.Create(&models.BlogPost{
		Title:       "Dematerialisation Explained",
		Slug:        slug,
		Body:        "## Procedure\n\nSubmit the **DRF** form.",
		Status:      models.PostStatusPublished,
		PublishedAt: &now,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/blog/"+slug, nil)
	req = withChiURLParam(req, "slug", slug)
	rec := httptest.NewRecorder()
	env.Public.BlogPost(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("BlogPost: got status %d, want %d", rec.Code, http.StatusOK)
	}

	var detail struct {
		Slug string `json:"slug"`
		HTML string `json:"html"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&detail); err != nil {
		t.Fatalf("BlogPost: decode: %v", err)
	}
	if !strings.Contains(detail.HTML, "<h2") {
		t.Errorf("BlogPost: html should contain rendered heading, got %q", detail.HTML)
	}
	if !strings.Contains(detail.HTML, "<strong>DRF</strong>") {
		t.Errorf("BlogPost: html should contain rendered bold text, got %q", detail.HTML)
	}

	after, err := env.Posts.FindByID(created.ID)
	if err != nil || after == nil {
		t.Fatalf("reload post: %v", err)
	}
	if after.Views != 1 {
		t.Errorf("BlogPost: views = %d, want 1 after a single read", after.Views)
	}
}

func TestBlogPost_UnknownSlug_Returns404(t *testing.T) {
	env := newTestEnv(t)

	slug := "no-such-post-" + uuid.NewString()[:8]
	req := httptest.NewRequest(http.MethodGet, "/api/blog/"+slug, nil)
	req = withChiURLParam(req, "slug", slug)
	rec := httptest.NewRecorder()
	env.Public.BlogPost(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("BlogPost unknown slug: got status %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestContactSubmit_ValidBody_Returns201(t *testing.T) {
	env := newTestEnv(t)

	email := "contact-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM contact_submissions WHERE email = $1", email)
	})

	body := `{"name": "A Shareholder", "email": "` + email + `", "service": "Share Transfer", "message": "Please advise on the transfer procedure."}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.Public.ContactSubmit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("ContactSubmit: got status %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var resp struct {
		Success bool  `json:"success"`
		ID      int64 `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("ContactSubmit: decode: %v", err)
	}
	if !resp.Success || resp.ID <= 0 {
		t.Errorf("ContactSubmit: got success=%v id=%d, want success with positive id", resp.Success, resp.ID)
	}
}

func TestContactSubmit_MissingMessage_Returns400(t *testing.T) {
	env := newTestEnv(t)

	body := `{"name": "A Shareholder", "email": "someone@example.com", "message": ""}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.Public.ContactSubmit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("ContactSubmit missing message: got status %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestNewsletterSubscribe_InvalidEmail_Returns400(t *testing.T) {
	env := newTestEnv(t)

	body := `{"email": "not-an-email", "source": "footer"}`
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.Public.NewsletterSubscribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("NewsletterSubscribe invalid email: got status %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
