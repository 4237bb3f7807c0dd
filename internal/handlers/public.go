// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"rtaweb/internal/cache"
	"rtaweb/internal/legacy"
	"rtaweb/internal/markdown"
	"rtaweb/internal/models"
	"rtaweb/internal/store"
)

// Public groups the JSON handlers for the public website. Blog responses
// go through the Valkey page cache: the handler checks the cache before
// hitting PostgreSQL and stores the rendered JSON on miss. Write paths in
// the admin API invalidate the affected keys.
type Public struct {
	svc       *legacy.Service
	posts     *store.BlogPostStore
	clients   *store.ClientStore
	faqs      *store.FAQStore
	forms     *store.FormStore
	logos     *store.LogoStore
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(svc *legacy.Service, posts *store.BlogPostStore, clients *store.ClientStore, faqs *store.FAQStore, forms *store.FormStore, logos *store.LogoStore, pageCache *cache.PageCache) *Public {
	return &Public{
		svc:       svc,
		posts:     posts,
		clients:   clients,
		faqs:      faqs,
		forms:     forms,
		logos:     logos,
		pageCache: pageCache,
	}
}

// blogListItem is the public shape of a post in the blog index. The body
// is omitted to keep the index payload small.
type blogListItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Author      string     `json:"author"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Views       int        `json:"views"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// blogDetail is the public shape of a single post, with the markdown body
// rendered to HTML.
type blogDetail struct {
	blogListItem
	HTML string `json:"html"`
}

// BlogIndex returns all published posts, newest first.
func (p *Public) BlogIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, cache.BlogIndexKey()); ok {
		writeCachedJSON(w, cached)
		return
	}

	posts, err := p.posts.List(true)
	if err != nil {
		slog.Error("list published posts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	items := make([]blogListItem, 0, len(posts))
	for i := range posts {
		items = append(items, publicListItem(&posts[i]))
	}

	body, err := json.Marshal(items)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	p.pageCache.Set(ctx, cache.BlogIndexKey(), body)
	writeCachedJSON(w, body)
}

// BlogPost returns a single published post by slug with its body rendered
// to HTML, and counts the view. The view counter increments on every
// request, cached responses included, so the cache stores the payload but
// not the side effect.
func (p *Public) BlogPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if cached, ok := p.pageCache.Get(ctx, cache.BlogPostKey(slugParam)); ok {
		p.countView(slugParam)
		writeCachedJSON(w, cached)
		return
	}

	post, err := p.posts.FindPublishedBySlug(slugParam)
	if err != nil {
		slog.Error("find post by slug failed", "error", err, "slug", slugParam)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "Post not found.")
		return
	}

	html, err := markdown.ToHTML(post.Body)
	if err != nil {
		slog.Error("markdown render failed", "error", err, "slug", slugParam)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	detail := blogDetail{blogListItem: publicListItem(post), HTML: html}
	body, err := json.Marshal(detail)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	p.pageCache.Set(ctx, cache.BlogPostKey(slugParam), body)

	if err := p.posts.IncrementViews(post.ID); err != nil {
		slog.Warn("increment views failed", "error", err, "slug", slugParam)
	}
	writeCachedJSON(w, body)
}

// countView bumps the view counter for a cached post without re-rendering.
func (p *Public) countView(slugParam string) {
	post, err := p.posts.FindPublishedBySlug(slugParam)
	if err != nil || post == nil {
		return
	}
	if err := p.posts.IncrementViews(post.ID); err != nil {
		slog.Warn("increment views failed", "error", err, "slug", slugParam)
	}
}

// FAQs returns all active FAQs in manual order.
func (p *Public) FAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := p.faqs.List(true)
	if err != nil {
		slog.Error("list faqs failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, faqs)
}

// Clients returns all active serviced companies.
func (p *Public) Clients(w http.ResponseWriter, r *http.Request) {
	clients, err := p.clients.List(true)
	if err != nil {
		slog.Error("list clients failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

// formCategoryView is a category with its downloadable forms nested.
type formCategoryView struct {
	models.FormCategory
	Forms []models.Form `json:"forms"`
}

// Forms returns all form categories with their forms nested, both in
// manual order.
func (p *Public) Forms(w http.ResponseWriter, r *http.Request) {
	cats, err := p.forms.ListCategories()
	if err != nil {
		slog.Error("list form categories failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	views := make([]formCategoryView, 0, len(cats))
	for _, cat := range cats {
		forms, err := p.forms.ListFormsByCategory(cat.ID)
		if err != nil {
			slog.Error("list forms failed", "error", err, "category", cat.ID)
			forms = nil
		}
		if forms == nil {
			forms = []models.Form{}
		}
		views = append(views, formCategoryView{FormCategory: cat, Forms: forms})
	}
	writeJSON(w, http.StatusOK, views)
}

// Logos returns all active client logos in manual order.
func (p *Public) Logos(w http.ResponseWriter, r *http.Request) {
	logos, err := p.logos.List(true)
	if err != nil {
		slog.Error("list logos failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, logos)
}

// ContactSubmit accepts a contact form submission. Opting into the
// newsletter subscribes the address as a side effect; a newsletter
// failure never fails the submission.
func (p *Public) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	var in legacy.ContactInput
	if !decodeBody(w, r, &in) {
		return
	}
	if msg := validateContact(in.Name, in.Email, in.Message); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	sub := p.svc.CreateSubmission(in)
	if sub == nil {
		writeError(w, http.StatusInternalServerError, "Could not save your message. Please retry.")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": sub.ID})
}

// NewsletterSubscribe adds an email to the newsletter list. Re-subscribing
// a known address reactivates it.
func (p *Public) NewsletterSubscribe(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email  string `json:"email"`
		Source string `json:"source"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if !validEmail(body.Email) {
		writeError(w, http.StatusBadRequest, "A valid email address is required.")
		return
	}
	sub := p.svc.Subscribe(body.Email, body.Source)
	if sub == nil {
		writeError(w, http.StatusInternalServerError, "Could not subscribe. Please retry.")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true})
}

// publicListItem maps a stored post to its public index shape.
func publicListItem(post *models.BlogPost) blogListItem {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	return blogListItem{
		ID:          post.ID.String(),
		Title:       post.Title,
		Slug:        post.Slug,
		Excerpt:     post.Excerpt,
		Author:      post.Author,
		Category:    post.Category,
		Tags:        tags,
		ImageURL:    post.ImageURL,
		Views:       post.Views,
		PublishedAt: post.PublishedAt,
	}
}

// writeCachedJSON writes a pre-marshaled JSON body.
func writeCachedJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
