// Package router sets up all HTTP routes and middleware chains for the
// site backend. It organizes routes into a public JSON API and a
// token-protected admin API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"rtaweb/internal/handlers"
	"rtaweb/internal/middleware"
)

// submitLimit caps public form submissions per client IP. Ten submissions
// per minute is generous for a human and tight for a bot.
const (
	submitLimit  = 10
	submitWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. adminTokenHash is the bcrypt hash the admin
// API authenticates against; empty disables the admin API.
func New(admin *handlers.Admin, public *handlers.Public, adminTokenHash string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Public JSON API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/blog", public.BlogIndex)
		r.Get("/blog/{slug}", public.BlogPost)
		r.Get("/faqs", public.FAQs)
		r.Get("/clients", public.Clients)
		r.Get("/forms", public.Forms)
		r.Get("/logos", public.Logos)

		// Submission endpoints are rate limited per client IP.
		r.Group(func(r chi.Router) {
			limiter := middleware.NewRateLimiter(submitLimit, submitWindow)
			r.Use(limiter.Middleware)
			r.Post("/contact", public.ContactSubmit)
			r.Post("/newsletter", public.NewsletterSubscribe)
		})
	})

	// Admin API — bearer-token protected, legacy-shaped responses.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(adminTokenHash))

		r.Get("/stats", admin.Stats)

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", admin.ClientsList)
			r.Post("/", admin.ClientCreate)
			r.Post("/import", admin.ClientsImport)
			r.Get("/{id}", admin.ClientGet)
			r.Put("/{id}", admin.ClientUpdate)
			r.Delete("/{id}", admin.ClientDelete)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", admin.PostsList)
			r.Post("/", admin.PostCreate)
			r.Post("/upsert", admin.PostUpsert)
			r.Get("/{id}", admin.PostGet)
			r.Put("/{id}", admin.PostUpdate)
			r.Delete("/{id}", admin.PostDelete)
		})

		r.Route("/faqs", func(r chi.Router) {
			r.Get("/", admin.FAQsList)
			r.Post("/", admin.FAQCreate)
			r.Put("/{id}", admin.FAQUpdate)
			r.Delete("/{id}", admin.FAQDelete)
		})

		r.Route("/form-categories", func(r chi.Router) {
			r.Get("/", admin.FormCategoriesList)
			r.Post("/", admin.FormCategoryCreate)
			r.Put("/{id}", admin.FormCategoryUpdate)
			r.Delete("/{id}", admin.FormCategoryDelete)
		})

		r.Route("/forms", func(r chi.Router) {
			r.Post("/", admin.FormCreate)
			r.Put("/{id}", admin.FormUpdate)
			r.Delete("/{id}", admin.FormDelete)
		})

		r.Route("/logos", func(r chi.Router) {
			r.Get("/", admin.LogosList)
			r.Post("/", admin.LogoCreate)
			r.Put("/{id}", admin.LogoUpdate)
			r.Delete("/{id}", admin.LogoDelete)
		})

		r.Route("/submissions", func(r chi.Router) {
			r.Get("/", admin.SubmissionsList)
			r.Put("/{id}/status", admin.SubmissionStatusUpdate)
			r.Delete("/{id}", admin.SubmissionDelete)
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/", admin.SubscriptionsList)
			r.Delete("/{id}", admin.SubscriptionDelete)
		})

		r.Route("/uploads", func(r chi.Router) {
			r.Post("/", admin.FileUpload)
			r.Delete("/", admin.FileDelete)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
