// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"rtaweb/internal/database"
	"rtaweb/internal/importer"
	"rtaweb/internal/legacy"
	"rtaweb/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "rtaweb")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "rtaweb")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds all dependencies for handler integration tests. The page
// cache and object storage stay nil; handlers treat both as optional.
type testEnv struct {
	DB      *sql.DB
	Clients *store.ClientStore
	Posts   *store.BlogPostStore
	Service *legacy.Service
	Admin   *Admin
	Public  *Public
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)

	clientStore := store.NewClientStore(db)
	postStore := store.NewBlogPostStore(db)
	faqStore := store.NewFAQStore(db)
	contactStore := store.NewContactStore(db)
	newsletterStore := store.NewNewsletterStore(db)
	formStore := store.NewFormStore(db)
	logoStore := store.NewLogoStore(db)

	svc := legacy.NewService(clientStore, postStore, faqStore, contactStore,
		newsletterStore, formStore, logoStore, nil, nil)
	imp := importer.New(clientStore)

	admin := NewAdmin(svc, imp, nil, clientStore, postStore, contactStore)
	public := NewPublic(svc, postStore, clientStore, faqStore, formStore, logoStore, nil)

	return &testEnv{
		DB:      db,
		Clients: clientStore,
		Posts:   postStore,
		Service: svc,
		Admin:   admin,
		Public:  public,
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// cleanClients removes test clients by company name.
func cleanClients(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, n := range names {
		db.Exec("DELETE FROM clients WHERE company_name = $1", n)
	}
}

// cleanPosts removes test posts by slug.
func cleanPosts(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, s := range slugs {
		db.Exec("DELETE FROM blog_posts WHERE slug = $1", s)
	}
}
