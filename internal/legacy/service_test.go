// service_test.go exercises the legacy-shaped CRUD paths against a real
// database. Tests are skipped if PostgreSQL is not available. The service
// is wired without a page cache or storage client, which both paths treat
// as disabled.
package legacy

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"rtaweb/internal/database"
	"rtaweb/internal/store"
)

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "rtaweb")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "rtaweb")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testService builds a Service against the test database, without cache or
// storage. Skips when PostgreSQL is unreachable.
func testService(t *testing.T) (*Service, *sql.DB) {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)
	t.Cleanup(func() { db.Close() })

	svc := NewService(
		store.NewClientStore(db),
		store.NewBlogPostStore(db),
		store.NewFAQStore(db),
		store.NewContactStore(db),
		store.NewNewsletterStore(db),
		store.NewFormStore(db),
		store.NewLogoStore(db),
		nil, nil,
	)
	return svc, db
}

func TestClientCreateResolveRoundTrip(t *testing.T) {
	svc, db := testService(t)

	company := "Legacy Roundtrip Co " + uuid.NewString()[:8]
	t.Cleanup(func() { db.Exec("DELETE FROM clients WHERE company_name = $1", company) })

	created := svc.CreateClient(ClientInput{
		SerialNumber: 2001,
		CompanyName:  company,
		SecurityType: "EQUITY",
		ISINCode:     "INE000L02001",
	})
	if created == nil {
		t.Fatal("CreateClient returned nil")
	}
	if created.ID <= 0 {
		t.Fatalf("derived ID should be positive, got %d", created.ID)
	}

	// The derived numeric ID resolves back to the same record.
	got := svc.GetClient(created.ID)
	if got == nil {
		t.Fatal("GetClient returned nil for a just-created record")
	}
	if got.CompanyName != company {
		t.Errorf("company: got %q, want %q", got.CompanyName, company)
	}

	// The record appears exactly once in the listing.
	var count int
	for _, c := range svc.ListClients(false) {
		if c.ID == created.ID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("listing contains the record %d times, want 1", count)
	}
}

func TestClientPartialUpdate(t *testing.T) {
	svc, db := testService(t)

	company := "Legacy Patch Co " + uuid.NewString()[:8]
	t.Cleanup(func() { db.Exec("DELETE FROM clients WHERE company_name = $1", company) })

	created := svc.CreateClient(ClientInput{
		SerialNumber: 2002,
		CompanyName:  company,
		SecurityType: "PREFERENCE",
		ISINCode:     "INE000L02002",
	})
	if created == nil {
		t.Fatal("CreateClient returned nil")
	}

	// Patch only the ISIN; everything else must survive.
	isin := "INE000L09999"
	updated := svc.UpdateClient(created.ID, ClientPatch{ISINCode: &isin})
	if updated == nil {
		t.Fatal("UpdateClient returned nil")
	}
	if updated.ISINCode != isin {
		t.Errorf("isin: got %q, want %q", updated.ISINCode, isin)
	}
	if updated.SecurityType != "PREFERENCE" {
		t.Errorf("untouched field changed: security type %q", updated.SecurityType)
	}
	if updated.SerialNumber != 2002 {
		t.Errorf("untouched field changed: serial %d", updated.SerialNumber)
	}
}

func TestClientUnresolvedOperations(t *testing.T) {
	svc, _ := testService(t)

	// A legacy ID that cannot exist (DeriveID never goes negative).
	if got := svc.GetClient(-42); got != nil {
		t.Error("GetClient should return nil for an unresolvable ID")
	}
	company := "Ghost"
	if got := svc.UpdateClient(-42, ClientPatch{CompanyName: &company}); got != nil {
		t.Error("UpdateClient should return nil for an unresolvable ID")
	}
	if svc.DeleteClient(-42) {
		t.Error("DeleteClient should return false for an unresolvable ID")
	}
}

func TestClientSoftDeleteStaysResolvable(t *testing.T) {
	svc, db := testService(t)

	company := "Legacy SoftDel Co " + uuid.NewString()[:8]
	t.Cleanup(func() { db.Exec("DELETE FROM clients WHERE company_name = $1", company) })

	created := svc.CreateClient(ClientInput{
		SerialNumber: 2003,
		CompanyName:  company,
		SecurityType: "EQUITY",
		ISINCode:     "INE000L02003",
	})
	if created == nil {
		t.Fatal("CreateClient returned nil")
	}

	if !svc.DeleteClient(created.ID) {
		t.Fatal("DeleteClient returned false")
	}

	// Soft-deleted: gone from the active listing, still resolvable by ID.
	for _, c := range svc.ListClients(true) {
		if c.ID == created.ID {
			t.Error("active listing should exclude the soft-deleted client")
		}
	}
	got := svc.GetClient(created.ID)
	if got == nil {
		t.Fatal("soft-deleted client should still resolve by legacy ID")
	}
	if got.IsActive {
		t.Error("soft-deleted client should report inactive")
	}
}

func TestPostUpsertBySlugIdempotent(t *testing.T) {
	svc, db := testService(t)
	ctx := context.Background()

	slug := "legacy-upsert-" + uuid.NewString()[:8]
	t.Cleanup(func() { db.Exec("DELETE FROM blog_posts WHERE slug = $1", slug) })

	published := true
	first := svc.UpsertPostBySlug(ctx, PostInput{
		Title:     "Upsert Once",
		Slug:      slug,
		Content:   "v1",
		Published: &published,
	})
	if first == nil {
		t.Fatal("first upsert returned nil")
	}

	// Bump the view counter so the second upsert has something to preserve.
	if got := svc.GetPost(first.ID); got == nil {
		t.Fatal("GetPost returned nil")
	}
	db.Exec("UPDATE blog_posts SET views = 9 WHERE slug = $1", slug)

	second := svc.UpsertPostBySlug(ctx, PostInput{
		Title:     "Upsert Twice",
		Slug:      slug,
		Content:   "v2",
		Published: &published,
	})
	if second == nil {
		t.Fatal("second upsert returned nil")
	}
	if second.ID != first.ID {
		t.Error("upsert should update the existing post, not create a new one")
	}
	if second.Title != "Upsert Twice" || second.Content != "v2" {
		t.Errorf("second upsert did not apply: %+v", second)
	}
	if second.Views != 9 {
		t.Errorf("views should survive the upsert: got %d, want 9", second.Views)
	}

	// Exactly one post carries the slug.
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM blog_posts WHERE slug = $1", slug).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("posts with slug: got %d, want 1", n)
	}
}

func TestPostPublishedFlagPrecedence(t *testing.T) {
	svc, db := testService(t)
	ctx := context.Background()

	slug := "legacy-flag-" + uuid.NewString()[:8]
	t.Cleanup(func() { db.Exec("DELETE FROM blog_posts WHERE slug = $1", slug) })

	// Published=false wins over a conflicting status string.
	notPublished := false
	post := svc.CreatePost(ctx, PostInput{
		Title:     "Flag Precedence",
		Slug:      slug,
		Published: &notPublished,
		Status:    "published",
	})
	if post == nil {
		t.Fatal("CreatePost returned nil")
	}
	if post.Published {
		t.Error("published flag should take precedence over the status string")
	}
	if post.Status != "draft" {
		t.Errorf("status: got %q, want draft", post.Status)
	}
}

func TestContactSubmissionNewsletterChain(t *testing.T) {
	svc, db := testService(t)

	email := "legacy-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() {
		db.Exec("DELETE FROM contact_submissions WHERE email = $1", email)
		db.Exec("DELETE FROM newsletter_subscriptions WHERE email = $1", email)
	})

	sub := svc.CreateSubmission(ContactInput{
		Name:       "Test Person",
		Email:      email,
		Message:    "Please call back",
		Newsletter: true,
	})
	if sub == nil {
		t.Fatal("CreateSubmission returned nil")
	}
	if sub.Status != "new" {
		t.Errorf("status: got %q, want new", sub.Status)
	}

	// The opt-in subscribed the address as a side effect.
	var active bool
	err := db.QueryRow("SELECT is_active FROM newsletter_subscriptions WHERE email = $1", email).Scan(&active)
	if err != nil {
		t.Fatalf("newsletter row missing: %v", err)
	}
	if !active {
		t.Error("opted-in address should be active")
	}
}

func TestSubmissionStatusValidation(t *testing.T) {
	svc, db := testService(t)

	email := "legacy-status-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { db.Exec("DELETE FROM contact_submissions WHERE email = $1", email) })

	sub := svc.CreateSubmission(ContactInput{Name: "T", Email: email, Message: "m"})
	if sub == nil {
		t.Fatal("CreateSubmission returned nil")
	}

	if got := svc.UpdateSubmissionStatus(sub.ID, "responded"); got == nil || got.Status != "responded" {
		t.Errorf("valid transition failed: %+v", got)
	}
	if got := svc.UpdateSubmissionStatus(sub.ID, "archived"); got != nil {
		t.Error("unknown status should be rejected")
	}
}

func TestFormCategoryNesting(t *testing.T) {
	svc, db := testService(t)

	title := "Legacy Nested " + uuid.NewString()[:8]
	t.Cleanup(func() { db.Exec("DELETE FROM form_categories WHERE title = $1", title) })

	cat := svc.CreateFormCategory(FormCategoryInput{Title: title})
	if cat == nil {
		t.Fatal("CreateFormCategory returned nil")
	}

	form := svc.CreateForm(FormInput{
		Name:       "Nomination Form",
		Type:       "PDF",
		CategoryID: cat.ID,
	})
	if form == nil {
		t.Fatal("CreateForm returned nil")
	}
	if form.CategoryID != cat.ID {
		t.Errorf("categoryId: got %d, want %d", form.CategoryID, cat.ID)
	}

	// The listing nests the form under its category.
	var found bool
	for _, c := range svc.ListFormCategories() {
		if c.ID != cat.ID {
			continue
		}
		for _, f := range c.Forms {
			if f.ID == form.ID {
				found = true
			}
		}
	}
	if !found {
		t.Error("form should be nested under its category in the listing")
	}
}
