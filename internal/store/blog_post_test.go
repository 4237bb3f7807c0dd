package store

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"rtaweb/internal/models"
)

func TestBlogPostStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)

	slug := "test-create-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, db, slug) })

	now := time.Now()
	created, err := s.Create(&models.BlogPost{
		Title:       "Test Post",
		Slug:        slug,
		Excerpt:     "An excerpt",
		Body:        "## Body",
		Status:      models.PostStatusPublished,
		Author:      "Compliance Desk",
		PublishedAt: &now,
		Category:    "compliance",
		Tags:        []string{"sebi", "demat"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}

	found, err := s.FindBySlug(slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found == nil {
		t.Fatal("expected post, got nil")
	}
	if len(found.Tags) != 2 || found.Tags[0] != "sebi" {
		t.Errorf("tags round-trip: got %v", found.Tags)
	}
	if found.Status != models.PostStatusPublished {
		t.Errorf("status: got %q", found.Status)
	}
}

func TestBlogPostStorePublishedFilter(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)

	slug := "test-draft-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, db, slug) })

	draft, err := s.Create(&models.BlogPost{
		Title:  "Draft Post",
		Slug:   slug,
		Body:   "wip",
		Status: models.PostStatusDraft,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Draft is invisible to the published-only paths.
	found, err := s.FindPublishedBySlug(slug)
	if err != nil {
		t.Fatalf("FindPublishedBySlug: %v", err)
	}
	if found != nil {
		t.Error("draft should not resolve via FindPublishedBySlug")
	}

	published, err := s.List(true)
	if err != nil {
		t.Fatalf("List(true): %v", err)
	}
	for _, p := range published {
		if p.ID == draft.ID {
			t.Error("published list should not contain a draft")
		}
	}

	// But the unfiltered list keeps it.
	all, err := s.List(false)
	if err != nil {
		t.Fatalf("List(false): %v", err)
	}
	var seen bool
	for _, p := range all {
		if p.ID == draft.ID {
			seen = true
		}
	}
	if !seen {
		t.Error("full list should contain the draft")
	}
}

func TestBlogPostStoreUpdate(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)

	slug := "test-update-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, db, slug) })

	created, err := s.Create(&models.BlogPost{
		Title:  "Before",
		Slug:   slug,
		Body:   "before",
		Status: models.PostStatusDraft,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now()
	created.Title = "After"
	created.Status = models.PostStatusPublished
	created.PublishedAt = &now

	updated, err := s.Update(created)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated post, got nil")
	}
	if updated.Title != "After" {
		t.Errorf("title: got %q", updated.Title)
	}
	if updated.PublishedAt == nil {
		t.Error("published_at should be set")
	}
}

func TestBlogPostStoreUpdateMissing(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)

	updated, err := s.Update(&models.BlogPost{
		ID:     uuid.New(),
		Title:  "Ghost",
		Slug:   "ghost",
		Status: models.PostStatusDraft,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestBlogPostStoreIncrementViews(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)

	slug := "test-views-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, db, slug) })

	created, err := s.Create(&models.BlogPost{
		Title:  "Counted",
		Slug:   slug,
		Status: models.PostStatusDraft,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := s.IncrementViews(created.ID); err != nil {
			t.Fatalf("IncrementViews: %v", err)
		}
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Views != 3 {
		t.Errorf("views: got %d, want 3", found.Views)
	}
}

func TestBlogPostStoreDelete(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)

	slug := "test-delete-" + uuid.NewString()[:8]

	created, err := s.Create(&models.BlogPost{
		Title:  "Doomed",
		Slug:   slug,
		Status: models.PostStatusDraft,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found != nil {
		t.Error("deleted post should be gone")
	}
}
