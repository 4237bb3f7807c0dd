package storage

import "testing"

func testClient(t *testing.T, publicURL string) *Client {
	t.Helper()
	c, err := New("https://s3.example.com", "us-east-1", "key", "secret", "site-public", publicURL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c == nil {
		t.Fatal("expected a client")
	}
	return c
}

func TestNewUnconfigured(t *testing.T) {
	c, err := New("", "us-east-1", "", "", "bucket", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c != nil {
		t.Error("missing endpoint/credentials should yield a nil client, not an error")
	}
}

func TestFileURL(t *testing.T) {
	t.Run("path style", func(t *testing.T) {
		c := testClient(t, "")
		got := c.FileURL("uploads/2026/08/doc.pdf")
		want := "https://s3.example.com/site-public/uploads/2026/08/doc.pdf"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("public url", func(t *testing.T) {
		c := testClient(t, "https://cdn.example.com/")
		got := c.FileURL("uploads/2026/08/doc.pdf")
		want := "https://cdn.example.com/uploads/2026/08/doc.pdf"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}

func TestExtractKey(t *testing.T) {
	c := testClient(t, "https://cdn.example.com")

	tests := []struct {
		name    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{
			name:    "cdn url",
			url:     "https://cdn.example.com/uploads/2026/08/doc.pdf",
			wantKey: "uploads/2026/08/doc.pdf",
			wantOK:  true,
		},
		{
			name:    "path-style url",
			url:     "https://s3.example.com/site-public/uploads/logo.png",
			wantKey: "uploads/logo.png",
			wantOK:  true,
		},
		{
			name:   "foreign host",
			url:    "https://elsewhere.example.org/uploads/doc.pdf",
			wantOK: false,
		},
		{
			name:   "wrong bucket",
			url:    "https://s3.example.com/other-bucket/uploads/doc.pdf",
			wantOK: false,
		},
		{
			name:   "empty",
			url:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := c.ExtractKey(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if ok && key != tt.wantKey {
				t.Errorf("key: got %q, want %q", key, tt.wantKey)
			}
		})
	}
}

func TestRoundTripURLToKey(t *testing.T) {
	c := testClient(t, "")
	key := "uploads/2026/08/form.pdf"
	got, ok := c.ExtractKey(c.FileURL(key))
	if !ok || got != key {
		t.Errorf("round trip: got (%q, %v), want (%q, true)", got, ok, key)
	}
}
