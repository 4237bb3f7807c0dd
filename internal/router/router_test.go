// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint. Handlers are wired with nil stores; the
// tests only touch routes that never reach them.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rtaweb/internal/handlers"
)

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestRouterHealthRoute(t *testing.T) {
	admin := handlers.NewAdmin(nil, nil, nil, nil, nil, nil)
	public := handlers.NewPublic(nil, nil, nil, nil, nil, nil, nil)
	r := New(admin, public, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /health: got %d, want 200", w.Code)
	}
}

func TestRouterAdminAPIDisabledWithoutHash(t *testing.T) {
	admin := handlers.NewAdmin(nil, nil, nil, nil, nil, nil)
	public := handlers.NewPublic(nil, nil, nil, nil, nil, nil, nil)
	r := New(admin, public, "")

	// With no token hash configured the whole admin surface answers 503
	// before any handler runs.
	for _, path := range []string{"/admin/api/stats", "/admin/api/clients/", "/admin/api/posts/"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", path, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("GET %s: got %d, want 503", path, w.Code)
		}
	}
}

func TestRouterAdminAPIRequiresToken(t *testing.T) {
	admin := handlers.NewAdmin(nil, nil, nil, nil, nil, nil)
	public := handlers.NewPublic(nil, nil, nil, nil, nil, nil, nil)
	// A syntactically valid bcrypt hash; no request carries the matching
	// token, so everything must bounce at the middleware.
	r := New(admin, public, "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/api/stats", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: got %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/admin/api/stats", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong token: got %d, want 401", w.Code)
	}
}
