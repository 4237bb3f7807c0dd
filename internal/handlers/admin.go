// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"rtaweb/internal/importer"
	"rtaweb/internal/legacy"
	"rtaweb/internal/models"
	"rtaweb/internal/storage"
	"rtaweb/internal/store"
)

// Admin groups the admin API handlers and their dependencies. All admin
// responses use the legacy camelCase shape with derived numeric IDs.
type Admin struct {
	svc           *legacy.Service
	importer      *importer.Importer
	storageClient *storage.Client

	// native stores used only for dashboard stats
	clients  *store.ClientStore
	posts    *store.BlogPostStore
	contacts *store.ContactStore
}

// NewAdmin creates the admin handler group. storageClient may be nil when
// object storage is not configured (uploads return 503).
func NewAdmin(svc *legacy.Service, imp *importer.Importer, storageClient *storage.Client, clients *store.ClientStore, posts *store.BlogPostStore, contacts *store.ContactStore) *Admin {
	return &Admin{
		svc:           svc,
		importer:      imp,
		storageClient: storageClient,
		clients:       clients,
		posts:         posts,
		contacts:      contacts,
	}
}

// Stats returns dashboard counters for the admin panel.
func (a *Admin) Stats(w http.ResponseWriter, r *http.Request) {
	activeClients, _ := a.clients.Count(true)
	totalClients, _ := a.clients.Count(false)
	postCount, _ := a.posts.Count()
	newSubmissions, _ := a.contacts.Count(models.SubmissionNew)

	writeJSON(w, http.StatusOK, map[string]int{
		"activeClients":  activeClients,
		"totalClients":   totalClients,
		"blogPosts":      postCount,
		"newSubmissions": newSubmissions,
	})
}
