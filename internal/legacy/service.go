// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package legacy

import (
	"rtaweb/internal/cache"
	"rtaweb/internal/storage"
	"rtaweb/internal/store"
)

// Service exposes one legacy-shaped CRUD surface per entity. It translates
// between the native store rows and the numeric-ID camelCase view models,
// resolving incoming legacy IDs through the identifier bridge.
//
// Failure semantics: a store error never escapes to callers. Reads degrade
// to an empty slice, writes to nil, deletes to false; the underlying error
// is logged at the point of failure. Consumers render an empty section or
// a retry prompt instead of crashing the request.
//
// Multi-step writes (resolve-then-update, resolve-then-delete) are not
// atomic. A concurrent hard delete between the resolve scan and the write
// can make the write target a row that no longer exists; that is an
// accepted risk at this system's scale.
type Service struct {
	clients    *store.ClientStore
	posts      *store.BlogPostStore
	faqs       *store.FAQStore
	contacts   *store.ContactStore
	newsletter *store.NewsletterStore
	forms      *store.FormStore
	logos      *store.LogoStore

	// pageCache and storageClient are optional; nil disables page
	// invalidation and stored-file cleanup respectively.
	pageCache     *cache.PageCache
	storageClient *storage.Client
}

// NewService creates the legacy data access service. pageCache and
// storageClient may be nil.
func NewService(
	clients *store.ClientStore,
	posts *store.BlogPostStore,
	faqs *store.FAQStore,
	contacts *store.ContactStore,
	newsletter *store.NewsletterStore,
	forms *store.FormStore,
	logos *store.LogoStore,
	pageCache *cache.PageCache,
	storageClient *storage.Client,
) *Service {
	return &Service{
		clients:       clients,
		posts:         posts,
		faqs:          faqs,
		contacts:      contacts,
		newsletter:    newsletter,
		forms:         forms,
		logos:         logos,
		pageCache:     pageCache,
		storageClient: storageClient,
	}
}
