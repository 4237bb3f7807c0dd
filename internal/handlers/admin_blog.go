// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"rtaweb/internal/legacy"
)

// PostsList returns all blog posts in legacy shape. ?published=true limits
// the result to published posts.
func (a *Admin) PostsList(w http.ResponseWriter, r *http.Request) {
	publishedOnly := r.URL.Query().Get("published") == "true"
	writeJSON(w, http.StatusOK, a.svc.ListPosts(publishedOnly))
}

// PostGet returns one blog post by legacy ID.
func (a *Admin) PostGet(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	post := a.svc.GetPost(id)
	if post == nil {
		writeError(w, http.StatusNotFound, "Post not found.")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// PostCreate inserts a new blog post. Publishing invalidates the public
// blog routes.
func (a *Admin) PostCreate(w http.ResponseWriter, r *http.Request) {
	var in legacy.PostInput
	if !decodeBody(w, r, &in) {
		return
	}
	if msg := validatePost(in.Title, in.Slug, in.Content); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	post := a.svc.CreatePost(r.Context(), in)
	if post == nil {
		writeError(w, http.StatusInternalServerError, "Could not create post. Please retry.")
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// PostUpdate applies a partial legacy-shaped update to a blog post.
func (a *Admin) PostUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	var patch legacy.PostPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	post := a.svc.UpdatePost(r.Context(), id, patch)
	if post == nil {
		writeError(w, http.StatusNotFound, "Post not found.")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// PostDelete hard-deletes a blog post by legacy ID.
func (a *Admin) PostDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	if !a.svc.DeletePost(r.Context(), id) {
		writeError(w, http.StatusNotFound, "Post not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// PostUpsert creates or updates a post keyed by slug. Used by the
// revalidation pipeline, which replays the same payload idempotently.
func (a *Admin) PostUpsert(w http.ResponseWriter, r *http.Request) {
	var in legacy.PostInput
	if !decodeBody(w, r, &in) {
		return
	}
	if msg := validatePost(in.Title, in.Slug, in.Content); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	post := a.svc.UpsertPostBySlug(r.Context(), in)
	if post == nil {
		writeError(w, http.StatusInternalServerError, "Could not upsert post. Please retry.")
		return
	}
	writeJSON(w, http.StatusOK, post)
}
