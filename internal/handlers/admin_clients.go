// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"net/http"
	"strings"

	"rtaweb/internal/legacy"
)

// maxImportSize caps the CSV upload size (5 MB, thousands of rows).
const maxImportSize = 5 << 20

// ClientsList returns all clients in legacy shape. ?active=true excludes
// soft-deleted clients.
func (a *Admin) ClientsList(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	writeJSON(w, http.StatusOK, a.svc.ListClients(activeOnly))
}

// ClientGet returns one client by legacy ID.
func (a *Admin) ClientGet(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	client := a.svc.GetClient(id)
	if client == nil {
		writeError(w, http.StatusNotFound, "Client not found.")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// ClientCreate inserts a new client from a legacy-shaped body.
func (a *Admin) ClientCreate(w http.ResponseWriter, r *http.Request) {
	var in legacy.ClientInput
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		writeError(w, http.StatusBadRequest, "Company name is required.")
		return
	}
	client := a.svc.CreateClient(in)
	if client == nil {
		writeError(w, http.StatusInternalServerError, "Could not create client. Please retry.")
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

// ClientUpdate applies a partial legacy-shaped update to a client.
func (a *Admin) ClientUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	var patch legacy.ClientPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	client := a.svc.UpdateClient(id, patch)
	if client == nil {
		writeError(w, http.StatusNotFound, "Client not found.")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// ClientDelete soft-deletes a client by legacy ID.
func (a *Admin) ClientDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	if !a.svc.DeleteClient(id) {
		writeError(w, http.StatusNotFound, "Client not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// ClientsImport bulk-inserts clients from an uploaded CSV file. The import
// is non-transactional; the response reports per-row successes, failures,
// and validation errors so the operator can fix and re-upload just the
// failing rows.
func (a *Admin) ClientsImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize+1024)

	var content string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 5 MB.")
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No file provided.")
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to read file.")
			return
		}
		content = string(data)
	} else {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 5 MB.")
			return
		}
		content = string(data)
	}

	result := a.importer.Import(content)
	writeJSON(w, http.StatusOK, result)
}
