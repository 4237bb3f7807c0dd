// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// admin_content.go covers the smaller admin CRUD surfaces: FAQs, form
// categories and forms, client logos, contact submissions, and newsletter
// subscriptions.
package handlers

import (
	"net/http"

	"rtaweb/internal/legacy"
)

// --- FAQs ---

// FAQsList returns all FAQs in legacy shape. ?active=true excludes
// inactive entries.
func (a *Admin) FAQsList(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	writeJSON(w, http.StatusOK, a.svc.ListFAQs(activeOnly))
}

// FAQCreate inserts a new FAQ.
func (a *Admin) FAQCreate(w http.ResponseWriter, r *http.Request) {
	var in legacy.FAQInput
	if !decodeBody(w, r, &in) {
		return
	}
	if in.Question == "" || in.Answer == "" {
		writeError(w, http.StatusBadRequest, "Question and answer are required.")
		return
	}
	faq := a.svc.CreateFAQ(in)
	if faq == nil {
		writeError(w, http.StatusInternalServerError, "Could not create FAQ. Please retry.")
		return
	}
	writeJSON(w, http.StatusCreated, faq)
}

// FAQUpdate applies a partial update to an FAQ.
func (a *Admin) FAQUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	var patch legacy.FAQPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	faq := a.svc.UpdateFAQ(id, patch)
	if faq == nil {
		writeError(w, http.StatusNotFound, "FAQ not found.")
		return
	}
	writeJSON(w, http.StatusOK, faq)
}

// FAQDelete hard-deletes an FAQ by legacy ID.
func (a *Admin) FAQDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	if !a.svc.DeleteFAQ(id) {
		writeError(w, http.StatusNotFound, "FAQ not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// --- Form categories and forms ---

// FormCategoriesList returns all categories with their forms nested.
func (a *Admin) FormCategoriesList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.ListFormCategories())
}

// FormCategoryCreate inserts a new form category.
func (a *Admin) FormCategoryCreate(w http.ResponseWriter, r *http.Request) {
	var in legacy.FormCategoryInput
	if !decodeBody(w, r, &in) {
		return
	}
	if in.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required.")
		return
	}
	cat := a.svc.CreateFormCategory(in)
	if cat == nil {
		writeError(w, http.StatusInternalServerError, "Could not create category. Please retry.")
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}

// FormCategoryUpdate applies a partial update to a form category.
func (a *Admin) FormCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	var patch legacy.FormCategoryPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	cat := a.svc.UpdateFormCategory(id, patch)
	if cat == nil {
		writeError(w, http.StatusNotFound, "Category not found.")
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// FormCategoryDelete hard-deletes a category and its forms (cascade).
func (a *Admin) FormCategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	if !a.svc.DeleteFormCategory(r.Context(), id) {
		writeError(w, http.StatusNotFound, "Category not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// FormCreate inserts a new downloadable form into a category.
func (a *Admin) FormCreate(w http.ResponseWriter, r *http.Request) {
	var in legacy.FormInput
	if !decodeBody(w, r, &in) {
		return
	}
	if in.Name == "" || in.CategoryID == 0 {
		writeError(w, http.StatusBadRequest, "Name and categoryId are required.")
		return
	}
	form := a.svc.CreateForm(in)
	if form == nil {
		writeError(w, http.StatusBadRequest, "Could not create form. Check the category ID and retry.")
		return
	}
	writeJSON(w, http.StatusCreated, form)
}

// FormUpdate applies a partial update to a form.
func (a *Admin) FormUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	var patch legacy.FormPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	form := a.svc.UpdateForm(id, patch)
	if form == nil {
		writeError(w, http.StatusNotFound, "Form not found.")
		return
	}
	writeJSON(w, http.StatusOK, form)
}

// FormDelete hard-deletes a form and best-effort removes its stored file.
func (a *Admin) FormDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	if !a.svc.DeleteForm(r.Context(), id) {
		writeError(w, http.StatusNotFound, "Form not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// --- Client logos ---

// LogosList returns all client logos. ?active=true excludes hidden ones.
func (a *Admin) LogosList(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	writeJSON(w, http.StatusOK, a.svc.ListLogos(activeOnly))
}

// LogoCreate inserts a new client logo.
func (a *Admin) LogoCreate(w http.ResponseWriter, r *http.Request) {
	var in legacy.LogoInput
	if !decodeBody(w, r, &in) {
		return
	}
	if in.CompanyName == "" {
		writeError(w, http.StatusBadRequest, "Company name is required.")
		return
	}
	logo := a.svc.CreateLogo(in)
	if logo == nil {
		writeError(w, http.StatusInternalServerError, "Could not create logo. Please retry.")
		return
	}
	writeJSON(w, http.StatusCreated, logo)
}

// LogoUpdate applies a partial update to a client logo.
func (a *Admin) LogoUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	var patch legacy.LogoPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	logo := a.svc.UpdateLogo(id, patch)
	if logo == nil {
		writeError(w, http.StatusNotFound, "Logo not found.")
		return
	}
	writeJSON(w, http.StatusOK, logo)
}

// LogoDelete hard-deletes a client logo and its stored image.
func (a *Admin) LogoDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	if !a.svc.DeleteLogo(r.Context(), id) {
		writeError(w, http.StatusNotFound, "Logo not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// --- Contact submissions ---

// SubmissionsList returns all contact submissions, newest first.
func (a *Admin) SubmissionsList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.ListSubmissions())
}

// SubmissionStatusUpdate transitions a submission between new/read/responded.
func (a *Admin) SubmissionStatusUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	sub := a.svc.UpdateSubmissionStatus(id, body.Status)
	if sub == nil {
		writeError(w, http.StatusNotFound, "Submission not found or status invalid.")
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// SubmissionDelete hard-deletes a contact submission.
func (a *Admin) SubmissionDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	if !a.svc.DeleteSubmission(id) {
		writeError(w, http.StatusNotFound, "Submission not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// --- Newsletter subscriptions ---

// SubscriptionsList returns all newsletter subscriptions. ?active=true
// excludes unsubscribed addresses.
func (a *Admin) SubscriptionsList(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	writeJSON(w, http.StatusOK, a.svc.ListSubscriptions(activeOnly))
}

// SubscriptionDelete soft-deletes a newsletter subscription.
func (a *Admin) SubscriptionDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := legacyIDParam(w, r)
	if !ok {
		return
	}
	if !a.svc.DeleteSubscription(id) {
		writeError(w, http.StatusNotFound, "Subscription not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
