package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for submitted fields.
const (
	maxNameLen    = 200
	maxEmailLen   = 320
	maxMessageLen = 10_000
	maxTitleLen   = 300
	maxSlugLen    = 300
	maxBodyLen    = 100_000
)

// validateContact checks public contact form inputs and returns the first
// error found.
func validateContact(name, email, message string) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if !validEmail(email) {
		return "A valid email address is required."
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		return "Message is too long (max 10,000 characters)."
	}
	return ""
}

// validatePost checks blog post inputs and returns the first error found.
func validatePost(title, slug, content string) string {
	if strings.TrimSpace(title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(content) > maxBodyLen {
		return "Content is too long (max 100,000 characters)."
	}
	return ""
}

// validEmail is a light shape check: one @, something on both sides, a dot
// in the domain. Real validation happens when mail bounces.
func validEmail(email string) bool {
	if email == "" || utf8.RuneCountInString(email) > maxEmailLen {
		return false
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t\n")
}
