package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: a couple of
// form categories and FAQ entries so the public pages render something
// meaningful. No-op if data already exists.
func Seed(db *sql.DB) error {
	// Check if any form categories exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM form_categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check form categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	categories := []struct {
		title, description, icon, gradient string
		order                              int
	}{
		{"Transfer Forms", "Share transfer and transmission forms", "transfer", "blue", 1},
		{"KYC Forms", "Know Your Customer update forms", "kyc", "green", 2},
		{"Nomination Forms", "Nomination registration and cancellation", "nomination", "purple", 3},
	}
	for _, c := range categories {
		_, err := db.Exec(`
			INSERT INTO form_categories (title, description, icon, gradient, sort_order)
			VALUES ($1, $2, $3, $4, $5)
		`, c.title, c.description, c.icon, c.gradient, c.order)
		if err != nil {
			return fmt.Errorf("seed insert form category: %w", err)
		}
	}

	faqs := []struct {
		question, answer, category string
		order                      int
	}{
		{"What is an RTA?", "A Registrar and Transfer Agent maintains records of shareholders and processes share transfers on behalf of companies.", "general", 1},
		{"How do I dematerialise my shares?", "Submit a Dematerialisation Request Form through your depository participant along with the physical certificates.", "demat", 2},
		{"How long does a share transfer take?", "Physical transfers are processed within 15 days of receiving complete documentation.", "transfer", 3},
	}
	for _, f := range faqs {
		_, err := db.Exec(`
			INSERT INTO faqs (question, answer, category, sort_order)
			VALUES ($1, $2, $3, $4)
		`, f.question, f.answer, f.category, f.order)
		if err != nil {
			return fmt.Errorf("seed insert faq: %w", err)
		}
	}

	slog.Info("database seeded with development data",
		"form_categories", len(categories),
		"faqs", len(faqs),
	)

	return nil
}
