// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// shapes.go defines the legacy camelCase view models and the converters
// from native rows. The numeric id fields are always derived via DeriveID,
// never read from the store.
package legacy

import (
	"time"

	"rtaweb/internal/models"
)

// legacyDateLayout is the flattened date format older consumers expect for
// the blog publish date.
const legacyDateLayout = "2006-01-02"

// Client is the legacy-shaped client record.
type Client struct {
	ID           int64     `json:"id"`
	SerialNumber int       `json:"serialNumber"`
	CompanyName  string    `json:"companyName"`
	SecurityType string    `json:"securityType"`
	ISINCode     string    `json:"isinCode"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toClient(c *models.Client) *Client {
	return &Client{
		ID:           DeriveID(c.ID),
		SerialNumber: c.SerialNumber,
		CompanyName:  c.CompanyName,
		SecurityType: string(c.SecurityType),
		ISINCode:     c.ISINCode,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// BlogPost is the legacy-shaped blog post. Published is derived from the
// status enum; Date flattens the publish timestamp to a plain date string.
type BlogPost struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Published bool     `json:"published"`
	Status    string   `json:"status"`
	Author    string   `json:"author"`
	Date      string   `json:"date"`
	Category  string   `json:"category"`
	Views     int      `json:"views"`
	Tags      []string `json:"tags"`
	Image     string   `json:"image,omitempty"`
}

func toBlogPost(p *models.BlogPost) *BlogPost {
	date := ""
	if p.PublishedAt != nil {
		date = p.PublishedAt.Format(legacyDateLayout)
	}
	image := ""
	if p.ImageURL != nil {
		image = *p.ImageURL
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return &BlogPost{
		ID:        DeriveID(p.ID),
		Title:     p.Title,
		Slug:      p.Slug,
		Excerpt:   p.Excerpt,
		Content:   p.Body,
		Published: p.Status == models.PostStatusPublished,
		Status:    string(p.Status),
		Author:    p.Author,
		Date:      date,
		Category:  p.Category,
		Views:     p.Views,
		Tags:      tags,
		Image:     image,
	}
}

// FAQ is the legacy-shaped FAQ entry.
type FAQ struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int    `json:"order"`
	IsActive bool   `json:"isActive"`
}

func toFAQ(f *models.FAQ) *FAQ {
	return &FAQ{
		ID:       DeriveID(f.ID),
		Question: f.Question,
		Answer:   f.Answer,
		Category: f.Category,
		Order:    f.SortOrder,
		IsActive: f.IsActive,
	}
}

// ContactSubmission is the legacy-shaped contact inquiry.
type ContactSubmission struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Company    string    `json:"company"`
	Service    string    `json:"service"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	Source     string    `json:"source"`
	Newsletter bool      `json:"newsletter"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toContactSubmission(c *models.ContactSubmission) *ContactSubmission {
	return &ContactSubmission{
		ID:         DeriveID(c.ID),
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Company:    c.Company,
		Service:    c.Service,
		Message:    c.Message,
		Status:     string(c.Status),
		Source:     c.Source,
		Newsletter: c.NewsletterOptIn,
		CreatedAt:  c.CreatedAt,
	}
}

// NewsletterSubscription is the legacy-shaped newsletter opt-in.
type NewsletterSubscription struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

func toNewsletterSubscription(n *models.NewsletterSubscription) *NewsletterSubscription {
	return &NewsletterSubscription{
		ID:        DeriveID(n.ID),
		Email:     n.Email,
		IsActive:  n.IsActive,
		Source:    n.Source,
		CreatedAt: n.CreatedAt,
	}
}

// FormCategory is the legacy-shaped form category with its forms nested.
type FormCategory struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Gradient    string `json:"gradient"`
	Order       int    `json:"order"`
	Forms       []Form `json:"forms"`
}

func toFormCategory(c *models.FormCategory) *FormCategory {
	return &FormCategory{
		ID:          DeriveID(c.ID),
		Title:       c.Title,
		Description: c.Description,
		Icon:        c.Icon,
		Gradient:    c.Gradient,
		Order:       c.SortOrder,
		Forms:       []Form{},
	}
}

// Form is the legacy-shaped downloadable form.
type Form struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Size       string `json:"size"`
	URL        string `json:"url"`
	CategoryID int64  `json:"categoryId"`
	Order      int    `json:"order"`
}

func toForm(f *models.Form) *Form {
	return &Form{
		ID:         DeriveID(f.ID),
		Name:       f.Name,
		Type:       f.FileType,
		Size:       f.FileSize,
		URL:        f.FileURL,
		CategoryID: DeriveID(f.CategoryID),
		Order:      f.SortOrder,
	}
}

// ClientLogo is the legacy-shaped client logo.
type ClientLogo struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
	Subtitle    string `json:"subtitle"`
	LogoURL     string `json:"logoUrl"`
	WebsiteURL  string `json:"websiteUrl"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"isActive"`
}

func toClientLogo(l *models.ClientLogo) *ClientLogo {
	return &ClientLogo{
		ID:          DeriveID(l.ID),
		CompanyName: l.CompanyName,
		Subtitle:    l.Subtitle,
		LogoURL:     l.LogoURL,
		WebsiteURL:  l.WebsiteURL,
		Order:       l.SortOrder,
		IsActive:    l.IsActive,
	}
}
