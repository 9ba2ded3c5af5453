// Package site holds the page catalog and the SEO documents derived from it.
package site

import "strings"

// Page describes one public page of the site.
type Page struct {
	Slug        string   `json:"slug"`
	Path        string   `json:"path"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
	ChangeFreq  string   `json:"change_freq"`
	Priority    float64  `json:"priority"`
	// StructuredData marks pages that embed the practice JSON-LD.
	StructuredData bool `json:"structured_data"`
}

// Pages returns the catalog in navigation order.
func Pages() []Page {
	return []Page{
		{
			Slug:           "home",
			Path:           "/",
			Title:          "Family & Cosmetic Dentistry",
			Description:    "Gentle family, cosmetic and emergency dental care. Same-week appointments and most insurance accepted.",
			Keywords:       []string{"dentist", "family dentistry", "cosmetic dentistry", "emergency dentist"},
			ChangeFreq:     "weekly",
			Priority:       1.0,
			StructuredData: true,
		},
		{
			Slug:        "about",
			Path:        "/about",
			Title:       "About Our Practice",
			Description: "Meet our dentists, hygienists and front desk team, and learn how we approach patient comfort.",
			Keywords:    []string{"dental team", "dentists"},
			ChangeFreq:  "monthly",
			Priority:    0.8,
		},
		{
			Slug:        "services",
			Path:        "/services",
			Title:       "Dental Services",
			Description: "Cleanings, fillings, crowns, implants, whitening, Invisalign and emergency care under one roof.",
			Keywords:    []string{"teeth cleaning", "dental implants", "teeth whitening", "crowns"},
			ChangeFreq:  "monthly",
			Priority:    0.9,
		},
		{
			Slug:        "patient-info",
			Path:        "/patient-info",
			Title:       "Patient Information",
			Description: "New patient forms, insurance and payment options, and what to expect at your first visit.",
			Keywords:    []string{"new patients", "dental insurance", "patient forms"},
			ChangeFreq:  "monthly",
			Priority:    0.7,
		},
		{
			Slug:           "contact",
			Path:           "/contact",
			Title:          "Contact & Office Hours",
			Description:    "Call, email or send us a message. Find our address, directions and current office hours.",
			Keywords:       []string{"dentist near me", "book dental appointment"},
			ChangeFreq:     "monthly",
			Priority:       0.8,
			StructuredData: true,
		},
	}
}

// FindPage looks a page up by slug.
func FindPage(slug string) (Page, bool) {
	for _, p := range Pages() {
		if p.Slug == slug {
			return p, true
		}
	}
	return Page{}, false
}

// Redirects maps retired paths to their canonical page paths.
var Redirects = map[string]string{
	"/home":                "/",
	"/index.html":          "/",
	"/about-us":            "/about",
	"/our-services":        "/services",
	"/patient-information": "/patient-info",
	"/new-patients":        "/patient-info",
	"/contact-us":          "/contact",
}

// CanonicalURL joins the site's base URL and a page path.
func CanonicalURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}
