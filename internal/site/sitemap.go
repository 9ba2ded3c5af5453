package site

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap renders sitemap.xml for pages under baseURL.
func Sitemap(baseURL string, pages []Page) ([]byte, error) {
	set := urlSet{XMLNS: sitemapNS}
	for _, p := range pages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        CanonicalURL(baseURL, p.Path),
			ChangeFreq: p.ChangeFreq,
			Priority:   fmt.Sprintf("%.1f", p.Priority),
		})
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Robots renders robots.txt pointing crawlers at the sitemap.
func Robots(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/v1/admin/\n")
	b.WriteString("\nSitemap: " + CanonicalURL(baseURL, "/sitemap.xml") + "\n")
	return b.String()
}
