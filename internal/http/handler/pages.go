package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roguepikachu/smileline/internal/site"
	"github.com/roguepikachu/smileline/pkg"
	"github.com/roguepikachu/smileline/pkg/logger"
)

// PageResponseDTO is a page plus the documents rendered into its head.
type PageResponseDTO struct {
	site.Page
	Canonical      string        `json:"canonical"`
	StructuredData *site.Dentist `json:"structured_data_ld,omitempty"`
}

// PagesHandler serves page metadata, the sitemap and legacy redirects.
type PagesHandler struct {
	hours    HoursService
	practice site.Practice
	baseURL  string
}

// NewPagesHandler constructs a PagesHandler. hours feeds the opening hours
// published in structured data.
func NewPagesHandler(hours HoursService, practice site.Practice, baseURL string) *PagesHandler {
	return &PagesHandler{hours: hours, practice: practice, baseURL: baseURL}
}

// List returns every page in navigation order.
func (h *PagesHandler) List(c *gin.Context) {
	pages := site.Pages()
	out := make([]PageResponseDTO, 0, len(pages))
	for _, p := range pages {
		out = append(out, PageResponseDTO{Page: p, Canonical: site.CanonicalURL(h.baseURL, p.Path)})
	}
	c.JSON(http.StatusOK, out)
}

// Get returns one page, with the practice JSON-LD when the page embeds it.
func (h *PagesHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := site.FindPage(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, pkg.NewError("not_found", "not found"))
		return
	}
	resp := PageResponseDTO{Page: p, Canonical: site.CanonicalURL(h.baseURL, p.Path)}
	if p.StructuredData {
		week, err := h.hours.Week(ctx)
		if err != nil {
			// the page is still useful without opening hours
			logger.Warn(ctx, "structured data without hours: %v", err)
		}
		ld := site.StructuredData(h.practice, week.Entries)
		resp.StructuredData = &ld
	}
	c.JSON(http.StatusOK, resp)
}

// Sitemap serves sitemap.xml.
func (h *PagesHandler) Sitemap(c *gin.Context) {
	body, err := site.Sitemap(h.baseURL, site.Pages())
	if err != nil {
		logger.Error(c.Request.Context(), "failed to render sitemap: %s", err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// Robots serves robots.txt.
func (h *PagesHandler) Robots(c *gin.Context) {
	c.String(http.StatusOK, site.Robots(h.baseURL))
}

// Redirect returns a handler that permanently redirects to the canonical
// URL of path on the public site, which this API does not render itself.
func (h *PagesHandler) Redirect(path string) gin.HandlerFunc {
	target := site.CanonicalURL(h.baseURL, path)
	return func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, target)
	}
}
