// Package router sets up the HTTP routes for the Smileline API server.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/roguepikachu/smileline/internal/auth"
	"github.com/roguepikachu/smileline/internal/http/handler"
	"github.com/roguepikachu/smileline/internal/http/middleware"
	"github.com/roguepikachu/smileline/internal/ratelimit"
	"github.com/roguepikachu/smileline/internal/site"
	"github.com/roguepikachu/smileline/pkg"
)

// Cache lifetimes for the public documents.
const (
	PagesMaxAge = 5 * time.Minute
	SEOMaxAge   = time.Hour
)

// Deps are the handlers and policies the router wires together.
type Deps struct {
	Hours   *handler.HoursHandler
	Contact *handler.ContactHandler
	Pages   *handler.PagesHandler
	Health  *handler.HealthHandler

	// ContactLimiter throttles contact form posts; nil disables throttling.
	ContactLimiter ratelimit.Limiter
	// AdminValidator guards the admin routes; nil leaves them unregistered.
	AdminValidator auth.TokenValidator
	// AllowedOrigins lists the origins allowed by CORS; empty allows any origin.
	AllowedOrigins []string
}

// NewRouter initializes and returns the main Gin engine with all routes.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestIDMiddleware(), middleware.RequestLogger(), cors.New(corsConfig(d.AllowedOrigins)))

	r.GET(pkg.HealthCheckPath, handler.Health)
	api := r.Group(pkg.BasePath)
	if d.Health != nil {
		api.GET("/livez", d.Health.Liveness)
		api.GET("/readyz", d.Health.Readiness)
	}

	hours := api.Group("/hours", middleware.NoStore())
	hours.GET("", d.Hours.Week)
	hours.GET("/status", d.Hours.Status)

	contact := []gin.HandlerFunc{middleware.NoStore()}
	if d.ContactLimiter != nil {
		contact = append(contact, middleware.RateLimit(d.ContactLimiter))
	}
	api.POST("/contact", append(contact, d.Contact.Submit)...)

	pages := api.Group("/pages", middleware.CacheControl(PagesMaxAge))
	pages.GET("", d.Pages.List)
	pages.GET("/:slug", d.Pages.Get)

	seo := middleware.CacheControl(SEOMaxAge)
	r.GET("/sitemap.xml", seo, d.Pages.Sitemap)
	r.GET("/robots.txt", seo, d.Pages.Robots)
	for from, to := range site.Redirects {
		r.GET(from, d.Pages.Redirect(to))
	}

	if d.AdminValidator != nil {
		admin := api.Group("/admin", middleware.NoStore(), middleware.RequireRole(d.AdminValidator, auth.RoleAdmin))
		admin.GET("/contact", d.Contact.List)
		admin.GET("/contact/:id", d.Contact.Get)
		admin.PUT("/hours", d.Hours.Update)
	}
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "X-Client-ID"}
	cfg.ExposeHeaders = []string{"X-Request-ID"}
	cfg.MaxAge = 12 * time.Hour
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
