package pkg

// Common API path constants.
const (
	// BasePath is the root path for the API.
	BasePath = "/api/v1"

	// HealthCheckPath is the endpoint for health checks.
	HealthCheckPath = BasePath + "/ping"

	// HoursPath serves the weekly office hours table.
	HoursPath = BasePath + "/hours"

	// ContactPath accepts contact form submissions.
	ContactPath = BasePath + "/contact"

	// PagesPath serves page metadata for the front end.
	PagesPath = BasePath + "/pages"

	// AdminPath groups the token protected endpoints.
	AdminPath = BasePath + "/admin"
)
