package calendar

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up all calendar routes. Every route is public: the
// calendars serve the same event data the provider already exposes.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/calendars/:name")

	g.GET("/view", h.View)
	g.POST("/navigate", h.Navigate)
	g.POST("/select", h.Select)
	g.POST("/close", h.CloseSelection)

	// Add-to-calendar exports, gated per instance by its options.
	g.GET("/events/:eid/google", h.GoogleRedirect)
	g.GET("/events/:eid/ics", h.ICSDownload)
}
