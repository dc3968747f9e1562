package webapp

import "github.com/labstack/echo/v4"

// RegisterRoutes wires the page and mutation endpoints onto the provided
// Echo instance. Pages live under /pages, mutations under /v1 mirroring
// the backend paths they proxy.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/healthz", h.Health)

	pages := e.Group("/pages")
	pages.GET("/dashboard", h.DashboardPage)
	pages.GET("/games", h.GameListPage)
	pages.GET("/games/:id", h.GamePage)
	pages.GET("/players", h.PlayerListPage)
	pages.GET("/players/:id", h.PlayerPage)
	pages.GET("/players/:id/compare", h.ComparePage)
	pages.GET("/sessions", h.SessionListPage)
	pages.GET("/locations", h.LocationListPage)
	pages.GET("/loans", h.LoanListPage)
	pages.GET("/settings", h.SettingsPage)

	v1 := e.Group("/v1")
	v1.POST("/games", h.CreateGame)
	v1.PUT("/games/:id", h.UpdateGame)
	v1.DELETE("/games/:id", h.DeleteGame)
	v1.POST("/games/:id/image", h.UploadGameImage)

	v1.POST("/players", h.CreatePlayer)
	v1.PUT("/players/:id", h.UpdatePlayer)
	v1.DELETE("/players/:id", h.DeletePlayer)
	v1.POST("/players/:id/image", h.UploadPlayerImage)

	v1.POST("/locations", h.CreateLocation)
	v1.PUT("/locations/:id", h.UpdateLocation)
	v1.DELETE("/locations/:id", h.DeleteLocation)

	v1.POST("/sessions", h.CreateSession)
	v1.PUT("/sessions/:id", h.UpdateSession)
	v1.DELETE("/sessions/:id", h.DeleteSession)

	v1.POST("/loans", h.CreateLoan)
	v1.PUT("/loans/:id/return", h.ReturnLoan)
	v1.DELETE("/loans/:id", h.DeleteLoan)

	v1.PUT("/settings", h.UpdateSettings)
}
