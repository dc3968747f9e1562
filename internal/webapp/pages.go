package webapp

import (
	"github.com/labstack/echo/v4"
)

// Page handlers run one composition each and translate the page's resource
// outcomes into the state envelope.

func (h *Handler) DashboardPage(c echo.Context) error {
	page := h.composer.Dashboard(c.Request().Context())
	if page.IsError() {
		return h.page(c, stateError, page)
	}
	return h.page(c, stateReady, page)
}

func (h *Handler) GameListPage(c echo.Context) error {
	page := h.composer.GameList(c.Request().Context())
	switch {
	case page.IsError():
		return h.page(c, stateError, page)
	case page.IsEmpty():
		return h.page(c, stateEmpty, page)
	}
	return h.page(c, stateReady, page)
}

func (h *Handler) GamePage(c echo.Context) error {
	page := h.composer.GamePage(c.Request().Context(), c.Param("id"))
	switch {
	case !page.Found:
		return h.page(c, stateNotFound, nil)
	case page.IsError():
		return h.page(c, stateError, page)
	}
	return h.page(c, stateReady, page)
}

func (h *Handler) PlayerListPage(c echo.Context) error {
	page := h.composer.PlayerList(c.Request().Context())
	switch {
	case page.IsError():
		return h.page(c, stateError, page)
	case page.IsEmpty():
		return h.page(c, stateEmpty, page)
	}
	return h.page(c, stateReady, page)
}

func (h *Handler) PlayerPage(c echo.Context) error {
	page := h.composer.PlayerPage(c.Request().Context(), c.Param("id"))
	switch {
	case !page.Found:
		return h.page(c, stateNotFound, nil)
	case page.IsError():
		return h.page(c, stateError, page)
	}
	return h.page(c, stateReady, page)
}

func (h *Handler) ComparePage(c echo.Context) error {
	page := h.composer.Compare(c.Request().Context(), c.Param("id"), c.QueryParam("opponent"))
	switch {
	case !page.Found:
		return h.page(c, stateNotFound, nil)
	case page.IsError():
		return h.page(c, stateError, page)
	}
	return h.page(c, stateReady, page)
}

func (h *Handler) SessionListPage(c echo.Context) error {
	page := h.composer.SessionList(c.Request().Context())
	switch {
	case page.IsError():
		return h.page(c, stateError, page)
	case page.IsEmpty():
		return h.page(c, stateEmpty, page)
	}
	return h.page(c, stateReady, page)
}

func (h *Handler) LocationListPage(c echo.Context) error {
	page := h.composer.LocationList(c.Request().Context())
	switch {
	case page.IsError():
		return h.page(c, stateError, page)
	case page.IsEmpty():
		return h.page(c, stateEmpty, page)
	}
	return h.page(c, stateReady, page)
}

func (h *Handler) LoanListPage(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"
	page := h.composer.LoanList(c.Request().Context(), activeOnly)
	switch {
	case page.IsError():
		return h.page(c, stateError, page)
	case page.IsEmpty():
		return h.page(c, stateEmpty, page)
	}
	return h.page(c, stateReady, page)
}

func (h *Handler) SettingsPage(c echo.Context) error {
	page := h.composer.SettingsPage(c.Request().Context())
	if page.IsError() {
		return h.page(c, stateError, page)
	}
	return h.page(c, stateReady, page)
}
