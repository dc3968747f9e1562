package webapp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meeplelog/meeplelog/internal/models"
	"github.com/meeplelog/meeplelog/internal/timex"
)

// Mutation handlers bind the input payload, run the composer mutation and
// answer through respondMutation. Input validation happens in the
// view-model layer; a bind failure here means malformed JSON, not bad
// field values.

func (h *Handler) CreateGame(c echo.Context) error {
	var in models.GameInput
	if err := c.Bind(&in); err != nil {
		return h.badRequest(c)
	}
	game, err := h.composer.CreateGame(c.Request().Context(), in)
	return h.respondMutation(c, game, err, "saved")
}

func (h *Handler) UpdateGame(c echo.Context) error {
	var in models.GameInput
	if err := c.Bind(&in); err != nil {
		return h.badRequest(c)
	}
	game, err := h.composer.UpdateGame(c.Request().Context(), c.Param("id"), in)
	return h.respondMutation(c, game, err, "saved")
}

func (h *Handler) DeleteGame(c echo.Context) error {
	err := h.composer.DeleteGame(c.Request().Context(), c.Param("id"))
	return h.respondMutation(c, nil, err, "deleted")
}

func (h *Handler) UploadGameImage(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return h.badRequest(c)
	}
	f, err := fh.Open()
	if err != nil {
		return h.badRequest(c)
	}
	defer f.Close()
	game, err := h.composer.UploadGameImage(c.Request().Context(), c.Param("id"), fh.Filename, f)
	return h.respondMutation(c, game, err, "saved")
}

func (h *Handler) CreatePlayer(c echo.Context) error {
	var in models.PlayerInput
	if err := c.Bind(&in); err != nil {
		return h.badRequest(c)
	}
	player, err := h.composer.CreatePlayer(c.Request().Context(), in)
	return h.respondMutation(c, player, err, "saved")
}

func (h *Handler) UpdatePlayer(c echo.Context) error {
	var in models.PlayerInput
	if err := c.Bind(&in); err != nil {
		return h.badRequest(c)
	}
	player, err := h.composer.UpdatePlayer(c.Request().Context(), c.Param("id"), in)
	return h.respondMutation(c, player, err, "saved")
}

func (h *Handler) DeletePlayer(c echo.Context) error {
	err := h.composer.DeletePlayer(c.Request().Context(), c.Param("id"))
	return h.respondMutation(c, nil, err, "deleted")
}

func (h *Handler) UploadPlayerImage(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return h.badRequest(c)
	}
	f, err := fh.Open()
	if err != nil {
		return h.badRequest(c)
	}
	defer f.Close()
	player, err := h.composer.UploadPlayerImage(c.Request().Context(), c.Param("id"), fh.Filename, f)
	return h.respondMutation(c, player, err, "saved")
}

func (h *Handler) CreateLocation(c echo.Context) error {
	var in models.LocationInput
	if err := c.Bind(&in); err != nil {
		return h.badRequest(c)
	}
	loc, err := h.composer.CreateLocation(c.Request().Context(), in)
	return h.respondMutation(c, loc, err, "saved")
}

func (h *Handler) UpdateLocation(c echo.Context) error {
	var in models.LocationInput
	if err := c.Bind(&in); err != nil {
		return h.badRequest(c)
	}
	loc, err := h.composer.UpdateLocation(c.Request().Context(), c.Param("id"), in)
	return h.respondMutation(c, loc, err, "saved")
}

func (h *Handler) DeleteLocation(c echo.Context) error {
	err := h.composer.DeleteLocation(c.Request().Context(), c.Param("id"))
	return h.respondMutation(c, nil, err, "deleted")
}

func (h *Handler) CreateSession(c echo.Context) error {
	var in models.SessionInput
	if err := c.Bind(&in); err != nil {
		return h.badRequest(c)
	}
	session, err := h.composer.CreateSession(c.Request().Context(), in)
	return h.respondMutation(c, session, err, "saved")
}

func (h *Handler) UpdateSession(c echo.Context) error {
	var in models.SessionInput
	if err := c.Bind(&in); err != nil {
		return h.badRequest(c)
	}
	session, err := h.composer.UpdateSession(c.Request().Context(), c.Param("id"), in)
	return h.respondMutation(c, session, err, "saved")
}

func (h *Handler) DeleteSession(c echo.Context) error {
	err := h.composer.DeleteSession(c.Request().Context(), c.Param("id"))
	return h.respondMutation(c, nil, err, "deleted")
}

func (h *Handler) CreateLoan(c echo.Context) error {
	var in models.LoanInput
	if err := c.Bind(&in); err != nil {
		return h.badRequest(c)
	}
	loan, err := h.composer.CreateLoan(c.Request().Context(), in)
	return h.respondMutation(c, loan, err, "saved")
}

func (h *Handler) ReturnLoan(c echo.Context) error {
	var body struct {
		ReturnedDate timex.Time `json:"returnedDate"`
	}
	if err := c.Bind(&body); err != nil {
		return h.badRequest(c)
	}
	loan, err := h.composer.ReturnLoan(c.Request().Context(), c.Param("id"), body.ReturnedDate)
	return h.respondMutation(c, loan, err, "saved")
}

func (h *Handler) DeleteLoan(c echo.Context) error {
	err := h.composer.DeleteLoan(c.Request().Context(), c.Param("id"))
	return h.respondMutation(c, nil, err, "deleted")
}

func (h *Handler) UpdateSettings(c echo.Context) error {
	var in models.SettingsInput
	if err := c.Bind(&in); err != nil {
		return h.badRequest(c)
	}
	settings, err := h.composer.UpdateSettings(c.Request().Context(), in)
	return h.respondMutation(c, settings, err, "saved")
}

func (h *Handler) badRequest(c echo.Context) error {
	n := notify(h.lang, LevelWarning, "invalid_input")
	return c.JSON(http.StatusBadRequest, mutationEnvelope{Notification: &n})
}
