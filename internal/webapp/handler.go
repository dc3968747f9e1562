// Package webapp exposes the composed page data and the mutation endpoints
// over HTTP. Pages come out as a state envelope (ready, empty, notFound,
// error) plus the page view model; mutations answer with the updated
// entity or a field-error map. All user-facing wording lives here, in the
// notification layer.
package webapp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	"github.com/meeplelog/meeplelog/internal/api"
	"github.com/meeplelog/meeplelog/internal/common"
	"github.com/meeplelog/meeplelog/internal/format"
	"github.com/meeplelog/meeplelog/internal/logging"
	"github.com/meeplelog/meeplelog/internal/viewmodel"
)

// Handler binds the view-model composer to the HTTP surface.
type Handler struct {
	composer *viewmodel.Composer
	log      logging.Logger
	lang     language.Tag
}

func NewHandler(composer *viewmodel.Composer, log logging.Logger, lang string) *Handler {
	return &Handler{
		composer: composer,
		log:      log,
		lang:     format.ParseLanguage(lang),
	}
}

const (
	stateReady    = "ready"
	stateEmpty    = "empty"
	stateError    = "error"
	stateNotFound = "notFound"
	stateInvalid  = "invalid"
)

type pageEnvelope struct {
	State        string        `json:"state"`
	Data         any           `json:"data,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}

func (h *Handler) page(c echo.Context, state string, data any) error {
	env := pageEnvelope{State: state, Data: data}
	switch state {
	case stateError:
		n := notify(h.lang, LevelError, "internal_error")
		env.Notification = &n
	case stateNotFound:
		n := notify(h.lang, LevelWarning, "not_found")
		env.Notification = &n
	}
	status := http.StatusOK
	if state == stateNotFound {
		status = http.StatusNotFound
	}
	return c.JSON(status, env)
}

type mutationEnvelope struct {
	Data         any           `json:"data,omitempty"`
	Fields       any           `json:"fields,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}

// respondMutation maps a mutation outcome to a response. A nil error
// answers with the entity and a success notification; the error paths
// carry a reason-coded notification so the client never words messages
// itself.
func (h *Handler) respondMutation(c echo.Context, data any, err error, successReason string) error {
	if err == nil {
		n := notify(h.lang, LevelSuccess, successReason)
		status := http.StatusOK
		if c.Request().Method == http.MethodPost {
			status = http.StatusCreated
		}
		return c.JSON(status, mutationEnvelope{Data: data, Notification: &n})
	}

	var ve *viewmodel.ValidationError
	if errors.As(err, &ve) {
		n := notify(h.lang, LevelWarning, "invalid_input")
		return c.JSON(http.StatusUnprocessableEntity, mutationEnvelope{Fields: ve.Fields, Notification: &n})
	}

	status, reason := http.StatusInternalServerError, "internal_error"
	switch {
	case errors.Is(err, common.ErrNotFound):
		status, reason = http.StatusNotFound, "not_found"
	case errors.Is(err, common.ErrUnavailable):
		status, reason = http.StatusServiceUnavailable, "backend_unavailable"
	default:
		var se *api.ServerError
		if errors.As(err, &se) {
			status = se.StatusCode
			// The backend's reason code selects the message; notify falls
			// back to the code itself for reasons without a translation.
			switch se.Reason {
			case "", "unknown":
				if status == http.StatusConflict {
					reason = "conflict"
				}
			default:
				reason = se.Reason
			}
		}
	}
	h.log.Error(c.Request().Context(), "mutation failed", "path", c.Path(), "err", err)
	n := notify(h.lang, LevelError, reason)
	return c.JSON(status, mutationEnvelope{Notification: &n})
}

// Health answers liveness probes.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
