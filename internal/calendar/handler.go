package calendar

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ventolabs/ventocal/internal/apperror"
	"github.com/ventolabs/ventocal/internal/export"
)

// Handler processes HTTP requests for calendar instances.
type Handler struct {
	registry *Registry
	now      func() time.Time
}

// NewHandler creates a calendar Handler over the registry.
func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry, now: time.Now}
}

// controller resolves the :name path param to a controller.
func (h *Handler) controller(c echo.Context) (*Controller, error) {
	ctrl := h.registry.Get(c.Param("name"))
	if ctrl == nil {
		return nil, apperror.NewNotFound("unknown calendar")
	}
	return ctrl, nil
}

// View returns the current view model, loading data on first access.
// GET /calendars/:name/view
func (h *Handler) View(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return err
	}

	if ctrl.State() == StateIdle {
		if err := ctrl.Load(c.Request().Context()); err != nil {
			// The grid still renders; the view model carries the error
			// state instead of the response failing.
			slog.Warn("initial event load failed",
				slog.String("calendar", ctrl.Name()),
				slog.Any("error", err),
			)
		}
	}
	return c.JSON(http.StatusOK, ctrl.ViewModel())
}

// navigateRequest is the JSON body for Navigate.
type navigateRequest struct {
	Direction string `json:"direction"`
}

// Navigate moves the visible month and returns the refreshed view model.
// POST /calendars/:name/navigate
func (h *Handler) Navigate(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return err
	}

	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid navigation request")
	}
	dir := Direction(req.Direction)
	switch dir {
	case DirPrev, DirNext, DirToday:
	default:
		return apperror.NewBadRequest("direction must be prev, next, or today")
	}

	if err := ctrl.Navigate(c.Request().Context(), dir); err != nil {
		slog.Warn("event load failed on navigation",
			slog.String("calendar", ctrl.Name()),
			slog.String("direction", req.Direction),
			slog.Any("error", err),
		)
	}
	return c.JSON(http.StatusOK, ctrl.ViewModel())
}

// selectRequest is the JSON body for Select.
type selectRequest struct {
	Date string `json:"date"`
}

// Select opens the day selection when the day has events. Selecting an
// empty day is not an error; the view model simply carries no selection.
// POST /calendars/:name/select
func (h *Handler) Select(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return err
	}

	var req selectRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid selection request")
	}
	if _, perr := time.Parse("2006-01-02", req.Date); perr != nil {
		return apperror.NewBadRequest("date must be YYYY-MM-DD")
	}

	ctrl.SelectDay(req.Date)
	return c.JSON(http.StatusOK, ctrl.ViewModel())
}

// CloseSelection clears the day selection.
// POST /calendars/:name/close
func (h *Handler) CloseSelection(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return err
	}
	ctrl.CloseSelection()
	return c.JSON(http.StatusOK, ctrl.ViewModel())
}

// loadedEvent resolves :eid against the controller's cached window, gated
// on the instance having the matching add-to-calendar toggle enabled.
func (h *Handler) loadedEvent(c echo.Context, ctrl *Controller, enabled bool) (int64, error) {
	if !enabled {
		return 0, apperror.NewNotFound("add-to-calendar is not enabled for this calendar")
	}
	id, err := strconv.ParseInt(c.Param("eid"), 10, 64)
	if err != nil {
		return 0, apperror.NewBadRequest("invalid event id")
	}
	return id, nil
}

// GoogleRedirect sends the client to the Google Calendar template URL.
// GET /calendars/:name/events/:eid/google
func (h *Handler) GoogleRedirect(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return err
	}
	id, err := h.loadedEvent(c, ctrl, ctrl.Options().ShowAddToCalendarGoogle)
	if err != nil {
		return err
	}
	ev := ctrl.EventByID(id)
	if ev == nil {
		return apperror.NewNotFound("event not loaded")
	}
	link, err := export.GoogleLink(*ev)
	if err != nil {
		return apperror.NewBadRequest("event has malformed dates")
	}
	return c.Redirect(http.StatusFound, link)
}

// ICSDownload serves the event as a .ics attachment.
// GET /calendars/:name/events/:eid/ics
func (h *Handler) ICSDownload(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return err
	}
	id, err := h.loadedEvent(c, ctrl, ctrl.Options().ShowAddToCalendarApple)
	if err != nil {
		return err
	}
	ev := ctrl.EventByID(id)
	if ev == nil {
		return apperror.NewNotFound("event not loaded")
	}
	doc, err := export.ICS(*ev, h.now())
	if err != nil {
		return apperror.NewBadRequest("event has malformed dates")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+export.Filename(*ev)+`"`)
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(doc))
}
