// Package app is the application bootstrap and dependency injection root.
// It creates the Echo instance, wires the calendar registry to the event
// provider, and registers all routes.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ventolabs/ventocal/internal/apperror"
	"github.com/ventolabs/ventocal/internal/calendar"
	"github.com/ventolabs/ventocal/internal/config"
	"github.com/ventolabs/ventocal/internal/middleware"
	"github.com/ventolabs/ventocal/internal/source"
)

// App holds all shared dependencies and the Echo HTTP server instance.
// Created once at startup in main.go and used to register all routes.
type App struct {
	// Config holds the loaded application configuration.
	Config *config.Config

	// Registry holds one calendar controller per configured instance.
	Registry *calendar.Registry

	// Echo is the HTTP server instance.
	Echo *echo.Echo
}

// New creates a new App instance and configures the Echo server with
// global middleware and error handling.
func New(cfg *config.Config, instances []config.Instance) *App {
	e := echo.New()

	// Disable Echo's default banner and startup message -- we log our own.
	e.HideBanner = true
	e.HidePort = true

	registry := calendar.NewRegistry(instances, func() source.Provider {
		return source.NewHTTPProvider(cfg.Provider.BaseURL, cfg.Provider.Timeout)
	})

	app := &App{
		Config:   cfg,
		Registry: registry,
		Echo:     e,
	}

	// Register global middleware in order of execution: recovery must be
	// outermost to catch panics from everything else.
	e.Use(middleware.Recovery())
	e.Use(middleware.RequestLogger())

	// Register the custom error handler that maps AppErrors to JSON responses.
	e.HTTPErrorHandler = app.errorHandler

	return app
}

// RegisterRoutes sets up all HTTP routes.
func (a *App) RegisterRoutes() {
	a.Echo.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	a.Echo.GET("/calendars", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string][]string{"calendars": a.Registry.Names()})
	})

	calendar.RegisterRoutes(a.Echo, calendar.NewHandler(a.Registry))
}

// Start begins listening for HTTP requests. Blocks until shutdown.
func (a *App) Start() error {
	return a.Echo.Start(fmt.Sprintf(":%d", a.Config.Port))
}

// errorHandler is the custom Echo error handler. It maps domain errors
// (AppError) to JSON responses and hides internal detail from clients.
func (a *App) errorHandler(err error, c echo.Context) {
	// Don't double-write if response is already committed.
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := map[string]string{"type": "internal_error", "message": apperror.SafeMessage(err)}

	var appErr *apperror.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		code = appErr.Code
		body["type"] = appErr.Type
		body["message"] = appErr.Message
		if appErr.Internal != nil {
			slog.Error("internal error",
				slog.String("type", appErr.Type),
				slog.String("message", appErr.Message),
				slog.Any("error", appErr.Internal),
			)
		}
	case errors.As(err, &httpErr):
		code = httpErr.Code
		body["type"] = http.StatusText(code)
		body["message"] = fmt.Sprintf("%v", httpErr.Message)
	default:
		slog.Error("unhandled error",
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		)
	}

	if werr := c.JSON(code, body); werr != nil {
		slog.Error("failed to write error response", slog.Any("error", werr))
	}
}
