// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package web serves the lookup form. A title entered in the form is
// checked locally, looked up once, and the outcome rendered in place:
// a warning, an error message, or the three fields plus their citation.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pdiddy/pubmed-lookup/internal/logging"
	"github.com/pdiddy/pubmed-lookup/internal/lookup"
	"github.com/pdiddy/pubmed-lookup/internal/metrics"
)

//go:embed templates/*.html
var templateFS embed.FS

// Looker performs one title lookup. *lookup.Service implements it.
type Looker interface {
	Lookup(ctx context.Context, title string) lookup.Result
}

// Server is the HTTP front end.
type Server struct {
	echo    *echo.Echo
	looker  Looker
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New wires routes and middleware around looker.
func New(looker Looker, m *metrics.Metrics, logger *slog.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = &templateRenderer{tmpl: tmpl}

	s := &Server{echo: e, looker: looker, metrics: m, logger: logger}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			c.SetRequest(req.WithContext(logging.WithRequestID(req.Context(), id)))
		},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log := logging.FromContext(c.Request().Context(), s.logger)
			if v.Error == nil {
				log.Info("request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				log.Error("request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.GET("/", s.handleIndex)
	e.POST("/lookup", s.handleLookupForm)
	e.GET("/api/lookup", s.handleLookupAPI)
	e.GET("/healthz", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	return s, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler { return s.echo }

// Start listens on addr until Shutdown is called. It returns nil after a
// clean shutdown.
func (s *Server) Start(addr string) error {
	s.logger.Info("starting pubmed-lookup server", "addr", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight lookups.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type templateRenderer struct {
	tmpl *template.Template
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}
