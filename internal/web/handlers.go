// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pdiddy/pubmed-lookup/internal/logging"
	"github.com/pdiddy/pubmed-lookup/internal/lookup"
	"github.com/pdiddy/pubmed-lookup/pkg/types"
)

const successMessage = "Lookup succeeded. Article details:"

// pageData is what index.html renders. At most one of Warning, Error and
// Summary is set.
type pageData struct {
	Title   string
	Warning string
	Error   string
	Success string
	Summary *types.ArticleSummary
}

// apiResponse is the JSON body of /api/lookup.
type apiResponse struct {
	Status   string                `json:"status"`
	Message  string                `json:"message"`
	Summary  *types.ArticleSummary `json:"summary,omitempty"`
	Citation string                `json:"citation,omitempty"`
}

func (s *Server) handleIndex(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", pageData{})
}

func (s *Server) handleLookupForm(c echo.Context) error {
	title := c.FormValue("title")
	res := s.run(c, title)

	data := pageData{Title: title}
	switch res.Status {
	case lookup.StatusFound:
		summary := res.Summary
		data.Summary = &summary
		data.Success = successMessage
	case lookup.StatusInvalid:
		data.Warning = res.Message()
	default:
		data.Error = res.Message()
	}
	return c.Render(http.StatusOK, "index.html", data)
}

func (s *Server) handleLookupAPI(c echo.Context) error {
	res := s.run(c, c.QueryParam("title"))

	body := apiResponse{Status: res.Status.String(), Message: res.Message()}
	code := http.StatusOK
	switch res.Status {
	case lookup.StatusFound:
		summary := res.Summary
		body.Summary = &summary
		body.Citation = summary.Citation()
	case lookup.StatusNotFound:
		code = http.StatusNotFound
	case lookup.StatusInvalid:
		code = http.StatusBadRequest
	default:
		code = http.StatusBadGateway
	}
	return c.JSON(code, body)
}

// run validates title locally and only then performs the lookup, so an
// empty title never reaches PubMed. Every outcome is counted.
func (s *Server) run(c echo.Context, title string) lookup.Result {
	ctx := c.Request().Context()
	log := logging.FromContext(ctx, s.logger)

	if err := lookup.ValidateTitle(title); err != nil {
		s.metrics.RecordLookup(lookup.StatusInvalid.String(), 0)
		log.Warn("empty title rejected")
		return lookup.Result{Status: lookup.StatusInvalid, Title: title, Err: err}
	}

	start := time.Now()
	res := s.looker.Lookup(ctx, title)
	elapsed := time.Since(start)
	s.metrics.RecordLookup(res.Status.String(), elapsed)

	switch res.Status {
	case lookup.StatusFound:
		log.Info("lookup found", "title", title, "pmid", res.Summary.PMID, "elapsed_ms", elapsed.Milliseconds())
	case lookup.StatusNotFound:
		log.Info("lookup not found", "title", title, "elapsed_ms", elapsed.Milliseconds())
	default:
		log.Error("lookup failed", "title", title, "error", res.Err, "elapsed_ms", elapsed.Milliseconds())
	}
	return res
}
