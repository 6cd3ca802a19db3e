// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubmed-lookup/internal/lookup"
	"github.com/pdiddy/pubmed-lookup/internal/metrics"
	"github.com/pdiddy/pubmed-lookup/pkg/types"
)

type fakeLooker struct {
	result lookup.Result
	titles []string
}

func (f *fakeLooker) Lookup(_ context.Context, title string) lookup.Result {
	f.titles = append(f.titles, title)
	r := f.result
	r.Title = title
	return r
}

var foundSummary = types.ArticleSummary{
	PMID:            "31978945",
	FirstAuthor:     "Zhu Na",
	PublicationDate: "2020 Feb 20",
	Journal:         "The New England journal of medicine",
}

func newTestServer(t *testing.T, res lookup.Result) (*Server, *fakeLooker, *metrics.Metrics) {
	t.Helper()
	looker := &fakeLooker{result: res}
	m := metrics.New()
	s, err := New(looker, m, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s, looker, m
}

func postForm(t *testing.T, s *Server, title string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"title": {title}}
	req := httptest.NewRequest(http.MethodPost, "/lookup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

// --- form ---

func TestIndexRendersForm(t *testing.T) {
	s, looker, _ := newTestServer(t, lookup.Result{})

	rec := get(t, s, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<form method="post" action="/lookup">`)
	assert.Contains(t, body, `name="title"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Empty(t, looker.titles)
}

func TestFormEmptyTitleWarnsWithoutLookup(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		s, looker, m := newTestServer(t, lookup.Result{Status: lookup.StatusFound, Summary: foundSummary})

		rec := postForm(t, s, title)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `class="box warning"`)
		assert.Contains(t, body, "Please enter a valid article title.")
		assert.NotContains(t, body, `class="box error"`)
		assert.NotContains(t, body, `id="first-author"`)
		assert.Empty(t, looker.titles, "no lookup for %q", title)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("invalid")))
	}
}

func TestFormFoundRendersFieldsAndCitation(t *testing.T) {
	s, looker, m := newTestServer(t, lookup.Result{Status: lookup.StatusFound, Summary: foundSummary})

	rec := postForm(t, s, "A Novel Coronavirus")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Equal(t, []string{"A Novel Coronavirus"}, looker.titles)
	assert.Contains(t, body, successMessage)
	assert.Contains(t, body, `<dd id="first-author">Zhu Na</dd>`)
	assert.Contains(t, body, `<dd id="publication-date">2020 Feb 20</dd>`)
	assert.Contains(t, body, `<dd id="journal">The New England journal of medicine</dd>`)
	assert.Contains(t, body, `<dd id="citation">The New England journal of medicine. 2020 Feb 20. Zhu Na</dd>`)
	assert.Contains(t, body, `value="A Novel Coronavirus"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("found")))
}

func TestFormNotFoundAndFailureShowError(t *testing.T) {
	tests := []struct {
		name    string
		result  lookup.Result
		label   string
		wantMsg string
	}{
		{
			name:    "not found",
			result:  lookup.Result{Status: lookup.StatusNotFound, Err: lookup.ErrNotFound},
			label:   "not_found",
			wantMsg: "No article matched",
		},
		{
			name:    "failure",
			result:  lookup.Result{Status: lookup.StatusFailed, Err: errors.New("esearch: Entrez returned HTTP 502")},
			label:   "failed",
			wantMsg: "An error occurred: esearch: Entrez returned HTTP 502",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, m := newTestServer(t, tt.result)

			rec := postForm(t, s, "some title")
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, `class="box error"`)
			assert.Contains(t, body, tt.wantMsg)
			assert.NotContains(t, body, `id="first-author"`)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues(tt.label)))
		})
	}
}

func TestFormEscapesTitle(t *testing.T) {
	s, _, _ := newTestServer(t, lookup.Result{Status: lookup.StatusNotFound, Err: lookup.ErrNotFound})

	rec := postForm(t, s, `<script>alert(1)</script>`)
	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
}

// --- JSON API ---

func TestAPILookupStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		result     lookup.Result
		title      string
		wantCode   int
		wantStatus string
	}{
		{"found", lookup.Result{Status: lookup.StatusFound, Summary: foundSummary}, "t", http.StatusOK, "found"},
		{"not found", lookup.Result{Status: lookup.StatusNotFound, Err: lookup.ErrNotFound}, "t", http.StatusNotFound, "not_found"},
		{"failed", lookup.Result{Status: lookup.StatusFailed, Err: errors.New("boom")}, "t", http.StatusBadGateway, "failed"},
		{"invalid", lookup.Result{}, "", http.StatusBadRequest, "invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestServer(t, tt.result)

			rec := get(t, s, "/api/lookup?title="+url.QueryEscape(tt.title))
			assert.Equal(t, tt.wantCode, rec.Code)

			var body apiResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestAPILookupFoundBody(t *testing.T) {
	s, looker, _ := newTestServer(t, lookup.Result{Status: lookup.StatusFound, Summary: foundSummary})

	rec := get(t, s, "/api/lookup?title="+url.QueryEscape("A Novel Coronavirus"))
	require.Equal(t, http.StatusOK, rec.Code)

	var body apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Summary)
	assert.Equal(t, foundSummary, *body.Summary)
	assert.Equal(t, "The New England journal of medicine. 2020 Feb 20. Zhu Na", body.Citation)
	assert.Equal(t, []string{"A Novel Coronavirus"}, looker.titles)
}

// --- ops endpoints ---

func TestHealthAndMetrics(t *testing.T) {
	s, _, _ := newTestServer(t, lookup.Result{Status: lookup.StatusFound, Summary: foundSummary})

	rec := get(t, s, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	postForm(t, s, "title")
	rec = get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `pubmed_lookup_requests_total{status="found"} 1`)
}

func TestRequestIDPropagated(t *testing.T) {
	s, _, _ := newTestServer(t, lookup.Result{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
}
