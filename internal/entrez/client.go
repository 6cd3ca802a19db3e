// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package entrez is a minimal client for the NCBI E-utilities PubMed
// endpoints: ESearch to turn a term into PMIDs and EFetch to read the
// full MEDLINE record for one PMID.
package entrez

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmed-lookup/internal/httputil"
	"github.com/pdiddy/pubmed-lookup/pkg/types"
)

// DefaultBaseURL is the public E-utilities root.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

const (
	serviceName = "Entrez"
	database    = "pubmed"
)

// Client calls ESearch and EFetch. Every request carries the tool and
// email parameters from its config, as the NCBI usage policy asks.
type Client struct {
	httpClient *http.Client
	cfg        types.EntrezConfig
}

// NewClient returns a client for cfg. When hc is nil a client with
// cfg.Timeout is created.
func NewClient(hc *http.Client, cfg types.EntrezConfig) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{httpClient: hc, cfg: cfg}
}

// Search runs ESearch for term and returns at most retmax PMIDs in the
// order the server ranked them. An empty slice means no match.
func (c *Client) Search(ctx context.Context, term string, retmax int) ([]string, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("empty search term")
	}
	if retmax <= 0 {
		retmax = 1
	}

	params := c.params()
	params.Set("term", term)
	params.Set("retmax", strconv.Itoa(retmax))
	params.Set("retmode", "json")

	body, err := httputil.Get(ctx, c.httpClient, c.endpoint("esearch.fcgi", params), c.cfg.UserAgent, serviceName)
	if err != nil {
		return nil, fmt.Errorf("esearch: %w", err)
	}
	defer body.Close()

	var sr esearchResponse
	if err := json.NewDecoder(body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}
	if sr.Error != "" {
		return nil, fmt.Errorf("esearch: %s", sr.Error)
	}
	if sr.Result.Error != "" {
		return nil, fmt.Errorf("esearch: %s", sr.Result.Error)
	}

	ids := sr.Result.IDList
	if len(ids) > retmax {
		ids = ids[:retmax]
	}
	return ids, nil
}

// Fetch runs EFetch for one PMID and returns the decoded article set.
func (c *Client) Fetch(ctx context.Context, pmid string) (*ArticleSet, error) {
	if strings.TrimSpace(pmid) == "" {
		return nil, fmt.Errorf("empty PMID")
	}

	params := c.params()
	params.Set("id", pmid)
	params.Set("rettype", "xml")
	params.Set("retmode", "xml")

	body, err := httputil.Get(ctx, c.httpClient, c.endpoint("efetch.fcgi", params), c.cfg.UserAgent, serviceName)
	if err != nil {
		return nil, fmt.Errorf("efetch %s: %w", pmid, err)
	}
	defer body.Close()

	var set ArticleSet
	if err := xml.NewDecoder(body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing efetch response for %s: %w", pmid, err)
	}
	return &set, nil
}

// params returns the query parameters shared by every call.
func (c *Client) params() url.Values {
	v := url.Values{"db": {database}}
	if c.cfg.Tool != "" {
		v.Set("tool", c.cfg.Tool)
	}
	if c.cfg.Email != "" {
		v.Set("email", c.cfg.Email)
	}
	return v
}

func (c *Client) endpoint(name string, params url.Values) string {
	return c.cfg.BaseURL + "/" + name + "?" + params.Encode()
}

// ESearch JSON structures.
type esearchResponse struct {
	Error  string        `json:"error"`
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	IDList []string `json:"idlist"`
	Error  string   `json:"ERROR"`
}
