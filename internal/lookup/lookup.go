// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lookup turns an article title into an ArticleSummary by running
// one PubMed search and one fetch in sequence.
//
// Every call to Lookup ends in exactly one Result: a summary, a
// not-found outcome, or a failure carrying its cause. Nothing is retried
// and no partial summary is ever returned.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/pubmed-lookup/internal/entrez"
	"github.com/pdiddy/pubmed-lookup/pkg/types"
)

// UnknownDatePart replaces a missing year or month in a formatted date.
const UnknownDatePart = "unknown"

var (
	// ErrEmptyTitle is returned for a title that is empty after trimming.
	ErrEmptyTitle = errors.New("title is empty: enter an article title")

	// ErrNotFound marks a search that matched no article.
	ErrNotFound = errors.New("no matching article found")
)

// Searcher returns PubMed IDs for a search term, best match first.
type Searcher interface {
	Search(ctx context.Context, term string, retmax int) ([]string, error)
}

// Fetcher returns the full record set for one PubMed ID.
type Fetcher interface {
	Fetch(ctx context.Context, pmid string) (*entrez.ArticleSet, error)
}

// Service performs title lookups against a Searcher and a Fetcher.
// *entrez.Client satisfies both.
type Service struct {
	searcher Searcher
	fetcher  Fetcher
}

// New returns a Service.
func New(searcher Searcher, fetcher Fetcher) *Service {
	return &Service{searcher: searcher, fetcher: fetcher}
}

// ValidateTitle returns ErrEmptyTitle when title has no visible characters.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Lookup searches for title, fetches the first match and extracts its
// summary. An invalid title makes no outbound call; a title with no
// match makes no fetch call.
func (s *Service) Lookup(ctx context.Context, title string) Result {
	if err := ValidateTitle(title); err != nil {
		return Result{Status: StatusInvalid, Title: title, Err: err}
	}

	ids, err := s.searcher.Search(ctx, title, 1)
	if err != nil {
		return failed(title, fmt.Errorf("searching PubMed: %w", err))
	}
	if len(ids) == 0 {
		return Result{Status: StatusNotFound, Title: title, Err: ErrNotFound}
	}

	pmid := ids[0]
	set, err := s.fetcher.Fetch(ctx, pmid)
	if err != nil {
		return failed(title, fmt.Errorf("fetching PMID %s: %w", pmid, err))
	}

	summary, err := Extract(set)
	if err != nil {
		return failed(title, fmt.Errorf("reading PMID %s: %w", pmid, err))
	}
	if summary.PMID == "" {
		summary.PMID = pmid
	}
	return Result{Status: StatusFound, Title: title, Summary: summary}
}

// Extract builds a summary from the first article in set. The author and
// journal are required; the date parts fall back per FormatDate.
func Extract(set *entrez.ArticleSet) (types.ArticleSummary, error) {
	article, err := set.First()
	if err != nil {
		return types.ArticleSummary{}, err
	}
	a := article.Citation.Article

	first, err := a.FirstAuthor()
	if err != nil {
		return types.ArticleSummary{}, err
	}
	author, err := first.Name()
	if err != nil {
		return types.ArticleSummary{}, err
	}

	journal, err := a.JournalTitle()
	if err != nil {
		return types.ArticleSummary{}, err
	}

	date := a.PubDate()
	year, _ := date.Year()
	month, _ := date.Month()
	day, _ := date.Day()

	return types.ArticleSummary{
		PMID:            strings.TrimSpace(article.Citation.PMID),
		FirstAuthor:     author,
		PublicationDate: FormatDate(year, month, day),
		Journal:         journal,
	}, nil
}

// FormatDate renders "{year} {month} {day}". An empty year or month
// becomes UnknownDatePart; an empty day is left out. Trailing spaces are
// trimmed, so ("2020", "Jan", "") is "2020 Jan" and ("", "", "") is
// "unknown unknown".
func FormatDate(year, month, day string) string {
	if year == "" {
		year = UnknownDatePart
	}
	if month == "" {
		month = UnknownDatePart
	}
	return strings.TrimRight(year+" "+month+" "+day, " \t")
}

func failed(title string, err error) Result {
	return Result{Status: StatusFailed, Title: title, Err: err}
}
