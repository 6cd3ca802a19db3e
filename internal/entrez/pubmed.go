// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"errors"
	"strings"
)

// Extraction errors. Each names a part of the record that a summary
// cannot be built without.
var (
	ErrNoArticles     = errors.New("efetch returned no PubmedArticle")
	ErrNoAuthors      = errors.New("article has no authors listed")
	ErrAuthorName     = errors.New("first author has no last name or fore name")
	ErrMissingJournal = errors.New("article has no journal title")
)

// ArticleSet is the root of an EFetch PubMed XML response.
type ArticleSet struct {
	Articles []PubmedArticle `xml:"PubmedArticle"`
}

// First returns the first article in the set.
func (s *ArticleSet) First() (*PubmedArticle, error) {
	if s == nil || len(s.Articles) == 0 {
		return nil, ErrNoArticles
	}
	return &s.Articles[0], nil
}

// PubmedArticle wraps one MEDLINE citation.
type PubmedArticle struct {
	Citation MedlineCitation `xml:"MedlineCitation"`
}

// MedlineCitation holds the PMID and the article body.
type MedlineCitation struct {
	PMID    string  `xml:"PMID"`
	Article Article `xml:"Article"`
}

// Article is the bibliographic part of a citation.
type Article struct {
	Journal *Journal `xml:"Journal"`
	Authors []Author `xml:"AuthorList>Author"`
}

// FirstAuthor returns the first entry of the author list.
func (a Article) FirstAuthor() (Author, error) {
	if len(a.Authors) == 0 {
		return Author{}, ErrNoAuthors
	}
	return a.Authors[0], nil
}

// JournalTitle returns the full journal title.
func (a Article) JournalTitle() (string, error) {
	if a.Journal == nil {
		return "", ErrMissingJournal
	}
	title := strings.TrimSpace(a.Journal.Title)
	if title == "" {
		return "", ErrMissingJournal
	}
	return title, nil
}

// PubDate returns the issue publication date. A record without a journal
// issue yields a zero PubDate, whose parts all report absent.
func (a Article) PubDate() PubDate {
	if a.Journal == nil || a.Journal.Issue == nil || a.Journal.Issue.PubDate == nil {
		return PubDate{}
	}
	return *a.Journal.Issue.PubDate
}

// Author is one AuthorList entry. Group authors have neither field set.
type Author struct {
	LastName *string `xml:"LastName"`
	ForeName *string `xml:"ForeName"`
}

// Name returns "LastName ForeName". Both parts are required.
func (a Author) Name() (string, error) {
	last, okLast := optional(a.LastName)
	fore, okFore := optional(a.ForeName)
	if !okLast || !okFore {
		return "", ErrAuthorName
	}
	return last + " " + fore, nil
}

// Journal describes the publishing journal.
type Journal struct {
	Title string        `xml:"Title"`
	Issue *JournalIssue `xml:"JournalIssue"`
}

// JournalIssue holds the issue date.
type JournalIssue struct {
	PubDate *PubDate `xml:"PubDate"`
}

// PubDate is the issue date. Each part may be missing independently; an
// element that is present but blank counts as missing.
// A free-text MedlineDate is not parsed, so such a date has no parts.
type PubDate struct {
	YearValue  *string `xml:"Year"`
	MonthValue *string `xml:"Month"`
	DayValue   *string `xml:"Day"`
}

// Year returns the year and whether it was present.
func (d PubDate) Year() (string, bool) { return optional(d.YearValue) }

// Month returns the month as written in the record ("Jan", "01", ...).
func (d PubDate) Month() (string, bool) { return optional(d.MonthValue) }

// Day returns the day of month and whether it was present.
func (d PubDate) Day() (string, bool) { return optional(d.DayValue) }

func optional(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}
