// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for pubmed-lookup.
// ArticleSummary is the only record that leaves a lookup; the config
// structs carry everything a lookup needs at construction time.
package types

// ArticleSummary holds the three fields extracted from a PubMed record.
// A summary is built once per lookup and never modified.
type ArticleSummary struct {
	// PMID is the PubMed identifier the summary was read from.
	PMID string `json:"pmid" yaml:"pmid"`

	// FirstAuthor is the first listed author as "LastName ForeName".
	FirstAuthor string `json:"first_author" yaml:"first_author"`

	// PublicationDate is the journal issue date formatted as "Year Month Day".
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Journal is the full journal title.
	Journal string `json:"journal" yaml:"journal"`
}

// Citation returns the one-line combination "{journal}. {date}. {author}".
func (s ArticleSummary) Citation() string {
	return s.Journal + ". " + s.PublicationDate + ". " + s.FirstAuthor
}
