package format

import (
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-lookup/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names follow the CSL-YAML schema so that output is
// consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Author         []CSLName `yaml:"author,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	PMID           string    `yaml:"PMID,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate holds a date the way PubMed printed it. Month names and
// partial dates do not fit date-parts, so the literal form is used.
type CSLDate struct {
	Literal string `yaml:"literal"`
}

// FormatCSL writes the summary as a one-item CSL-YAML list.
func FormatCSL(w io.Writer, s types.ArticleSummary) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode([]CSLItem{toCSLItem(s)})
}

func toCSLItem(s types.ArticleSummary) CSLItem {
	item := CSLItem{
		ID:             "pmid:" + s.PMID,
		Type:           "article-journal",
		ContainerTitle: s.Journal,
		PMID:           s.PMID,
	}
	if s.PMID == "" {
		item.ID = "pubmed-lookup"
	}
	if s.FirstAuthor != "" {
		item.Author = []CSLName{{Literal: s.FirstAuthor}}
	}
	if s.PublicationDate != "" {
		item.Issued = &CSLDate{Literal: s.PublicationDate}
	}
	return item
}
