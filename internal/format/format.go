// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format renders an ArticleSummary for the terminal: a labelled
// table, JSON, YAML, or a CSL-YAML entry.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-lookup/pkg/types"
)

// Format names an output format.
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
	CSL   Format = "csl"
)

// Formats lists the accepted values in help order.
var Formats = []Format{Table, JSON, YAML, CSL}

// Parse returns the Format named by s.
func Parse(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q: must be one of table, json, yaml, csl", s)
}

// Write renders s in format f to w.
func Write(w io.Writer, f Format, s types.ArticleSummary) error {
	switch f {
	case Table:
		return FormatTable(w, s)
	case JSON:
		return FormatJSON(w, s)
	case YAML:
		return FormatYAML(w, s)
	case CSL:
		return FormatCSL(w, s)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// FormatTable writes the three fields and the combined citation as a
// two-column table.
func FormatTable(w io.Writer, s types.ArticleSummary) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)

	table.Header([]string{"Field", "Value"})
	if err := table.Bulk(tableRows(s)); err != nil {
		return fmt.Errorf("building table: %w", err)
	}
	return table.Render()
}

func tableRows(s types.ArticleSummary) [][]string {
	return [][]string{
		{"First author", s.FirstAuthor},
		{"Publication date", s.PublicationDate},
		{"Journal", s.Journal},
		{"Citation", s.Citation()},
		{"PMID", s.PMID},
	}
}

// summaryDoc is the JSON/YAML shape: the summary plus its citation.
type summaryDoc struct {
	types.ArticleSummary `yaml:",inline"`
	Citation             string `json:"citation" yaml:"citation"`
}

// FormatJSON writes the summary as indented JSON.
func FormatJSON(w io.Writer, s types.ArticleSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summaryDoc{ArticleSummary: s, Citation: s.Citation()})
}

// FormatYAML writes the summary as a YAML mapping.
func FormatYAML(w io.Writer, s types.ArticleSummary) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(summaryDoc{ArticleSummary: s, Citation: s.Citation()})
}
