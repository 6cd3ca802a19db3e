// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-lookup/internal/entrez"
	"github.com/pdiddy/pubmed-lookup/internal/format"
	"github.com/pdiddy/pubmed-lookup/internal/lookup"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <title...>",
	Short: "Look up one article title and print its summary",
	Long: `Lookup searches PubMed for the given title, fetches the first match and
prints its first author, publication date, journal and citation.

Words after the command are joined with spaces, so quoting the title is
optional. Exit status is 0 when an article is found, 2 when nothing
matched, and 1 on any failure or an empty title.`,
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringP("format", "f", "table", "output format: table, json, yaml, csl")
	lookupCmd.Flags().String("color", "auto", "colour outcome lines: auto, always, never")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	outFormat, err := format.Parse(formatName)
	if err != nil {
		return err
	}
	colorMode, _ := cmd.Flags().GetString("color")
	useColors, err := resolveColors(colorMode)
	if err != nil {
		return err
	}
	p := &printer{out: cmd.OutOrStdout(), err: cmd.ErrOrStderr(), useColors: useColors}

	title := strings.Join(args, " ")
	if err := lookup.ValidateTitle(title); err != nil {
		p.warning("Please enter a valid article title.")
		return &exitCodeError{code: exitError, err: err}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := entrez.NewClient(nil, cfg.Entrez)
	res := lookup.New(client, client).Lookup(ctx, title)

	switch res.Status {
	case lookup.StatusFound:
		p.success("Article found (PMID %s).", res.Summary.PMID)
		return format.Write(p.out, outFormat, res.Summary)
	case lookup.StatusNotFound:
		p.error("%s", res.Message())
		return &exitCodeError{code: exitNotFound, err: res.Err}
	default:
		p.error("%s", res.Message())
		return &exitCodeError{code: exitError, err: res.Err}
	}
}
