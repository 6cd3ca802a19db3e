// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-lookup CLI. The serve
// subcommand starts the web form; lookup runs one query in the terminal.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-lookup/internal/config"
	"github.com/pdiddy/pubmed-lookup/internal/secrets"
	"github.com/pdiddy/pubmed-lookup/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Exit codes.
const (
	exitError    = 1
	exitNotFound = 2
)

var (
	// v holds the resolved configuration sources, built by initConfig.
	v *viper.Viper

	// loadedSecrets holds values read from the secrets directory at startup.
	loadedSecrets secrets.Set
)

// exitCodeError carries a process exit status through cobra's RunE for
// an outcome the command has already reported to the user.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

// rootCmd is the base command for the pubmed-lookup CLI.
var rootCmd = &cobra.Command{
	Use:   "pubmed-lookup",
	Short: "Look up a PubMed article's first author, date and journal by title",
	Long: `pubmed-lookup searches PubMed for an article title, fetches the best
match and reports its first author, publication date and journal, together
with a one-line citation "{journal}. {date}. {author}".

Use "serve" for the web form or "lookup" for a single query in the terminal.
Every request to NCBI carries the configured tool name and contact email.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is normal.
		_ = godotenv.Load()

		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir, os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", s.Keys())
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubmed-lookup.yaml or ~/.config/pubmed-lookup/pubmed-lookup.yaml)")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets/", "directory of secret files (ncbi-email, ncbi-tool)")
	rootCmd.PersistentFlags().String("email", "", "contact email sent to NCBI with every request")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	v = config.New(cfgFile)

	used, err := config.ReadFile(v)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
		return
	}
	if used != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", used)
	}
}

// loadConfig resolves the final configuration for a command. The --email
// flag wins over every other source.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	if email, _ := cmd.Flags().GetString("email"); email != "" {
		v.Set("entrez.email", email)
	}
	return config.Load(v, loadedSecrets)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ec *exitCodeError
		if errors.As(err, &ec) {
			os.Exit(ec.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}
}
