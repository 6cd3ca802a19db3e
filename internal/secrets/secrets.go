// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets reads operator-specific values from a directory of
// plain-text files. The filename is the key and the trimmed contents are
// the value. These are values that should stay out of a committed config
// file, such as the contact email sent to NCBI.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Keys read by pubmed-lookup.
const (
	// KeyEmail holds the contact email attached to E-utilities requests.
	KeyEmail = "ncbi-email"
	// KeyTool overrides the tool name attached to E-utilities requests.
	KeyTool = "ncbi-tool"
)

// Set maps key names to values.
type Set map[string]string

// Get returns the value for key, or fallback when key is absent.
func (s Set) Get(key, fallback string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return fallback
}

// Keys returns the loaded key names in sorted order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads every regular, non-hidden file in dir. A missing directory
// yields an empty Set. A file that cannot be read is reported on warn and
// skipped; empty files are skipped silently.
func Load(dir string, warn io.Writer) (Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Set{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	set := make(Set)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			set[name] = value
		}
	}
	return set, nil
}
