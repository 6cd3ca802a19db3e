// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves pubmed-lookup settings from a YAML file,
// PUBMED_LOOKUP_* environment variables and the secrets directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-lookup/internal/entrez"
	"github.com/pdiddy/pubmed-lookup/internal/secrets"
	"github.com/pdiddy/pubmed-lookup/pkg/types"
)

const (
	// Name is the config file base name and the default NCBI tool name.
	Name = "pubmed-lookup"

	// EnvPrefix prefixes environment overrides, e.g. PUBMED_LOOKUP_ENTREZ_EMAIL.
	EnvPrefix = "PUBMED_LOOKUP"

	DefaultAddr      = ":8501"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "pubmed-lookup/0.1"
)

// New returns a viper instance with defaults and environment binding in
// place. When file is empty, pubmed-lookup.yaml is searched for in the
// working directory and in ~/.config/pubmed-lookup/.
func New(file string) *viper.Viper {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	return v
}

// SetDefaults registers every key so that environment overrides apply
// even when no config file is present.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("entrez.base_url", entrez.DefaultBaseURL)
	v.SetDefault("entrez.tool", "")
	v.SetDefault("entrez.email", "")
	v.SetDefault("entrez.timeout", DefaultTimeout)
	v.SetDefault("entrez.user_agent", DefaultUserAgent)
	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// ReadFile reads the config file if one exists. It returns the path used,
// or "" when no file was found.
func ReadFile(v *viper.Viper) (string, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return "", nil
		}
		return "", fmt.Errorf("reading config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load decodes v into a Config. Empty tool and email values fall back to
// the secrets set, and the tool name then to Name. The result is
// validated.
func Load(v *viper.Viper, sec secrets.Set) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.Entrez.Email == "" {
		cfg.Entrez.Email = sec.Get(secrets.KeyEmail, "")
	}
	if cfg.Entrez.Tool == "" {
		cfg.Entrez.Tool = sec.Get(secrets.KeyTool, Name)
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config (set it in %s.yaml, %s_* variables or .secrets/): %w", Name, EnvPrefix, err)
	}
	return cfg, nil
}
