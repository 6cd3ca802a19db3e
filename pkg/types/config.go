package types

import (
	"errors"
	"time"
)

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-lookup/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// EntrezConfig holds settings for the NCBI E-utilities client.
type EntrezConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the E-utilities root, without a trailing slash
	// (default https://eutils.ncbi.nlm.nih.gov/entrez/eutils).
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Tool identifies this program to NCBI. Sent as the "tool" parameter
	// on every request.
	Tool string `json:"tool" yaml:"tool" mapstructure:"tool"`

	// Email is the contact address NCBI uses to reach the operator.
	// Sent as the "email" parameter on every request.
	Email string `json:"email" yaml:"email" mapstructure:"email"`
}

// ServerConfig holds settings for the web form.
type ServerConfig struct {
	// Addr is the listen address (default ":8501").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// LogConfig selects the structured log output.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "json" or "text" (default text).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all settings.
type Config struct {
	Entrez EntrezConfig `json:"entrez" yaml:"entrez" mapstructure:"entrez"`
	Server ServerConfig `json:"server" yaml:"server" mapstructure:"server"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}

// Validate reports every setting that would make outbound calls
// impossible or anonymous.
func (c Config) Validate() error {
	var errs []error
	if c.Entrez.BaseURL == "" {
		errs = append(errs, errors.New("entrez.base_url must be set"))
	}
	if c.Entrez.Tool == "" {
		errs = append(errs, errors.New("entrez.tool must be set"))
	}
	if c.Entrez.Email == "" {
		errs = append(errs, errors.New("entrez.email must be set"))
	}
	return errors.Join(errs...)
}
