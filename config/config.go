package config

import (
	"fmt"

	"github.com/skillsenselab/userd/auth/password"
	"github.com/skillsenselab/userd/auth/token"
	"github.com/skillsenselab/userd/logger"
	"github.com/skillsenselab/userd/observability"
	"github.com/skillsenselab/userd/ratelimit"
	"github.com/skillsenselab/userd/server"
)

// Config is the complete runtime configuration of userd.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging        logger.Config        `yaml:"logging" mapstructure:"logging"`
	Server         server.Config        `yaml:"server" mapstructure:"server"`
	Token          token.Config         `yaml:"token" mapstructure:"token"`
	Password       password.Config      `yaml:"password" mapstructure:"password"`
	LoginRateLimit ratelimit.Config     `yaml:"login_rate_limit" mapstructure:"login_rate_limit"`
	Observability  observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "userd"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	// Debug exposes unexpected-error causes to clients, so it is never
	// defaulted on; every environment requires an explicit debug: true.
	if c.Version == "" {
		c.Version = "dev"
	}

	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Token.ApplyDefaults()
	c.Password.ApplyDefaults()
	c.LoginRateLimit.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate validates every section. The token secret is checked here, so a
// deployment that forgot to set one fails at startup rather than at the
// first login.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}

	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Token.Validate(); err != nil {
		return err
	}
	if err := c.Password.Validate(); err != nil {
		return err
	}
	if err := c.Observability.Validate(); err != nil {
		return err
	}
	return nil
}

// Load reads the layered configuration sources, applies defaults, and
// validates the result.
func Load(opts ...LoaderOption) (*Config, error) {
	cfg := &Config{}
	if err := load(cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
