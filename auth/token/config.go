package token

import (
	"errors"
	"time"
)

// Config configures the token codec.
type Config struct {
	// Secret is the HMAC signing key. Required.
	Secret string `yaml:"secret" mapstructure:"secret"`

	// Issuer is the "iss" claim stamped on issued tokens and required on
	// verified ones.
	Issuer string `yaml:"issuer" mapstructure:"issuer"`

	// Audience is the "aud" claim stamped on issued tokens and required on
	// verified ones.
	Audience string `yaml:"audience" mapstructure:"audience"`

	// TTL is the default token lifetime (default: 2h).
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.TTL == 0 {
		c.TTL = 2 * time.Hour
	}
	if c.Issuer == "" {
		c.Issuer = "userd"
	}
	if c.Audience == "" {
		c.Audience = "userd-api"
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("token: secret is required")
	}
	if len(c.Secret) < 32 {
		return errors.New("token: secret must be at least 32 bytes")
	}
	if c.TTL < 0 {
		return errors.New("token: ttl must be non-negative")
	}
	return nil
}
