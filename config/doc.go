// Package config assembles userd's runtime configuration.
//
// Values are loaded in layers: a YAML config file first, then a .env file,
// then process environment variables, each overriding the previous. Every
// section owns its own defaults and validation; Load applies both so a
// *Config that comes back without error is ready to use.
//
//	cfg, err := config.Load()
//	cfg, err := config.Load(config.WithConfigFile("./config.yml"))
package config
