// Package config loads the settings of the exchange tool from flags,
// environment variables and .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	keyPricesFile = "PRICES_FILE"
	keyLogLevel   = "LOG_LEVEL"
	keyLogFormat  = "LOG_FORMAT"
)

// flag name for each key
var flags = map[string]string{
	keyPricesFile: "prices",
	keyLogLevel:   "log-level",
	keyLogFormat:  "log-format",
}

var defaults = map[string]string{
	keyPricesFile: "",
	keyLogLevel:   "info",
	keyLogFormat:  "text",
}

// Config holds the tool configuration.
type Config struct {
	PricesFile string `mapstructure:"PRICES_FILE" validate:"required"`
	LogLevel   string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat  string `mapstructure:"LOG_FORMAT" validate:"oneof=json text"`
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flags[keyPricesFile], defaults[keyPricesFile], "file with one SELL_BUY,price per line")
	fs.String(flags[keyLogLevel], defaults[keyLogLevel], "log level: debug, info, warn or error")
	fs.String(flags[keyLogFormat], defaults[keyLogFormat], "log format: json or text")
}

// Load resolves the configuration. Flags set on the command line win over
// environment variables, which win over values from the env files.
// Without env files, ".env" is read if it exists.
func Load(flagSet *pflag.FlagSet, envFiles ...string) (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	dotenv, err := godotenv.Read(envFiles...)
	switch {
	case err == nil:
	case len(envFiles) == 0 && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading env files: %w", err)
	}
	for key := range defaults {
		if val, ok := dotenv[key]; ok {
			v.SetDefault(key, val)
		}
	}

	v.AutomaticEnv()

	if flagSet != nil {
		for key, name := range flags {
			if f := flagSet.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %q: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		PricesFile: v.GetString(keyPricesFile),
		LogLevel:   v.GetString(keyLogLevel),
		LogFormat:  v.GetString(keyLogFormat),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
