package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables read by both tools.
const EnvPrefix = "BENCHREPORT"

// DefaultConfigName is looked up in the working directory when no
// --config flag is given.
const DefaultConfigName = "benchreport"

// Defaults applied before any file, env or flag value.
var Defaults = map[string]any{
	"output":  "charts",
	"title":   "Performance Comparison",
	"dpi":     300,
	"width":   12.0,
	"height":  6.0,
	"style":   "dark",
	"verbose": false,
}

// Load initializes a configuration from an optional file and environment variables.
// A missing default config file is not an error; a missing explicit one is.
func Load(cfgFile string) (*viper.Viper, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(DefaultConfigName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}
