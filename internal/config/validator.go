package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Validate checks configuration values and returns every problem in one error.
func Validate(v *viper.Viper) error {
	var errors []string

	if v.IsSet("dpi") {
		if dpi := v.GetInt("dpi"); dpi <= 0 {
			errors = append(errors, fmt.Sprintf("dpi must be positive, got: %d", dpi))
		}
	}

	for _, key := range []string{"width", "height"} {
		if v.IsSet(key) {
			if size := v.GetFloat64(key); size <= 0 {
				errors = append(errors, fmt.Sprintf("%s must be positive, got: %v", key, size))
			}
		}
	}

	if v.IsSet("output") && strings.TrimSpace(v.GetString("output")) == "" {
		errors = append(errors, "output must not be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}
