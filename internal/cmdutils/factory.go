package cmdutils

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchreport/internal/config"
	"benchreport/internal/telemetry"
)

// NewFS returns the filesystem the commands read from and write to.
// Tests replace it with an in-memory filesystem.
var NewFS = func() afero.Fs {
	return afero.NewOsFs()
}

// LoadConfig loads configuration, binds the command's flags into it,
// validates it and initializes logging.
var LoadConfig = func(cmd *cobra.Command) (*viper.Viper, error) {
	cfgFile, _ := cmd.Flags().GetString("config")

	v, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	if err := config.Validate(v); err != nil {
		return nil, err
	}

	telemetry.InitLogger(v.GetBool("verbose"), v.GetString("log-file"))
	if path := v.ConfigFileUsed(); path != "" {
		telemetry.LogDebug("Using config file", "path", path)
	}
	return v, nil
}

// AddCommonFlags registers the flags shared by both tools.
func AddCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "config file (default is ./benchreport.yaml)")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	cmd.Flags().String("log-file", "", "Also write logs to this file")
}
