package main

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Control-D-Inc/hostname"
)

const defaultConfigName = "hostcheck"

var v = viper.NewWithOptions(viper.KeyDelimiter("::"))

var errInvalidHostnames = errors.New("invalid hostnames found")

func initCLI() *cobra.Command {
	// Enable opening via explorer.exe on Windows.
	// See: https://github.com/spf13/cobra/issues/844.
	cobra.MousetrapHelpText = ""

	v = viper.NewWithOptions(viper.KeyDelimiter("::"))
	hostname.InitConfig(v, defaultConfigName)
	cfg = hostname.Config{}

	rootCmd := &cobra.Command{
		Use:           "hostcheck",
		Short:         "Validate hostnames according to RFC 1123",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConsoleLogging()
		},
	}
	rootCmd.PersistentFlags().CountVarP(
		&verbose,
		"verbose",
		"v",
		`verbose log output, "-v" means info level logging enabled, "-vv" means debug level logging enabled`,
	)
	rootCmd.PersistentFlags().BoolVarP(&silent, "silent", "s", false, `do not write any log output`)

	rootCmd.AddCommand(initCheckCmd())
	rootCmd.AddCommand(initLintCmd())
	rootCmd.AddCommand(initConfigCmd())
	return rootCmd
}

// readConfig reads the config file at configPath into cfg.
func readConfig(validate bool) error {
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to decode config file: %w", err)
	}
	cfg = hostname.Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	initLogging()
	if !validate {
		return nil
	}
	return hostname.ValidateConfig(validator.New(), &cfg)
}
