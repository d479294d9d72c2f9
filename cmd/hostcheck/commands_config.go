package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func initConfigCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigName + ".toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := writeConfigFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "", false, "Overwrite existing config file")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage hostcheck config",
	}
	configCmd.AddCommand(initCmd)
	return configCmd
}

func writeConfigFile(path string) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
	}
	bs, err := toml.Marshal(v.AllSettings())
	if err != nil {
		return fmt.Errorf("unable to marshal config to toml: %w", err)
	}
	if err := os.WriteFile(path, bs, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
