package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

var errInvalidConfig = errors.New("invalid config")

func initLintCmd() *cobra.Command {
	lintCmd := &cobra.Command{
		Use:   "lint",
		Short: "Validate a config file, including every hostname of every group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd.OutOrStdout())
		},
	}
	lintCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	_ = lintCmd.MarkFlagRequired("config")
	return lintCmd
}

func runLint(out io.Writer) error {
	err := readConfig(true)
	if err == nil {
		fmt.Fprintf(out, "%s: ok\n", configPath)
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		mainLog.Debug().Str("field", fe.Namespace()).Str("tag", fe.Tag()).Msg("validation failed")
		fmt.Fprintf(out, "%s: %s: %q fails %q\n", configPath, fe.Namespace(), fmt.Sprint(fe.Value()), fe.Tag())
	}
	return errInvalidConfig
}
