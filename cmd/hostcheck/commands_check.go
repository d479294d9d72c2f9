package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Control-D-Inc/hostname/internal/report"
	"github.com/Control-D-Inc/hostname/internal/source"
)

const argsOrigin = "args"

func initCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check [hostname...]",
		Short: "Check hostnames from arguments, files or config groups",
		Long: `Check hostnames from arguments, files or config groups.

Exit status is 1 if any hostname is invalid.`,
		Example: `  hostcheck check -- example.com -invalid-name
  hostcheck check -f names.txt --hosts-file /etc/hosts
  cat names.txt | hostcheck check -f -
  hostcheck check -c hostcheck.toml --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(listFiles) == 0 && len(hostsFiles) == 0 && configPath == "" {
				return errors.New("no hostname given")
			}
			if watch {
				return watchCheck(cmd, args)
			}
			return runCheck(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}
	checkCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file, its groups are checked too")
	checkCmd.Flags().StringArrayVarP(&listFiles, "file", "f", nil, `Path to file with one hostname per line, "-" for stdin`)
	checkCmd.Flags().StringArrayVarP(&hostsFiles, "hosts-file", "", nil, "Path to hosts file")
	checkCmd.Flags().BoolVarP(&invalidOnly, "invalid-only", "", false, "Only print invalid hostnames")
	checkCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Check again whenever an input file changes")
	return checkCmd
}

// runCheck collects all inputs, prints the result table and a summary.
// errInvalidHostnames is returned if any hostname is invalid.
func runCheck(ctx context.Context, stdin io.Reader, out io.Writer, args []string) error {
	entries, err := collectEntries(ctx, stdin, args)
	if err != nil {
		return err
	}
	results := report.Check(entries)
	report.Render(out, results, invalidOnly)
	valid, invalid := report.Summary(results)
	fmt.Fprintf(out, "%d valid, %d invalid\n", valid, invalid)
	mainLog.Debug().Int("valid", valid).Int("invalid", invalid).Msg("check done")
	if invalid > 0 {
		return errInvalidHostnames
	}
	return nil
}

func collectEntries(ctx context.Context, stdin io.Reader, args []string) ([]source.Entry, error) {
	entries := make([]source.Entry, 0, len(args))
	for _, arg := range args {
		entries = append(entries, source.Entry{Origin: argsOrigin, Hostname: arg})
	}

	inputs := make([]source.Input, 0, len(listFiles)+len(hostsFiles))
	for _, p := range listFiles {
		inputs = append(inputs, source.Input{Kind: source.KindList, Path: p})
	}
	for _, p := range hostsFiles {
		inputs = append(inputs, source.Input{Kind: source.KindHosts, Path: p})
	}
	fileEntries, err := source.Collect(ctx, stdin, inputs)
	if err != nil {
		return nil, err
	}
	entries = append(entries, fileEntries...)

	if configPath != "" {
		if err := readConfig(false); err != nil {
			return nil, err
		}
		for _, key := range cfg.GroupKeys() {
			gc := cfg.Group[key]
			if gc == nil {
				continue
			}
			origin := "group:" + gc.DisplayName(key)
			for _, hn := range gc.Hostnames {
				entries = append(entries, source.Entry{Origin: origin, Hostname: hn})
			}
		}
	}
	return entries, nil
}

// watchCheck runs the check once, then again on every change to an input file,
// until the process is interrupted.
func watchCheck(cmd *cobra.Command, args []string) error {
	paths := append([]string{}, listFiles...)
	paths = append(paths, hostsFiles...)
	if configPath != "" {
		paths = append(paths, configPath)
	}
	for _, p := range paths {
		if p == source.Stdin {
			return errors.New("can not watch stdin")
		}
	}
	if len(paths) == 0 {
		return errors.New("nothing to watch, use --file, --hosts-file or --config")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	check := func() {
		err := runCheck(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), args)
		if err != nil && !errors.Is(err, errInvalidHostnames) {
			mainLog.Error().Err(err).Msg("check failed")
		}
	}
	check()
	return source.Watch(ctx, paths, func(path string) {
		mainLog.Info().Msgf("%s changed, checking again", path)
		check()
	})
}
