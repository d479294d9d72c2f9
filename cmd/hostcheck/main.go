package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/Control-D-Inc/hostname"
)

var (
	configPath  string
	listFiles   []string
	hostsFiles  []string
	invalidOnly bool
	watch       bool
	force       bool
	cfg         hostname.Config
	verbose     int
	silent      bool

	mainLog       = zerolog.New(io.Discard)
	consoleWriter zerolog.ConsoleWriter
	logFile       *os.File
)

func main() {
	rootCmd := initCLI()
	if err := rootCmd.Execute(); err != nil {
		// The result table has already been printed.
		if !errors.Is(err, errInvalidHostnames) {
			mainLog.Error().Msg(err.Error())
		}
		os.Exit(1)
	}
}

func normalizeLogFilePath(logFilePath string) string {
	if logFilePath == "" || filepath.IsAbs(logFilePath) {
		return logFilePath
	}
	dir, _ := os.UserHomeDir()
	if dir == "" {
		return logFilePath
	}
	return filepath.Join(dir, logFilePath)
}

func initConsoleLogging() {
	consoleWriter = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = time.StampMilli
	})
	multi := zerolog.MultiLevelWriter(consoleWriter)
	mainLog = zerolog.New(multi).With().Timestamp().Logger()
	l := mainLog
	hostname.Logger.Store(&l)
	switch {
	case silent:
		zerolog.SetGlobalLevel(zerolog.NoLevel)
	case verbose == 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case verbose > 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.NoticeLevel)
	}
}

// initLogging initializes log setup base on current config.
//
// It runs again for every config reload in watch mode. The log file stays
// open while log_path is unchanged, and is closed when log_path changes.
func initLogging() {
	writers := []io.Writer{io.Discard}
	logFilePath := normalizeLogFilePath(cfg.Service.LogPath)
	if logFile != nil && logFile.Name() != logFilePath {
		if err := logFile.Close(); err != nil {
			mainLog.Warn().Err(err).Msg("could not close old log file")
		}
		logFile = nil
	}
	if logFilePath != "" && logFile == nil {
		// Create parent directory if necessary.
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
			mainLog.Error().Msgf("failed to create log path: %v", err)
			os.Exit(1)
		}
		f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_RDWR|os.O_APPEND, os.FileMode(0o600))
		if err != nil {
			mainLog.Error().Msgf("failed to create log file: %v", err)
			os.Exit(1)
		}
		logFile = f
	}
	if logFile != nil {
		writers = append(writers, logFile)
	}
	writers = append(writers, consoleWriter)
	multi := zerolog.MultiLevelWriter(writers...)
	mainLog = zerolog.New(multi).With().Timestamp().Logger()
	l := mainLog
	hostname.Logger.Store(&l)

	logLevel := cfg.Service.LogLevel
	switch {
	case silent:
		zerolog.SetGlobalLevel(zerolog.NoLevel)
		return
	case verbose == 1:
		logLevel = "info"
	case verbose > 1:
		logLevel = "debug"
	}
	if logLevel == "" {
		return
	}
	if logLevel == "notice" {
		zerolog.SetGlobalLevel(zerolog.NoticeLevel)
		return
	}
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		mainLog.Warn().Err(err).Msg("could not set log level")
		return
	}
	zerolog.SetGlobalLevel(level)
}
