package main

import (
	"fmt"
	"github.com/Borislavv/go-tiered-cache/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
)

type app struct {
	stdout     io.Writer
	log        zerolog.Logger
	configPath string
	verbose    bool
}

func newApp(stdout io.Writer, log zerolog.Logger) *app {
	return &app{stdout: stdout, log: log}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tieredcache",
		Short:         "Exercise the tiered payload cache",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a yaml cache config (defaults to the built-in tier table)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log cache internals at debug level")
	cmd.AddCommand(newDemoCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	return cmd
}

func (a *app) loadConfig() (*config.Cache, error) {
	if a.configPath == "" {
		cfg := config.Default()
		cfg.AdjustConfig()
		return cfg, nil
	}
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// cacheLogger is the structured logger handed to the cache library.
func (a *app) cacheLogger() *slog.Logger {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(a.log, &slog.HandlerOptions{Level: level})).
		With(slog.String("service", "tieredcache"))
}
