package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/log"
)

var (
	// Flags
	configFile string
	debug      bool
)

// newRootOpts fills in shared dependencies once flags are parsed. The
// config file is optional unless --config was given explicitly; flags
// layered on top of it are handled per command.
func newRootOpts(ctx context.Context, ro *opts.RootOpts) error {
	setupLogging()

	cfg := &config.Config{}
	explicit := configFile != defaultConfigFile
	if _, err := os.Stat(configFile); err == nil {
		cfg, err = config.LoadConfig(ctx, configFile)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
	} else if explicit {
		return errors.Errorf("config file %s: %w", configFile, err)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	ro.Config = cfg
	ro.Console = log.New(os.Stdout, level)
	ro.User = log.NewUserLogger(ctx)
	return nil
}

const defaultConfigFile = ".renamerc"

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", defaultConfigFile, "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}
