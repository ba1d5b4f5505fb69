// Package commands provides the Cobra CLI commands for picklist.
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agiangrant/picklist/internal/logging"
)

var (
	version = "dev"

	configPath string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "picklist",
		Short: "Drive a searchable pick list from scripted or terminal input",
		Long: `picklist replays scripted pointer and keyboard input against a
searchable pick list control and prints the messages it emits, or hosts the
control interactively in the terminal.

Configuration is read from picklist.toml in the current directory unless
--config is given.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default picklist.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "trace, debug, info, warn, error or off")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// commandLogger builds the console logger for a command from --log-level.
func commandLogger(cmd *cobra.Command, component string) (*zerolog.Logger, error) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logging.Config{
		Level:      level,
		Format:     "console",
		TimeFormat: time.Kitchen,
		Output:     cmd.ErrOrStderr(),
	})
	ctx := logging.WithComponent(logging.WithContext(cmd.Context(), logger), component)
	return logging.FromContext(ctx), nil
}
