package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/example/go-txt2anki/internal/config"
	"github.com/example/go-txt2anki/internal/tokenize"
)

var (
	cfgFile   string
	activeCfg config.Config
)

// NewRootCmd builds the root txt2anki command with global flags.
func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "txt2anki",
		Short:         "txt2anki command line",
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}

			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newTokenizeCmd())
	cmd.AddCommand(newDictsCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newBenchCmd())

	return cmd
}

// requireConfig guards subcommands against running without a loaded
// configuration. A loaded config always carries a dictionary name.
func requireConfig() (config.Config, error) {
	if activeCfg.Tokenizer.Dict == "" {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(lvl).
		With().Timestamp().Logger()
	tokenize.Logger = logger
}

// printError writes err followed by any remediation hints it carries.
func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, "Error:", err)

	var hinted interface{ Hints() []string }
	if errors.As(err, &hinted) {
		for _, hint := range hinted.Hints() {
			_, _ = fmt.Fprintln(w, "  hint:", hint)
		}
	}
}
