package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/outliner/version"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "outliner",
	Short: "Extract titles and heading outlines from PDF documents",
	Long: `Outliner reads PDF files and produces a structured outline: the
document title plus H1-H4 headings with their page numbers, as JSON.

Heading detection combines four signals: textual patterns (numbering,
section vocabulary), relative font size, hierarchical numbering depth,
and line shape. No per-document tuning is required, but thresholds and
weights can be overridden via a yaml tuning file or OUTLINER_ env vars.`,
	Version: version.GitRelease,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlag("log_level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
			return err
		}
		return initConfig(cfgFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "tuning file (default: ./outliner.yaml, ~/.outliner/outliner.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "info", "log level: debug, info, warn, error",
	)

	// Every flag can also be set via OUTLINER_<FLAG>; the per-command
	// PreRunE hooks bind the flags themselves.
	initViperEnv()

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
}

func initViperEnv() {
	viper.SetEnvPrefix("OUTLINER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

// newLogger builds the process logger from the resolved log level.
func newLogger() *slog.Logger {
	name := viper.GetString("log_level")
	if name == "" {
		name = logLevel
	}
	var level slog.Level
	switch strings.ToLower(name) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
