package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/outliner/outline"
)

// bindFlags routes each of the command's flags through viper so the value
// can come from the flag, an OUTLINER_ env var, or the tuning file, in
// that order of precedence. Called from the command's PreRunE so commands
// sharing a key ("output", "max_pages") never clobber each other's
// bindings at init time.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, name := range keys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// setTuningDefaults registers the stock pipeline values so unset keys read
// back as the defaults. Idempotent.
func setTuningDefaults() {
	def := outline.DefaultEngineConfig()
	viper.SetDefault("classify.pattern_weight", def.Classify.PatternWeight)
	viper.SetDefault("classify.structure_weight", def.Classify.StructureWeight)
	viper.SetDefault("classify.font_weight", def.Classify.FontWeight)
	viper.SetDefault("classify.context_weight", def.Classify.ContextWeight)
	viper.SetDefault("classify.accept_threshold", def.Classify.AcceptThreshold)
	viper.SetDefault("classify.veto_score", def.Classify.VetoScore)
	viper.SetDefault("classify.plain_emphasis_factor", def.Classify.PlainEmphasisFactor)
	viper.SetDefault("layout.baseline_tolerance", def.Assembler.BaselineTolerance)
	viper.SetDefault("layout.min_repeat_pages", def.Artifact.MinRepeatPages)
	viper.SetDefault("layout.position_band", def.Artifact.PositionBand)
}

// initConfig loads the optional yaml tuning file. An explicit --config
// path must exist and parse; the default search locations (./outliner.yaml,
// ~/.outliner/outliner.yaml) are optional.
func initConfig(cfgFile string) error {
	setTuningDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("outliner")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.outliner")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read tuning file: %w", err)
	}
	return nil
}

// engineConfig builds the effective pipeline tuning from the current viper
// state: tuning file and OUTLINER_ env vars layered over the defaults.
func engineConfig() outline.EngineConfig {
	setTuningDefaults()

	cfg := outline.DefaultEngineConfig()
	cfg.Classify.PatternWeight = viper.GetFloat64("classify.pattern_weight")
	cfg.Classify.StructureWeight = viper.GetFloat64("classify.structure_weight")
	cfg.Classify.FontWeight = viper.GetFloat64("classify.font_weight")
	cfg.Classify.ContextWeight = viper.GetFloat64("classify.context_weight")
	cfg.Classify.AcceptThreshold = viper.GetFloat64("classify.accept_threshold")
	cfg.Classify.VetoScore = viper.GetFloat64("classify.veto_score")
	cfg.Classify.PlainEmphasisFactor = viper.GetFloat64("classify.plain_emphasis_factor")
	cfg.Assembler.BaselineTolerance = viper.GetFloat64("layout.baseline_tolerance")
	cfg.Artifact.MinRepeatPages = viper.GetInt("layout.min_repeat_pages")
	cfg.Artifact.PositionBand = viper.GetFloat64("layout.position_band")
	return cfg
}
