package outline

import (
	"github.com/tsawler/outliner/classify"
	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
)

// Input is everything the engine needs for one document.
type Input struct {
	// Runs are the positioned text runs extracted from the PDF.
	Runs []model.TextRun

	// MetaTitle is the PDF Info-dictionary title, possibly empty.
	MetaTitle string

	// FileStem is the source filename without extension.
	FileStem string
}

// EngineConfig bundles the per-stage configurations.
type EngineConfig struct {
	Assembler AssemblerOption
	Classify  classify.Config
	Artifact  layout.ArtifactConfig
	Title     TitleConfig
}

// AssemblerOption aliases the layout assembler configuration so callers
// configure the whole pipeline from one place.
type AssemblerOption = layout.AssemblerConfig

// DefaultEngineConfig returns sensible default configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Assembler: layout.DefaultAssemblerConfig(),
		Classify:  classify.DefaultConfig(),
		Artifact:  layout.DefaultArtifactConfig(),
		Title:     DefaultTitleConfig(),
	}
}

// Engine wires the full pipeline: assemble runs into lines, profile the
// document's font sizes, classify heading candidates, normalize the
// hierarchy, and pick a title. An Engine is stateless across documents
// and safe to reuse.
type Engine struct {
	config    EngineConfig
	assembler *layout.Assembler
	detector  *layout.ArtifactDetector
	titles    *TitleExtractor
}

// NewEngine creates an engine with default configuration.
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultEngineConfig())
}

// NewEngineWithConfig creates an engine with custom configuration.
func NewEngineWithConfig(config EngineConfig) *Engine {
	return &Engine{
		config:    config,
		assembler: layout.NewAssemblerWithConfig(config.Assembler),
		detector:  layout.NewArtifactDetectorWithConfig(config.Artifact),
		titles:    NewTitleExtractorWithConfig(config.Title),
	}
}

// Extract runs the pipeline over one document's runs. The same input
// always yields the same result; no stage consults anything outside the
// input. Empty input yields an empty result, never an error.
func (e *Engine) Extract(in Input) model.Result {
	lines := e.assembler.Assemble(in.Runs)
	if len(lines) == 0 {
		return model.NewResult()
	}

	profile := layout.NewFontProfile(lines)
	artifacts := e.detector.Detect(lines)

	classifier := classify.NewClassifierWithConfig(profile, e.config.Classify)
	candidates := classifier.Classify(lines)

	normalizer := NewNormalizer(artifacts)
	entries := normalizer.Normalize(candidates)

	result := model.NewResult()
	result.Outline = entries
	result.Title = e.titles.Extract(Metadata{
		Title:    in.MetaTitle,
		FileStem: in.FileStem,
	}, lines, profile, entries)
	return result
}
