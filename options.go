package outliner

import (
	"github.com/tsawler/outliner/outline"
)

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	// Page cap; zero means the collector default, negative means unlimited.
	maxPages int

	// Pipeline tuning.
	engine outline.EngineConfig

	// Metadata title override. hasTitle distinguishes "set to empty"
	// from "not set".
	metaTitle string
	hasTitle  bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		maxPages: 0,
		engine:   outline.DefaultEngineConfig(),
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		maxPages:  o.maxPages,
		engine:    o.engine,
		metaTitle: o.metaTitle,
		hasTitle:  o.hasTitle,
	}
}
