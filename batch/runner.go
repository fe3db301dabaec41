package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/outline"
	"github.com/tsawler/outliner/pdftext"
)

// DefaultDocTimeout bounds how long a single document may take before
// its result is written as empty and the batch moves on.
const DefaultDocTimeout = 10 * time.Second

// Config holds configuration for a batch run.
type Config struct {
	// InputDir is scanned (non-recursively) for *.pdf files.
	InputDir string

	// OutputDir receives one <stem>.json per input document.
	OutputDir string

	// Workers bounds concurrent document processing. Zero means
	// runtime.NumCPU().
	Workers int

	// DocTimeout bounds a single document. Zero means DefaultDocTimeout.
	DocTimeout time.Duration

	// MaxPages caps pages read per document. Zero means the collector
	// default.
	MaxPages int

	// Engine is the pipeline tuning applied to every document.
	Engine outline.EngineConfig

	// Logger receives per-document progress. Nil means slog.Default().
	Logger *slog.Logger
}

// Summary reports the outcome of a batch run.
type Summary struct {
	Processed int
	Failed    int
}

// Runner processes a directory of PDFs.
type Runner struct {
	config Config
	engine *outline.Engine
	logger *slog.Logger
}

// NewRunner creates a runner. Defaults are applied here so the stored
// config reflects what the run will actually use.
func NewRunner(config Config) *Runner {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.DocTimeout <= 0 {
		config.DocTimeout = DefaultDocTimeout
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Engine == (outline.EngineConfig{}) {
		config.Engine = outline.DefaultEngineConfig()
	}
	return &Runner{
		config: config,
		engine: outline.NewEngineWithConfig(config.Engine),
		logger: config.Logger,
	}
}

// Run processes every PDF in the input directory and returns a summary.
// Individual document failures are logged and counted, not returned as
// errors; only setup problems (unreadable input dir, unwritable output
// dir) fail the run.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	paths, err := r.scan()
	if err != nil {
		return Summary{}, err
	}
	if err := os.MkdirAll(r.config.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output dir: %w", err)
	}

	r.logger.Info("batch started",
		"input", r.config.InputDir,
		"documents", len(paths),
		"workers", r.config.Workers)

	var summary Summary
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, r.config.Workers)

	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()

			ok := r.processOne(ctx, path)

			mu.Lock()
			summary.Processed++
			if !ok {
				summary.Failed++
			}
			mu.Unlock()
		}(path)
	}
	wg.Wait()

	r.logger.Info("batch finished",
		"processed", summary.Processed, "failed", summary.Failed)
	return summary, ctx.Err()
}

// ProcessFile extracts one document and writes its result file. Failure
// still writes a valid empty result so downstream consumers always find
// parseable JSON per input.
func (r *Runner) ProcessFile(ctx context.Context, path string) error {
	if err := os.MkdirAll(r.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if !r.processOne(ctx, path) {
		return fmt.Errorf("extraction failed for %s", path)
	}
	return nil
}

func (r *Runner) processOne(ctx context.Context, path string) bool {
	jobID := uuid.NewString()
	log := r.logger.With("job_id", jobID, "path", path)
	start := time.Now()

	docCtx, cancel := context.WithTimeout(ctx, r.config.DocTimeout)
	defer cancel()

	result, err := r.extract(docCtx, path)
	if err != nil {
		log.Error("extraction failed", "error", err)
		result = model.NewResult()
	}

	if werr := r.writeResult(path, result); werr != nil {
		log.Error("write failed", "error", werr)
		return false
	}

	if err != nil {
		return false
	}
	log.Info("document processed",
		"headings", len(result.Outline),
		"duration", time.Since(start))
	return true
}

func (r *Runner) extract(ctx context.Context, path string) (model.Result, error) {
	collector := pdftext.NewFileCollectorWithConfig(path, pdftext.CollectorConfig{
		MaxPages: r.config.MaxPages,
		Logger:   r.logger,
	})
	runs, err := collector.Collect(ctx)
	if err != nil {
		return model.Result{}, err
	}

	in := outline.Input{
		Runs:     runs,
		FileStem: pdftext.FileStem(path),
	}
	if info, err := pdftext.ReadInfo(path); err == nil {
		in.MetaTitle = info.Title
	}
	return r.engine.Extract(in), nil
}

func (r *Runner) writeResult(inputPath string, result model.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	outPath := filepath.Join(r.config.OutputDir, pdftext.FileStem(inputPath)+".json")
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}

// scan lists the input directory's PDFs in name order, so repeated runs
// process documents in a stable sequence.
func (r *Runner) scan() ([]string, error) {
	entries, err := os.ReadDir(r.config.InputDir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(r.config.InputDir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
