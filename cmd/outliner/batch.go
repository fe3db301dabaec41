package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/outliner/batch"
)

var (
	batchInput    string
	batchOutput   string
	batchWorkers  int
	batchTimeout  time.Duration
	batchMaxPages int
	batchWatch    bool
)

var batchFlagKeys = map[string]string{
	"input":     "input",
	"output":    "output",
	"workers":   "workers",
	"timeout":   "timeout",
	"max_pages": "max-pages",
	"watch":     "watch",
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process a directory of PDFs into outline JSON files",
	Long: `Process every PDF in the input directory and write one <name>.json
per document to the output directory. Documents that fail still produce
a valid empty result file; the batch always completes.

Examples:
  outliner batch --input ./pdfs --output ./outlines
  outliner batch --input ./pdfs --output ./outlines --workers 8
  outliner batch --input ./inbox --output ./outlines --watch`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, batchFlagKeys)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := batch.NewRunner(batch.Config{
			InputDir:   viper.GetString("input"),
			OutputDir:  viper.GetString("output"),
			Workers:    viper.GetInt("workers"),
			DocTimeout: viper.GetDuration("timeout"),
			MaxPages:   viper.GetInt("max_pages"),
			Engine:     engineConfig(),
			Logger:     newLogger(),
		})

		if viper.GetBool("watch") {
			err := batch.NewWatcher(runner).Watch(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		summary, err := runner.Run(cmd.Context())
		if err != nil {
			return err
		}
		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d documents failed", summary.Failed, summary.Processed)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", ".", "directory to scan for PDFs")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", ".", "directory for outline JSON files")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "concurrent documents (0 = number of CPUs)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 0, "per-document timeout (0 = default)")
	batchCmd.Flags().IntVar(&batchMaxPages, "max-pages", 0, "cap pages read per document (0 = default, -1 = unlimited)")
	batchCmd.Flags().BoolVar(&batchWatch, "watch", false, "keep watching the input directory for new PDFs")
}
