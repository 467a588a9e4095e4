package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"enigma/internal/batch"
	"enigma/internal/format"
	"enigma/internal/logging"
	"enigma/internal/settings"
)

var batchFlags struct {
	file     string
	parallel int
	markdown bool
	jsonOut  bool
	trace    bool
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Cypher many messages concurrently from a batch file",
	Long: `Reads a YAML or JSON batch file with default settings and a list of
messages (id, text, optional per-message settings). Each message runs on its
own freshly configured machine.`,
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVarP(&batchFlags.file, "file", "f", "", "Batch file (required)")
	f.IntVar(&batchFlags.parallel, "parallel", 4, "Number of messages cyphered concurrently")
	f.BoolVar(&batchFlags.markdown, "markdown", false, "Render the report as a Markdown table")
	f.BoolVar(&batchFlags.jsonOut, "json", false, "Print results as JSON instead of a table")
	f.BoolVar(&batchFlags.trace, "trace", false, "Log every substitution and rotor step (at info level)")

	_ = batchCmd.MarkFlagRequired("file")
	batchCmd.MarkFlagsMutuallyExclusive("markdown", "json")
}

type batchResultJSON struct {
	ID        string `json:"id"`
	Output    string `json:"output,omitempty"`
	Positions string `json:"positions,omitempty"`
	Error     string `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, _ []string) error {
	messages, err := settings.LoadBatchFromPath(batchFlags.file)
	if err != nil {
		return err
	}

	jobs := make([]batch.Job, len(messages))
	for i, m := range messages {
		jobs[i] = batch.Job{ID: m.ID, Settings: m.Settings, Text: m.Text}
	}

	opts := batch.Options{Parallel: batchFlags.parallel}
	if batchFlags.trace {
		opts.Trace = logging.New("machine")
	}

	start := time.Now()
	results, err := batch.Run(cmd.Context(), jobs, opts)
	if err != nil {
		return err
	}
	logging.New("batch").Info("batch report", "elapsed", format.FmtDuration(time.Since(start)))

	out := cmd.OutOrStdout()
	if batchFlags.jsonOut {
		rows := make([]batchResultJSON, len(results))
		for i, r := range results {
			rows[i] = batchResultJSON{ID: r.ID, Output: r.Output, Positions: r.Positions}
			if r.Err != nil {
				rows[i].Error = r.Err.Error()
			}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
	} else {
		mode := format.ASCII
		if batchFlags.markdown {
			mode = format.Markdown
		}
		fmt.Fprintln(out, format.BatchResults(results, mode))
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d messages failed", failed, len(results))
	}
	return nil
}
