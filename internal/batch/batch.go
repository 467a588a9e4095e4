// Package batch cyphers many independent messages concurrently.
//
// Every job gets its own enigma.Machine: machines are stateful and are never
// shared between goroutines.
package batch

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"enigma/internal/logging"
	"enigma/pkg/enigma"
)

// Job is one message to cypher from a fresh machine.
type Job struct {
	ID       string
	Settings enigma.Settings
	Text     string
}

// Result is produced by a worker. Results keep the order of their jobs.
type Result struct {
	ID        string
	Input     string
	Output    string
	Positions string // rotor windows after the message, left to right
	Err       error
}

// Options tunes a Run.
type Options struct {
	// Parallel bounds concurrent workers. Zero or negative means 1.
	Parallel int

	// Trace, when set, receives each machine's substitution log with a
	// "job" attribute. Nil keeps machines silent.
	Trace *slog.Logger
}

// Run cyphers every job and returns one Result per job in input order.
// Per-job failures are reported in Result.Err; the returned error is ctx's
// error if it ended during the run.
func Run(ctx context.Context, jobs []Job, opts Options) ([]Result, error) {
	logger := logging.New("batch")

	parallel := opts.Parallel
	if parallel < 1 {
		parallel = 1
	}
	logger.Info("batch started", "jobs", len(jobs), "workers", parallel)

	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, job := range jobs {
		if err := gctx.Err(); err != nil {
			_ = g.Wait()
			return results, err
		}
		g.Go(func() error {
			results[i] = runJob(gctx, job, opts.Trace)
			return nil
		})
	}
	_ = g.Wait() // errors captured in Result.Err

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Error("job failed", "job_id", r.ID, "error", r.Err)
		}
	}
	logger.Info("batch finished", "jobs", len(jobs), "failed", failed)

	return results, ctx.Err()
}

func runJob(ctx context.Context, job Job, trace *slog.Logger) Result {
	res := Result{ID: job.ID, Input: job.Text}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	var log enigma.Logger = logging.Discard()
	if trace != nil {
		log = trace.With(slog.String("job", job.ID))
	}

	m := enigma.New(enigma.WithLogger(log))
	if err := m.Configure(job.Settings); err != nil {
		res.Err = err
		return res
	}
	out, err := m.Cypher(job.Text)
	if err != nil {
		res.Err = err
		return res
	}
	res.Output = out
	res.Positions = m.Positions()
	return res
}
