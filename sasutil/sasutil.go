// Package sasutil exports several independent datasets concurrently. It
// is a convenience on top of sas7bdat, not a core part of the format: it
// never shares one sas7bdat.Exporter across goroutines, constructing a
// fresh one per job instead, exactly as a caller parallelising exports by
// hand would have to.
package sasutil

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/sas7bdat"
)

// Job describes one dataset to export: where it goes, its schema, the
// exact number of rows it will produce, and a producer that yields them
// in order. Rows must call yield exactly TotalRows times and stop at the
// first error yield returns.
type Job struct {
	Path      string
	Schema    *sas7bdat.Schema
	TotalRows int
	Rows      func(yield func(sas7bdat.Row) error) error
}

// Limit bounds how many jobs ExportAll runs at once. Zero means
// runtime.NumCPU().
type Limit int

// ExportAll runs every job in jobs, each against its own sas7bdat.Exporter,
// up to limit at a time (runtime.NumCPU() if limit is 0). It returns the
// first error encountered across all jobs, cancelling ctx for the rest;
// jobs already in flight finish or fail independently, per errgroup's
// usual semantics.
func ExportAll(ctx context.Context, jobs []Job, limit Limit) error {
	g, ctx := errgroup.WithContext(ctx)

	concurrency := int(limit)
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	g.SetLimit(concurrency)

	for i, job := range jobs {
		job := job
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := runJob(job); err != nil {
				return fmt.Errorf("sasutil: job %d (%s): %w", i, job.Path, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func runJob(job Job) error {
	ex, err := sas7bdat.NewExporter(job.Path, job.Schema, job.TotalRows)
	if err != nil {
		return err
	}

	writeErr := job.Rows(func(row sas7bdat.Row) error {
		return ex.WriteRow(row)
	})
	if writeErr != nil {
		ex.Close()
		return writeErr
	}
	return ex.Close()
}
