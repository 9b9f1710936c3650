package sasutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hailam/sas7bdat"
	"github.com/hailam/sas7bdat/internal/sastest"
	"github.com/hailam/sas7bdat/sasutil"
)

func TestExportAllWritesEveryJobIndependently(t *testing.T) {
	dir := t.TempDir()
	const nJobs = 5
	const nRows = 10

	jobs := make([]sasutil.Job, nJobs)
	for i := range jobs {
		schema := sastest.NumericSchema(t, "DS", 2)
		rows := sastest.NumericRows(nRows, 2)
		jobs[i] = sasutil.Job{
			Path:      filepath.Join(dir, numberedPath(i)),
			Schema:    schema,
			TotalRows: nRows,
			Rows: func(yield func(sas7bdat.Row) error) error {
				for _, row := range rows {
					if err := yield(row); err != nil {
						return err
					}
				}
				return nil
			},
		}
	}

	require.NoError(t, sasutil.ExportAll(context.Background(), jobs, 0))

	for i := range jobs {
		info, err := os.Stat(jobs[i].Path)
		require.NoError(t, err)
		require.Greater(t, info.Size(), int64(0))
	}
}

func TestExportAllPropagatesRowError(t *testing.T) {
	dir := t.TempDir()
	schema := sastest.NumericSchema(t, "DS", 1)

	jobs := []sasutil.Job{{
		Path:      filepath.Join(dir, "bad.sas7bdat"),
		Schema:    schema,
		TotalRows: 1,
		Rows: func(yield func(sas7bdat.Row) error) error {
			return yield(sas7bdat.Row{"not a number"})
		},
	}}

	err := sasutil.ExportAll(context.Background(), jobs, 1)
	require.Error(t, err)
}

func TestExportAllRespectsLimit(t *testing.T) {
	dir := t.TempDir()
	schema := sastest.NumericSchema(t, "DS", 1)

	jobs := make([]sasutil.Job, 3)
	for i := range jobs {
		jobs[i] = sasutil.Job{
			Path:      filepath.Join(dir, numberedPath(i)),
			Schema:    schema,
			TotalRows: 0,
			Rows: func(yield func(sas7bdat.Row) error) error {
				return nil
			},
		}
	}

	require.NoError(t, sasutil.ExportAll(context.Background(), jobs, 1))
}

func numberedPath(i int) string {
	return "job-" + string(rune('a'+i)) + ".sas7bdat"
}
