// Package batch parses a directory of filing archives with a worker pool.
// Each file's parse is self-contained, so files fan out across workers with
// no shared state; a failed parse is recorded and the batch moves on.
package batch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/paulgb/sec-data-parser/filing"
)

// Result is the outcome of parsing one archive file.
type Result struct {
	Path       string
	Submission *filing.Submission
	Err        error
	Elapsed    time.Duration
}

// Run walks dir, parses every regular file, and returns one result per file
// in walk order. The context cancels remaining work; already-finished
// results are still returned.
func Run(ctx context.Context, dir string, workers int, log *slog.Logger) ([]Result, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = parseOne(paths[i], log)
			}
		}()
	}

feed:
	for i := range paths {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func parseOne(path string, log *slog.Logger) Result {
	start := time.Now()
	sub, err := filing.ParseFile(path)
	elapsed := time.Since(start)
	if err != nil {
		log.Warn("parse failed", "path", path, "error", err)
	} else {
		log.Debug("parsed", "path", path, "accession", sub.AccessionNumber, "duration_ms", elapsed.Milliseconds())
	}
	return Result{Path: path, Submission: sub, Err: err, Elapsed: elapsed}
}

// Summary aggregates a batch run.
type Summary struct {
	Total      int
	Parsed     int
	Failed     int
	Documents  int
	ByFormType map[string]int
}

func Summarize(results []Result) Summary {
	ok := lo.Filter(results, func(r Result, _ int) bool { return r.Err == nil })
	return Summary{
		Total:     len(results),
		Parsed:    len(ok),
		Failed:    len(results) - len(ok),
		Documents: lo.SumBy(ok, func(r Result) int { return len(r.Submission.Documents) }),
		ByFormType: lo.CountValuesBy(ok, func(r Result) string {
			return r.Submission.Type
		}),
	}
}
