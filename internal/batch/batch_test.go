package batch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

const goodArchive = `<SUBMISSION>
<ACCESSION-NUMBER>0000950134-07-005472
<TYPE>8-K
<FILING-DATE>20070312
</SUBMISSION>
`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "good.nc"), []byte(goodArchive), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.nc"), []byte("not an archive\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Hidden files are skipped.
	if err := os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	results, err := Run(context.Background(), dir, 2, discardLogger())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}

	summary := Summarize(results)
	if summary.Total != 2 || summary.Parsed != 1 || summary.Failed != 1 {
		t.Errorf("summary = %+v, want 1 parsed and 1 failed", summary)
	}
	if summary.ByFormType["8-K"] != 1 {
		t.Errorf("form types = %v, want one 8-K", summary.ByFormType)
	}

	for _, r := range results {
		switch filepath.Base(r.Path) {
		case "good.nc":
			if r.Err != nil || r.Submission == nil {
				t.Errorf("good.nc: err = %v", r.Err)
			}
		case "bad.nc":
			if r.Err == nil {
				t.Error("bad.nc parsed without error")
			}
		default:
			t.Errorf("unexpected result path %s", r.Path)
		}
	}
}

func TestRunCanceled(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 4; i++ {
		name := filepath.Join(dir, "a"+string(rune('0'+i))+".nc")
		if err := os.WriteFile(name, []byte(goodArchive), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, dir, 1, discardLogger()); err == nil {
		t.Fatal("canceled run reported no error")
	}
}

func TestRunEmptyDir(t *testing.T) {
	results, err := Run(context.Background(), t.TempDir(), 4, discardLogger())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
}
