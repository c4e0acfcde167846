package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/paulgb/sec-data-parser/internal/config"
)

const testArchive = `<SUBMISSION>
<ACCESSION-NUMBER>0000950134-07-005472
<TYPE>8-K
<FILING-DATE>20070312
</SUBMISSION>
`

func testServer(t *testing.T, apiKey string) *Server {
	t.Helper()
	cfg := config.Config{
		Port:           "0",
		APIKey:         apiKey,
		Workers:        1,
		MaxUploadBytes: 1 << 20,
		JobTTL:         time.Minute,
	}
	srv := NewServer(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	srv.Start(ctx)
	return srv
}

func TestHealth(t *testing.T) {
	srv := testServer(t, "secret")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	srv := testServer(t, "secret")

	req := httptest.NewRequest(http.MethodPost, "/api/filings", strings.NewReader(testArchive))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/filings", strings.NewReader(testArchive))
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", rec.Code)
	}
}

func TestAuthDisabledWithoutKey(t *testing.T) {
	srv := testServer(t, "")
	req := httptest.NewRequest(http.MethodPost, "/api/filings", strings.NewReader(testArchive))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with auth disabled", rec.Code)
	}
}

func TestParseEndpoint(t *testing.T) {
	srv := testServer(t, "secret")

	req := httptest.NewRequest(http.MethodPost, "/api/filings", strings.NewReader(testArchive))
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Submission struct {
			AccessionNumber string `json:"accession_number"`
		} `json:"submission"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Submission.AccessionNumber != "0000950134-07-005472" {
		t.Errorf("accession = %q", resp.Submission.AccessionNumber)
	}
}

func TestParseEndpointRejectsBadArchive(t *testing.T) {
	srv := testServer(t, "secret")
	req := httptest.NewRequest(http.MethodPost, "/api/filings", strings.NewReader("garbage\n"))
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestBatchEndpoint(t *testing.T) {
	srv := testServer(t, "secret")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("files", "one.nc")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte(testArchive))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/filings/batch", &body)
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Jobs []struct {
			JobID   string `json:"job_id"`
			PollURL string `json:"poll_url"`
		} `json:"jobs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Jobs) != 1 || resp.Jobs[0].JobID == "" {
		t.Fatalf("jobs = %+v", resp.Jobs)
	}

	// The worker finishes the parse asynchronously; poll until it does.
	deadline := time.Now().Add(5 * time.Second)
	for {
		req := httptest.NewRequest(http.MethodGet, resp.Jobs[0].PollURL, nil)
		req.Header.Set("Authorization", "Bearer secret")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("poll status = %d", rec.Code)
		}
		var snap JobSnapshot
		if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
			t.Fatalf("decode snapshot: %v", err)
		}
		if snap.Status == StatusDone {
			if snap.Submission == nil || snap.Submission.Type != "8-K" {
				t.Fatalf("snapshot = %+v", snap)
			}
			return
		}
		if snap.Status == StatusFailed {
			t.Fatalf("job failed: %s", snap.Error)
		}
		if time.Now().After(deadline) {
			t.Fatalf("job still %s after 5s", snap.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestJobNotFound(t *testing.T) {
	srv := testServer(t, "")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/filings/jobs/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestJobStoreCleanup(t *testing.T) {
	store := NewJobStore(time.Millisecond)
	job := &Job{ID: "x", Status: StatusDone, UpdatedAt: time.Now().Add(-time.Second)}
	store.Add(job)
	if n := store.Cleanup(); n != 1 {
		t.Errorf("cleanup removed %d, want 1", n)
	}
	if store.Get("x") != nil {
		t.Error("expired job still present")
	}

	store.Add(&Job{ID: "y", Status: StatusRunning, UpdatedAt: time.Now().Add(-time.Second)})
	if n := store.Cleanup(); n != 0 {
		t.Errorf("cleanup removed a running job")
	}
}
