package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/paulgb/sec-data-parser/filing"
	"github.com/paulgb/sec-data-parser/internal/report"
)

// handleParse parses one uploaded archive synchronously and returns the
// typed submission plus inspected document details.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	sub, err := filing.Parse(bytes.NewReader(data))
	if err != nil {
		s.log.Warn("parse failed", "filename", filename, "error", err)
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	details := make([]report.DocumentDetail, len(sub.Documents))
	for i := range sub.Documents {
		details[i] = report.Inspect(&sub.Documents[i])
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"filename":   filename,
		"submission": sub,
		"documents":  details,
	})
}

// handleBatch accepts multiple archives and queues one async job per file.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	var results []map[string]any
	for _, fh := range files {
		filename := sanitizeFilename(fh.Filename)

		f, err := fh.Open()
		if err != nil {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    "failed to open file",
			})
			continue
		}

		data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
		f.Close()
		if err != nil || int64(len(data)) > s.cfg.MaxUploadBytes {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    "file too large or read error",
			})
			continue
		}

		job := s.newJob(filename, data)
		if err := s.submit(job); err != nil {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    err.Error(),
			})
			continue
		}

		results = append(results, map[string]any{
			"filename": filename,
			"job_id":   job.ID,
			"status":   job.Status,
			"poll_url": fmt.Sprintf("/api/filings/jobs/%s", job.ID),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{"jobs": results})
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.jobs.Get(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

func (s *Server) newJob(filename string, data []byte) *Job {
	now := time.Now()
	job := &Job{
		ID:        uuid.NewString(),
		Filename:  filename,
		Status:    StatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
		data:      data,
	}
	s.jobs.Add(job)
	return job
}

// submit queues a job without blocking. A full queue is back-pressure the
// client must retry.
func (s *Server) submit(job *Job) error {
	select {
	case s.queue <- job:
		return nil
	default:
		return fmt.Errorf("parse queue is full")
	}
}

func (s *Server) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-s.queue:
			job.setRunning()
			sub, err := filing.Parse(bytes.NewReader(job.data))
			job.finish(sub, err)
			if err != nil {
				s.log.Warn("job failed", "job_id", job.ID, "filename", job.Filename, "error", err)
			} else {
				s.log.Info("job done", "job_id", job.ID, "filename", job.Filename, "accession", sub.AccessionNumber)
			}
		}
	}
}

// readUpload extracts a single archive from either a multipart "file" field
// or a raw request body, enforcing the upload limit either way.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (data []byte, filename string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
			return nil, "", false
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
			return nil, "", false
		}
		defer file.Close()

		data, err = io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
		if err != nil {
			jsonError(w, "failed to read file", http.StatusInternalServerError)
			return nil, "", false
		}
		filename = sanitizeFilename(header.Filename)
	} else {
		var err error
		data, err = io.ReadAll(r.Body)
		if err != nil {
			jsonError(w, "failed to read body", http.StatusBadRequest)
			return nil, "", false
		}
		filename = "upload.nc"
	}

	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return nil, "", false
	}
	return data, filename, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
