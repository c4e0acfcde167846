package api

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/paulgb/sec-data-parser/filing"
)

type JobStatus string

const (
	StatusQueued  JobStatus = "queued"
	StatusRunning JobStatus = "running"
	StatusDone    JobStatus = "done"
	StatusFailed  JobStatus = "failed"
)

// Job tracks one async archive parse from upload to completion.
type Job struct {
	mu sync.Mutex

	ID         string
	Filename   string
	Status     JobStatus
	Submission *filing.Submission
	Error      string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	data []byte
}

// JobSnapshot is a copy of a job's state safe to read without the lock.
type JobSnapshot struct {
	ID         string             `json:"job_id"`
	Filename   string             `json:"filename"`
	Status     JobStatus          `json:"status"`
	Submission *filing.Submission `json:"submission,omitempty"`
	Error      string             `json:"error,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	return JobSnapshot{
		ID:         j.ID,
		Filename:   j.Filename,
		Status:     j.Status,
		Submission: j.Submission,
		Error:      j.Error,
		CreatedAt:  j.CreatedAt,
		UpdatedAt:  j.UpdatedAt,
	}
}

func (j *Job) setRunning() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = StatusRunning
	j.UpdatedAt = time.Now()
}

func (j *Job) finish(sub *filing.Submission, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.data = nil
	j.UpdatedAt = time.Now()
	if err != nil {
		j.Status = StatusFailed
		j.Error = err.Error()
		return
	}
	j.Status = StatusDone
	j.Submission = sub
}

func (j *Job) terminal() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.Status == StatusDone || j.Status == StatusFailed
}

func (j *Job) updatedAt() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.UpdatedAt
}

// JobStore holds jobs in memory. Finished jobs expire after the TTL.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Add(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobs[id]
}

// Cleanup removes finished jobs older than the TTL and returns how many were
// dropped.
func (s *JobStore) Cleanup() int {
	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, job := range s.jobs {
		if job.terminal() && job.updatedAt().Before(cutoff) {
			delete(s.jobs, id)
			removed++
		}
	}
	return removed
}

// StartCleanup sweeps expired jobs until the context is canceled.
func (s *JobStore) StartCleanup(ctx context.Context, interval time.Duration, log *slog.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Cleanup(); n > 0 {
					log.Debug("expired jobs removed", "count", n)
				}
			}
		}
	}()
}
