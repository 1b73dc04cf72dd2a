package printer

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job states
const (
	JobQueued    = "queued"
	JobPrinting  = "printing"
	JobCompleted = "completed"
	JobFailed    = "failed"
)

// Job is one queued print: a printer target plus a rendered command
// stream.
type Job struct {
	ID        string    `json:"id"`
	Printer   Printer   `json:"printer"`
	Payload   []byte    `json:"-"`
	Retries   int       `json:"retries"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Queue processes print jobs on a background worker with retry.
type Queue struct {
	jobs       []*Job
	mu         sync.Mutex
	pool       *Pool
	maxRetries int
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// NewQueue creates a queue and starts its worker.
func NewQueue(pool *Pool, maxRetries int) *Queue {
	ctx, cancel := context.WithCancel(context.Background())

	q := &Queue{
		jobs:       make([]*Job, 0),
		pool:       pool,
		maxRetries: maxRetries,
		ctx:        ctx,
		cancel:     cancel,
	}

	q.wg.Add(1)
	go q.worker()

	return q
}

// Enqueue adds a print job and returns its ID.
func (q *Queue) Enqueue(prn Printer, payload []byte) string {
	q.mu.Lock()
	defer q.mu.Unlock()

	job := &Job{
		ID:        uuid.NewString(),
		Printer:   prn,
		Payload:   payload,
		Status:    JobQueued,
		CreatedAt: time.Now(),
	}
	q.jobs = append(q.jobs, job)

	return job.ID
}

func (q *Queue) worker() {
	defer q.wg.Done()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-q.ctx.Done():
			return
		case <-ticker.C:
			q.processNextJob()
		}
	}
}

func (q *Queue) processNextJob() {
	q.mu.Lock()
	var job *Job
	for _, j := range q.jobs {
		if j.Status == JobQueued {
			job = j
			job.Status = JobPrinting
			break
		}
	}
	q.mu.Unlock()

	if job == nil {
		return
	}

	err := q.printJob(job)

	q.mu.Lock()
	defer q.mu.Unlock()

	if err != nil {
		job.Retries++
		job.Error = err.Error()

		if job.Retries >= q.maxRetries {
			job.Status = JobFailed
			log.Printf("print job %s failed after %d retries: %v", job.ID, job.Retries, err)
		} else {
			job.Status = JobQueued
			log.Printf("print job %s failed, retrying (%d/%d): %v",
				job.ID, job.Retries, q.maxRetries, err)
		}
	} else {
		job.Status = JobCompleted
		job.Error = ""
		log.Printf("print job %s completed", job.ID)
	}
}

func (q *Queue) printJob(job *Job) error {
	if !q.pool.IsConnected(job.Printer.ID) {
		if err := q.pool.Connect(&job.Printer); err != nil {
			return fmt.Errorf("failed to connect to printer: %w", err)
		}
	}

	return q.pool.Send(job.Printer.ID, job.Payload)
}

// GetJob returns a copy of a job by ID, or nil.
func (q *Queue) GetJob(jobID string) *Job {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, job := range q.jobs {
		if job.ID == jobID {
			jobCopy := *job
			return &jobCopy
		}
	}
	return nil
}

// GetAllJobs returns copies of all jobs.
func (q *Queue) GetAllJobs() []*Job {
	q.mu.Lock()
	defer q.mu.Unlock()

	jobs := make([]*Job, len(q.jobs))
	for i, job := range q.jobs {
		jobCopy := *job
		jobs[i] = &jobCopy
	}
	return jobs
}

// ClearCompleted removes completed jobs from the queue.
func (q *Queue) ClearCompleted() {
	q.mu.Lock()
	defer q.mu.Unlock()

	filtered := make([]*Job, 0)
	for _, job := range q.jobs {
		if job.Status != JobCompleted {
			filtered = append(filtered, job)
		}
	}
	q.jobs = filtered
}

// Stop stops the queue worker.
func (q *Queue) Stop() {
	q.cancel()
	q.wg.Wait()
}
