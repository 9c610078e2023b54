package domain

import "time"

// JobStatus is the lifecycle state of a scraping job
type JobStatus string

const (
	JobRunning JobStatus = "running"
	JobSuccess JobStatus = "success"
	JobFailed  JobStatus = "failed"
)

// ScrapingJob is the audit record of one ingestion run.
// It is created with JobRunning and finalized exactly once.
type ScrapingJob struct {
	ID                   string
	FeatureID            string
	UserID               string
	Source               string
	StartedAt            time.Time
	FinishedAt           *time.Time
	Status               JobStatus
	ArticlesFound        int
	ArticlesSaved        int
	ExecutionTimeSeconds float64
	ErrorMessage         string
	Errors               []string
	Warnings             []string
}

// JobOutcome carries the terminal fields written when a job is finalized
type JobOutcome struct {
	Status               JobStatus
	ArticlesFound        int
	ArticlesSaved        int
	ExecutionTimeSeconds float64
	ErrorMessage         string
	Errors               []string
	Warnings             []string
}
