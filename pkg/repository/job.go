package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/pushhub/pkg/domain"
)

// JobRepository handles scraping job audit records
type JobRepository struct {
	db *sqlx.DB
}

type jobSQL struct {
	ID                   string     `db:"id"`
	FeatureID            string     `db:"feature_id"`
	UserID               string     `db:"user_id"`
	Source               string     `db:"source"`
	StartedAt            time.Time  `db:"started_at"`
	FinishedAt           *time.Time `db:"finished_at"`
	Status               string     `db:"status"`
	ArticlesFound        int        `db:"articles_found"`
	ArticlesSaved        int        `db:"articles_saved"`
	ExecutionTimeSeconds float64    `db:"execution_time_seconds"`
	ErrorMessage         string     `db:"error_message"`
	Errors               stringsSQL `db:"errors"`
	Warnings             stringsSQL `db:"warnings"`
}

// NewJobRepository creates a new job repository
func NewJobRepository(database *sqlx.DB) *JobRepository {
	return &JobRepository{db: database}
}

// CreateJob opens a job record in running state and assigns its ID
func (r *JobRepository) CreateJob(ctx context.Context, job *domain.ScrapingJob) error {
	if job.StartedAt.IsZero() {
		job.StartedAt = time.Now().UTC()
	}
	rec := jobSQL{
		ID:        uuid.NewString(),
		FeatureID: job.FeatureID,
		UserID:    job.UserID,
		Source:    job.Source,
		StartedAt: job.StartedAt.UTC(),
		Status:    string(domain.JobRunning),
	}

	query := `
		INSERT INTO scraping_jobs (id, feature_id, user_id, source, started_at, status)
		VALUES (:id, :feature_id, :user_id, :source, :started_at, :status)
	`
	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("create job: %w", err)
	}

	job.ID = rec.ID
	job.Status = domain.JobRunning
	return nil
}

// FinishJob moves a running job to its terminal state. A job can be finished only once.
func (r *JobRepository) FinishJob(ctx context.Context, id string, outcome domain.JobOutcome) error {
	if outcome.Status != domain.JobSuccess && outcome.Status != domain.JobFailed {
		return fmt.Errorf("finish job %s: invalid terminal status %q", id, outcome.Status)
	}

	query := `
		UPDATE scraping_jobs
		SET status = ?, finished_at = ?, articles_found = ?, articles_saved = ?,
		    execution_time_seconds = ?, error_message = ?, errors = ?, warnings = ?
		WHERE id = ? AND status = ?
	`
	res, err := r.db.ExecContext(ctx, query, string(outcome.Status), time.Now().UTC(), outcome.ArticlesFound,
		outcome.ArticlesSaved, outcome.ExecutionTimeSeconds, outcome.ErrorMessage, stringsSQL(outcome.Errors),
		stringsSQL(outcome.Warnings), id, string(domain.JobRunning))
	if err != nil {
		return fmt.Errorf("finish job: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("finish job %s: no running job: %w", id, ErrNotFound)
	}
	return nil
}

// GetJob retrieves a job by ID
func (r *JobRepository) GetJob(ctx context.Context, id string) (*domain.ScrapingJob, error) {
	var rec jobSQL
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM scraping_jobs WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get job %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return rec.toDomain(), nil
}

// ListJobs retrieves the most recent jobs of a feature
func (r *JobRepository) ListJobs(ctx context.Context, featureID string, limit int) ([]*domain.ScrapingJob, error) {
	if limit <= 0 {
		limit = 50
	}
	var recs []jobSQL
	query := `SELECT * FROM scraping_jobs WHERE feature_id = ? ORDER BY started_at DESC, rowid DESC LIMIT ?`
	if err := r.db.SelectContext(ctx, &recs, query, featureID, limit); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	jobs := make([]*domain.ScrapingJob, len(recs))
	for i := range recs {
		jobs[i] = recs[i].toDomain()
	}
	return jobs, nil
}

func (j *jobSQL) toDomain() *domain.ScrapingJob {
	return &domain.ScrapingJob{
		ID:                   j.ID,
		FeatureID:            j.FeatureID,
		UserID:               j.UserID,
		Source:               j.Source,
		StartedAt:            j.StartedAt,
		FinishedAt:           j.FinishedAt,
		Status:               domain.JobStatus(j.Status),
		ArticlesFound:        j.ArticlesFound,
		ArticlesSaved:        j.ArticlesSaved,
		ExecutionTimeSeconds: j.ExecutionTimeSeconds,
		ErrorMessage:         j.ErrorMessage,
		Errors:               []string(j.Errors),
		Warnings:             []string(j.Warnings),
	}
}
