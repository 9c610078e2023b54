package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pushhub/pkg/domain"
)

func TestJobRepository_Lifecycle(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	job := &domain.ScrapingJob{FeatureID: "f1", UserID: "u1", Source: "lenta,rbc"}
	require.NoError(t, repos.Job.CreateJob(ctx, job))
	require.NotEmpty(t, job.ID)
	assert.Equal(t, domain.JobRunning, job.Status)

	got, err := repos.Job.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobRunning, got.Status)
	assert.Nil(t, got.FinishedAt)
	assert.Equal(t, "u1", got.UserID)

	outcome := domain.JobOutcome{
		Status:               domain.JobSuccess,
		ArticlesFound:        5,
		ArticlesSaved:        3,
		ExecutionTimeSeconds: 1.5,
		Errors:               []string{"save failed"},
		Warnings:             []string{"all filtered"},
	}
	require.NoError(t, repos.Job.FinishJob(ctx, job.ID, outcome))

	got, err = repos.Job.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobSuccess, got.Status)
	require.NotNil(t, got.FinishedAt)
	assert.Equal(t, 5, got.ArticlesFound)
	assert.Equal(t, 3, got.ArticlesSaved)
	assert.InDelta(t, 1.5, got.ExecutionTimeSeconds, 0.001)
	assert.Equal(t, []string{"save failed"}, got.Errors)
	assert.Equal(t, []string{"all filtered"}, got.Warnings)

	// terminal status is written only once
	err = repos.Job.FinishJob(ctx, job.ID, domain.JobOutcome{Status: domain.JobFailed, ErrorMessage: "late"})
	require.ErrorIs(t, err, ErrNotFound)
	got, err = repos.Job.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobSuccess, got.Status)
	assert.Empty(t, got.ErrorMessage)
}

func TestJobRepository_FinishFailed(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	job := &domain.ScrapingJob{FeatureID: "f1", UserID: "u1"}
	require.NoError(t, repos.Job.CreateJob(ctx, job))
	require.NoError(t, repos.Job.FinishJob(ctx, job.ID, domain.JobOutcome{Status: domain.JobFailed, ErrorMessage: "source down"}))

	got, err := repos.Job.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobFailed, got.Status)
	assert.Equal(t, "source down", got.ErrorMessage)
	assert.Empty(t, got.Errors)
}

func TestJobRepository_FinishInvalidStatus(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	job := &domain.ScrapingJob{FeatureID: "f1", UserID: "u1"}
	require.NoError(t, repos.Job.CreateJob(ctx, job))
	require.Error(t, repos.Job.FinishJob(ctx, job.ID, domain.JobOutcome{Status: domain.JobRunning}))
	require.ErrorIs(t, repos.Job.FinishJob(ctx, "missing", domain.JobOutcome{Status: domain.JobSuccess}), ErrNotFound)
}

func TestJobRepository_ListJobs(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repos.Job.CreateJob(ctx, &domain.ScrapingJob{FeatureID: "f1", UserID: "u1"}))
	}
	require.NoError(t, repos.Job.CreateJob(ctx, &domain.ScrapingJob{FeatureID: "f2", UserID: "u1"}))

	jobs, err := repos.Job.ListJobs(ctx, "f1", 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)

	jobs, err = repos.Job.ListJobs(ctx, "f1", 2)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	_, err = repos.Job.GetJob(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
