package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
	"github.com/justsurfingit/AI-HR-Funnel/pkg/apierr"
)

func TestCreateJobAppliesDefaults(t *testing.T) {
	db := newTestDB(t)

	job := createTestJob(t, db)

	assert.True(t, job.IsActive)
	assert.Equal(t, models.DefaultMinResumeScore, job.MinResumeScore)
	assert.Equal(t, "office", job.WorkFormat)
	assert.Equal(t, int64(0), job.CandidatesCount)

	criteria := job.ScreeningCriteria
	require.Contains(t, criteria, "cold_calls")
	require.Contains(t, criteria, "work_format")
	require.Contains(t, criteria, "salary_expectation")
	require.NotNil(t, criteria["salary_expectation"].MaxAllowed)
	assert.Equal(t, 60000, *criteria["salary_expectation"].MaxAllowed)
}

func TestListJobsActiveFilterAndCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	active := createTestJob(t, db)
	inactive := createTestJob(t, db)
	require.NoError(t, db.Model(&models.Job{}).Where("id = ?", inactive.ID).Update("is_active", false).Error)

	createTestCandidate(t, db, active.ID)
	createTestCandidate(t, db, active.ID)

	all, err := svc.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyActive, err := svc.List(true)
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	assert.Equal(t, active.ID, onlyActive[0].ID)
	assert.Equal(t, int64(2), onlyActive[0].CandidatesCount)
}

func TestGetJobNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := NewJobService(db).Get(12345)

	var apiErr *apierr.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode())
}
