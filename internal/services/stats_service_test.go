package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
)

func TestFunnelStatsEmpty(t *testing.T) {
	db := newTestDB(t)

	stats, err := NewStatsService(db).Funnel()
	require.NoError(t, err)

	assert.Zero(t, stats.TotalJobs)
	assert.Zero(t, stats.TotalCandidates)
	assert.Equal(t, 0.0, stats.ConversionRate, "no candidates means zero, not NaN")
}

func TestFunnelStatsCounts(t *testing.T) {
	db := newTestDB(t)
	job := createTestJob(t, db)

	hired := createTestCandidate(t, db, job.ID)
	rejected := createTestCandidate(t, db, job.ID)
	createTestCandidate(t, db, job.ID)

	require.NoError(t, db.Model(hired).Update("status", models.StatusCompleted).Error)
	require.NoError(t, db.Model(rejected).Update("status", models.StatusRejected).Error)

	stats, err := NewStatsService(db).Funnel()
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalJobs)
	assert.Equal(t, int64(1), stats.ActiveJobs)
	assert.Equal(t, int64(3), stats.TotalCandidates)
	assert.Equal(t, int64(1), stats.CandidatesByStatus[models.StatusCompleted])
	assert.Equal(t, int64(1), stats.CandidatesByStatus[models.StatusRejected])
	assert.Equal(t, int64(1), stats.CandidatesByStatus[models.StatusInProgress])
	assert.InDelta(t, 33.3, stats.ConversionRate, 0.001, "1 of 3 completed, rounded to one decimal")
}
