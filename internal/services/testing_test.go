package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/justsurfingit/AI-HR-Funnel/internal/database"
	"github.com/justsurfingit/AI-HR-Funnel/internal/dtos"
	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestJob(t *testing.T, db *gorm.DB) *dtos.JobResponse {
	t.Helper()

	job, err := NewJobService(db).Create(&dtos.JobCreationRequest{
		Brief: dtos.JobBrief{
			JobTitle:    "Менеджер по продажам",
			CompanyName: "ООО Ромашка",
			SalesSegment: "B2B",
			SalaryRange: "80 000 - 120 000 руб.",
		},
		Generated: dtos.JobGenerated{
			JobTitleFinal:  "Менеджер по продажам B2B",
			JobDescription: "Активные продажи в сегменте B2B.",
		},
	})
	require.NoError(t, err)
	return job
}

func createTestCandidate(t *testing.T, db *gorm.DB, jobID uint) *models.Candidate {
	t.Helper()

	candidate, err := NewCandidateService(db).Create(&dtos.CandidateCreationRequest{
		JobID: jobID,
		Name:  "Иван Петров",
		Email: "ivan@example.com",
	})
	require.NoError(t, err)
	return candidate
}

func boolPtr(b bool) *bool { return &b }
