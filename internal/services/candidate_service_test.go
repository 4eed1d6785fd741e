package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/AI-HR-Funnel/internal/dtos"
	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
	"github.com/justsurfingit/AI-HR-Funnel/pkg/apierr"
)

func TestCreateCandidateUnknownJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewCandidateService(db)

	_, err := svc.Create(&dtos.CandidateCreationRequest{JobID: 9999})

	var apiErr *apierr.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode())
}

func TestCreateCandidateStartsAtScreening(t *testing.T) {
	db := newTestDB(t)
	job := createTestJob(t, db)

	candidate := createTestCandidate(t, db, job.ID)

	assert.Equal(t, models.StageScreening, candidate.CurrentStage)
	assert.Equal(t, models.StatusInProgress, candidate.Status)
	assert.Empty(t, candidate.RejectionStage)
}

func TestFullFunnelRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewCandidateService(db)
	job := createTestJob(t, db)
	candidate := createTestCandidate(t, db, job.ID)

	updates := []dtos.StageUpdateRequest{
		{Stage: models.StageScreening, Passed: boolPtr(true), Data: map[string]any{"cold_calls": true}},
		{Stage: models.StageResume, Passed: boolPtr(true), Data: map[string]any{
			"resume_text": "10 лет в продажах",
			"score":       float64(82),
			"summary":     "Сильный кандидат",
			"red_flags":   []any{},
		}},
		{Stage: models.StageMotivation, Data: map[string]any{
			"primary_motivation":   "Деньги",
			"secondary_motivation": "Карьерный рост",
			"analysis_summary":     "Мотивация на результат",
		}},
		{Stage: models.StageCognitive, Passed: boolPtr(true), Data: map[string]any{
			"score": float64(3), "total": float64(3),
		}},
		{Stage: models.StageInterview, Data: map[string]any{
			"conversation": []any{
				map[string]any{"role": "assistant", "content": "Расскажите о себе"},
				map[string]any{"role": "user", "content": "Работал в B2B"},
			},
			"assessment": map[string]any{"final_summary": "Уверенный"},
		}},
		{Stage: models.StagePersonality, Passed: boolPtr(true), Data: map[string]any{
			"profile":         map[string]any{"persistence": float64(75)},
			"sales_fit_score": float64(68),
			"summary":         "Сбалансированный профиль",
			"red_flags":       []any{},
		}},
		{Stage: models.StageSales, Passed: boolPtr(true), Data: map[string]any{
			"overall_sales_score": float64(71),
			"concerns":            []any{},
		}},
	}

	for _, update := range updates {
		_, err := svc.UpdateStage(candidate.ID, &update)
		require.NoError(t, err, "stage %s", update.Stage)
	}

	final, err := svc.Get(candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageReadyForFinal, final.CurrentStage)
	assert.Equal(t, models.StatusInProgress, final.Status)
	assert.Empty(t, final.RejectionStage)

	require.NotNil(t, final.ResumeScore)
	assert.Equal(t, 82, *final.ResumeScore)
	assert.Equal(t, "Деньги", final.PrimaryMotivation)
	require.NotNil(t, final.CognitiveScore)
	assert.Equal(t, 3, *final.CognitiveScore)
	require.Len(t, final.InterviewConversation, 2)
	require.NotNil(t, final.PersonalityScore)
	assert.Equal(t, 68, *final.PersonalityScore)
	require.NotNil(t, final.SalesScore)
	assert.Equal(t, 71, *final.SalesScore)
}

func TestOfferStageCompletesCandidate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCandidateService(db)
	job := createTestJob(t, db)
	candidate := createTestCandidate(t, db, job.ID)

	_, err := svc.UpdateStage(candidate.ID, &dtos.StageUpdateRequest{Stage: models.StageFinalInterview})
	require.NoError(t, err)
	updated, err := svc.UpdateStage(candidate.ID, &dtos.StageUpdateRequest{Stage: models.StageOffer})
	require.NoError(t, err)

	assert.Equal(t, models.StageHired, updated.CurrentStage)
	assert.Equal(t, models.StatusCompleted, updated.Status)
}

func TestGatingStageRejection(t *testing.T) {
	gating := []string{
		models.StageScreening,
		models.StageResume,
		models.StageCognitive,
		models.StagePersonality,
		models.StageSales,
	}

	for _, stage := range gating {
		t.Run(stage, func(t *testing.T) {
			db := newTestDB(t)
			svc := NewCandidateService(db)
			job := createTestJob(t, db)
			candidate := createTestCandidate(t, db, job.ID)
			before := candidate.CurrentStage

			updated, err := svc.UpdateStage(candidate.ID, &dtos.StageUpdateRequest{
				Stage:  stage,
				Passed: boolPtr(false),
				Data:   map[string]any{},
			})
			require.NoError(t, err)

			assert.Equal(t, models.StatusRejected, updated.Status)
			assert.Equal(t, stage, updated.RejectionStage)
			assert.Equal(t, before, updated.CurrentStage, "stage pointer must not advance on rejection")
		})
	}
}

func TestRejectedCandidateIsImmutable(t *testing.T) {
	db := newTestDB(t)
	svc := NewCandidateService(db)
	job := createTestJob(t, db)
	candidate := createTestCandidate(t, db, job.ID)

	_, err := svc.UpdateStage(candidate.ID, &dtos.StageUpdateRequest{
		Stage:  models.StageScreening,
		Passed: boolPtr(false),
	})
	require.NoError(t, err)

	_, err = svc.UpdateStage(candidate.ID, &dtos.StageUpdateRequest{
		Stage:  models.StageScreening,
		Passed: boolPtr(true),
	})

	var apiErr *apierr.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode())
}

func TestUnknownStageRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewCandidateService(db)
	job := createTestJob(t, db)
	candidate := createTestCandidate(t, db, job.ID)

	_, err := svc.UpdateStage(candidate.ID, &dtos.StageUpdateRequest{Stage: "vibes"})

	var apiErr *apierr.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode())
}

func TestGatingStageRequiresPassedFlag(t *testing.T) {
	db := newTestDB(t)
	svc := NewCandidateService(db)
	job := createTestJob(t, db)
	candidate := createTestCandidate(t, db, job.ID)

	_, err := svc.UpdateStage(candidate.ID, &dtos.StageUpdateRequest{Stage: models.StageScreening})

	var apiErr *apierr.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode())
}

func TestRedFlagMergeIsUnionAndIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCandidateService(db)
	job := createTestJob(t, db)
	candidate := createTestCandidate(t, db, job.ID)

	updated, err := svc.UpdateStage(candidate.ID, &dtos.StageUpdateRequest{
		Stage:  models.StagePersonality,
		Passed: boolPtr(true),
		Data: map[string]any{
			"sales_fit_score": float64(55),
			"red_flags":       []any{"низкая честность", "низкая честность"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"низкая честность"}, updated.RedFlags)

	updated, err = svc.UpdateStage(candidate.ID, &dtos.StageUpdateRequest{
		Stage:  models.StageSales,
		Passed: boolPtr(true),
		Data: map[string]any{
			"overall_sales_score": float64(60),
			"concerns":            []any{"низкая честность", "слабая работа с возражениями"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"низкая честность", "слабая работа с возражениями"}, updated.RedFlags)
}

func TestListCandidatesFilteredByJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewCandidateService(db)
	jobA := createTestJob(t, db)
	jobB := createTestJob(t, db)
	createTestCandidate(t, db, jobA.ID)
	createTestCandidate(t, db, jobA.ID)
	createTestCandidate(t, db, jobB.ID)

	all, err := svc.List(nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onlyA, err := svc.List(&jobA.ID)
	require.NoError(t, err)
	assert.Len(t, onlyA, 2)
}
