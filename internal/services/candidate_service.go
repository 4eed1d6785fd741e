package services

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/justsurfingit/AI-HR-Funnel/internal/dtos"
	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
	"github.com/justsurfingit/AI-HR-Funnel/pkg/apierr"
)

// CandidateService owns the stage-progression state machine. It is an
// orchestrator, not a re-validator: pass/fail for AI-scored stages arrives
// already computed and is applied as-is. Every update is a serialized
// read-modify-write on one candidate row.
type CandidateService struct {
	DB *gorm.DB

	// one mutex per candidate id; concurrent updates to different
	// candidates proceed independently
	locks sync.Map
}

func NewCandidateService(db *gorm.DB) *CandidateService {
	return &CandidateService{DB: db}
}

// nextStage maps a passed update-request stage to the new stage pointer.
var nextStage = map[string]string{
	models.StageScreening:      models.StageResume,
	models.StageResume:         models.StageMotivation,
	models.StageMotivation:     models.StageCognitive,
	models.StageCognitive:      models.StageInterview,
	models.StageInterview:      models.StagePersonality,
	models.StagePersonality:    models.StageSales,
	models.StageSales:          models.StageReadyForFinal,
	models.StageFinalInterview: models.StageOfferPending,
	models.StageOffer:          models.StageHired,
}

// gatingStages reject the candidate when the passed flag is false.
var gatingStages = map[string]bool{
	models.StageScreening:   true,
	models.StageResume:      true,
	models.StageCognitive:   true,
	models.StagePersonality: true,
	models.StageSales:       true,
}

// Create starts a new application at the screening stage.
func (s *CandidateService) Create(req *dtos.CandidateCreationRequest) (*models.Candidate, error) {
	var job models.Job
	if err := s.DB.First(&job, req.JobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("job not found")
		}
		return nil, err
	}

	candidate := &models.Candidate{
		JobID:        req.JobID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Status:       models.StatusInProgress,
		CurrentStage: models.StageScreening,
	}
	if err := s.DB.Create(candidate).Error; err != nil {
		return nil, err
	}
	return candidate, nil
}

// List returns candidates, optionally restricted to one job.
func (s *CandidateService) List(jobID *uint) ([]models.Candidate, error) {
	query := s.DB.Order("created_at DESC")
	if jobID != nil {
		query = query.Where("job_id = ?", *jobID)
	}

	var candidates []models.Candidate
	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

// Get returns one candidate with every stored stage result.
func (s *CandidateService) Get(id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := s.DB.First(&candidate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("candidate not found")
		}
		return nil, err
	}
	return &candidate, nil
}

// UpdateStage applies one stage result and moves the pointer. The update is
// atomic: field mutations and the stage/status pointer commit together or
// not at all. Gateway calls happen before this method, never inside it.
func (s *CandidateService) UpdateStage(id uint, req *dtos.StageUpdateRequest) (*models.Candidate, error) {
	if _, known := nextStage[req.Stage]; !known {
		return nil, apierr.Validation(fmt.Sprintf("unknown stage %q", req.Stage))
	}
	if gatingStages[req.Stage] && req.Passed == nil {
		return nil, apierr.Validation(fmt.Sprintf("stage %q requires the passed flag", req.Stage))
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	var candidate models.Candidate
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&candidate, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierr.NotFound("candidate not found")
			}
			return err
		}

		if candidate.Terminal() {
			return apierr.Conflict(fmt.Sprintf("candidate is already %s", candidate.Status))
		}

		s.applyStage(&candidate, req)

		return tx.Save(&candidate).Error
	})
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

// applyStage performs the per-stage field mutations, then moves the stage or
// records the rejection.
func (s *CandidateService) applyStage(c *models.Candidate, req *dtos.StageUpdateRequest) {
	data := req.Data

	switch req.Stage {
	case models.StageScreening:
		c.ScreeningData = models.JSONMap(data)
		c.ScreeningPassed = req.Passed

	case models.StageResume:
		c.ResumeText = dataString(data, "resume_text")
		c.ResumeScore = dataIntPtr(data, "score")
		c.ResumeSummary = dataString(data, "summary")
		c.ResumeRedFlags = dataStringList(data, "red_flags")
		c.ResumePassed = req.Passed

	case models.StageMotivation:
		c.MotivationData = models.JSONMap(data)
		c.PrimaryMotivation = dataString(data, "primary_motivation")
		c.SecondaryMotivation = dataString(data, "secondary_motivation")
		c.MotivationSummary = dataString(data, "analysis_summary")

	case models.StageCognitive:
		c.CognitiveScore = dataIntPtr(data, "score")
		c.CognitiveTotal = dataIntPtr(data, "total")
		c.CognitivePassed = req.Passed

	case models.StageInterview:
		c.InterviewConversation = dataTranscript(data, "conversation")
		c.InterviewAssessment = dataMap(data, "assessment")

	case models.StagePersonality:
		c.PersonalityProfile = dataMap(data, "profile")
		c.PersonalitySummary = dataString(data, "summary")
		c.PersonalityScore = dataIntPtr(data, "sales_fit_score")
		c.RedFlags = mergeFlags(c.RedFlags, dataStringList(data, "red_flags"))

	case models.StageSales:
		c.SalesData = models.JSONMap(data)
		c.SalesScore = dataIntPtr(data, "overall_sales_score")
		c.SalesConcerns = dataStringList(data, "concerns")
		c.RedFlags = mergeFlags(c.RedFlags, dataStringList(data, "concerns"))

	case models.StageOffer:
		c.Status = models.StatusCompleted
	}

	if gatingStages[req.Stage] && !*req.Passed {
		c.Status = models.StatusRejected
		c.RejectionStage = req.Stage
		return
	}
	c.CurrentStage = nextStage[req.Stage]
}

func (s *CandidateService) lockFor(id uint) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// mergeFlags unions new flags into the cumulative set, preserving first-seen
// order. Flags are never removed.
func mergeFlags(existing models.StringList, incoming []string) models.StringList {
	seen := make(map[string]bool, len(existing))
	merged := make(models.StringList, 0, len(existing)+len(incoming))
	for _, flag := range existing {
		if !seen[flag] {
			seen[flag] = true
			merged = append(merged, flag)
		}
	}
	for _, flag := range incoming {
		if !seen[flag] {
			seen[flag] = true
			merged = append(merged, flag)
		}
	}
	return merged
}

// Loose-data accessors: stage payloads arrive as JSON objects, so numbers
// are float64 and lists are []any.

func dataString(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func dataIntPtr(data map[string]any, key string) *int {
	switch v := data[key].(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		return &v
	}
	return nil
}

func dataStringList(data map[string]any, key string) models.StringList {
	raw, ok := data[key].([]any)
	if !ok {
		return nil
	}
	list := make(models.StringList, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			list = append(list, s)
		}
	}
	return list
}

func dataMap(data map[string]any, key string) models.JSONMap {
	if v, ok := data[key].(map[string]any); ok {
		return models.JSONMap(v)
	}
	return nil
}

func dataTranscript(data map[string]any, key string) models.ChatTranscript {
	raw, ok := data[key].([]any)
	if !ok {
		return nil
	}
	transcript := make(models.ChatTranscript, 0, len(raw))
	for _, item := range raw {
		msg, ok := item.(map[string]any)
		if !ok {
			continue
		}
		transcript = append(transcript, models.ChatMessage{
			Role:    dataString(msg, "role"),
			Content: dataString(msg, "content"),
		})
	}
	return transcript
}
