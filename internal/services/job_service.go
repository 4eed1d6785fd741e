package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/justsurfingit/AI-HR-Funnel/internal/dtos"
	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
	"github.com/justsurfingit/AI-HR-Funnel/pkg/apierr"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Create persists a brief together with its generated posting. Screening
// criteria and the resume threshold start at their defaults; editing them is
// a future HR operation.
func (s *JobService) Create(req *dtos.JobCreationRequest) (*dtos.JobResponse, error) {
	workFormat := req.Brief.WorkFormat
	if workFormat == "" {
		workFormat = "office"
	}

	job := &models.Job{
		JobTitle:               req.Brief.JobTitle,
		CompanyName:            req.Brief.CompanyName,
		CompanyDescription:     req.Brief.CompanyDescription,
		SalesSegment:           req.Brief.SalesSegment,
		SalaryRange:            req.Brief.SalaryRange,
		SalesTarget:            req.Brief.SalesTarget,
		WorkFormat:             workFormat,
		AdditionalRequirements: req.Brief.AdditionalRequirements,

		JobTitleFinal:      req.Generated.JobTitleFinal,
		JobDescription:     req.Generated.JobDescription,
		Requirements:       req.Generated.Requirements,
		NiceToHave:         req.Generated.NiceToHave,
		Benefits:           req.Generated.Benefits,
		ScreeningQuestions: req.Generated.ScreeningQuestions,
		SalaryDisplay:      req.Generated.SalaryDisplay,
		Tags:               req.Generated.Tags,

		ScreeningCriteria: models.DefaultScreeningCriteria(),
		MinResumeScore:    models.DefaultMinResumeScore,
		IsActive:          true,
	}

	if err := s.DB.Create(job).Error; err != nil {
		return nil, apierr.Validation("failed to create job: " + err.Error())
	}

	return &dtos.JobResponse{Job: *job, CandidatesCount: 0}, nil
}

// List returns jobs newest-first with their candidate counts.
func (s *JobService) List(activeOnly bool) ([]dtos.JobResponse, error) {
	query := s.DB.Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var jobs []models.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}

	result := make([]dtos.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		count, err := s.candidateCount(job.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, dtos.JobResponse{Job: job, CandidatesCount: count})
	}
	return result, nil
}

// Get returns one job with its candidate count.
func (s *JobService) Get(id uint) (*dtos.JobResponse, error) {
	var job models.Job
	if err := s.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("job not found")
		}
		return nil, err
	}

	count, err := s.candidateCount(job.ID)
	if err != nil {
		return nil, err
	}
	return &dtos.JobResponse{Job: job, CandidatesCount: count}, nil
}

func (s *JobService) candidateCount(jobID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Candidate{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}
