package dtos

import "github.com/justsurfingit/AI-HR-Funnel/internal/models"

// JobBrief is the HR-supplied input for job generation and creation.
type JobBrief struct {
	JobTitle               string `json:"job_title" binding:"required"`
	CompanyName            string `json:"company_name" binding:"required"`
	CompanyDescription     string `json:"company_description"`
	SalesSegment           string `json:"sales_segment" binding:"required"`
	SalaryRange            string `json:"salary_range" binding:"required"`
	SalesTarget            string `json:"sales_target"`
	WorkFormat             string `json:"work_format"`
	AdditionalRequirements string `json:"additional_requirements"`
}

// JobGenerated is the previously-generated posting payload accepted on job
// creation.
type JobGenerated struct {
	JobTitleFinal      string                     `json:"job_title_final" binding:"required"`
	JobDescription     string                     `json:"job_description" binding:"required"`
	Requirements       []string                   `json:"requirements"`
	NiceToHave         []string                   `json:"nice_to_have"`
	Benefits           []string                   `json:"benefits"`
	ScreeningQuestions []models.ScreeningQuestion `json:"screening_questions"`
	SalaryDisplay      string                     `json:"salary_display"`
	Tags               []string                   `json:"tags"`
}

// JobCreationRequest persists a brief together with its generated posting.
type JobCreationRequest struct {
	Brief     JobBrief     `json:"brief" binding:"required"`
	Generated JobGenerated `json:"generated" binding:"required"`
}

// JobResponse is a job plus its candidate count.
type JobResponse struct {
	models.Job
	CandidatesCount int64 `json:"candidates_count"`
}
