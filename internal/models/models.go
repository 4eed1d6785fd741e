package models

import (
	"time"

	"gorm.io/gorm"
)

// Candidate status values. Rejected and completed are terminal.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

// Funnel stages in progression order.
const (
	StageScreening     = "screening"
	StageResume        = "resume"
	StageMotivation    = "motivation"
	StageCognitive     = "cognitive"
	StageInterview     = "interview"
	StagePersonality   = "personality"
	StageSales         = "sales"
	StageReadyForFinal = "ready_for_final"
	StageOfferPending  = "offer_pending"
	StageHired         = "hired"

	// Update-request stage names that move the pointer past ready_for_final.
	StageFinalInterview = "final_interview"
	StageOffer          = "offer"
)

// Offer status values. Transitions are free-form, not a state machine.
const (
	OfferDraft    = "draft"
	OfferSent     = "sent"
	OfferAccepted = "accepted"
	OfferRejected = "rejected"
	OfferExpired  = "expired"
)

// DefaultMinResumeScore is the resume-stage pass threshold used when a job
// does not override it.
const DefaultMinResumeScore = 65

// DefaultScreeningCriteria returns the criteria applied to jobs created
// without explicit overrides.
func DefaultScreeningCriteria() ScreeningCriteria {
	maxSalary := 60000
	return ScreeningCriteria{
		"cold_calls":         {Expected: true},
		"work_format":        {Expected: "office"},
		"salary_expectation": {MaxAllowed: &maxSalary},
	}
}

// Job is a vacancy created by HR: the original brief plus the generated
// posting. Deleting a job cascades to its candidates.
type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Brief fields supplied by HR
	JobTitle               string `gorm:"not null" json:"job_title"`
	CompanyName            string `gorm:"not null" json:"company_name"`
	CompanyDescription     string `gorm:"type:text" json:"company_description,omitempty"`
	SalesSegment           string `json:"sales_segment"`
	SalaryRange            string `json:"salary_range"`
	SalesTarget            string `json:"sales_target,omitempty"`
	WorkFormat             string `gorm:"default:'office'" json:"work_format"`
	AdditionalRequirements string `gorm:"type:text" json:"additional_requirements,omitempty"`

	// Generated posting, produced once by the gateway
	JobTitleFinal      string                `json:"job_title_final"`
	JobDescription     string                `gorm:"type:text" json:"job_description"`
	Requirements       StringList            `gorm:"type:jsonb" json:"requirements"`
	NiceToHave         StringList            `gorm:"type:jsonb" json:"nice_to_have"`
	Benefits           StringList            `gorm:"type:jsonb" json:"benefits"`
	ScreeningQuestions ScreeningQuestionList `gorm:"type:jsonb" json:"screening_questions"`
	SalaryDisplay      string                `json:"salary_display"`
	Tags               StringList            `gorm:"type:jsonb" json:"tags"`

	// Screening parameters
	ScreeningCriteria ScreeningCriteria `gorm:"type:jsonb" json:"screening_criteria"`
	MinResumeScore    int               `gorm:"default:65" json:"min_resume_score"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	Candidates []Candidate `gorm:"constraint:OnDelete:CASCADE" json:"candidates,omitempty"`
}

// Candidate is one application moving through the funnel. Every per-stage
// result lands on this record; red flags only ever accumulate.
type Candidate struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	JobID uint `gorm:"not null;index" json:"job_id"`
	Job   Job  `json:"-"`

	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	Status         string `gorm:"default:'in_progress'" json:"status"`
	CurrentStage   string `gorm:"default:'screening'" json:"current_stage"`
	RejectionStage string `json:"rejection_stage,omitempty"`

	// Stage: screening
	ScreeningData   JSONMap `gorm:"type:jsonb" json:"screening_data,omitempty"`
	ScreeningPassed *bool   `json:"screening_passed,omitempty"`

	// Stage: resume
	ResumeText     string     `gorm:"type:text" json:"resume_text,omitempty"`
	ResumeScore    *int       `json:"resume_score,omitempty"`
	ResumeSummary  string     `gorm:"type:text" json:"resume_summary,omitempty"`
	ResumeRedFlags StringList `gorm:"type:jsonb" json:"resume_red_flags,omitempty"`
	ResumePassed   *bool      `json:"resume_passed,omitempty"`

	// Stage: motivation (never rejects)
	MotivationData      JSONMap `gorm:"type:jsonb" json:"motivation_data,omitempty"`
	PrimaryMotivation   string  `json:"primary_motivation,omitempty"`
	SecondaryMotivation string  `json:"secondary_motivation,omitempty"`
	MotivationSummary   string  `gorm:"type:text" json:"motivation_summary,omitempty"`

	// Stage: cognitive
	CognitiveScore  *int  `json:"cognitive_score,omitempty"`
	CognitiveTotal  *int  `json:"cognitive_total,omitempty"`
	CognitivePassed *bool `json:"cognitive_passed,omitempty"`

	// Stage: behavioral interview (never rejects)
	InterviewConversation ChatTranscript `gorm:"type:jsonb" json:"interview_conversation,omitempty"`
	InterviewAssessment   JSONMap        `gorm:"type:jsonb" json:"interview_assessment,omitempty"`

	// Stage: personality
	PersonalityProfile JSONMap `gorm:"type:jsonb" json:"personality_profile,omitempty"`
	PersonalitySummary string  `gorm:"type:text" json:"personality_summary,omitempty"`
	PersonalityScore   *int    `json:"personality_score,omitempty"`

	// Stage: sales cases
	SalesData     JSONMap    `gorm:"type:jsonb" json:"sales_data,omitempty"`
	SalesScore    *int       `json:"sales_score,omitempty"`
	SalesConcerns StringList `gorm:"type:jsonb" json:"sales_concerns,omitempty"`

	// Cumulative red flags, set semantics, merged from personality and sales.
	RedFlags StringList `gorm:"type:jsonb" json:"red_flags,omitempty"`
}

// Terminal reports whether the candidate may no longer receive stage updates.
func (c *Candidate) Terminal() bool {
	return c.Status == StatusRejected || c.Status == StatusCompleted
}

// Offer extended to a candidate. Multiple offers per candidate are allowed.
type Offer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CandidateID uint      `gorm:"not null;index" json:"candidate_id"`
	Candidate   Candidate `json:"-"`

	SalaryOffered         int    `json:"salary_offered"`
	StartDate             string `json:"start_date"`
	ProbationPeriodMonths int    `json:"probation_period_months"`
	AdditionalTerms       string `gorm:"type:text" json:"additional_terms,omitempty"`
	Status                string `gorm:"default:'draft'" json:"status"`
}

// Onboarding tracks the post-hire checklist and an activity metrics snapshot
// for one candidate.
type Onboarding struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CandidateID uint      `gorm:"not null;uniqueIndex" json:"candidate_id"`
	Candidate   Candidate `json:"-"`

	Checklist JSONMap `gorm:"type:jsonb" json:"checklist"`

	CallsMade         int     `json:"calls_made"`
	MeetingsScheduled int     `json:"meetings_scheduled"`
	DealsInPipeline   int     `json:"deals_in_pipeline"`
	Revenue           float64 `json:"revenue"`
}

// OnboardingChecklistItems are the fixed checklist keys created with every
// onboarding record.
var OnboardingChecklistItems = []string{
	"documents_signed",
	"workplace_ready",
	"crm_access_granted",
	"intro_training_done",
	"mentor_assigned",
	"first_call_made",
}

// NewChecklist returns the fixed checklist with every item unchecked.
func NewChecklist() JSONMap {
	checklist := JSONMap{}
	for _, item := range OnboardingChecklistItems {
		checklist[item] = false
	}
	return checklist
}
