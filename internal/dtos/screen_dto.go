package dtos

import "github.com/justsurfingit/AI-HR-Funnel/internal/models"

// ScreeningAnswer is one answer to a screening question; the value may be a
// bool, a string or a number depending on the question type.
type ScreeningAnswer struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     any    `json:"answer"`
}

// ScreeningRequest carries the answers plus optional criteria; when criteria
// are omitted the default set applies.
type ScreeningRequest struct {
	Answers  []ScreeningAnswer        `json:"answers" binding:"required"`
	Criteria models.ScreeningCriteria `json:"criteria,omitempty"`
}

type ScreeningResponse struct {
	Passed  bool   `json:"passed"`
	Details string `json:"details"`
}

type CognitiveAnswer struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer"`
}

type CognitiveRequest struct {
	Answers []CognitiveAnswer `json:"answers" binding:"required"`
}

type CognitiveResponse struct {
	Score  int  `json:"score"`
	Total  int  `json:"total"`
	Passed bool `json:"passed"`
}

type PersonalityAnswer struct {
	QuestionID string `json:"question_id" binding:"required"`
	Value      int    `json:"value" binding:"required,min=1,max=5"`
}

type PersonalityRequest struct {
	Answers []PersonalityAnswer `json:"answers" binding:"required"`
}

type PersonalityResponse struct {
	Profile       map[string]int `json:"profile"`
	RedFlags      []string       `json:"red_flags"`
	SalesFitScore int            `json:"sales_fit_score"`
	Summary       string         `json:"summary"`
	Passed        bool           `json:"passed"`
}

type ResumeScoringRequest struct {
	JobDescription string `json:"job_description" binding:"required"`
	ResumeText     string `json:"resume_text" binding:"required"`
}

type MotivationRequest struct {
	AnswerMotivation       string `json:"answer_motivation" binding:"required"`
	AnswerReasonForLeaving string `json:"answer_reason_for_leaving" binding:"required"`
	AnswerKPI              string `json:"answer_kpi" binding:"required"`
}

type ChatRequest struct {
	Conversation []models.ChatMessage `json:"conversation"`
}

type ChatResponse struct {
	Conversation []models.ChatMessage `json:"conversation"`
	Assessment   map[string]any       `json:"assessment,omitempty"`
}

type SalesAnswer struct {
	ScenarioID string `json:"scenario_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

type SalesEvalRequest struct {
	Answers []SalesAnswer `json:"answers" binding:"required"`
}

type SalesEvalResponse struct {
	Scores            map[string]int `json:"scores"`
	OverallSalesScore int            `json:"overall_sales_score"`
	Strengths         []string       `json:"strengths"`
	Concerns          []string       `json:"concerns"`
	Summary           string         `json:"summary"`
	Passed            bool           `json:"passed"`
}

type InterviewGuideRequest struct {
	CandidateID uint `json:"candidate_id" binding:"required"`
}
