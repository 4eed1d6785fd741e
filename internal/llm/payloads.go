package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
)

// Each AI-backed stage decodes the completion into one of these typed
// payloads. A payload that fails to decode or validate is treated exactly
// like a gateway failure: nothing downstream ever sees a half-formed result.

// GeneratedPosting is the stage-1 job generation output.
type GeneratedPosting struct {
	JobTitleFinal      string                       `json:"job_title_final"`
	JobDescription     string                       `json:"job_description"`
	Requirements       []string                     `json:"requirements"`
	NiceToHave         []string                     `json:"nice_to_have"`
	Benefits           []string                     `json:"benefits"`
	ScreeningQuestions []models.ScreeningQuestion   `json:"screening_questions"`
	SalaryDisplay      string                       `json:"salary_display"`
	Tags               []string                     `json:"tags"`
}

func (p *GeneratedPosting) Validate() error {
	if p.JobTitleFinal == "" {
		return fmt.Errorf("missing job_title_final")
	}
	if p.JobDescription == "" {
		return fmt.Errorf("missing job_description")
	}
	return nil
}

// ResumeEvaluation is the stage-3 resume scoring output.
type ResumeEvaluation struct {
	Score    int      `json:"score"`
	Summary  string   `json:"summary"`
	RedFlags []string `json:"red_flags"`
}

func (p *ResumeEvaluation) Validate() error {
	if p.Score < 0 || p.Score > 100 {
		return fmt.Errorf("score %d out of range [0,100]", p.Score)
	}
	return nil
}

// MotivationAnalysis is the stage-4 motivation survey output.
type MotivationAnalysis struct {
	PrimaryMotivation   string `json:"primary_motivation"`
	SecondaryMotivation string `json:"secondary_motivation"`
	AnalysisSummary     string `json:"analysis_summary"`
}

func (p *MotivationAnalysis) Validate() error {
	if p.PrimaryMotivation == "" {
		return fmt.Errorf("missing primary_motivation")
	}
	return nil
}

// ChatAssessment is the final assessment of the behavioral interview.
type ChatAssessment struct {
	Scores       map[string]int `json:"scores"`
	FinalSummary string         `json:"final_summary"`
	IsComplete   bool           `json:"is_complete"`
}

func (p *ChatAssessment) Validate() error {
	if p.FinalSummary == "" {
		return fmt.Errorf("missing final_summary")
	}
	return nil
}

// SalesEvaluation is the stage-8 sales-case grading output.
type SalesEvaluation struct {
	Scores            map[string]int `json:"scores"`
	OverallSalesScore int            `json:"overall_sales_score"`
	Strengths         []string       `json:"strengths"`
	Concerns          []string       `json:"concerns"`
	Summary           string         `json:"summary"`
}

func (p *SalesEvaluation) Validate() error {
	if p.OverallSalesScore < 0 || p.OverallSalesScore > 100 {
		return fmt.Errorf("overall_sales_score %d out of range [0,100]", p.OverallSalesScore)
	}
	return nil
}

// InterviewGuide is the generated briefing for the final human interview.
type InterviewGuide struct {
	ExecutiveSummary     string   `json:"executive_summary"`
	StrengthsToProbe     []string `json:"strengths_to_probe"`
	ConcernsToVerify     []string `json:"concerns_to_verify"`
	RecommendedQuestions []string `json:"recommended_questions"`
	SalaryGuidance       string   `json:"salary_guidance"`
}

func (p *InterviewGuide) Validate() error {
	if p.ExecutiveSummary == "" {
		return fmt.Errorf("missing executive_summary")
	}
	return nil
}

type validatable interface {
	Validate() error
}

// Decode parses a completion into the stage's payload type. Markdown code
// fences are tolerated even in JSON mode; some models wrap regardless.
func Decode[T any, PT interface {
	*T
	validatable
}](raw string) (*T, error) {
	cleaned := StripFences(raw)

	payload := PT(new(T))
	if err := json.Unmarshal([]byte(cleaned), payload); err != nil {
		return nil, &GenerationError{Detail: "completion is not valid JSON", Cause: err}
	}
	if err := payload.Validate(); err != nil {
		return nil, &GenerationError{Detail: "completion failed schema validation", Cause: err}
	}
	return (*T)(payload), nil
}

// StripFences removes a surrounding markdown code fence, if any.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
