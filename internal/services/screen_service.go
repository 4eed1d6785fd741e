package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/justsurfingit/AI-HR-Funnel/internal/content"
	"github.com/justsurfingit/AI-HR-Funnel/internal/dtos"
	"github.com/justsurfingit/AI-HR-Funnel/internal/llm"
	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
	"github.com/justsurfingit/AI-HR-Funnel/internal/scoring"
	"github.com/justsurfingit/AI-HR-Funnel/pkg/apierr"
)

// ScreenService orchestrates the AI-backed stages: render prompt, call the
// gateway, validate the structured result. Nothing here persists candidate
// state; the client follows up with a stage update carrying the computed
// outcome, so every call is idempotent on retry.
type ScreenService struct {
	Gateway llm.Gateway
	DB      *gorm.DB
}

func NewScreenService(gateway llm.Gateway, db *gorm.DB) *ScreenService {
	return &ScreenService{Gateway: gateway, DB: db}
}

// chatOpeningQuestion seeds an empty behavioral-interview transcript.
const chatOpeningQuestion = "Здравствуйте! Рад познакомиться. Расскажите, пожалуйста, о вашем самом запомнившемся успехе в продажах — что это была за сделка и какой была ваша роль?"

// chatUserTurnsForAssessment is how many candidate answers finish the
// interview and trigger the final assessment.
const chatUserTurnsForAssessment = 5

// GenerateJobPosting turns an HR brief into a full posting.
func (s *ScreenService) GenerateJobPosting(ctx context.Context, brief *dtos.JobBrief) (*llm.GeneratedPosting, error) {
	prompt := fmt.Sprintf(llm.JobGenerationPrompt,
		brief.JobTitle,
		brief.CompanyName,
		orDash(brief.CompanyDescription),
		brief.SalesSegment,
		brief.SalaryRange,
		orDash(brief.SalesTarget),
		orDash(brief.WorkFormat),
		orDash(brief.AdditionalRequirements),
	)

	raw, err := s.Gateway.Generate(ctx, "", prompt, llm.TempJobGeneration, true)
	if err != nil {
		return nil, err
	}
	return llm.Decode[llm.GeneratedPosting](raw)
}

// ScoreResume grades a resume against a job description.
func (s *ScreenService) ScoreResume(ctx context.Context, req *dtos.ResumeScoringRequest) (*llm.ResumeEvaluation, error) {
	resume := llm.TruncateTokens(req.ResumeText, llm.MaxPromptTokens)
	prompt := fmt.Sprintf(llm.ResumeScoringPrompt, req.JobDescription, resume)

	raw, err := s.Gateway.Generate(ctx, "", prompt, llm.TempResumeScoring, true)
	if err != nil {
		return nil, err
	}
	return llm.Decode[llm.ResumeEvaluation](raw)
}

// ClassifyMotivation labels the motivation survey answers.
func (s *ScreenService) ClassifyMotivation(ctx context.Context, req *dtos.MotivationRequest) (*llm.MotivationAnalysis, error) {
	prompt := fmt.Sprintf(llm.MotivationPrompt,
		req.AnswerMotivation,
		req.AnswerReasonForLeaving,
		req.AnswerKPI,
		strings.Join(llm.MotivationCategories, ", "),
	)

	raw, err := s.Gateway.Generate(ctx, "", prompt, llm.TempMotivation, true)
	if err != nil {
		return nil, err
	}
	return llm.Decode[llm.MotivationAnalysis](raw)
}

// ChatTurn advances the behavioral interview: an empty transcript gets the
// opening question, a finished transcript gets the final assessment, and
// anything in between gets the next question.
func (s *ScreenService) ChatTurn(ctx context.Context, conversation []models.ChatMessage) (*dtos.ChatResponse, error) {
	if len(conversation) == 0 {
		return &dtos.ChatResponse{
			Conversation: []models.ChatMessage{{Role: "assistant", Content: chatOpeningQuestion}},
		}, nil
	}

	if userTurns(conversation) >= chatUserTurnsForAssessment {
		transcript := llm.TruncateTokens(formatTranscript(conversation), llm.MaxPromptTokens)
		prompt := fmt.Sprintf(llm.ChatAssessmentPrompt, transcript)

		raw, err := s.Gateway.Generate(ctx, "", prompt, llm.TempChatAssessment, true)
		if err != nil {
			return nil, err
		}
		assessment, err := llm.Decode[llm.ChatAssessment](raw)
		if err != nil {
			return nil, err
		}

		return &dtos.ChatResponse{
			Conversation: conversation,
			Assessment:   assessmentToMap(assessment),
		}, nil
	}

	transcript := llm.TruncateTokens(formatTranscript(conversation), llm.MaxPromptTokens)
	prompt := fmt.Sprintf(llm.ChatTurnPrompt, transcript)

	question, err := s.Gateway.Generate(ctx, llm.ChatSystemPrompt, prompt, llm.TempChatTurn, false)
	if err != nil {
		return nil, err
	}

	next := append(append([]models.ChatMessage{}, conversation...), models.ChatMessage{
		Role:    "assistant",
		Content: strings.TrimSpace(question),
	})
	return &dtos.ChatResponse{Conversation: next}, nil
}

// EvaluateSales grades the sales-case answers and applies the acceptance
// policy.
func (s *ScreenService) EvaluateSales(ctx context.Context, req *dtos.SalesEvalRequest) (*dtos.SalesEvalResponse, error) {
	prompt := fmt.Sprintf(llm.SalesEvalPrompt, formatSalesCases(req.Answers))

	raw, err := s.Gateway.Generate(ctx, "", prompt, llm.TempSalesEval, true)
	if err != nil {
		return nil, err
	}
	eval, err := llm.Decode[llm.SalesEvaluation](raw)
	if err != nil {
		return nil, err
	}

	return &dtos.SalesEvalResponse{
		Scores:            eval.Scores,
		OverallSalesScore: eval.OverallSalesScore,
		Strengths:         eval.Strengths,
		Concerns:          eval.Concerns,
		Summary:           eval.Summary,
		Passed:            !scoring.SalesRejected(eval.OverallSalesScore, eval.Concerns),
	}, nil
}

// InterviewGuide builds the final-interview briefing from the stored
// candidate record. Reads the record, writes nothing.
func (s *ScreenService) InterviewGuide(ctx context.Context, candidateID uint) (*llm.InterviewGuide, error) {
	var candidate models.Candidate
	if err := s.DB.First(&candidate, candidateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("candidate not found")
		}
		return nil, err
	}
	var job models.Job
	if err := s.DB.First(&job, candidate.JobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("job not found")
		}
		return nil, err
	}

	prompt := fmt.Sprintf(llm.InterviewGuidePrompt, candidateDossier(&candidate, &job))

	raw, err := s.Gateway.Generate(ctx, "", prompt, llm.TempInterviewGuide, true)
	if err != nil {
		return nil, err
	}
	return llm.Decode[llm.InterviewGuide](raw)
}

func assessmentToMap(a *llm.ChatAssessment) map[string]any {
	scores := make(map[string]any, len(a.Scores))
	for k, v := range a.Scores {
		scores[k] = v
	}
	return map[string]any{
		"scores":        scores,
		"final_summary": a.FinalSummary,
		"is_complete":   a.IsComplete,
	}
}

func userTurns(conversation []models.ChatMessage) int {
	count := 0
	for _, msg := range conversation {
		if msg.Role == "user" {
			count++
		}
	}
	return count
}

func formatTranscript(conversation []models.ChatMessage) string {
	var sb strings.Builder
	for _, msg := range conversation {
		label := "Кандидат"
		if msg.Role == "assistant" {
			label = "Интервьюер"
		}
		fmt.Fprintf(&sb, "%s: %s\n", label, msg.Content)
	}
	return sb.String()
}

func formatSalesCases(answers []dtos.SalesAnswer) string {
	scenarios := make(map[string]content.SalesScenario, len(content.SalesScenarios))
	for _, scenario := range content.SalesScenarios {
		scenarios[scenario.ID] = scenario
	}

	var sb strings.Builder
	for _, answer := range answers {
		scenario, known := scenarios[answer.ScenarioID]
		if !known {
			continue
		}
		fmt.Fprintf(&sb, "[%s] (%s) %s\nОтвет кандидата: %s\n\n",
			scenario.ID, scenario.Type, scenario.Text,
			llm.TruncateTokens(answer.Answer, llm.MaxPromptTokens))
	}
	return sb.String()
}

// candidateDossier flattens the stored stage results into prompt text.
func candidateDossier(c *models.Candidate, job *models.Job) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Вакансия: %s в %s (%s)\n", job.JobTitleFinal, job.CompanyName, job.SalesSegment)
	fmt.Fprintf(&sb, "Кандидат: %s\n", orDash(c.Name))

	if c.ResumeScore != nil {
		fmt.Fprintf(&sb, "Резюме: %d/100. %s\n", *c.ResumeScore, c.ResumeSummary)
	}
	if c.PrimaryMotivation != "" {
		fmt.Fprintf(&sb, "Мотивация: %s (вторичная: %s). %s\n",
			c.PrimaryMotivation, orDash(c.SecondaryMotivation), c.MotivationSummary)
	}
	if c.CognitiveScore != nil && c.CognitiveTotal != nil {
		fmt.Fprintf(&sb, "Когнитивный тест: %d/%d\n", *c.CognitiveScore, *c.CognitiveTotal)
	}
	if len(c.InterviewAssessment) > 0 {
		if assessment, err := json.Marshal(c.InterviewAssessment); err == nil {
			fmt.Fprintf(&sb, "Оценка AI-интервью: %s\n", assessment)
		}
	}
	if len(c.PersonalityProfile) > 0 {
		if profile, err := json.Marshal(c.PersonalityProfile); err == nil {
			fmt.Fprintf(&sb, "Личностный профиль: %s\n", profile)
		}
	}
	if c.PersonalityScore != nil {
		fmt.Fprintf(&sb, "Sales Fit Score: %d/100. %s\n", *c.PersonalityScore, c.PersonalitySummary)
	}
	if c.SalesScore != nil {
		fmt.Fprintf(&sb, "Сейлз-кейсы: %d/100\n", *c.SalesScore)
	}
	if len(c.RedFlags) > 0 {
		fmt.Fprintf(&sb, "Красные флаги: %s\n", strings.Join(c.RedFlags, "; "))
	}
	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
