package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/AI-HR-Funnel/internal/content"
	"github.com/justsurfingit/AI-HR-Funnel/internal/dtos"
	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
	"github.com/justsurfingit/AI-HR-Funnel/internal/scoring"
	"github.com/justsurfingit/AI-HR-Funnel/internal/services"
)

// ScreenHandler serves the per-stage scoring endpoints. The pure ones wrap
// ScoringRules over the request body; the AI-backed ones go through the
// completion gateway. None of them write candidate state.
type ScreenHandler struct {
	Screen *services.ScreenService
}

func NewScreenHandler(screen *services.ScreenService) *ScreenHandler {
	return &ScreenHandler{Screen: screen}
}

// CheckScreening is POST /screen/screening. Criteria default when omitted.
func (h *ScreenHandler) CheckScreening(c *gin.Context) {
	var req dtos.ScreeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	criteria := req.Criteria
	if len(criteria) == 0 {
		criteria = models.DefaultScreeningCriteria()
	}

	answers := make(map[string]any, len(req.Answers))
	for _, a := range req.Answers {
		answers[a.QuestionID] = a.Answer
	}

	passed, details := scoring.CheckScreening(answers, criteria)
	c.JSON(http.StatusOK, dtos.ScreeningResponse{Passed: passed, Details: details})
}

func (h *ScreenHandler) CognitiveQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": content.CognitiveQuestions})
}

func (h *ScreenHandler) GradeCognitive(c *gin.Context) {
	var req dtos.CognitiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	answers := make([]scoring.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, scoring.Answer{QuestionID: a.QuestionID, Answer: a.Answer})
	}

	score, total, passed := scoring.GradeCognitive(answers, content.CognitiveAnswerKey)
	c.JSON(http.StatusOK, dtos.CognitiveResponse{Score: score, Total: total, Passed: passed})
}

func (h *ScreenHandler) PersonalityQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questions": content.PersonalityQuestions,
		"scales":    content.PersonalityScales,
	})
}

func (h *ScreenHandler) AggregatePersonality(c *gin.Context) {
	var req dtos.PersonalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	answers := make([]scoring.ScaleAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, scoring.ScaleAnswer{QuestionID: a.QuestionID, Value: a.Value})
	}

	result := scoring.AggregatePersonality(answers, content.PersonalityQuestionScale(), content.PersonalityScales)
	c.JSON(http.StatusOK, dtos.PersonalityResponse{
		Profile:       result.Scores,
		RedFlags:      result.RedFlags,
		SalesFitScore: result.SalesFitScore,
		Summary:       result.Summary,
		Passed:        !scoring.PersonalityRejected(result.RedFlags, result.SalesFitScore),
	})
}

func (h *ScreenHandler) SalesScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"scenarios": content.SalesScenarios})
}

func (h *ScreenHandler) ScoreResume(c *gin.Context) {
	var req dtos.ResumeScoringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	eval, err := h.Screen.ScoreResume(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eval)
}

func (h *ScreenHandler) ClassifyMotivation(c *gin.Context) {
	var req dtos.MotivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	analysis, err := h.Screen.ClassifyMotivation(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (h *ScreenHandler) Chat(c *gin.Context) {
	var req dtos.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.Screen.ChatTurn(c.Request.Context(), req.Conversation)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ScreenHandler) EvaluateSales(c *gin.Context) {
	var req dtos.SalesEvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.Screen.EvaluateSales(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ScreenHandler) InterviewGuide(c *gin.Context) {
	var req dtos.InterviewGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	guide, err := h.Screen.InterviewGuide(c.Request.Context(), req.CandidateID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guide)
}
