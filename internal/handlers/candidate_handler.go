package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/AI-HR-Funnel/internal/dtos"
	"github.com/justsurfingit/AI-HR-Funnel/internal/services"
	"github.com/justsurfingit/AI-HR-Funnel/pkg/apierr"
)

type CandidateHandler struct {
	Candidates *services.CandidateService
}

func NewCandidateHandler(candidates *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{Candidates: candidates}
}

func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req dtos.CandidateCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	candidate, err := h.Candidates.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	var jobID *uint
	if raw := c.Query("job_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, apierr.Validation("invalid job_id query parameter"))
			return
		}
		id := uint(parsed)
		jobID = &id
	}

	candidates, err := h.Candidates.List(jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	candidate, err := h.Candidates.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// UpdateStage is PATCH /candidates/:id/stage, the single mutation entry
// point for the funnel.
func (h *CandidateHandler) UpdateStage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dtos.StageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	candidate, err := h.Candidates.UpdateStage(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}
