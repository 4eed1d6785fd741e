package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/AI-HR-Funnel/internal/dtos"
	"github.com/justsurfingit/AI-HR-Funnel/internal/services"
	"github.com/justsurfingit/AI-HR-Funnel/pkg/apierr"
)

type JobHandler struct {
	Jobs   *services.JobService
	Screen *services.ScreenService
}

func NewJobHandler(jobs *services.JobService, screen *services.ScreenService) *JobHandler {
	return &JobHandler{Jobs: jobs, Screen: screen}
}

// GenerateJob is POST /jobs/generate: brief in, generated posting out.
// Nothing is persisted; the client reviews the draft and follows up with
// POST /jobs.
func (h *JobHandler) GenerateJob(c *gin.Context) {
	var brief dtos.JobBrief
	if err := c.ShouldBindJSON(&brief); err != nil {
		bindError(c, err)
		return
	}

	posting, err := h.Screen.GenerateJobPosting(c.Request.Context(), &brief)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	job, err := h.Jobs.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	jobs, err := h.Jobs.List(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.Jobs.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// pathID parses a numeric path parameter, responding 400 on garbage.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondError(c, apierr.Validation("invalid "+name+" path parameter"))
		return 0, false
	}
	return uint(id), true
}
