package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/justsurfingit/AI-HR-Funnel/internal/database"
	"github.com/justsurfingit/AI-HR-Funnel/internal/dtos"
	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
	"github.com/justsurfingit/AI-HR-Funnel/internal/services"
)

type fakeGateway struct {
	response string
	err      error
}

func (f *fakeGateway) Generate(ctx context.Context, system, prompt string, temperature float64, expectJSON bool) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestServer(t *testing.T, gw *fakeGateway) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	if gw == nil {
		gw = &fakeGateway{}
	}

	jobService := services.NewJobService(db)
	candidateService := services.NewCandidateService(db)
	screenService := services.NewScreenService(gw, db)

	router := NewRouter(Deps{
		Jobs:       NewJobHandler(jobService, screenService),
		Candidates: NewCandidateHandler(candidateService),
		Screen:     NewScreenHandler(screenService),
		Offers:     NewOfferHandler(services.NewOfferService(db)),
		Stats:      NewStatsHandler(services.NewStatsService(db)),
	})
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	router, _ := newTestServer(t, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestScreeningEndpointBoundary(t *testing.T) {
	router, _ := newTestServer(t, nil)

	body := map[string]any{
		"answers": []map[string]any{
			{"question_id": "cold_calls", "answer": true},
			{"question_id": "work_format", "answer": "office"},
			{"question_id": "salary_expectation", "answer": 60000},
		},
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/screen/screening", body)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[dtos.ScreeningResponse](t, w)
	assert.True(t, resp.Passed, "salary at the maximum is inclusive")
}

func TestScreeningEndpointSalaryTooHigh(t *testing.T) {
	router, _ := newTestServer(t, nil)

	body := map[string]any{
		"answers": []map[string]any{
			{"question_id": "cold_calls", "answer": true},
			{"question_id": "work_format", "answer": "office"},
			{"question_id": "salary_expectation", "answer": 80000},
		},
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/screen/screening", body)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[dtos.ScreeningResponse](t, w)
	assert.False(t, resp.Passed)
	assert.Contains(t, resp.Details, "80000")
	assert.Contains(t, resp.Details, "60000")
}

func TestScreeningEndpointMissingAnswers(t *testing.T) {
	router, _ := newTestServer(t, nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/screen/screening", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errBody := decodeBody[map[string]any](t, w)
	assert.Equal(t, "Validation Error", errBody["message"])
	assert.NotEmpty(t, errBody["request_id"])
}

func TestCognitiveEndpoint(t *testing.T) {
	router, _ := newTestServer(t, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/screen/cognitive/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := map[string]any{
		"answers": []map[string]any{
			{"question_id": "logic_1", "answer": "Ложь"},
			{"question_id": "math_1", "answer": "5 рублей"},
			{"question_id": "attention_1", "answer": "10"},
		},
	}
	w = doJSON(t, router, http.MethodPost, "/api/v1/screen/cognitive", body)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[dtos.CognitiveResponse](t, w)
	assert.Equal(t, 2, resp.Score)
	assert.Equal(t, 3, resp.Total)
	assert.True(t, resp.Passed, "one miss is still within tolerance")
}

func TestPersonalityEndpointDefaultsToNeutral(t *testing.T) {
	router, _ := newTestServer(t, nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/screen/personality", map[string]any{
		"answers": []map[string]any{{"question_id": "p1", "value": 5}},
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[dtos.PersonalityResponse](t, w)
	assert.Equal(t, 100, resp.Profile["persistence"])
	assert.Equal(t, 50, resp.Profile["honesty"], "unanswered scales default to the midpoint")
}

func TestJobAndCandidateFlow(t *testing.T) {
	router, _ := newTestServer(t, nil)

	jobBody := map[string]any{
		"brief": map[string]any{
			"job_title":     "Менеджер по продажам",
			"company_name":  "ООО Ромашка",
			"sales_segment": "B2B",
			"salary_range":  "80-120k",
		},
		"generated": map[string]any{
			"job_title_final": "Менеджер по продажам B2B",
			"job_description": "Описание вакансии",
		},
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/jobs", jobBody)
	require.Equal(t, http.StatusCreated, w.Code)
	job := decodeBody[dtos.JobResponse](t, w)

	w = doJSON(t, router, http.MethodPost, "/api/v1/candidates", map[string]any{
		"job_id": job.ID,
		"name":   "Иван Петров",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	candidate := decodeBody[models.Candidate](t, w)
	assert.Equal(t, models.StageScreening, candidate.CurrentStage)

	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/candidates/%d/stage", candidate.ID), map[string]any{
		"stage":  "screening",
		"passed": true,
		"data":   map[string]any{"cold_calls": true},
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[models.Candidate](t, w)
	assert.Equal(t, models.StageResume, updated.CurrentStage)

	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/candidates/%d/stage", candidate.ID), map[string]any{
		"stage": "resume",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "gating stage without the passed flag")
}

func TestCandidateNotFoundOnUnknownJob(t *testing.T) {
	router, _ := newTestServer(t, nil)

	w := doJSON(t, router, http.MethodPost, "/api/v1/candidates", map[string]any{"job_id": 777})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResumeEndpointGatewayFailure(t *testing.T) {
	router, _ := newTestServer(t, &fakeGateway{response: "not json at all"})

	w := doJSON(t, router, http.MethodPost, "/api/v1/screen/resume", map[string]any{
		"job_description": "desc",
		"resume_text":     "resume",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	errBody := decodeBody[map[string]any](t, w)
	assert.Equal(t, "Generation Failed", errBody["message"])
}

func TestStatsEndpoint(t *testing.T) {
	router, _ := newTestServer(t, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/stats", nil)

	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeBody[services.FunnelStats](t, w)
	assert.Zero(t, stats.TotalCandidates)
	assert.Equal(t, 0.0, stats.ConversionRate)
}
