package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
)

func defaultCriteria() models.ScreeningCriteria {
	return models.DefaultScreeningCriteria()
}

func TestCheckScreening(t *testing.T) {
	tests := []struct {
		name        string
		answers     map[string]any
		wantPassed  bool
		wantDetails string
	}{
		{
			name: "all criteria met",
			answers: map[string]any{
				"cold_calls":         true,
				"work_format":        "office",
				"salary_expectation": 55000,
			},
			wantPassed:  true,
			wantDetails: "Candidate passed initial screening.",
		},
		{
			name: "salary at inclusive upper bound",
			answers: map[string]any{
				"cold_calls":         true,
				"work_format":        "office",
				"salary_expectation": 60000,
			},
			wantPassed:  true,
			wantDetails: "Candidate passed initial screening.",
		},
		{
			name: "refuses cold calls",
			answers: map[string]any{
				"cold_calls":         false,
				"work_format":        "office",
				"salary_expectation": 55000,
			},
			wantPassed:  false,
			wantDetails: "Candidate is not willing to make cold calls.",
		},
		{
			name: "prefers remote",
			answers: map[string]any{
				"cold_calls":         true,
				"work_format":        "remote",
				"salary_expectation": 55000,
			},
			wantPassed:  false,
			wantDetails: "Candidate prefers 'remote' format, but 'office' is required.",
		},
		{
			name: "prefers hybrid",
			answers: map[string]any{
				"cold_calls":         true,
				"work_format":        "hybrid",
				"salary_expectation": 55000,
			},
			wantPassed:  false,
			wantDetails: "Candidate prefers 'hybrid' format, but 'office' is required.",
		},
		{
			name: "salary too high",
			answers: map[string]any{
				"cold_calls":         true,
				"work_format":        "office",
				"salary_expectation": 80000,
			},
			wantPassed:  false,
			wantDetails: "Candidate's salary expectation (80000) exceeds the maximum allowed (60000).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed, details := CheckScreening(tt.answers, defaultCriteria())
			assert.Equal(t, tt.wantPassed, passed)
			assert.Equal(t, tt.wantDetails, details)
		})
	}
}

func TestCheckScreening_FailureReasonContainsBothValues(t *testing.T) {
	passed, details := CheckScreening(map[string]any{
		"cold_calls":         true,
		"work_format":        "office",
		"salary_expectation": 80000,
	}, defaultCriteria())

	assert.False(t, passed)
	assert.Contains(t, details, "80000")
	assert.Contains(t, details, "60000")
}

func TestCheckScreening_JSONNumbersAccepted(t *testing.T) {
	// encoding/json decodes numbers into float64; an integral float must pass.
	passed, _ := CheckScreening(map[string]any{
		"cold_calls":         true,
		"work_format":        "office",
		"salary_expectation": float64(55000),
	}, defaultCriteria())
	assert.True(t, passed)
}

func TestCheckScreening_MissingAnswerFails(t *testing.T) {
	passed, details := CheckScreening(map[string]any{
		"work_format":        "office",
		"salary_expectation": 55000,
	}, defaultCriteria())
	assert.False(t, passed)
	assert.Equal(t, "Candidate is not willing to make cold calls.", details)
}

func TestCheckScreening_NonIntegerSalaryFails(t *testing.T) {
	passed, details := CheckScreening(map[string]any{
		"cold_calls":         true,
		"work_format":        "office",
		"salary_expectation": "сколько дадите",
	}, defaultCriteria())
	assert.False(t, passed)
	assert.Contains(t, details, "salary expectation")
}

func TestCheckScreening_EmptyCriteriaAlwaysPasses(t *testing.T) {
	passed, details := CheckScreening(map[string]any{}, models.ScreeningCriteria{})
	assert.True(t, passed)
	assert.Equal(t, "Candidate passed initial screening.", details)
}
