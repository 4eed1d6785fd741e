package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_ResumeEvaluation(t *testing.T) {
	raw := `{"score": 72, "summary": "Сильный кандидат", "red_flags": ["частая смена работы"]}`

	payload, err := Decode[ResumeEvaluation](raw)
	require.NoError(t, err)
	assert.Equal(t, 72, payload.Score)
	assert.Equal(t, "Сильный кандидат", payload.Summary)
	assert.Equal(t, []string{"частая смена работы"}, payload.RedFlags)
}

func TestDecode_MarkdownFencesTolerated(t *testing.T) {
	raw := "```json\n{\"score\": 50, \"summary\": \"ok\", \"red_flags\": []}\n```"

	payload, err := Decode[ResumeEvaluation](raw)
	require.NoError(t, err)
	assert.Equal(t, 50, payload.Score)
}

func TestDecode_MalformedJSONIsGenerationError(t *testing.T) {
	_, err := Decode[ResumeEvaluation](`{"score": not json`)
	require.Error(t, err)

	var genErr *GenerationError
	assert.True(t, errors.As(err, &genErr))
}

func TestDecode_SchemaValidationFailureIsGenerationError(t *testing.T) {
	// Score out of range fails validation even though the JSON parses.
	_, err := Decode[ResumeEvaluation](`{"score": 250, "summary": "x"}`)
	require.Error(t, err)

	var genErr *GenerationError
	assert.True(t, errors.As(err, &genErr))
}

func TestDecode_GeneratedPostingRequiresTitle(t *testing.T) {
	_, err := Decode[GeneratedPosting](`{"job_description": "text only"}`)
	require.Error(t, err)
}

func TestDecode_GeneratedPosting(t *testing.T) {
	raw := `{
		"job_title_final": "Менеджер по продажам B2B",
		"job_description": "Описание",
		"requirements": ["Опыт продаж"],
		"nice_to_have": ["CRM"],
		"benefits": ["ДМС"],
		"screening_questions": [{"question": "Готовы к холодным звонкам?", "type": "yes_no", "deal_breaker": true}],
		"salary_display": "от 50 000 руб.",
		"tags": ["B2B"]
	}`

	payload, err := Decode[GeneratedPosting](raw)
	require.NoError(t, err)
	assert.Equal(t, "Менеджер по продажам B2B", payload.JobTitleFinal)
	require.Len(t, payload.ScreeningQuestions, 1)
	assert.True(t, payload.ScreeningQuestions[0].DealBreaker)
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  \n{\"a\":1}", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.in))
		})
	}
}

func TestTruncateTokens_ShortTextUntouched(t *testing.T) {
	text := "Опыт продаж пять лет, B2B сегмент."
	assert.Equal(t, text, TruncateTokens(text, 100))
}
