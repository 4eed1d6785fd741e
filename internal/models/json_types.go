package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON column helpers. Each type marshals itself into a jsonb column and
// scans back from either []byte (postgres) or string (sqlite).

func scanJSON(value any, dest any) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column type %T for JSON scan", value)
	}
}

// StringList is an ordered list of strings stored as a JSON array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value any) error {
	return scanJSON(value, l)
}

// JSONMap is an open key/value blob for per-stage raw submissions.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *JSONMap) Scan(value any) error {
	return scanJSON(value, m)
}

// ScreeningQuestion is one generated screening question on a job posting.
type ScreeningQuestion struct {
	Question    string `json:"question"`
	Type        string `json:"type"` // yes_no, choice, number
	DealBreaker bool   `json:"deal_breaker"`
}

type ScreeningQuestionList []ScreeningQuestion

func (l ScreeningQuestionList) Value() (driver.Value, error) {
	if l == nil {
		l = ScreeningQuestionList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *ScreeningQuestionList) Scan(value any) error {
	return scanJSON(value, l)
}

// Criterion is one screening expectation: either an exact expected value
// (bool or string) or a numeric upper bound.
type Criterion struct {
	Expected   any  `json:"expected,omitempty"`
	MaxAllowed *int `json:"max_allowed,omitempty"`
}

type ScreeningCriteria map[string]Criterion

func (c ScreeningCriteria) Value() (driver.Value, error) {
	if c == nil {
		c = ScreeningCriteria{}
	}
	b, err := json.Marshal(c)
	return string(b), err
}

func (c *ScreeningCriteria) Scan(value any) error {
	return scanJSON(value, c)
}

// ChatMessage is one turn of the behavioral interview transcript.
type ChatMessage struct {
	Role    string `json:"role"` // assistant or user
	Content string `json:"content"`
}

type ChatTranscript []ChatMessage

func (t ChatTranscript) Value() (driver.Value, error) {
	if t == nil {
		t = ChatTranscript{}
	}
	b, err := json.Marshal(t)
	return string(b), err
}

func (t *ChatTranscript) Scan(value any) error {
	return scanJSON(value, t)
}
