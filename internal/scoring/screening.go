// Package scoring holds the pure stage-scoring rules: screening criteria
// matching, cognitive grading, personality aggregation and the acceptance
// policies. No I/O, no gateway calls, never returns an error.
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/justsurfingit/AI-HR-Funnel/internal/models"
)

const screeningPassedDetails = "Candidate passed initial screening."

// CheckScreening matches the candidate's answers against the job's criteria.
// Boolean expectations are checked first, then string expectations, then
// numeric upper bounds; the first failing criterion short-circuits with a
// reason naming the criterion and the offending value.
func CheckScreening(answers map[string]any, criteria models.ScreeningCriteria) (bool, string) {
	boolKeys, stringKeys, numberKeys := splitCriteria(criteria)

	for _, key := range boolKeys {
		expected := criteria[key].Expected.(bool)
		got, ok := answers[key].(bool)
		if !ok || got != expected {
			return false, boolFailure(key, answers[key], expected)
		}
	}

	for _, key := range stringKeys {
		expected := criteria[key].Expected.(string)
		got, ok := answers[key].(string)
		if !ok || got != expected {
			return false, stringFailure(key, answers[key], expected)
		}
	}

	for _, key := range numberKeys {
		max := *criteria[key].MaxAllowed
		got, ok := intAnswer(answers[key])
		if !ok || got > max {
			return false, fmt.Sprintf("Candidate's %s (%v) exceeds the maximum allowed (%d).",
				humanize(key), answers[key], max)
		}
	}

	return true, screeningPassedDetails
}

// splitCriteria buckets criterion keys by expectation kind, each bucket
// sorted for deterministic check order.
func splitCriteria(criteria models.ScreeningCriteria) (boolKeys, stringKeys, numberKeys []string) {
	for key, criterion := range criteria {
		switch {
		case criterion.MaxAllowed != nil:
			numberKeys = append(numberKeys, key)
		default:
			switch criterion.Expected.(type) {
			case bool:
				boolKeys = append(boolKeys, key)
			case string:
				stringKeys = append(stringKeys, key)
			}
		}
	}
	sort.Strings(boolKeys)
	sort.Strings(stringKeys)
	sort.Strings(numberKeys)
	return boolKeys, stringKeys, numberKeys
}

func boolFailure(key string, got any, expected bool) string {
	if key == "cold_calls" {
		return "Candidate is not willing to make cold calls."
	}
	return fmt.Sprintf("Candidate's answer for %s (%v) does not match the required value (%v).",
		humanize(key), got, expected)
}

func stringFailure(key string, got any, expected string) string {
	if key == "work_format" {
		return fmt.Sprintf("Candidate prefers '%v' format, but '%s' is required.", got, expected)
	}
	return fmt.Sprintf("Candidate's answer for %s ('%v') does not match the required value ('%s').",
		humanize(key), got, expected)
}

// intAnswer accepts integers arriving either natively or as JSON float64.
func intAnswer(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func humanize(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}
