package scoring

import (
	"fmt"
	"math"
	"strings"
)

// ScaleAnswer is one submitted personality-inventory answer (raw 1-5).
type ScaleAnswer struct {
	QuestionID string `json:"question_id"`
	Value      int    `json:"value"`
}

// PersonalityResult is the aggregated profile for one candidate.
type PersonalityResult struct {
	Scores        map[string]int `json:"profile"`
	RedFlags      []string       `json:"red_flags"`
	SalesFitScore int            `json:"sales_fit_score"`
	Summary       string         `json:"summary"`
}

// Red-flag thresholds. Routine tolerance uses a stricter cutoff than the
// other scales; the asymmetry is intentional.
const (
	lowScaleThreshold   = 40
	lowRoutineThreshold = 30
)

// Red-flag texts, one per monitored scale.
const (
	FlagLowPersistence      = "Низкая настойчивость — быстро сдаётся после отказов"
	FlagLowStressResistance = "Низкая стрессоустойчивость"
	FlagLowHonesty          = "Сомнения в честности ответов"
	FlagLowRoutineTolerance = "Не переносит рутинные задачи"
)

// salesFitWeights sum to 1.00. Teamwork is surveyed but carries no weight in
// the fit score.
var salesFitWeights = []struct {
	scale  string
	weight float64
}{
	{"persistence", 0.25},
	{"stress_resistance", 0.20},
	{"energy", 0.15},
	{"sociability", 0.15},
	{"honesty", 0.10},
	{"routine_tolerance", 0.15},
}

var scaleLabels = map[string]string{
	"persistence":       "настойчивость",
	"stress_resistance": "стрессоустойчивость",
	"energy":            "энергичность",
	"sociability":       "коммуникабельность",
	"honesty":           "честность",
	"routine_tolerance": "толерантность к рутине",
	"teamwork":          "командность",
}

// AggregatePersonality normalizes the raw 1-5 answers onto 0-100 per scale,
// evaluates the red-flag thresholds and computes the weighted sales-fit
// score. A scale with no answers defaults to 50.
func AggregatePersonality(answers []ScaleAnswer, questionScale map[string]string, scales []string) PersonalityResult {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, a := range answers {
		scale, known := questionScale[a.QuestionID]
		if !known {
			continue
		}
		sums[scale] += a.Value
		counts[scale]++
	}

	scores := make(map[string]int, len(scales))
	for _, scale := range scales {
		if counts[scale] == 0 {
			scores[scale] = 50
			continue
		}
		avg := float64(sums[scale]) / float64(counts[scale])
		scores[scale] = int(math.Round((avg - 1) / 4 * 100))
	}

	redFlags := []string{}
	if scores["persistence"] < lowScaleThreshold {
		redFlags = append(redFlags, FlagLowPersistence)
	}
	if scores["stress_resistance"] < lowScaleThreshold {
		redFlags = append(redFlags, FlagLowStressResistance)
	}
	if scores["honesty"] < lowScaleThreshold {
		redFlags = append(redFlags, FlagLowHonesty)
	}
	if scores["routine_tolerance"] < lowRoutineThreshold {
		redFlags = append(redFlags, FlagLowRoutineTolerance)
	}

	var fit float64
	for _, w := range salesFitWeights {
		fit += w.weight * float64(scores[w.scale])
	}
	salesFit := int(math.Round(fit))

	return PersonalityResult{
		Scores:        scores,
		RedFlags:      redFlags,
		SalesFitScore: salesFit,
		Summary:       personalitySummary(scores, scales, salesFit),
	}
}

// personalitySummary lists strengths (>=70) and weaknesses (<40) in scale
// order, then the fit score. Empty lists omit their clause.
func personalitySummary(scores map[string]int, scales []string, salesFit int) string {
	var strengths, weaknesses []string
	for _, scale := range scales {
		label, ok := scaleLabels[scale]
		if !ok {
			label = scale
		}
		switch {
		case scores[scale] >= 70:
			strengths = append(strengths, label)
		case scores[scale] < 40:
			weaknesses = append(weaknesses, label)
		}
	}

	var clauses []string
	if len(strengths) > 0 {
		clauses = append(clauses, "Сильные стороны: "+strings.Join(strengths, ", "))
	}
	if len(weaknesses) > 0 {
		clauses = append(clauses, "Зоны роста: "+strings.Join(weaknesses, ", "))
	}
	clauses = append(clauses, fmt.Sprintf("Sales Fit Score: %d/100", salesFit))

	return strings.Join(clauses, ". ") + "."
}
