package scoring

// Answer is one submitted cognitive-test answer.
type Answer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// GradeCognitive counts exact matches against the answer key. Unknown
// question ids count as wrong, duplicates of a correct answer do not score
// twice. The test tolerates exactly one mistake regardless of length.
func GradeCognitive(answers []Answer, key map[string]string) (score, total int, passed bool) {
	total = len(key)

	graded := make(map[string]bool, len(key))
	for _, a := range answers {
		correct, known := key[a.QuestionID]
		if known && a.Answer == correct {
			graded[a.QuestionID] = true
		}
	}
	score = len(graded)

	passed = score >= total-1
	return score, total, passed
}
