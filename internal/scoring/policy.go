package scoring

// Acceptance policies for the two AI-enriched late stages. Both are
// conjunctions: a single weak signal never rejects on its own.

// PersonalityRejected rejects only when the profile carries at least two red
// flags AND the sales-fit score is below 40.
func PersonalityRejected(redFlags []string, salesFitScore int) bool {
	return len(redFlags) >= 2 && salesFitScore < 40
}

// SalesRejected rejects only when the overall sales score is below 40 AND at
// least three concerns were raised.
func SalesRejected(overallScore int, concerns []string) bool {
	return overallScore < 40 && len(concerns) >= 3
}
