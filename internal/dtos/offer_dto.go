package dtos

// OfferCreationRequest drafts an offer for a candidate.
type OfferCreationRequest struct {
	CandidateID           uint   `json:"candidate_id" binding:"required"`
	SalaryOffered         int    `json:"salary_offered" binding:"required"`
	StartDate             string `json:"start_date"`
	ProbationPeriodMonths int    `json:"probation_period_months"`
	AdditionalTerms       string `json:"additional_terms"`
}

// OfferUpdateRequest patches an offer; status transitions are free-form.
type OfferUpdateRequest struct {
	Status                *string `json:"status"`
	SalaryOffered         *int    `json:"salary_offered"`
	StartDate             *string `json:"start_date"`
	ProbationPeriodMonths *int    `json:"probation_period_months"`
	AdditionalTerms       *string `json:"additional_terms"`
}

// OnboardingCreationRequest opens the checklist for a hired candidate.
type OnboardingCreationRequest struct {
	CandidateID uint `json:"candidate_id" binding:"required"`
}

// OnboardingUpdateRequest patches checklist items and the metrics snapshot.
type OnboardingUpdateRequest struct {
	Checklist         map[string]bool `json:"checklist"`
	CallsMade         *int            `json:"calls_made"`
	MeetingsScheduled *int            `json:"meetings_scheduled"`
	DealsInPipeline   *int            `json:"deals_in_pipeline"`
	Revenue           *float64        `json:"revenue"`
}
