package dtos

// CandidateCreationRequest starts a new application at the screening stage.
type CandidateCreationRequest struct {
	JobID uint   `json:"job_id" binding:"required"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// StageUpdateRequest is the sole mutation entry point of the state machine.
// Passed is ignored for stages that always advance.
type StageUpdateRequest struct {
	Stage  string         `json:"stage" binding:"required"`
	Data   map[string]any `json:"data"`
	Passed *bool          `json:"passed"`
}
