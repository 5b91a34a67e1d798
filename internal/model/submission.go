// Package model holds the data shapes exchanged between the HTTP layer,
// the submission service and the stores.
package model

// FormData is the raw contact-form input.
type FormData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Record is one document as reported back by a store after creation.
type Record struct {
	ID string `json:"id"`
}

// SubmissionResponse is the externally visible projection of a stored submission.
type SubmissionResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// NewSubmissionResponse pairs a generated id with the submitted fields.
func NewSubmissionResponse(id string, data FormData) *SubmissionResponse {
	return &SubmissionResponse{
		ID:      id,
		Name:    data.Name,
		Email:   data.Email,
		Message: data.Message,
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
