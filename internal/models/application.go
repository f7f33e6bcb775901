// internal/models/application.go
package models

import "strings"

// ApplicationRequest pairs a job with a by-value profile snapshot.
// Every submission attempt builds a fresh request; retries never share
// a mutable snapshot.
type ApplicationRequest struct {
	JobID    int              `json:"job_id"`
	UserInfo ApplicantProfile `json:"user_info"`
}

// ApplicationError is one structured rejection reported by the
// backend, either inline in the /apply response or from
// GET /application-errors.
type ApplicationError struct {
	ID        int    `json:"id,omitempty"`
	ErrorType string `json:"error_type"`
	FieldName string `json:"field_name,omitempty"`
	Message   string `json:"error_message,omitempty"`
	JobURL    string `json:"job_url,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// FieldNameWorkdayCredentials marks a rejection the user cannot fix by
// supplying a field value; the coordinator reports it as a terminal
// failure instead of entering a correction round.
const FieldNameWorkdayCredentials = "workday_credentials"

// Correctable reports whether the error names a field the user can
// supply a value for.
func (e ApplicationError) Correctable() bool {
	return e.FieldName != "" && e.FieldName != FieldNameWorkdayCredentials
}

var fieldLabels = map[string]string{
	"years_of_experience":   "Years of Experience",
	"programming_languages": "Programming Languages",
	"gpa":                   "GPA",
	"resume":                "Resume",
}

// FieldLabel returns the human-readable prompt label for the field the
// error refers to.
func (e ApplicationError) FieldLabel() string {
	if label, ok := fieldLabels[e.FieldName]; ok {
		return label
	}
	if e.FieldName == "" {
		return "Field"
	}
	return strings.ReplaceAll(e.FieldName, "_", " ")
}

// Outcome classifies one submission attempt.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeFailure           Outcome = "failure"
	OutcomePendingCorrection Outcome = "pending_correction"
)

// ApplicationResult is the coordinator-facing outcome of a submit
// call. Error is set only for OutcomePendingCorrection.
type ApplicationResult struct {
	Outcome Outcome           `json:"outcome"`
	Message string            `json:"message"`
	Error   *ApplicationError `json:"error,omitempty"`
}

func SuccessResult(message string) *ApplicationResult {
	return &ApplicationResult{Outcome: OutcomeSuccess, Message: message}
}

func FailureResult(message string) *ApplicationResult {
	return &ApplicationResult{Outcome: OutcomeFailure, Message: message}
}

func PendingCorrectionResult(appErr ApplicationError) *ApplicationResult {
	return &ApplicationResult{
		Outcome: OutcomePendingCorrection,
		Message: appErr.Message,
		Error:   &appErr,
	}
}
