package models

import "time"

// Application states.
const (
	StateInterested = "interested"
	StateApplied    = "applied"
	StateAccepted   = "accepted"
	StateRejected   = "rejected"
)

// ApplicationStates lists every valid application state.
var ApplicationStates = []string{StateInterested, StateApplied, StateAccepted, StateRejected}

// ValidApplicationState reports whether state is one of ApplicationStates.
func ValidApplicationState(state string) bool {
	for _, s := range ApplicationStates {
		if s == state {
			return true
		}
	}
	return false
}

// Application links a user to a job with a state.
// swagger:model Application
type Application struct {
	// example: john_doe
	Username string `db:"username" json:"username"`

	// example: 1
	JobID int64 `db:"job_id" json:"job_id"`

	// example: applied
	State string `db:"state" json:"state"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ApplyRequest is the optional body of POST /jobs/{id}/apply.
// swagger:model ApplyRequest
type ApplyRequest struct {
	// Defaults to "applied"
	// example: interested
	State string `json:"state"`
}

// ApplicationResponse wraps a single application.
// swagger:model ApplicationResponse
type ApplicationResponse struct {
	Application *Application `json:"application"`
}

// ApplicationEvent is published whenever an application is written.
type ApplicationEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Username   string    `json:"username"`
	JobID      int64     `json:"job_id"`
	State      string    `json:"state"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ApplicationChanged is the ApplicationEvent type.
const ApplicationChanged = "application.changed"
