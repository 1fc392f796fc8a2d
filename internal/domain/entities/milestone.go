package entities

import "time"

// MilestoneStatus represents the lifecycle of a construction milestone.
//
// Domain notes:
//   - The happy path is pending -> payment_confirmed -> in_progress -> completed.
//   - cancelled is reachable from any non-terminal state and is irreversible.
//   - completed and cancelled are terminal: the milestone becomes immutable
//     except for audit fields.

type MilestoneStatus string

const (
	MilestoneStatusPending          MilestoneStatus = "pending"
	MilestoneStatusPaymentConfirmed MilestoneStatus = "payment_confirmed"
	MilestoneStatusInProgress       MilestoneStatus = "in_progress"
	MilestoneStatusCompleted        MilestoneStatus = "completed"
	MilestoneStatusCancelled        MilestoneStatus = "cancelled"
)

// milestoneTransitions is the full transition table. Anything absent here is
// rejected as an invalid transition.
var milestoneTransitions = map[MilestoneStatus][]MilestoneStatus{
	MilestoneStatusPending:          {MilestoneStatusPaymentConfirmed, MilestoneStatusCancelled},
	MilestoneStatusPaymentConfirmed: {MilestoneStatusInProgress, MilestoneStatusCancelled},
	MilestoneStatusInProgress:       {MilestoneStatusCompleted, MilestoneStatusCancelled},
}

// IsTerminal reports whether no further transition is allowed from s.
func (s MilestoneStatus) IsTerminal() bool {
	return s == MilestoneStatusCompleted || s == MilestoneStatusCancelled
}

// CanTransitionTo reports whether the transition table allows s -> target.
// It answers structure only; payment and evidence gates are checked by the
// use case on top of this.
func (s MilestoneStatus) CanTransitionTo(target MilestoneStatus) bool {
	for _, allowed := range milestoneTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Milestone is a payment-gated phase of project execution.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
type Milestone struct {
	ID              string          `json:"id"`
	ProjectID       string          `json:"project_id"`
	Title           string          `json:"title"`
	Details         string          `json:"details"`
	ProgressStatus  MilestoneStatus `json:"progress_status"`
	CompletionPhoto string          `json:"completion_photo,omitempty"`
	StartDate       time.Time       `json:"start_date"`
	DueDate         time.Time       `json:"due_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
