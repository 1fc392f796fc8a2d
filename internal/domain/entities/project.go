package entities

import "time"

// ProjectStatus marks whether a project is still executing.
//
// Projects are never hard-deleted; closing one flips the status to archived
// and keeps every owned row (milestones, BOQ, expenses, payments) readable.

type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusArchived ProjectStatus = "archived"
)

// Project is the construction project persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
type Project struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	ClientID   string        `json:"client_id"`
	EngineerID string        `json:"engineer_id"`
	ForemanID  string        `json:"foreman_id"`
	StartDate  time.Time     `json:"start_date"`
	EndDate    time.Time     `json:"end_date"`
	Status     ProjectStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
