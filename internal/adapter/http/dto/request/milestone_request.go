package request

import (
	"time"

	"buildsite/internal/domain/entities"
)

type MilestoneCreateRequest struct {
	ProjectID string    `json:"project_id" binding:"required"`
	Title     string    `json:"title" binding:"required"`
	Details   string    `json:"details"`
	StartDate time.Time `json:"start_date"`
	DueDate   time.Time `json:"due_date"`
}

func (r MilestoneCreateRequest) ToEntity() entities.Milestone {
	return entities.Milestone{
		ProjectID: r.ProjectID,
		Title:     r.Title,
		Details:   r.Details,
		StartDate: r.StartDate,
		DueDate:   r.DueDate,
	}
}

// MilestoneTransitionRequest drives every lifecycle change of a milestone.
// CompletionPhoto is only meaningful when Status is "completed".
type MilestoneTransitionRequest struct {
	Status          string `json:"status" binding:"required"`
	CompletionPhoto string `json:"completion_photo"`
}
