package response

import (
	"time"

	"buildsite/internal/domain/entities"
)

type MilestoneResponse struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"project_id"`
	Title           string    `json:"title"`
	Details         string    `json:"details,omitempty"`
	ProgressStatus  string    `json:"progress_status"`
	CompletionPhoto string    `json:"completion_photo,omitempty"`
	StartDate       time.Time `json:"start_date,omitempty"`
	DueDate         time.Time `json:"due_date,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromMilestone(m entities.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:              m.ID,
		ProjectID:       m.ProjectID,
		Title:           m.Title,
		Details:         m.Details,
		ProgressStatus:  string(m.ProgressStatus),
		CompletionPhoto: m.CompletionPhoto,
		StartDate:       m.StartDate,
		DueDate:         m.DueDate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func FromMilestones(ms []entities.Milestone) []MilestoneResponse {
	out := make([]MilestoneResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMilestone(m))
	}
	return out
}
