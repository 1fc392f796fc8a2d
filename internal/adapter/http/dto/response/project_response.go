package response

import (
	"time"

	"buildsite/internal/domain/entities"
)

type ProjectResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ClientID   string    `json:"client_id,omitempty"`
	EngineerID string    `json:"engineer_id,omitempty"`
	ForemanID  string    `json:"foreman_id,omitempty"`
	StartDate  time.Time `json:"start_date,omitempty"`
	EndDate    time.Time `json:"end_date,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:         p.ID,
		Name:       p.Name,
		ClientID:   p.ClientID,
		EngineerID: p.EngineerID,
		ForemanID:  p.ForemanID,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
