package request

import (
	"time"

	"buildsite/internal/domain/entities"
)

type ProjectCreateRequest struct {
	Name       string    `json:"name" binding:"required"`
	ClientID   string    `json:"client_id"`
	EngineerID string    `json:"engineer_id"`
	ForemanID  string    `json:"foreman_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

func (r ProjectCreateRequest) ToEntity() entities.Project {
	return entities.Project{
		Name:       r.Name,
		ClientID:   r.ClientID,
		EngineerID: r.EngineerID,
		ForemanID:  r.ForemanID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}
