package interfaces

import (
	"buildsite/internal/domain/entities"
	"context"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// Projects are never deleted; archiving is a status update.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
}
