package interfaces

import (
	"buildsite/internal/domain/entities"
	"context"
)

// IMilestoneRepository abstracts DynamoDB persistence for Milestone.
//
// UpdateStatus is a compare-and-swap: the write only lands when the stored
// progress_status still equals expected, so two concurrent transitions cannot
// both pass their precondition check. A lost race returns a zero Milestone
// and a nil error, matching the not-found convention.

type IMilestoneRepository interface {
	Create(ctx context.Context, milestone entities.Milestone) (entities.Milestone, error)
	GetByID(ctx context.Context, id string) (entities.Milestone, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Milestone, error)
	UpdateStatus(ctx context.Context, id string, expected, target entities.MilestoneStatus, completionPhoto string) (entities.Milestone, error)
}
