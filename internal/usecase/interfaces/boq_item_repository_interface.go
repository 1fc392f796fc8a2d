package interfaces

import (
	"buildsite/internal/domain/entities"
	"context"
)

// IBOQItemRepository abstracts DynamoDB persistence for BOQ items and their
// embedded MTO/LTO/ETO children.

type IBOQItemRepository interface {
	Create(ctx context.Context, item entities.BOQItem) (entities.BOQItem, error)
	GetByID(ctx context.Context, id string) (entities.BOQItem, error)
	ListByMilestoneID(ctx context.Context, milestoneID string) ([]entities.BOQItem, error)
	Update(ctx context.Context, item entities.BOQItem) (entities.BOQItem, error)
}
