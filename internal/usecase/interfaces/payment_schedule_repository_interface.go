package interfaces

import (
	"buildsite/internal/domain/entities"
	"context"
)

// IPaymentScheduleRepository abstracts DynamoDB persistence for
// PaymentScheduleEntry.
//
// UpdateStatus is a compare-and-swap on the stored status; it is the single
// guard against double settlement of an entry.

type IPaymentScheduleRepository interface {
	Create(ctx context.Context, e entities.PaymentScheduleEntry) (entities.PaymentScheduleEntry, error)
	GetByID(ctx context.Context, id string) (entities.PaymentScheduleEntry, error)
	ListByMilestoneID(ctx context.Context, milestoneID string) ([]entities.PaymentScheduleEntry, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.PaymentScheduleEntry, error)
	UpdateStatus(ctx context.Context, id string, expected, target entities.ScheduleStatus) (entities.PaymentScheduleEntry, error)
}
