package interfaces

import (
	"buildsite/internal/domain/entities"
	"context"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Payments are append-only: there is no update, corrections are new
// compensating records.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByScheduleEntryID(ctx context.Context, entryID string) ([]entities.Payment, error)
}
