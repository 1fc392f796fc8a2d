package interfaces

import (
	"buildsite/internal/domain/entities"
	"context"
)

// IExpenseRepository abstracts DynamoDB persistence for Expense.
//
// UpdateStatus is a compare-and-swap on the stored status (see
// IMilestoneRepository); note is only written when transitioning to rejected.

type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	ListByMilestoneID(ctx context.Context, milestoneID string) ([]entities.Expense, error)
	UpdateStatus(ctx context.Context, id string, expected, target entities.ExpenseStatus, note string) (entities.Expense, error)
}
