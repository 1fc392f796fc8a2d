package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"buildsite/internal/domain/entities"
	"buildsite/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrExpenseNotFound         = errors.New("expense not found")
	ErrInvalidExpenseID        = errors.New("invalid expense id")
	ErrInvalidExpenseType      = errors.New("invalid expense type")
	ErrInvalidExpenseAmount    = errors.New("invalid expense amount")
	ErrEmptyRejectNote         = errors.New("reject note cannot be empty")
	ErrExpenseMilestoneMissing = errors.New("milestone not found for expense")
)

// IExpenseUseCase is the dual-stage expense approval workflow: field staff
// submit, the engineer approves first, finance approves second (terminal,
// payable). Rejection needs a note and only works before finance approval.

type IExpenseUseCase interface {
	Submit(ctx context.Context, draft entities.Expense) (entities.Expense, error)
	ApproveByEngineer(ctx context.Context, expenseID string) (entities.Expense, error)
	ApproveByFinance(ctx context.Context, expenseID string) (entities.Expense, error)
	Reject(ctx context.Context, expenseID, note string) (entities.Expense, error)
	ListByMilestone(ctx context.Context, milestoneID string, typ entities.ExpenseType) ([]entities.Expense, error)
	Totals(ctx context.Context, milestoneID string) (entities.ExpenseTotals, error)
}

type ExpenseUseCase struct {
	repo          interfaces.IExpenseRepository
	milestoneRepo interfaces.IMilestoneRepository
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(repo interfaces.IExpenseRepository, milestoneRepo interfaces.IMilestoneRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, milestoneRepo: milestoneRepo}
}

// Submit records a new expense request with status requested.
//
// Amount rule: an explicitly entered amount always wins. For supply expenses
// the quantity x price_per_qty product is advisory and only becomes Amount
// when no explicit amount was given. Labor expenses must carry an explicit
// amount.
func (u *ExpenseUseCase) Submit(ctx context.Context, draft entities.Expense) (entities.Expense, error) {
	draft.MilestoneID = strings.TrimSpace(draft.MilestoneID)
	if draft.MilestoneID == "" {
		return entities.Expense{}, ErrInvalidMilestoneID
	}

	switch draft.Type {
	case entities.ExpenseTypeSupply:
		if draft.Amount <= 0 {
			draft.Amount = draft.Quantity * draft.PricePerQty
		}
	case entities.ExpenseTypeLabor:
		// nothing computed for labor
	default:
		return entities.Expense{}, ErrInvalidExpenseType
	}
	if draft.Amount <= 0 {
		return entities.Expense{}, ErrInvalidExpenseAmount
	}

	m, err := u.milestoneRepo.GetByID(ctx, draft.MilestoneID)
	if err != nil {
		return entities.Expense{}, err
	}
	if m.ID == "" {
		return entities.Expense{}, ErrExpenseMilestoneMissing
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.Status = entities.ExpenseStatusRequested
	draft.RejectNote = ""
	draft.CreatedAt = now
	draft.UpdatedAt = now
	return u.repo.Create(ctx, draft)
}

func (u *ExpenseUseCase) ApproveByEngineer(ctx context.Context, expenseID string) (entities.Expense, error) {
	return u.transition(ctx, expenseID, entities.ExpenseStatusRequested, entities.ExpenseStatusApprovedEngineer, "")
}

func (u *ExpenseUseCase) ApproveByFinance(ctx context.Context, expenseID string) (entities.Expense, error) {
	return u.transition(ctx, expenseID, entities.ExpenseStatusApprovedEngineer, entities.ExpenseStatusApprovedFinance, "")
}

func (u *ExpenseUseCase) Reject(ctx context.Context, expenseID, note string) (entities.Expense, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return entities.Expense{}, ErrEmptyRejectNote
	}

	expenseID = strings.TrimSpace(expenseID)
	if expenseID == "" {
		return entities.Expense{}, ErrInvalidExpenseID
	}

	e, err := u.repo.GetByID(ctx, expenseID)
	if err != nil {
		return entities.Expense{}, err
	}
	if e.ID == "" {
		return entities.Expense{}, ErrExpenseNotFound
	}
	if !e.Status.CanReject() {
		return entities.Expense{}, newInvalidTransition("expense", e.ID, string(e.Status), string(entities.ExpenseStatusRejected))
	}

	// Conditional write on the status read above; a racing approval fails it.
	updated, err := u.repo.UpdateStatus(ctx, expenseID, e.Status, entities.ExpenseStatusRejected, note)
	if err != nil {
		return entities.Expense{}, err
	}
	if updated.ID == "" {
		return entities.Expense{}, newInvalidTransition("expense", e.ID, string(e.Status), string(entities.ExpenseStatusRejected))
	}
	return updated, nil
}

func (u *ExpenseUseCase) transition(ctx context.Context, expenseID string, expected, target entities.ExpenseStatus, note string) (entities.Expense, error) {
	expenseID = strings.TrimSpace(expenseID)
	if expenseID == "" {
		return entities.Expense{}, ErrInvalidExpenseID
	}

	e, err := u.repo.GetByID(ctx, expenseID)
	if err != nil {
		return entities.Expense{}, err
	}
	if e.ID == "" {
		return entities.Expense{}, ErrExpenseNotFound
	}
	if e.Status != expected {
		return entities.Expense{}, newInvalidTransition("expense", e.ID, string(e.Status), string(target))
	}

	updated, err := u.repo.UpdateStatus(ctx, expenseID, expected, target, note)
	if err != nil {
		return entities.Expense{}, err
	}
	if updated.ID == "" {
		return entities.Expense{}, newInvalidTransition("expense", e.ID, string(e.Status), string(target))
	}
	return updated, nil
}

// ListByMilestone returns the expenses of a milestone, optionally filtered
// by type. An empty type returns every row.
func (u *ExpenseUseCase) ListByMilestone(ctx context.Context, milestoneID string, typ entities.ExpenseType) ([]entities.Expense, error) {
	milestoneID = strings.TrimSpace(milestoneID)
	if milestoneID == "" {
		return nil, ErrInvalidMilestoneID
	}
	if typ != "" && typ != entities.ExpenseTypeSupply && typ != entities.ExpenseTypeLabor {
		return nil, ErrInvalidExpenseType
	}

	all, err := u.repo.ListByMilestoneID(ctx, milestoneID)
	if err != nil {
		return nil, err
	}
	if typ == "" {
		return all, nil
	}

	filtered := make([]entities.Expense, 0, len(all))
	for _, e := range all {
		if e.Type == typ {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Totals sums amounts per type over the milestone's expenses, computed on
// read and never stored.
func (u *ExpenseUseCase) Totals(ctx context.Context, milestoneID string) (entities.ExpenseTotals, error) {
	all, err := u.ListByMilestone(ctx, milestoneID, "")
	if err != nil {
		return entities.ExpenseTotals{}, err
	}

	totals := entities.ExpenseTotals{MilestoneID: strings.TrimSpace(milestoneID)}
	for _, e := range all {
		switch e.Type {
		case entities.ExpenseTypeSupply:
			totals.SupplyTotal += e.Amount
		case entities.ExpenseTypeLabor:
			totals.LaborTotal += e.Amount
		}
	}
	return totals, nil
}
