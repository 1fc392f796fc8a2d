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
	ErrBOQItemNotFound      = errors.New("boq item not found")
	ErrInvalidBOQItemID     = errors.New("invalid boq item id")
	ErrInvalidBOQItem       = errors.New("invalid boq item")
	ErrInvalidMilestoneID   = errors.New("invalid milestone id")
	ErrBOQMilestoneNotFound = errors.New("milestone not found for boq item")
)

// IBudgetUseCase is the budget ledger: BOQ item intake with total recompute,
// and the pure aggregation of MTO/LTO/ETO sums per milestone.

type IBudgetUseCase interface {
	CreateItem(ctx context.Context, draft entities.BOQItem) (entities.BOQItem, error)
	UpdateItem(ctx context.Context, itemID string, draft entities.BOQItem) (entities.BOQItem, error)
	GetItem(ctx context.Context, itemID string) (entities.BOQItem, error)
	ListByMilestone(ctx context.Context, milestoneID string) ([]entities.BOQItem, error)
	Aggregate(ctx context.Context, milestoneID string) (entities.BudgetDistribution, error)
}

type BudgetUseCase struct {
	boqRepo       interfaces.IBOQItemRepository
	milestoneRepo interfaces.IMilestoneRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(boqRepo interfaces.IBOQItemRepository, milestoneRepo interfaces.IMilestoneRepository) *BudgetUseCase {
	return &BudgetUseCase{boqRepo: boqRepo, milestoneRepo: milestoneRepo}
}

func (u *BudgetUseCase) CreateItem(ctx context.Context, draft entities.BOQItem) (entities.BOQItem, error) {
	draft.MilestoneID = strings.TrimSpace(draft.MilestoneID)
	if draft.MilestoneID == "" {
		return entities.BOQItem{}, ErrInvalidMilestoneID
	}
	if strings.TrimSpace(draft.Description) == "" || draft.Quantity < 0 || draft.UnitCost < 0 {
		return entities.BOQItem{}, ErrInvalidBOQItem
	}

	m, err := u.milestoneRepo.GetByID(ctx, draft.MilestoneID)
	if err != nil {
		return entities.BOQItem{}, err
	}
	if m.ID == "" {
		return entities.BOQItem{}, ErrBOQMilestoneNotFound
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.CreatedAt = now
	draft.UpdatedAt = now
	draft.RecomputeTotals()
	return u.boqRepo.Create(ctx, draft)
}

// UpdateItem replaces the editable fields of an item and reapplies the
// quantity x unit_cost invariant on the item and its computed children.
func (u *BudgetUseCase) UpdateItem(ctx context.Context, itemID string, draft entities.BOQItem) (entities.BOQItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.BOQItem{}, ErrInvalidBOQItemID
	}
	if draft.Quantity < 0 || draft.UnitCost < 0 {
		return entities.BOQItem{}, ErrInvalidBOQItem
	}

	existing, err := u.boqRepo.GetByID(ctx, itemID)
	if err != nil {
		return entities.BOQItem{}, err
	}
	if existing.ID == "" {
		return entities.BOQItem{}, ErrBOQItemNotFound
	}

	existing.ItemNo = draft.ItemNo
	if strings.TrimSpace(draft.Description) != "" {
		existing.Description = draft.Description
	}
	existing.Quantity = draft.Quantity
	existing.Unit = draft.Unit
	existing.UnitCost = draft.UnitCost
	existing.MTO = draft.MTO
	existing.LTO = draft.LTO
	existing.ETO = draft.ETO
	existing.UpdatedAt = time.Now().UTC()
	existing.RecomputeTotals()

	updated, err := u.boqRepo.Update(ctx, existing)
	if err != nil {
		return entities.BOQItem{}, err
	}
	if updated.ID == "" {
		return entities.BOQItem{}, ErrBOQItemNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) GetItem(ctx context.Context, itemID string) (entities.BOQItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.BOQItem{}, ErrInvalidBOQItemID
	}
	item, err := u.boqRepo.GetByID(ctx, itemID)
	if err != nil {
		return entities.BOQItem{}, err
	}
	if item.ID == "" {
		return entities.BOQItem{}, ErrBOQItemNotFound
	}
	return item, nil
}

func (u *BudgetUseCase) ListByMilestone(ctx context.Context, milestoneID string) ([]entities.BOQItem, error) {
	milestoneID = strings.TrimSpace(milestoneID)
	if milestoneID == "" {
		return nil, ErrInvalidMilestoneID
	}
	return u.boqRepo.ListByMilestoneID(ctx, milestoneID)
}

// Aggregate sums the take-off children of every BOQ item of the milestone.
// It is a pure read over the current item snapshot: no side effects, and a
// milestone without items yields all-zero totals rather than an error.
// Zero-sum categories stay out of Breakdown but still count in TotalBudget.
func (u *BudgetUseCase) Aggregate(ctx context.Context, milestoneID string) (entities.BudgetDistribution, error) {
	milestoneID = strings.TrimSpace(milestoneID)
	if milestoneID == "" {
		return entities.BudgetDistribution{}, ErrInvalidMilestoneID
	}

	items, err := u.boqRepo.ListByMilestoneID(ctx, milestoneID)
	if err != nil {
		return entities.BudgetDistribution{}, err
	}

	dist := entities.BudgetDistribution{MilestoneID: milestoneID}
	for _, item := range items {
		for _, mto := range item.MTO {
			dist.TotalMTO += mto.TotalCost
		}
		for _, lto := range item.LTO {
			dist.TotalLTO += lto.TotalCost
		}
		for _, eto := range item.ETO {
			dist.TotalETO += eto.TotalCost
		}
	}
	dist.TotalBudget = dist.TotalMTO + dist.TotalLTO + dist.TotalETO

	for _, ct := range []entities.BudgetCategoryTotal{
		{Category: entities.BudgetCategoryMaterials, Total: dist.TotalMTO},
		{Category: entities.BudgetCategoryLabor, Total: dist.TotalLTO},
		{Category: entities.BudgetCategoryEquipment, Total: dist.TotalETO},
	} {
		if ct.Total != 0 {
			dist.Breakdown = append(dist.Breakdown, ct)
		}
	}
	return dist, nil
}
