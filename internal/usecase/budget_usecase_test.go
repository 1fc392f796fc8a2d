package usecase

import (
	"context"
	"errors"
	"testing"

	"buildsite/internal/domain/entities"
	mock_interfaces "buildsite/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBudgetUseCase_CreateItem(t *testing.T) {
	t.Run("invalid milestone id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		_, err := uc.CreateItem(context.Background(), entities.BOQItem{MilestoneID: "  "})
		if !errors.Is(err, ErrInvalidMilestoneID) {
			t.Fatalf("expected ErrInvalidMilestoneID, got %v", err)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		_, err := uc.CreateItem(context.Background(), entities.BOQItem{MilestoneID: "ms-1"})
		if !errors.Is(err, ErrInvalidBOQItem) {
			t.Fatalf("expected ErrInvalidBOQItem, got %v", err)
		}
	})

	t.Run("milestone not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		boqRepo := mock_interfaces.NewMockIBOQItemRepository(ctrl)
		msRepo := mock_interfaces.NewMockIMilestoneRepository(ctrl)
		uc := NewBudgetUseCase(boqRepo, msRepo)

		msRepo.EXPECT().GetByID(gomock.Any(), "ms-1").Return(entities.Milestone{}, nil)

		_, err := uc.CreateItem(context.Background(), entities.BOQItem{MilestoneID: "ms-1", Description: "Excavation", Quantity: 10, UnitCost: 500})
		if !errors.Is(err, ErrBOQMilestoneNotFound) {
			t.Fatalf("expected ErrBOQMilestoneNotFound, got %v", err)
		}
	})

	t.Run("create recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		boqRepo := mock_interfaces.NewMockIBOQItemRepository(ctrl)
		msRepo := mock_interfaces.NewMockIMilestoneRepository(ctrl)
		uc := NewBudgetUseCase(boqRepo, msRepo)

		msRepo.EXPECT().GetByID(gomock.Any(), "ms-1").Return(entities.Milestone{ID: "ms-1"}, nil)
		boqRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BOQItem{})).DoAndReturn(
			func(_ context.Context, item entities.BOQItem) (entities.BOQItem, error) {
				if item.ID == "" || item.CreatedAt.IsZero() {
					t.Fatalf("expected generated id and timestamps: %+v", item)
				}
				if item.TotalCost != 5000 {
					t.Fatalf("expected item total 5000, got %v", item.TotalCost)
				}
				if item.MTO[0].TotalCost != 4500 {
					t.Fatalf("expected mto total 4500, got %v", item.MTO[0].TotalCost)
				}
				if item.ETO[0].TotalCost != 600 {
					t.Fatalf("expected eto total 600, got %v", item.ETO[0].TotalCost)
				}
				return item, nil
			},
		)

		_, err := uc.CreateItem(context.Background(), entities.BOQItem{
			MilestoneID: "ms-1",
			Description: "Excavation",
			Quantity:    10,
			UnitCost:    500,
			TotalCost:   999, // stale, must be recomputed
			MTO:         []entities.MTOEntry{{Description: "Cement", Quantity: 10, UnitCost: 450}},
			ETO:         []entities.ETOEntry{{EquipmentName: "Backhoe", Days: 3, DailyRate: 200}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBudgetUseCase_UpdateItem(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		boqRepo := mock_interfaces.NewMockIBOQItemRepository(ctrl)
		uc := NewBudgetUseCase(boqRepo, nil)

		boqRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.BOQItem{}, nil)

		_, err := uc.UpdateItem(context.Background(), "item-1", entities.BOQItem{Quantity: 2, UnitCost: 3})
		if !errors.Is(err, ErrBOQItemNotFound) {
			t.Fatalf("expected ErrBOQItemNotFound, got %v", err)
		}
	})

	t.Run("editing quantity recomputes total deterministically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		boqRepo := mock_interfaces.NewMockIBOQItemRepository(ctrl)
		uc := NewBudgetUseCase(boqRepo, nil)

		existing := entities.BOQItem{ID: "item-1", MilestoneID: "ms-1", Description: "Excavation", Quantity: 10, UnitCost: 500, TotalCost: 5000}
		boqRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(existing, nil)
		boqRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.BOQItem{})).DoAndReturn(
			func(_ context.Context, item entities.BOQItem) (entities.BOQItem, error) {
				if item.TotalCost != 12*550 {
					t.Fatalf("expected recomputed total %v, got %v", 12*550, item.TotalCost)
				}
				return item, nil
			},
		)

		updated, err := uc.UpdateItem(context.Background(), "item-1", entities.BOQItem{Quantity: 12, UnitCost: 550})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.TotalCost != 6600 {
			t.Fatalf("expected 6600, got %v", updated.TotalCost)
		}
	})
}

func TestBudgetUseCase_Aggregate(t *testing.T) {
	t.Run("invalid milestone id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		_, err := uc.Aggregate(context.Background(), " ")
		if !errors.Is(err, ErrInvalidMilestoneID) {
			t.Fatalf("expected ErrInvalidMilestoneID, got %v", err)
		}
	})

	t.Run("no items yields zero totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		boqRepo := mock_interfaces.NewMockIBOQItemRepository(ctrl)
		uc := NewBudgetUseCase(boqRepo, nil)

		boqRepo.EXPECT().ListByMilestoneID(gomock.Any(), "ms-1").Return(nil, nil)

		dist, err := uc.Aggregate(context.Background(), "ms-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dist.TotalBudget != 0 || dist.TotalMTO != 0 || dist.TotalLTO != 0 || dist.TotalETO != 0 {
			t.Fatalf("expected all-zero distribution, got %+v", dist)
		}
		if len(dist.Breakdown) != 0 {
			t.Fatalf("expected empty breakdown, got %+v", dist.Breakdown)
		}
	})

	t.Run("sums children across items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		boqRepo := mock_interfaces.NewMockIBOQItemRepository(ctrl)
		uc := NewBudgetUseCase(boqRepo, nil)

		// Item totals (qty x unit_cost) are the estimator's own figures and
		// must not leak into the aggregate; only children are summed.
		items := []entities.BOQItem{
			{
				ID: "item-1", Quantity: 10, UnitCost: 500, TotalCost: 5000,
				MTO: []entities.MTOEntry{{Description: "Cement", Quantity: 10, UnitCost: 450, TotalCost: 4500}},
				LTO: []entities.LTOEntry{{Description: "Mason crew", TotalCost: 1000}},
				ETO: []entities.ETOEntry{{EquipmentName: "Backhoe", Days: 3, DailyRate: 200, TotalCost: 600}},
			},
		}
		boqRepo.EXPECT().ListByMilestoneID(gomock.Any(), "ms-1").Return(items, nil)

		dist, err := uc.Aggregate(context.Background(), "ms-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dist.TotalMTO != 4500 || dist.TotalLTO != 1000 || dist.TotalETO != 600 {
			t.Fatalf("unexpected category totals: %+v", dist)
		}
		if dist.TotalBudget != 6100 {
			t.Fatalf("expected total budget 6100, got %v", dist.TotalBudget)
		}
		if dist.TotalBudget != dist.TotalMTO+dist.TotalLTO+dist.TotalETO {
			t.Fatalf("total budget must equal the category sum: %+v", dist)
		}
		if len(dist.Breakdown) != 3 {
			t.Fatalf("expected 3 breakdown rows, got %+v", dist.Breakdown)
		}
	})

	t.Run("zero category stays out of breakdown but counts in total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		boqRepo := mock_interfaces.NewMockIBOQItemRepository(ctrl)
		uc := NewBudgetUseCase(boqRepo, nil)

		items := []entities.BOQItem{
			{
				ID:  "item-1",
				MTO: []entities.MTOEntry{{TotalCost: 300}},
				ETO: []entities.ETOEntry{{TotalCost: 200}},
			},
		}
		boqRepo.EXPECT().ListByMilestoneID(gomock.Any(), "ms-1").Return(items, nil)

		dist, err := uc.Aggregate(context.Background(), "ms-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dist.TotalBudget != 500 {
			t.Fatalf("expected 500, got %v", dist.TotalBudget)
		}
		if len(dist.Breakdown) != 2 {
			t.Fatalf("expected labor omitted from breakdown, got %+v", dist.Breakdown)
		}
		for _, b := range dist.Breakdown {
			if b.Category == entities.BudgetCategoryLabor {
				t.Fatalf("labor should not appear in breakdown: %+v", dist.Breakdown)
			}
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		boqRepo := mock_interfaces.NewMockIBOQItemRepository(ctrl)
		uc := NewBudgetUseCase(boqRepo, nil)

		boqRepo.EXPECT().ListByMilestoneID(gomock.Any(), "ms-1").Return(nil, errors.New("db"))

		_, err := uc.Aggregate(context.Background(), "ms-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
