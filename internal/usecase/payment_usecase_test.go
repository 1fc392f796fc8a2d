package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"buildsite/internal/domain/entities"
	mock_interfaces "buildsite/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_Schedule(t *testing.T) {
	t.Run("milestone must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		msRepo := mock_interfaces.NewMockIMilestoneRepository(ctrl)
		uc := NewPaymentUseCase(nil, nil, msRepo, nil)

		msRepo.EXPECT().GetByID(gomock.Any(), "ms-404").Return(entities.Milestone{}, nil)

		_, err := uc.Schedule(context.Background(), "ms-404", "Down payment", 5000, time.Now())
		if !errors.Is(err, ErrMilestoneNotFound) {
			t.Fatalf("expected ErrMilestoneNotFound, got %v", err)
		}
	})

	t.Run("new entry starts pending and carries the project id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		msRepo := mock_interfaces.NewMockIMilestoneRepository(ctrl)
		schedRepo := mock_interfaces.NewMockIPaymentScheduleRepository(ctrl)
		uc := NewPaymentUseCase(schedRepo, nil, msRepo, nil)

		msRepo.EXPECT().GetByID(gomock.Any(), "ms-1").Return(entities.Milestone{ID: "ms-1", ProjectID: "prj-1"}, nil)
		schedRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentScheduleEntry{})).DoAndReturn(
			func(_ context.Context, e entities.PaymentScheduleEntry) (entities.PaymentScheduleEntry, error) {
				if e.Status != entities.ScheduleStatusPending {
					t.Fatalf("expected pending, got %s", e.Status)
				}
				if e.ProjectID != "prj-1" {
					t.Fatalf("expected project id from milestone, got %q", e.ProjectID)
				}
				return e, nil
			},
		)

		e, err := uc.Schedule(context.Background(), "ms-1", "Down payment", 5000, time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Amount != 5000 || e.PaymentName != "Down payment" {
			t.Fatalf("unexpected entry: %+v", e)
		}
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.Schedule(context.Background(), "ms-1", "Down payment", 0, time.Now())
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})
}

func TestPaymentUseCase_RecordPayment_Cash(t *testing.T) {
	forPayment := entities.PaymentScheduleEntry{
		ID:          "sch-1",
		MilestoneID: "ms-1",
		ProjectID:   "prj-1",
		PaymentName: "Down payment",
		Amount:      5000,
		Status:      entities.ScheduleStatusForPayment,
	}

	t.Run("cash without signature leaves the entry untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		schedRepo := mock_interfaces.NewMockIPaymentScheduleRepository(ctrl)
		uc := NewPaymentUseCase(schedRepo, nil, nil, nil)

		schedRepo.EXPECT().GetByID(gomock.Any(), "sch-1").Return(forPayment, nil)

		_, _, err := uc.RecordPayment(context.Background(), RecordPaymentInput{
			ScheduleEntryID: "sch-1",
			AmountPaid:      5000,
			Method:          entities.PaymentMethodCash,
			ProofPhoto:      "photos/receipt-1.jpg",
		})
		if !errors.Is(err, ErrMissingProof) {
			t.Fatalf("expected ErrMissingProof, got %v", err)
		}
	})

	t.Run("cash with both proofs settles the entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		schedRepo := mock_interfaces.NewMockIPaymentScheduleRepository(ctrl)
		payRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(schedRepo, payRepo, nil, nil)

		paid := forPayment
		paid.Status = entities.ScheduleStatusPaid

		schedRepo.EXPECT().GetByID(gomock.Any(), "sch-1").Return(forPayment, nil)
		schedRepo.EXPECT().UpdateStatus(gomock.Any(), "sch-1", entities.ScheduleStatusForPayment, entities.ScheduleStatusPaid).Return(paid, nil)
		payRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Method != entities.PaymentMethodCash || p.ProofPhoto == "" || p.Signature == "" {
					t.Fatalf("unexpected payment record: %+v", p)
				}
				return p, nil
			},
		)

		p, e, err := uc.RecordPayment(context.Background(), RecordPaymentInput{
			ScheduleEntryID: "sch-1",
			AmountPaid:      5000,
			Method:          entities.PaymentMethodCash,
			ProofPhoto:      "photos/receipt-1.jpg",
			Signature:       "signatures/client-1.png",
			ProcessedBy:     "foreman-7",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Status != entities.ScheduleStatusPaid {
			t.Fatalf("expected paid entry, got %s", e.Status)
		}
		if p.AmountPaid != 5000 {
			t.Fatalf("expected amount 5000, got %.2f", p.AmountPaid)
		}
	})

	t.Run("already settled entry is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		schedRepo := mock_interfaces.NewMockIPaymentScheduleRepository(ctrl)
		uc := NewPaymentUseCase(schedRepo, nil, nil, nil)

		paid := forPayment
		paid.Status = entities.ScheduleStatusPaid
		schedRepo.EXPECT().GetByID(gomock.Any(), "sch-1").Return(paid, nil)

		_, _, err := uc.RecordPayment(context.Background(), RecordPaymentInput{
			ScheduleEntryID: "sch-1",
			AmountPaid:      5000,
			Method:          entities.PaymentMethodCash,
			ProofPhoto:      "photos/receipt-1.jpg",
			Signature:       "signatures/client-1.png",
		})
		if !errors.Is(err, ErrEntryAlreadySettled) {
			t.Fatalf("expected ErrEntryAlreadySettled, got %v", err)
		}
	})

	t.Run("losing the settle race maps to already settled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		schedRepo := mock_interfaces.NewMockIPaymentScheduleRepository(ctrl)
		uc := NewPaymentUseCase(schedRepo, nil, nil, nil)

		schedRepo.EXPECT().GetByID(gomock.Any(), "sch-1").Return(forPayment, nil)
		schedRepo.EXPECT().UpdateStatus(gomock.Any(), "sch-1", entities.ScheduleStatusForPayment, entities.ScheduleStatusPaid).
			Return(entities.PaymentScheduleEntry{}, nil)

		_, _, err := uc.RecordPayment(context.Background(), RecordPaymentInput{
			ScheduleEntryID: "sch-1",
			AmountPaid:      5000,
			Method:          entities.PaymentMethodCash,
			ProofPhoto:      "photos/receipt-1.jpg",
			Signature:       "signatures/client-1.png",
		})
		if !errors.Is(err, ErrEntryAlreadySettled) {
			t.Fatalf("expected ErrEntryAlreadySettled, got %v", err)
		}
	})

	t.Run("failed payment write rolls the entry back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		schedRepo := mock_interfaces.NewMockIPaymentScheduleRepository(ctrl)
		payRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(schedRepo, payRepo, nil, nil)

		paid := forPayment
		paid.Status = entities.ScheduleStatusPaid
		storeErr := errors.New("dynamodb unavailable")

		schedRepo.EXPECT().GetByID(gomock.Any(), "sch-1").Return(forPayment, nil)
		schedRepo.EXPECT().UpdateStatus(gomock.Any(), "sch-1", entities.ScheduleStatusForPayment, entities.ScheduleStatusPaid).Return(paid, nil)
		payRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).Return(entities.Payment{}, storeErr)
		// The status flip must not outlive the failed settlement.
		schedRepo.EXPECT().UpdateStatus(gomock.Any(), "sch-1", entities.ScheduleStatusPaid, entities.ScheduleStatusForPayment).Return(forPayment, nil)

		_, _, err := uc.RecordPayment(context.Background(), RecordPaymentInput{
			ScheduleEntryID: "sch-1",
			AmountPaid:      5000,
			Method:          entities.PaymentMethodCash,
			ProofPhoto:      "photos/receipt-1.jpg",
			Signature:       "signatures/client-1.png",
			ProcessedBy:     "foreman-7",
		})
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected the payment store error, got %v", err)
		}
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		schedRepo := mock_interfaces.NewMockIPaymentScheduleRepository(ctrl)
		uc := NewPaymentUseCase(schedRepo, nil, nil, nil)

		schedRepo.EXPECT().GetByID(gomock.Any(), "sch-1").Return(forPayment, nil)

		_, _, err := uc.RecordPayment(context.Background(), RecordPaymentInput{
			ScheduleEntryID: "sch-1",
			AmountPaid:      5000,
			Method:          "check",
		})
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})
}

func TestPaymentUseCase_RecordPayment_Gateway(t *testing.T) {
	forPayment := entities.PaymentScheduleEntry{
		ID:          "sch-2",
		MilestoneID: "ms-1",
		ProjectID:   "prj-1",
		PaymentName: "Phase 2",
		Amount:      3200,
		Status:      entities.ScheduleStatusForPayment,
	}

	t.Run("approved checkout settles inline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		schedRepo := mock_interfaces.NewMockIPaymentScheduleRepository(ctrl)
		payRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(schedRepo, payRepo, nil, gw)

		paid := forPayment
		paid.Status = entities.ScheduleStatusPaid
		providerResp := json.RawMessage(`{"id":987654,"status":"approved"}`)

		schedRepo.EXPECT().GetByID(gomock.Any(), "sch-2").Return(forPayment, nil)
		gw.EXPECT().CreateCheckout(gomock.Any(), "sch-2", 3200.0, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ float64, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if m["external_reference"] != "sch-2" {
					t.Fatalf("expected external_reference sch-2, got %v", m["external_reference"])
				}
				if m["transaction_amount"] != 3200.0 {
					t.Fatalf("expected amount from entry, got %v", m["transaction_amount"])
				}
				return "987654", "approved", providerResp, nil
			},
		)
		schedRepo.EXPECT().UpdateStatus(gomock.Any(), "sch-2", entities.ScheduleStatusForPayment, entities.ScheduleStatusPaid).Return(paid, nil)
		payRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Method != entities.PaymentMethodGateway || p.ReferenceNumber != "987654" {
					t.Fatalf("unexpected payment record: %+v", p)
				}
				return p, nil
			},
		)

		p, e, err := uc.RecordPayment(context.Background(), RecordPaymentInput{
			ScheduleEntryID: "sch-2",
			AmountPaid:      3200,
			Method:          entities.PaymentMethodGateway,
			GatewayPayload:  json.RawMessage(`{"payment_method_id":"pix"}`),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Status != entities.ScheduleStatusPaid {
			t.Fatalf("expected paid entry, got %s", e.Status)
		}
		if p.ProviderPayload["status"] != "approved" {
			t.Fatalf("expected parsed provider payload, got %+v", p.ProviderPayload)
		}
	})

	t.Run("pending checkout leaves the entry for the webhook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		schedRepo := mock_interfaces.NewMockIPaymentScheduleRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(schedRepo, nil, nil, gw)

		schedRepo.EXPECT().GetByID(gomock.Any(), "sch-2").Return(forPayment, nil)
		gw.EXPECT().CreateCheckout(gomock.Any(), "sch-2", 3200.0, gomock.Any()).
			Return("987654", "pending", json.RawMessage(`{"id":987654,"status":"pending"}`), nil)

		p, e, err := uc.RecordPayment(context.Background(), RecordPaymentInput{
			ScheduleEntryID: "sch-2",
			AmountPaid:      3200,
			Method:          entities.PaymentMethodGateway,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "" {
			t.Fatalf("expected no payment record yet, got %+v", p)
		}
		if e.Status != entities.ScheduleStatusForPayment {
			t.Fatalf("expected entry unchanged, got %s", e.Status)
		}
	})

	t.Run("provider errors map to sentinel errors", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want error
		}{
			{"unauthorized", errors.New(`{"error":"unauthorized","status":401}`), ErrPaymentGatewayUnauthorized},
			{"bad request", errors.New(`{"error":"bad_request","status":400}`), ErrPaymentGatewayBadRequest},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				schedRepo := mock_interfaces.NewMockIPaymentScheduleRepository(ctrl)
				gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
				uc := NewPaymentUseCase(schedRepo, nil, nil, gw)

				schedRepo.EXPECT().GetByID(gomock.Any(), "sch-2").Return(forPayment, nil)
				gw.EXPECT().CreateCheckout(gomock.Any(), "sch-2", 3200.0, gomock.Any()).
					Return("", "", nil, tc.err)

				_, _, err := uc.RecordPayment(context.Background(), RecordPaymentInput{
					ScheduleEntryID: "sch-2",
					AmountPaid:      3200,
					Method:          entities.PaymentMethodGateway,
				})
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})
}

func TestPaymentUseCase_ConfirmGatewayPayment(t *testing.T) {
	forPayment := entities.PaymentScheduleEntry{
		ID:     "sch-3",
		Amount: 1500,
		Status: entities.ScheduleStatusForPayment,
	}

	t.Run("confirms and settles the referenced entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		schedRepo := mock_interfaces.NewMockIPaymentScheduleRepository(ctrl)
		payRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(schedRepo, payRepo, nil, nil)

		paid := forPayment
		paid.Status = entities.ScheduleStatusPaid

		schedRepo.EXPECT().GetByID(gomock.Any(), "sch-3").Return(forPayment, nil)
		schedRepo.EXPECT().UpdateStatus(gomock.Any(), "sch-3", entities.ScheduleStatusForPayment, entities.ScheduleStatusPaid).Return(paid, nil)
		payRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != "112233" || p.AmountPaid != 1500 {
					t.Fatalf("unexpected payment record: %+v", p)
				}
				return p, nil
			},
		)

		p, err := uc.ConfirmGatewayPayment(context.Background(), "sch-3", "112233", json.RawMessage(`{"status":"approved"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Method != entities.PaymentMethodGateway {
			t.Fatalf("expected gateway payment, got %s", p.Method)
		}
	})

	t.Run("duplicate confirmation is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		schedRepo := mock_interfaces.NewMockIPaymentScheduleRepository(ctrl)
		uc := NewPaymentUseCase(schedRepo, nil, nil, nil)

		paid := forPayment
		paid.Status = entities.ScheduleStatusPaid
		schedRepo.EXPECT().GetByID(gomock.Any(), "sch-3").Return(paid, nil)

		_, err := uc.ConfirmGatewayPayment(context.Background(), "sch-3", "112233", nil)
		if !errors.Is(err, ErrEntryAlreadySettled) {
			t.Fatalf("expected ErrEntryAlreadySettled, got %v", err)
		}
	})
}

func TestPaymentUseCase_MilestoneStatusChanged(t *testing.T) {
	t.Run("completion unlocks the earliest pending entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		schedRepo := mock_interfaces.NewMockIPaymentScheduleRepository(ctrl)
		uc := NewPaymentUseCase(schedRepo, nil, nil, nil)

		due := func(day int) time.Time { return time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC) }
		entries := []entities.PaymentScheduleEntry{
			{ID: "sch-a", ProjectID: "prj-1", Status: entities.ScheduleStatusPaid, DueDate: due(1)},
			{ID: "sch-b", ProjectID: "prj-1", Status: entities.ScheduleStatusPending, DueDate: due(20)},
			{ID: "sch-c", ProjectID: "prj-1", Status: entities.ScheduleStatusPending, DueDate: due(10)},
		}
		schedRepo.EXPECT().ListByProjectID(gomock.Any(), "prj-1").Return(entries, nil)
		schedRepo.EXPECT().UpdateStatus(gomock.Any(), "sch-c", entities.ScheduleStatusPending, entities.ScheduleStatusForPayment).
			Return(entities.PaymentScheduleEntry{ID: "sch-c", Status: entities.ScheduleStatusForPayment}, nil)

		uc.MilestoneStatusChanged(context.Background(),
			entities.Milestone{ID: "ms-1", ProjectID: "prj-1", ProgressStatus: entities.MilestoneStatusCompleted},
			entities.MilestoneStatusInProgress)
	})

	t.Run("non-completion transitions are ignored", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		uc.MilestoneStatusChanged(context.Background(),
			entities.Milestone{ID: "ms-1", ProjectID: "prj-1", ProgressStatus: entities.MilestoneStatusInProgress},
			entities.MilestoneStatusPaymentConfirmed)
	})

	t.Run("nothing pending means nothing to unlock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		schedRepo := mock_interfaces.NewMockIPaymentScheduleRepository(ctrl)
		uc := NewPaymentUseCase(schedRepo, nil, nil, nil)

		schedRepo.EXPECT().ListByProjectID(gomock.Any(), "prj-1").Return([]entities.PaymentScheduleEntry{
			{ID: "sch-a", ProjectID: "prj-1", Status: entities.ScheduleStatusPaid},
		}, nil)

		uc.MilestoneStatusChanged(context.Background(),
			entities.Milestone{ID: "ms-1", ProjectID: "prj-1", ProgressStatus: entities.MilestoneStatusCompleted},
			entities.MilestoneStatusInProgress)
	})
}
