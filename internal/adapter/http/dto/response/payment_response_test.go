package response

import (
	"encoding/json"
	"testing"
	"time"

	"buildsite/internal/domain/entities"
)

func TestFromSettlement(t *testing.T) {
	now := time.Now().UTC()
	entry := entities.PaymentScheduleEntry{
		ID:          "sch-1",
		MilestoneID: "ms-1",
		ProjectID:   "prj-1",
		PaymentName: "Down payment",
		Amount:      5000,
		Status:      entities.ScheduleStatusPaid,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	t.Run("settled", func(t *testing.T) {
		p := entities.Payment{
			ID:              "pay-1",
			ScheduleEntryID: "sch-1",
			AmountPaid:      5000,
			PaymentDate:     now,
			Method:          entities.PaymentMethodCash,
			ProofPhoto:      "photos/receipt-1.jpg",
			Signature:       "signatures/client-1.png",
		}
		res := FromSettlement(p, entry)
		if res.Payment == nil || res.Payment.ID != "pay-1" {
			t.Fatalf("unexpected payment: %+v", res.Payment)
		}
		if res.Entry.Status != "paid" || res.Entry.Amount != 5000 {
			t.Fatalf("unexpected entry: %+v", res.Entry)
		}
	})

	t.Run("checkout pending omits the payment", func(t *testing.T) {
		res := FromSettlement(entities.Payment{}, entry)
		if res.Payment != nil {
			t.Fatalf("expected nil payment, got %+v", res.Payment)
		}

		b, err := json.Marshal(res)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := m["payment"]; ok {
			t.Fatalf("expected payment key omitted: %s", b)
		}
	})
}

func TestFromPayment_ProviderPayload(t *testing.T) {
	p := entities.Payment{
		ID:                 "pay-2",
		ScheduleEntryID:    "sch-1",
		Method:             entities.PaymentMethodGateway,
		ProviderPayloadRaw: []byte(`{"id":987654,"status":"approved"}`),
		ProviderPayload:    map[string]interface{}{"id": float64(987654), "status": "approved"},
	}
	res := FromPayment(p)
	if res.ProviderPayloadRaw != `{"id":987654,"status":"approved"}` {
		t.Fatalf("unexpected raw payload: %q", res.ProviderPayloadRaw)
	}
	if res.ProviderPayload["status"] != "approved" {
		t.Fatalf("unexpected parsed payload: %+v", res.ProviderPayload)
	}
}
