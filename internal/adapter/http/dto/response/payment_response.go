package response

import (
	"time"

	"buildsite/internal/domain/entities"
)

type ScheduleEntryResponse struct {
	ID          string    `json:"id"`
	MilestoneID string    `json:"milestone_id"`
	ProjectID   string    `json:"project_id"`
	PaymentName string    `json:"payment_name"`
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"due_date,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromScheduleEntry(e entities.PaymentScheduleEntry) ScheduleEntryResponse {
	return ScheduleEntryResponse{
		ID:          e.ID,
		MilestoneID: e.MilestoneID,
		ProjectID:   e.ProjectID,
		PaymentName: e.PaymentName,
		Amount:      e.Amount,
		DueDate:     e.DueDate,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromScheduleEntries(es []entities.PaymentScheduleEntry) []ScheduleEntryResponse {
	out := make([]ScheduleEntryResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromScheduleEntry(e))
	}
	return out
}

type PaymentResponse struct {
	ID              string    `json:"id"`
	ScheduleEntryID string    `json:"schedule_entry_id"`
	AmountPaid      float64   `json:"amount_paid"`
	PaymentDate     time.Time `json:"payment_date"`
	Method          string    `json:"method"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	ProofPhoto      string    `json:"proof_photo,omitempty"`
	Signature       string    `json:"signature,omitempty"`
	ProcessedBy     string    `json:"processed_by,omitempty"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		ScheduleEntryID:    p.ScheduleEntryID,
		AmountPaid:         p.AmountPaid,
		PaymentDate:        p.PaymentDate,
		Method:             string(p.Method),
		ReferenceNumber:    p.ReferenceNumber,
		ProofPhoto:         p.ProofPhoto,
		Signature:          p.Signature,
		ProcessedBy:        p.ProcessedBy,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}

// SettlementResponse pairs the payment record with the entry it settled,
// reflecting the state after a successful (or initiated) settlement.
type SettlementResponse struct {
	Payment *PaymentResponse      `json:"payment,omitempty"`
	Entry   ScheduleEntryResponse `json:"entry"`
}

func FromSettlement(p entities.Payment, e entities.PaymentScheduleEntry) SettlementResponse {
	out := SettlementResponse{Entry: FromScheduleEntry(e)}
	if p.ID != "" {
		pr := FromPayment(p)
		out.Payment = &pr
	}
	return out
}
