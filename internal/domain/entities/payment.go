package entities

import (
	"encoding/json"
	"time"
)

// PaymentMethod is how the client settled a schedule entry.

type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodGateway PaymentMethod = "gateway"
)

// Payment is one settlement event against a schedule entry. It is immutable
// after creation; corrections are new compensating records, never edits.
//
// Cash payments must carry both a proof photo and a signature artifact
// reference. Gateway payments carry the provider response instead:
// ProviderPayloadRaw keeps the original body (JSON) for traceability/audit,
// ProviderPayload is an optional parsed representation for querying.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (schedule_entry_id-index): schedule_entry_id
type Payment struct {
	ID              string        `json:"id"`
	ScheduleEntryID string        `json:"schedule_entry_id"`
	AmountPaid      float64       `json:"amount_paid"`
	PaymentDate     time.Time     `json:"payment_date"`
	Method          PaymentMethod `json:"method"`
	ReferenceNumber string        `json:"reference_number,omitempty"`
	ProofPhoto      string        `json:"proof_photo,omitempty"`
	Signature       string        `json:"signature,omitempty"`
	ProcessedBy     string        `json:"processed_by,omitempty"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
