package request

import (
	"encoding/json"
	"time"
)

type ScheduleEntryCreateRequest struct {
	MilestoneID string    `json:"milestone_id" binding:"required"`
	PaymentName string    `json:"payment_name" binding:"required"`
	Amount      float64   `json:"amount" binding:"required"`
	DueDate     time.Time `json:"due_date"`
}

// PaymentRecordForm is the multipart settlement form. The proof photo and
// client signature arrive as file parts next to these fields; gateway
// payments send `gateway_payload` instead of files.
//
// `gateway_payload` is stored as-is (raw JSON) to support varying provider
// schemas.
type PaymentRecordForm struct {
	AmountPaid      float64 `form:"amount_paid" binding:"required"`
	Method          string  `form:"method" binding:"required"`
	ReferenceNumber string  `form:"reference_number"`
	ProcessedBy     string  `form:"processed_by"`
	GatewayPayload  string  `form:"gateway_payload"`
}

// GatewayConfirmRequest is the provider confirmation callback body. The
// external reference carries the schedule entry id the checkout was opened
// for.
type GatewayConfirmRequest struct {
	ExternalReference string          `json:"external_reference" binding:"required"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	Payload           json.RawMessage `json:"payload"`
}
