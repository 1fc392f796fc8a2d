package entities

import "time"

// ScheduleStatus represents what is still owed on a schedule entry.
//
//   - pending: defined but not yet unlocked for collection
//   - for_payment: unlocked by milestone progress, awaiting settlement
//   - paid: fully settled by exactly one payment record

type ScheduleStatus string

const (
	ScheduleStatusPending    ScheduleStatus = "pending"
	ScheduleStatusForPayment ScheduleStatus = "for_payment"
	ScheduleStatusPaid       ScheduleStatus = "paid"
)

// PaymentScheduleEntry is an amount due from the client tied to a milestone
// phase. Partial settlement is not modeled: a payment settles its entry in
// full, remainders become new entries.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (milestone_id-index): milestone_id
//   - GSI2 (project_id-index): project_id
type PaymentScheduleEntry struct {
	ID          string         `json:"id"`
	MilestoneID string         `json:"milestone_id"`
	ProjectID   string         `json:"project_id"`
	PaymentName string         `json:"payment_name"`
	Amount      float64        `json:"amount"`
	DueDate     time.Time      `json:"due_date"`
	Status      ScheduleStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
