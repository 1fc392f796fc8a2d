package entities

import "time"

// ExpenseType separates ad-hoc supply purchases from labor payouts.

type ExpenseType string

const (
	ExpenseTypeSupply ExpenseType = "supply"
	ExpenseTypeLabor  ExpenseType = "labor"
)

// ExpenseStatus represents the dual-stage approval of an expense request.
//
//   - requested -> approved_engineer -> approved_finance (terminal, payable)
//   - rejected is reachable from requested and approved_engineer only
//
// Expenses are never deleted; they only move between statuses so the audit
// trail stays intact.

type ExpenseStatus string

const (
	ExpenseStatusRequested        ExpenseStatus = "requested"
	ExpenseStatusApprovedEngineer ExpenseStatus = "approved_engineer"
	ExpenseStatusApprovedFinance  ExpenseStatus = "approved_finance"
	ExpenseStatusRejected         ExpenseStatus = "rejected"
)

// CanReject reports whether an expense in s may still be rejected.
func (s ExpenseStatus) CanReject() bool {
	return s == ExpenseStatusRequested || s == ExpenseStatusApprovedEngineer
}

// Expense is an ad-hoc field expense request against a milestone,
// independent of the formally estimated BOQ.
//
// Supply expenses carry quantity/unit/price_per_qty; Amount is computed as
// quantity * price_per_qty unless the requester entered an explicit amount,
// which always wins (the computed value is advisory only). Labor expenses
// carry Amount directly over a date_from/date_to range.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (milestone_id-index): milestone_id
type Expense struct {
	ID          string        `json:"id"`
	MilestoneID string        `json:"milestone_id"`
	Type        ExpenseType   `json:"expense_type"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Date        time.Time     `json:"date,omitempty"`
	DateFrom    time.Time     `json:"date_from,omitempty"`
	DateTo      time.Time     `json:"date_to,omitempty"`
	Quantity    float64       `json:"quantity,omitempty"`
	Unit        string        `json:"unit,omitempty"`
	PricePerQty float64       `json:"price_per_qty,omitempty"`
	Amount      float64       `json:"amount"`
	Status      ExpenseStatus `json:"status"`
	RejectNote  string        `json:"reject_note,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ExpenseTotals is the per-type sum over the visible expense rows of a
// milestone, computed on read and never stored.
type ExpenseTotals struct {
	MilestoneID string  `json:"milestone_id"`
	SupplyTotal float64 `json:"supply_total"`
	LaborTotal  float64 `json:"labor_total"`
}
