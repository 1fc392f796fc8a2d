package response

import (
	"time"

	"buildsite/internal/domain/entities"
)

type ExpenseResponse struct {
	ID          string    `json:"id"`
	MilestoneID string    `json:"milestone_id"`
	ExpenseType string    `json:"expense_type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date,omitempty"`
	DateFrom    time.Time `json:"date_from,omitempty"`
	DateTo      time.Time `json:"date_to,omitempty"`
	Quantity    float64   `json:"quantity,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	PricePerQty float64   `json:"price_per_qty,omitempty"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	RejectNote  string    `json:"reject_note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		MilestoneID: e.MilestoneID,
		ExpenseType: string(e.Type),
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		DateFrom:    e.DateFrom,
		DateTo:      e.DateTo,
		Quantity:    e.Quantity,
		Unit:        e.Unit,
		PricePerQty: e.PricePerQty,
		Amount:      e.Amount,
		Status:      string(e.Status),
		RejectNote:  e.RejectNote,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromExpenses(es []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromExpense(e))
	}
	return out
}

type ExpenseTotalsResponse struct {
	MilestoneID string  `json:"milestone_id"`
	SupplyTotal float64 `json:"supply_total"`
	LaborTotal  float64 `json:"labor_total"`
}

func FromExpenseTotals(t entities.ExpenseTotals) ExpenseTotalsResponse {
	return ExpenseTotalsResponse{
		MilestoneID: t.MilestoneID,
		SupplyTotal: t.SupplyTotal,
		LaborTotal:  t.LaborTotal,
	}
}
