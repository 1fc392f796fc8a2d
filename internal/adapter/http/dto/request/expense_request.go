package request

import (
	"time"

	"buildsite/internal/domain/entities"
)

// ExpenseCreateRequest is the field expense submission payload. Supply
// expenses send quantity/unit/price_per_qty; labor expenses send a date
// range. An explicit amount always wins over any computed value.
type ExpenseCreateRequest struct {
	MilestoneID string    `json:"milestone_id" binding:"required"`
	ExpenseType string    `json:"expense_type" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	DateFrom    time.Time `json:"date_from"`
	DateTo      time.Time `json:"date_to"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	PricePerQty float64   `json:"price_per_qty"`
	Amount      float64   `json:"amount"`
}

func (r ExpenseCreateRequest) ToEntity() entities.Expense {
	return entities.Expense{
		MilestoneID: r.MilestoneID,
		Type:        entities.ExpenseType(r.ExpenseType),
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		DateFrom:    r.DateFrom,
		DateTo:      r.DateTo,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		PricePerQty: r.PricePerQty,
		Amount:      r.Amount,
	}
}

type ExpenseRejectRequest struct {
	Note string `json:"note" binding:"required"`
}
