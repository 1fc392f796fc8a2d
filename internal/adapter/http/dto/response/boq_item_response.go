package response

import (
	"time"

	"buildsite/internal/domain/entities"
)

type BOQItemResponse struct {
	ID          string              `json:"id"`
	MilestoneID string              `json:"milestone_id"`
	ItemNo      string              `json:"item_no,omitempty"`
	Description string              `json:"description"`
	Quantity    float64             `json:"quantity"`
	Unit        string              `json:"unit,omitempty"`
	UnitCost    float64             `json:"unit_cost"`
	TotalCost   float64             `json:"total_cost"`
	MTO         []entities.MTOEntry `json:"mto,omitempty"`
	LTO         []entities.LTOEntry `json:"lto,omitempty"`
	ETO         []entities.ETOEntry `json:"eto,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func FromBOQItem(b entities.BOQItem) BOQItemResponse {
	return BOQItemResponse{
		ID:          b.ID,
		MilestoneID: b.MilestoneID,
		ItemNo:      b.ItemNo,
		Description: b.Description,
		Quantity:    b.Quantity,
		Unit:        b.Unit,
		UnitCost:    b.UnitCost,
		TotalCost:   b.TotalCost,
		MTO:         b.MTO,
		LTO:         b.LTO,
		ETO:         b.ETO,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func FromBOQItems(items []entities.BOQItem) []BOQItemResponse {
	out := make([]BOQItemResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromBOQItem(b))
	}
	return out
}

type BudgetCategoryTotalResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type BudgetDistributionResponse struct {
	MilestoneID string                        `json:"milestone_id"`
	TotalMTO    float64                       `json:"total_mto"`
	TotalLTO    float64                       `json:"total_lto"`
	TotalETO    float64                       `json:"total_eto"`
	TotalBudget float64                       `json:"total_budget"`
	Breakdown   []BudgetCategoryTotalResponse `json:"breakdown"`
}

func FromBudgetDistribution(d entities.BudgetDistribution) BudgetDistributionResponse {
	out := BudgetDistributionResponse{
		MilestoneID: d.MilestoneID,
		TotalMTO:    d.TotalMTO,
		TotalLTO:    d.TotalLTO,
		TotalETO:    d.TotalETO,
		TotalBudget: d.TotalBudget,
		Breakdown:   make([]BudgetCategoryTotalResponse, 0, len(d.Breakdown)),
	}
	for _, b := range d.Breakdown {
		out.Breakdown = append(out.Breakdown, BudgetCategoryTotalResponse{
			Category: string(b.Category),
			Total:    b.Total,
		})
	}
	return out
}
