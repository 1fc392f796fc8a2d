package entities

import "time"

// BudgetCategory names one of the three take-off categories of a BOQ item.

type BudgetCategory string

const (
	BudgetCategoryMaterials BudgetCategory = "materials"
	BudgetCategoryLabor     BudgetCategory = "labor"
	BudgetCategoryEquipment BudgetCategory = "equipment"
)

// MTOEntry is a material take-off line. TotalCost is always recomputed as
// Quantity * UnitCost; it is never stored stale.
type MTOEntry struct {
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	UnitCost    float64 `json:"unit_cost"`
	TotalCost   float64 `json:"total_cost"`
}

// LTOEntry is a labor take-off line. The cost is flat, entered by the
// estimator, not derived from a quantity and a rate.
type LTOEntry struct {
	Description string  `json:"description"`
	Remarks     string  `json:"remarks,omitempty"`
	TotalCost   float64 `json:"total_cost"`
}

// ETOEntry is an equipment take-off line. TotalCost is always recomputed as
// Days * DailyRate.
type ETOEntry struct {
	EquipmentName string  `json:"equipment_name"`
	Days          float64 `json:"days"`
	DailyRate     float64 `json:"daily_rate"`
	TotalCost     float64 `json:"total_cost"`
}

// BOQItem is one bill-of-quantities line of a milestone, owning its
// material/labor/equipment take-off children.
//
// TotalCost always equals Quantity * UnitCost for the item itself. It is the
// estimator's own figure and is NOT required to equal the sum of the MTO,
// LTO and ETO children; budget aggregation sums the children separately so
// both numbers stay visible for comparison.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (milestone_id-index): milestone_id
//   - children are embedded lists on the item row
type BOQItem struct {
	ID          string     `json:"id"`
	MilestoneID string     `json:"milestone_id"`
	ItemNo      string     `json:"item_no"`
	Description string     `json:"description"`
	Quantity    float64    `json:"quantity"`
	Unit        string     `json:"unit"`
	UnitCost    float64    `json:"unit_cost"`
	TotalCost   float64    `json:"total_cost"`
	MTO         []MTOEntry `json:"mto,omitempty"`
	LTO         []LTOEntry `json:"lto,omitempty"`
	ETO         []ETOEntry `json:"eto,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RecomputeTotals reapplies the multiplicative invariants on the item and on
// every computed child line.
func (b *BOQItem) RecomputeTotals() {
	b.TotalCost = b.Quantity * b.UnitCost
	for i := range b.MTO {
		b.MTO[i].TotalCost = b.MTO[i].Quantity * b.MTO[i].UnitCost
	}
	for i := range b.ETO {
		b.ETO[i].TotalCost = b.ETO[i].Days * b.ETO[i].DailyRate
	}
}

// BudgetCategoryTotal is one non-zero slice of a milestone budget.
type BudgetCategoryTotal struct {
	Category BudgetCategory `json:"category"`
	Total    float64        `json:"total"`
}

// BudgetDistribution is the aggregate of all take-off children across the
// BOQ items of one milestone. Zero-sum categories are left out of Breakdown
// but still count (as zero) towards TotalBudget.
type BudgetDistribution struct {
	MilestoneID string                `json:"milestone_id"`
	TotalMTO    float64               `json:"total_mto"`
	TotalLTO    float64               `json:"total_lto"`
	TotalETO    float64               `json:"total_eto"`
	TotalBudget float64               `json:"total_budget"`
	Breakdown   []BudgetCategoryTotal `json:"breakdown"`
}
