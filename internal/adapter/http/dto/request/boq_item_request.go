package request

import (
	"encoding/json"

	"buildsite/internal/domain/entities"
)

type MTOEntryRequest struct {
	Description string  `json:"description" binding:"required"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	UnitCost    float64 `json:"unit_cost"`
}

type LTOEntryRequest struct {
	Description string  `json:"description" binding:"required"`
	Remarks     string  `json:"remarks"`
	TotalCost   float64 `json:"total_cost"`
}

type ETOEntryRequest struct {
	EquipmentName string  `json:"equipment_name" binding:"required"`
	Days          float64 `json:"days"`
	DailyRate     float64 `json:"daily_rate"`
}

// ETOEntryList accepts the equipment take-off either as a list or as a
// single bare object; legacy clients send one object when the item uses a
// single machine. Both shapes normalize to a list.
type ETOEntryList []ETOEntryRequest

func (l *ETOEntryList) UnmarshalJSON(data []byte) error {
	var list []ETOEntryRequest
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single ETOEntryRequest
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = ETOEntryList{single}
	return nil
}

type BOQItemRequest struct {
	MilestoneID string            `json:"milestone_id" binding:"required"`
	ItemNo      string            `json:"item_no"`
	Description string            `json:"description" binding:"required"`
	Quantity    float64           `json:"quantity"`
	Unit        string            `json:"unit"`
	UnitCost    float64           `json:"unit_cost"`
	MTO         []MTOEntryRequest `json:"mto"`
	LTO         []LTOEntryRequest `json:"lto"`
	ETO         ETOEntryList      `json:"eto"`
}

func (r BOQItemRequest) ToEntity() entities.BOQItem {
	b := entities.BOQItem{
		MilestoneID: r.MilestoneID,
		ItemNo:      r.ItemNo,
		Description: r.Description,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		UnitCost:    r.UnitCost,
	}
	for _, e := range r.MTO {
		b.MTO = append(b.MTO, entities.MTOEntry{
			Description: e.Description,
			Unit:        e.Unit,
			Quantity:    e.Quantity,
			UnitCost:    e.UnitCost,
		})
	}
	for _, e := range r.LTO {
		b.LTO = append(b.LTO, entities.LTOEntry{
			Description: e.Description,
			Remarks:     e.Remarks,
			TotalCost:   e.TotalCost,
		})
	}
	for _, e := range r.ETO {
		b.ETO = append(b.ETO, entities.ETOEntry{
			EquipmentName: e.EquipmentName,
			Days:          e.Days,
			DailyRate:     e.DailyRate,
		})
	}
	return b
}
