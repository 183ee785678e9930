package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultAddedBy is recorded as the author of every medicine row.
const DefaultAddedBy = "Pharmacy Manager"

// DateLayout is the rendering of AddedDate.
const DateLayout = "2006-01-02"

// Medicine represents a stock line in the pharmacy inventory.
type Medicine struct {
	ID        uint                `json:"id" gorm:"column:SRNo;primaryKey;autoIncrement"`
	Name      string              `json:"name" gorm:"column:MedicineName;size:255"`
	Quantity  int                 `json:"quantity" gorm:"column:Qty"`
	AddedDate time.Time           `json:"added_date" gorm:"column:AddedDate;type:date"`
	AddedBy   string              `json:"added_by" gorm:"column:AddedBy;size:255"`
	Price     decimal.NullDecimal `json:"price" gorm:"column:Price;type:decimal(10,2)"` // never set on insert
}

// TableName maps Medicine onto the legacy table.
func (Medicine) TableName() string {
	return "Medicine"
}

// PriceString renders Price, or N/A while it is unset.
func (m Medicine) PriceString() string {
	if !m.Price.Valid {
		return "N/A"
	}
	return m.Price.Decimal.StringFixed(2)
}
