package models

import (
	"github.com/shopspring/decimal"

	"expensetracker/internal/types"
)

// MaxAmount is the exclusive upper bound of an expense amount. With two
// fractional digits every accepted amount fits in 15 significant digits,
// which a float64 holds exactly; sqlite stores numeric columns that way.
var MaxAmount = decimal.New(1, 13)

// ValidAmountPrecision reports whether d has at most two fractional digits
// and lies below MaxAmount in magnitude.
func ValidAmountPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Round(2)) && d.Abs().LessThan(MaxAmount)
}

// Expense is a single dated spending record classified under one of the
// owner's categories.
type Expense struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index:idx_expenses_user_date,priority:1" json:"-"`
	CategoryID  string          `gorm:"type:uuid;not null;index:idx_expenses_category_id" json:"categoryId"`
	Description string          `gorm:"size:500;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"amount"`
	ExpenseDate types.Date      `gorm:"not null;index:idx_expenses_user_date,priority:2" json:"expenseDate"`

	// Loaded only through an explicit join, never lazily.
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"category"`
}
