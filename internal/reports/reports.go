// Package reports aggregates expenses into summary reports and computes the
// date ranges each report kind covers. It performs no I/O.
package reports

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"expensetracker/internal/models"
	"expensetracker/internal/types"
)

// Report kinds, used as metric labels.
const (
	KindMonthly      = "monthly"
	KindWeekly       = "weekly"
	KindCategoryWise = "category-wise"
	KindYearly       = "yearly"
)

// Range validation errors.
var (
	ErrInvalidYear  = errors.New("year must be between 1 and 9999")
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidRange = errors.New("start date must not be after end date")
)

// Entry is the part of an expense a report needs.
type Entry struct {
	CategoryName string
	Amount       decimal.Decimal
}

// Report summarises the expenses of a period.
type Report struct {
	TotalAmount          decimal.Decimal            `json:"totalAmount"`
	TotalExpenses        int64                      `json:"totalExpenses"`
	CategoryWiseExpenses map[string]decimal.Decimal `json:"categoryWiseExpenses"`
	Period               string                     `json:"period"`
}

// Period is an inclusive date range with its human-readable label.
type Period struct {
	Start types.Date
	End   types.Date
	Label string
}

// Aggregate sums entries exactly. Subtotals are keyed by category name and
// always add up to the total.
func Aggregate(entries []Entry, period string) Report {
	report := Report{
		TotalAmount:          decimal.Zero,
		TotalExpenses:        int64(len(entries)),
		CategoryWiseExpenses: make(map[string]decimal.Decimal),
		Period:               period,
	}

	for _, e := range entries {
		report.TotalAmount = report.TotalAmount.Add(e.Amount)
		if subtotal, ok := report.CategoryWiseExpenses[e.CategoryName]; ok {
			report.CategoryWiseExpenses[e.CategoryName] = subtotal.Add(e.Amount)
		} else {
			report.CategoryWiseExpenses[e.CategoryName] = e.Amount
		}
	}
	return report
}

// FromExpenses maps expenses, with their category joined, to entries.
func FromExpenses(expenses []models.Expense) []Entry {
	entries := make([]Entry, len(expenses))
	for i, e := range expenses {
		entries[i] = Entry{CategoryName: e.Category.Name, Amount: e.Amount}
	}
	return entries
}

// MonthlyRange covers the first through the last day of the month.
func MonthlyRange(year, month int) (Period, error) {
	if err := checkYear(year); err != nil {
		return Period{}, err
	}
	if month < 1 || month > 12 {
		return Period{}, ErrInvalidMonth
	}

	start := types.NewDate(year, time.Month(month), 1)
	// Day 0 of the next month is the last day of this one.
	end := types.NewDate(year, time.Month(month)+1, 0)
	return Period{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("Monthly Report - %04d-%02d", year, month),
	}, nil
}

// WeeklyRange covers start and the six days after it.
func WeeklyRange(start types.Date) (Period, error) {
	end := start.AddDays(6)
	if err := checkYear(start.Year()); err != nil {
		return Period{}, err
	}
	if err := checkYear(end.Year()); err != nil {
		return Period{}, err
	}
	return Period{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("Weekly Report - %s to %s", start, end),
	}, nil
}

// CustomRange covers start through end.
func CustomRange(start, end types.Date) (Period, error) {
	if start.After(end) {
		return Period{}, ErrInvalidRange
	}
	return Period{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("Category-wise Report - %s to %s", start, end),
	}, nil
}

// YearlyRange covers January 1 through December 31.
func YearlyRange(year int) (Period, error) {
	if err := checkYear(year); err != nil {
		return Period{}, err
	}
	return Period{
		Start: types.NewDate(year, time.January, 1),
		End:   types.NewDate(year, time.December, 31),
		Label: fmt.Sprintf("Yearly Report - %04d", year),
	}, nil
}

func checkYear(year int) error {
	if year < 1 || year > 9999 {
		return ErrInvalidYear
	}
	return nil
}
