package services

import (
	"context"
	"errors"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/reports"
	"expensetracker/internal/types"
)

// reportService builds reports from the expenses of a date range.
type reportService struct {
	expenses ExpenseServicer
	observer ReportObserver
}

type noopObserver struct{}

func (noopObserver) ReportGenerated(string) {}

// NewReportService creates a new ReportServicer. observer may be nil.
func NewReportService(expenses ExpenseServicer, observer ReportObserver) ReportServicer {
	if observer == nil {
		observer = noopObserver{}
	}
	return &reportService{expenses: expenses, observer: observer}
}

// MonthlyReport summarises a calendar month.
func (s *reportService) MonthlyReport(ctx context.Context, username string, year, month int) (*reports.Report, error) {
	period, err := reports.MonthlyRange(year, month)
	if err != nil {
		return nil, rangeError(err)
	}
	return s.generate(ctx, username, reports.KindMonthly, period)
}

// WeeklyReport summarises the seven days starting at start.
func (s *reportService) WeeklyReport(ctx context.Context, username string, start types.Date) (*reports.Report, error) {
	period, err := reports.WeeklyRange(start)
	if err != nil {
		return nil, apperrors.InvalidField("startDate", err.Error())
	}
	return s.generate(ctx, username, reports.KindWeekly, period)
}

// CategoryWiseReport summarises an arbitrary inclusive range.
func (s *reportService) CategoryWiseReport(ctx context.Context, username string, start, end types.Date) (*reports.Report, error) {
	period, err := reports.CustomRange(start, end)
	if err != nil {
		return nil, rangeError(err)
	}
	return s.generate(ctx, username, reports.KindCategoryWise, period)
}

// YearlyReport summarises a calendar year.
func (s *reportService) YearlyReport(ctx context.Context, username string, year int) (*reports.Report, error) {
	period, err := reports.YearlyRange(year)
	if err != nil {
		return nil, rangeError(err)
	}
	return s.generate(ctx, username, reports.KindYearly, period)
}

func (s *reportService) generate(ctx context.Context, username, kind string, period reports.Period) (*reports.Report, error) {
	expenses, err := s.expenses.ListExpensesInRange(ctx, username, period.Start, period.End)
	if err != nil {
		return nil, err
	}

	report := reports.Aggregate(reports.FromExpenses(expenses), period.Label)
	s.observer.ReportGenerated(kind)
	return &report, nil
}

// rangeError maps a range policy failure to a field-level validation error.
func rangeError(err error) error {
	switch {
	case errors.Is(err, reports.ErrInvalidYear):
		return apperrors.InvalidField("year", err.Error())
	case errors.Is(err, reports.ErrInvalidMonth):
		return apperrors.InvalidField("month", err.Error())
	case errors.Is(err, reports.ErrInvalidRange):
		return apperrors.InvalidField("endDate", err.Error())
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}
