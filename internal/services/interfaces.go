package services

import (
	"context"

	"github.com/shopspring/decimal"

	"expensetracker/internal/models"
	"expensetracker/internal/reports"
	"expensetracker/internal/types"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, username, email, password, firstName, lastName string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	ResolveUser(ctx context.Context, username string) (*models.User, error)
}

// CategoryServicer defines the contract for category-related business logic.
// Every operation is scoped to the user with the given username.
type CategoryServicer interface {
	ListCategories(ctx context.Context, username string) ([]models.Category, error)
	GetCategory(ctx context.Context, username, categoryID string) (*models.Category, error)
	CategoryExists(ctx context.Context, username, name string) (bool, error)
	CreateCategory(ctx context.Context, username, name, description, color string) (*models.Category, error)
	UpdateCategory(ctx context.Context, username, categoryID, name, description, color string) (*models.Category, error)
	DeleteCategory(ctx context.Context, username, categoryID string) error
}

// ExpenseServicer defines the contract for expense-related business logic.
// Every operation is scoped to the user with the given username, and
// returned expenses carry their category.
type ExpenseServicer interface {
	ListExpenses(ctx context.Context, username string) ([]models.Expense, error)
	GetExpense(ctx context.Context, username, expenseID string) (*models.Expense, error)
	ListExpensesInRange(ctx context.Context, username string, start, end types.Date) ([]models.Expense, error)
	CreateExpense(ctx context.Context, username, categoryID, description string, amount decimal.Decimal, expenseDate types.Date) (*models.Expense, error)
	UpdateExpense(ctx context.Context, username, expenseID, categoryID, description string, amount decimal.Decimal, expenseDate types.Date) (*models.Expense, error)
	DeleteExpense(ctx context.Context, username, expenseID string) error
}

// ReportServicer defines the contract for report generation.
type ReportServicer interface {
	MonthlyReport(ctx context.Context, username string, year, month int) (*reports.Report, error)
	WeeklyReport(ctx context.Context, username string, start types.Date) (*reports.Report, error)
	CategoryWiseReport(ctx context.Context, username string, start, end types.Date) (*reports.Report, error)
	YearlyReport(ctx context.Context, username string, year int) (*reports.Report, error)
}

// ReportObserver is notified of every generated report.
type ReportObserver interface {
	ReportGenerated(kind string)
}
