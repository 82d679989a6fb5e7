package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/models"
	"expensetracker/internal/types"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db    *gorm.DB
	users UserServicer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, users UserServicer) ExpenseServicer {
	return &expenseService{db: db, users: users}
}

// withCategory scopes a query to the user's expenses with the category
// joined in the same statement.
func withCategory(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("Category").Where("expenses.user_id = ?", userID)
	}
}

// ListExpenses retrieves all expenses of a user, newest first.
func (s *expenseService) ListExpenses(ctx context.Context, username string) ([]models.Expense, error) {
	user, err := s.users.ResolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	expenses := []models.Expense{}
	if err := s.db.WithContext(ctx).
		Scopes(withCategory(user.ID)).
		Order("expenses.expense_date DESC, expenses.created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetExpense retrieves an expense by ID for a specific user
func (s *expenseService) GetExpense(ctx context.Context, username, expenseID string) (*models.Expense, error) {
	user, err := s.users.ResolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return findUserExpense(s.db.WithContext(ctx), user.ID, expenseID)
}

// ListExpensesInRange retrieves the user's expenses dated from start through
// end, both inclusive, in date order.
func (s *expenseService) ListExpensesInRange(ctx context.Context, username string, start, end types.Date) ([]models.Expense, error) {
	if start.After(end) {
		return nil, apperrors.InvalidField("endDate", "endDate must not be before startDate")
	}

	user, err := s.users.ResolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	expenses := []models.Expense{}
	if err := s.db.WithContext(ctx).
		Scopes(withCategory(user.ID)).
		Where("expenses.expense_date >= ? AND expenses.expense_date <= ?", start, end).
		Order("expenses.expense_date, expenses.created_at").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// CreateExpense records an expense under one of the user's categories.
func (s *expenseService) CreateExpense(ctx context.Context, username, categoryID, description string, amount decimal.Decimal, expenseDate types.Date) (*models.Expense, error) {
	description = strings.TrimSpace(description)
	if err := validateExpense(description, amount, expenseDate); err != nil {
		return nil, err
	}

	user, err := s.users.ResolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	category, err := findUserCategory(db, user.ID, categoryID)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:      user.ID,
		CategoryID:  category.ID,
		Description: description,
		Amount:      amount,
		ExpenseDate: expenseDate,
	}
	if err := db.Omit(clause.Associations).Create(expense).Error; err != nil {
		return nil, asAppError(err)
	}

	expense.Category = *category
	return expense, nil
}

// UpdateExpense replaces every field of an expense.
func (s *expenseService) UpdateExpense(ctx context.Context, username, expenseID, categoryID, description string, amount decimal.Decimal, expenseDate types.Date) (*models.Expense, error) {
	description = strings.TrimSpace(description)
	if err := validateExpense(description, amount, expenseDate); err != nil {
		return nil, err
	}

	user, err := s.users.ResolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	var expense *models.Expense
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findUserExpense(tx, user.ID, expenseID)
		if err != nil {
			return err
		}

		category, err := findUserCategory(tx, user.ID, categoryID)
		if err != nil {
			return err
		}

		found.CategoryID = category.ID
		found.Description = description
		found.Amount = amount
		found.ExpenseDate = expenseDate
		if err := tx.Omit(clause.Associations).Save(found).Error; err != nil {
			return asAppError(err)
		}

		found.Category = *category
		expense = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense deletes an expense
func (s *expenseService) DeleteExpense(ctx context.Context, username, expenseID string) error {
	user, err := s.users.ResolveUser(ctx, username)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", expenseID, user.ID).Delete(&models.Expense{})
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrExpenseNotFound
		}
		return nil
	})
}

// findUserExpense loads an expense owned by userID with its category.
func findUserExpense(db *gorm.DB, userID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := db.Scopes(withCategory(userID)).Where("expenses.id = ?", expenseID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

func validateExpense(description string, amount decimal.Decimal, expenseDate types.Date) error {
	fields := map[string]string{}
	if description == "" {
		fields["description"] = "description is required"
	}
	switch {
	case !amount.IsPositive():
		fields["amount"] = "amount must be greater than zero"
	case !models.ValidAmountPrecision(amount):
		fields["amount"] = "amount must have at most two decimal places and at most 13 whole digits"
	}
	if expenseDate.IsZero() {
		fields["expenseDate"] = "expenseDate is required"
	}
	if len(fields) > 0 {
		return apperrors.WithFields(apperrors.ErrInvalidInput, fields)
	}
	return nil
}
