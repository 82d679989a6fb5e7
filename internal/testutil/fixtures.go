package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"expensetracker/internal/models"
	"expensetracker/internal/types"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithUsername(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithUsername creates a user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:  username,
		Email:     username + "@test.com",
		Password:  string(hash),
		FirstName: "Test",
		LastName:  "User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category with the given name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:      userID,
		Name:        name,
		Description: name + " expenses",
		Color:       "#336699",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates an expense in category with the given amount and
// date.
func CreateTestExpense(t *testing.T, db *gorm.DB, category *models.Category, amount string, date types.Date) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      category.UserID,
		CategoryID:  category.ID,
		Description: fmt.Sprintf("Test expense %d", nextID()),
		Amount:      decimal.RequireFromString(amount),
		ExpenseDate: date,
	}
	if err := db.Omit(clause.Associations).Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	expense.Category = *category
	return expense
}
