package database

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/logger"
	"expensetracker/internal/models"
	"expensetracker/internal/types"
)

var dbCounter atomic.Int64

func init() {
	logger.Init("test")
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:dbtest%d?mode=memory&cache=shared&_foreign_keys=1", dbCounter.Add(1))
	db, err := Open(sqlite.Open(dsn))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestDuplicateCategoryNameIsConflict(t *testing.T) {
	db := openTestDB(t)

	user := models.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Category{UserID: user.ID, Name: "Food"}).Error)

	err := db.Create(&models.Category{UserID: user.ID, Name: "Food"}).Error
	assert.ErrorIs(t, err, apperrors.ErrDuplicateCategory)
}

func TestDuplicateUserFieldsAreConflicts(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&models.User{Username: "bob", Email: "bob@example.com", Password: "x"}).Error)

	err := db.Create(&models.User{Username: "bob", Email: "other@example.com", Password: "x"}).Error
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)

	err = db.Create(&models.User{Username: "bobby", Email: "bob@example.com", Password: "x"}).Error
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestDeleteReferencedCategoryIsInUse(t *testing.T) {
	db := openTestDB(t)

	user := models.User{Username: "carol", Email: "carol@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	category := models.Category{UserID: user.ID, Name: "Travel"}
	require.NoError(t, db.Create(&category).Error)
	expense := models.Expense{
		UserID:      user.ID,
		CategoryID:  category.ID,
		Description: "Train",
		Amount:      decimal.RequireFromString("42.10"),
		ExpenseDate: types.NewDate(2024, 3, 4),
	}
	require.NoError(t, db.Omit("Category").Create(&expense).Error)

	err := db.Delete(&models.Category{}, "id = ?", category.ID).Error
	assert.ErrorIs(t, err, apperrors.ErrCategoryInUse)
}
