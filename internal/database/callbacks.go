package database

import (
	"strings"

	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
)

// uniqueViolations maps fragments of driver errors to the application error
// they represent. Each entry lists the sqlite form and the postgres index name.
var uniqueViolations = []struct {
	fragments []string
	err       *apperrors.AppError
}{
	{[]string{"categories.user_id, categories.name", "idx_categories_user_name"}, apperrors.ErrDuplicateCategory},
	{[]string{"users.username", "idx_users_username"}, apperrors.ErrDuplicateUsername},
	{[]string{"users.email", "idx_users_email"}, apperrors.ErrDuplicateEmail},
}

// RegisterCallbacks installs callbacks that replace constraint violations
// raised by the database with application errors.
func RegisterCallbacks(db *gorm.DB) error {
	if err := db.Callback().Create().After("*").Register("expensetracker:after_create", createUpdateCallback); err != nil {
		return err
	}
	if err := db.Callback().Update().After("*").Register("expensetracker:after_update", createUpdateCallback); err != nil {
		return err
	}
	return db.Callback().Delete().After("*").Register("expensetracker:after_delete", deleteCallback)
}

// createUpdateCallback turns unique-index violations into conflicts.
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") && !strings.Contains(msg, "duplicate key value") {
		return
	}

	for _, v := range uniqueViolations {
		for _, fragment := range v.fragments {
			if strings.Contains(msg, fragment) {
				db.Error = apperrors.Wrap(v.err, db.Error)
				return
			}
		}
	}
}

// deleteCallback reports a category that is still referenced by expenses.
func deleteCallback(db *gorm.DB) {
	if db.Error == nil || db.Statement.Table != "categories" {
		return
	}

	msg := db.Error.Error()
	if strings.Contains(msg, "FOREIGN KEY constraint failed") || strings.Contains(msg, "violates foreign key constraint") {
		db.Error = apperrors.Wrap(apperrors.ErrCategoryInUse, db.Error)
	}
}
