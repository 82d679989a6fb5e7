package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db    *gorm.DB
	users UserServicer
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB, users UserServicer) CategoryServicer {
	return &categoryService{db: db, users: users}
}

// ListCategories retrieves all categories of a user ordered by name.
func (s *categoryService) ListCategories(ctx context.Context, username string) ([]models.Category, error) {
	user, err := s.users.ResolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	categories := []models.Category{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", user.ID).Order("name").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategory retrieves a category by ID for a specific user
func (s *categoryService) GetCategory(ctx context.Context, username, categoryID string) (*models.Category, error) {
	user, err := s.users.ResolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return findUserCategory(s.db.WithContext(ctx), user.ID, categoryID)
}

// CategoryExists reports whether the user already has a category with name.
func (s *categoryService) CategoryExists(ctx context.Context, username, name string) (bool, error) {
	user, err := s.users.ResolveUser(ctx, username)
	if err != nil {
		return false, err
	}
	return nameTaken(s.db.WithContext(ctx), user.ID, strings.TrimSpace(name), "")
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(ctx context.Context, username, name, description, color string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.InvalidField("name", "name is required")
	}

	user, err := s.users.ResolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	taken, err := nameTaken(db, user.ID, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.Category{
		UserID:      user.ID,
		Name:        name,
		Description: description,
		Color:       color,
	}

	if err := db.Create(category).Error; err != nil {
		return nil, asAppError(err)
	}
	return category, nil
}

// UpdateCategory replaces name, description and color of a category.
func (s *categoryService) UpdateCategory(ctx context.Context, username, categoryID, name, description, color string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.InvalidField("name", "name is required")
	}

	user, err := s.users.ResolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	var category *models.Category
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findUserCategory(tx, user.ID, categoryID)
		if err != nil {
			return err
		}

		taken, err := nameTaken(tx, user.ID, name, found.ID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrDuplicateCategory
		}

		found.Name = name
		found.Description = description
		found.Color = color
		if err := tx.Save(found).Error; err != nil {
			return asAppError(err)
		}
		category = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a category that no expense refers to.
func (s *categoryService) DeleteCategory(ctx context.Context, username, categoryID string) error {
	user, err := s.users.ResolveUser(ctx, username)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := findUserCategory(tx, user.ID, categoryID)
		if err != nil {
			return err
		}

		var inUse int64
		if err := tx.Model(&models.Expense{}).Where("category_id = ?", category.ID).Count(&inUse).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if inUse > 0 {
			return apperrors.ErrCategoryInUse
		}

		if err := tx.Delete(category).Error; err != nil {
			return asAppError(err)
		}
		return nil
	})
}

// findUserCategory loads a category owned by userID. Categories of other
// users are reported as not found.
func findUserCategory(db *gorm.DB, userID, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// nameTaken reports whether another category of userID is called name.
// exceptID excludes the category being renamed.
func nameTaken(db *gorm.DB, userID, name, exceptID string) (bool, error) {
	query := db.Model(&models.Category{}).Where("user_id = ? AND name = ?", userID, name)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}
