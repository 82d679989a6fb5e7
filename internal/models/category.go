package models

// Category is a user-defined label for expenses. Names are unique per user.
type Category struct {
	Base
	UserID      string `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name,priority:1" json:"-"`
	Name        string `gorm:"size:100;not null;uniqueIndex:idx_categories_user_name,priority:2" json:"name"`
	Description string `gorm:"size:500;not null;default:''" json:"description"`
	Color       string `gorm:"size:7;not null;default:''" json:"color"`
}
