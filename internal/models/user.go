package models

// User is an account holder. Every category and expense is owned by exactly
// one user.
type User struct {
	Base
	Username  string `gorm:"size:50;not null;uniqueIndex:idx_users_username" json:"username"`
	Email     string `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `gorm:"size:100;not null;default:''" json:"firstName"`
	LastName  string `gorm:"size:100;not null;default:''" json:"lastName"`
}
