package models

// User is a registered principal
type User struct {
	BaseModel
	Name         string `json:"name" gorm:"not null;size:255"`
	Email        string `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:255"`
	PasswordHash string `json:"-" gorm:"column:password;not null;size:255"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// UserStats counts what a user has contributed
type UserStats struct {
	RecipesCount  int64 `json:"recipes_count"`
	CommentsCount int64 `json:"comments_count"`
	RatingsCount  int64 `json:"ratings_count"`
	SavedCount    int64 `json:"saved_count"`
}
