package models

import (
	"github.com/google/uuid"
)

// Comment is either a root comment (ParentID nil) or a reply to a root comment of the same recipe
type Comment struct {
	BaseModel
	RecipeID uuid.UUID  `json:"recipe_id" gorm:"type:uuid;not null;index"`
	Recipe   *Recipe    `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	UserID   *uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	User     *User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	ParentID *uuid.UUID `json:"parent_id" gorm:"type:uuid;index"`
	Body     string     `json:"comment" gorm:"column:comment;type:text;not null"`
	Replies  []Comment  `json:"replies,omitempty" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// IsRoot reports whether the comment starts a thread
func (c *Comment) IsRoot() bool {
	return c.ParentID == nil
}
