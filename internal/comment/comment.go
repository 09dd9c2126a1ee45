package comment

import (
	"time"

	"github.com/Upadhyay76/Chitrashala/internal/user"
)

type Comment struct {
	ID        string  `gorm:"primaryKey;size:64" json:"id"`
	UserID    string  `gorm:"size:64;not null;index" json:"user_id"`
	PostID    string  `gorm:"size:64;not null;index" json:"post_id"`
	Content   string  `gorm:"not null" json:"content"`
	ParentID  *string `gorm:"size:64;index" json:"parent_id,omitempty"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *user.User `gorm:"foreignKey:UserID" json:"-"`
}

type CreateReq struct {
	Content  string  `json:"content"`
	ParentID *string `json:"parent_id,omitempty"`
}

// View nests direct replies one level deep, which is all the UI renders.
type View struct {
	ID        string       `json:"id"`
	PostID    string       `json:"post_id"`
	Content   string       `json:"content"`
	ParentID  *string      `json:"parent_id,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	User      user.Summary `json:"user"`
	Replies   []View       `json:"replies,omitempty"`
}
