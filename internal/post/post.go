package post

import (
	"time"

	"github.com/Upadhyay76/Chitrashala/internal/user"
)

const (
	TypeImage = "image"
	TypeVideo = "video"

	VisibilityPublic  = "public"
	VisibilityPrivate = "private"

	AccessFree = "free"
	AccessPaid = "paid"
)

type Post struct {
	ID             string  `gorm:"primaryKey;size:64" json:"id"`
	UserID         string  `gorm:"size:64;not null;index" json:"user_id"`
	Type           string  `gorm:"size:16;not null" json:"type"`
	Title          string  `gorm:"size:255;not null" json:"title"`
	Description    *string `json:"description,omitempty"`
	MediaURL       string  `gorm:"size:512;not null" json:"media_url"`
	ThumbnailURL   *string `gorm:"size:512" json:"thumbnail_url,omitempty"`
	Visibility     string  `gorm:"size:16;not null;default:public;index" json:"visibility"`
	AccessType     string  `gorm:"size:16;not null;default:free" json:"access_type"`
	Price          *string `gorm:"size:50" json:"price,omitempty"`
	IsDownloadable bool    `gorm:"not null;default:false" json:"is_downloadable"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	User *user.User `gorm:"foreignKey:UserID" json:"-"`
}

// PostToTag links a post to a tag. Rows for a post are replaced wholesale
// on every edit that supplies a tag list, never diffed.
type PostToTag struct {
	PostID string `gorm:"primaryKey;size:64"`
	TagID  string `gorm:"primaryKey;size:64"`
}
