package user

import "time"

type User struct {
	ID            string  `gorm:"primaryKey;size:64" json:"id"`
	Name          string  `gorm:"size:255;not null" json:"name"`
	Email         string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	EmailVerified bool    `json:"email_verified"`
	Image         *string `json:"image,omitempty"`
	AvatarImage   *string `gorm:"size:300" json:"avatar_image,omitempty"`
	CoverImage    *string `gorm:"size:300" json:"cover_image,omitempty"`
	PasswordHash  *string `gorm:"size:255" json:"-"`
	Role          string  `gorm:"size:16;default:user" json:"role"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Summary is the denormalized view embedded in post and follow responses.
type Summary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

func (u *User) Summary() Summary {
	img := u.Image
	if img == nil {
		img = u.AvatarImage
	}
	return Summary{ID: u.ID, Name: u.Name, Image: img}
}
