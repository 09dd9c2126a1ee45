// Package auth holds the tables owned by the external auth provider and a
// read-only verifier that resolves bearer tokens to user ids. The service
// never issues sessions itself.
package auth

import "time"

type Session struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Token     string    `gorm:"uniqueIndex;not null"`
	UserID    string    `gorm:"size:64;not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	IPAddress *string
	UserAgent *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Account struct {
	ID                    string `gorm:"primaryKey;size:64"`
	AccountID             string `gorm:"not null"`
	ProviderID            string `gorm:"not null"`
	UserID                string `gorm:"size:64;not null;index"`
	AccessToken           *string
	RefreshToken          *string
	IDToken               *string
	AccessTokenExpiresAt  *time.Time
	RefreshTokenExpiresAt *time.Time
	Scope                 *string
	Password              *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type Verification struct {
	ID         string `gorm:"primaryKey;size:64"`
	Identifier string `gorm:"not null"`
	Value      string `gorm:"not null"`
	ExpiresAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
