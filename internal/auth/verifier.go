package auth

import (
	"context"
	"errors"
	"time"

	jw "github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Upadhyay76/Chitrashala/internal/shared/db"
)

var ErrInvalidToken = errors.New("invalid token")

// Verifier accepts either an HS256 JWT (the "sub" claim is the user id) or
// an opaque session token issued by the auth provider and stored in the
// sessions table.
type Verifier struct {
	store  *db.Store
	secret []byte
}

func NewVerifier(s *db.Store, secret string) *Verifier {
	return &Verifier{store: s, secret: []byte(secret)}
}

func (v *Verifier) Verify(ctx context.Context, token string) (string, error) {
	if uid, err := v.verifyJWT(token); err == nil {
		return uid, nil
	}
	return v.verifySession(ctx, token)
}

func (v *Verifier) verifyJWT(token string) (string, error) {
	t, err := jw.Parse(token, func(t *jw.Token) (any, error) {
		if _, ok := t.Method.(*jw.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil || !t.Valid {
		return "", ErrInvalidToken
	}
	mc, ok := t.Claims.(jw.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	uid, _ := mc["sub"].(string)
	if uid == "" {
		return "", ErrInvalidToken
	}
	if exp, ok := mc["exp"].(float64); ok && time.Now().Unix() > int64(exp) {
		return "", ErrInvalidToken
	}
	return uid, nil
}

func (v *Verifier) verifySession(ctx context.Context, token string) (string, error) {
	var s Session
	err := v.store.Base.WithContext(ctx).First(&s, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", err
	}
	if time.Now().After(s.ExpiresAt) {
		return "", ErrInvalidToken
	}
	return s.UserID, nil
}
