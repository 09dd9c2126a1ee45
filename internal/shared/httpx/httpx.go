package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Upadhyay76/Chitrashala/internal/shared/apperr"
)

type HandlerFunc func(http.ResponseWriter, *http.Request) error

type APIError struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
	Status int    `json:"status"`
}

type ctxKey string

const ctxUserIDKey ctxKey = "httpx.user_id"

func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, err error, reason string) {
	if err == nil {
		err = errors.New(http.StatusText(status))
	}
	WriteJSON(w, APIError{Error: err.Error(), Reason: reason, Status: status}, status)
}

// Wrap adapts an error-returning handler and maps the service error
// taxonomy onto status codes. Unknown errors become opaque 500s.
func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		switch {
		case apperr.IsValidation(err):
			WriteError(w, http.StatusBadRequest, err, "invalid_input")
		case apperr.IsNotFound(err):
			WriteError(w, http.StatusNotFound, err, "not_found")
		case apperr.IsUnauthorized(err):
			WriteError(w, http.StatusUnauthorized, err, "unauthorized")
		default:
			logrus.WithError(err).WithField("path", r.URL.Path).Error("request failed")
			WriteError(w, http.StatusInternalServerError, errors.New("internal error"), "")
		}
	})
}

func Decode[T any](r *http.Request) (T, error) {
	var t T
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		return t, apperr.Validation("malformed request body")
	}
	return t, nil
}

func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// TokenVerifier resolves a bearer token to a user id. The auth package
// provides the production implementation (JWT, then session lookup).
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

func AuthMiddleware(v TokenVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := BearerToken(r)
		if tok == "" {
			WriteError(w, http.StatusUnauthorized, apperr.ErrUnauthorized, "missing_bearer")
			return
		}
		uid, err := v.Verify(r.Context(), tok)
		if err != nil || uid == "" {
			WriteError(w, http.StatusUnauthorized, apperr.ErrUnauthorized, "invalid_token")
			return
		}
		ctx := context.WithValue(r.Context(), ctxUserIDKey, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithUser is for tests and internal callers that already know the identity.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxUserIDKey, userID)
}

func UserFromCtx(r *http.Request) (string, error) {
	uid, _ := r.Context().Value(ctxUserIDKey).(string)
	if uid == "" {
		return "", apperr.ErrUnauthorized
	}
	return uid, nil
}
