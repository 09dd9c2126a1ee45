package follow

import (
	"net/http"

	"github.com/Upadhyay76/Chitrashala/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	if err := h.svc.Follow(r.Context(), uid, r.PathValue("user_id")); err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
	return nil
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	if err := h.svc.Unfollow(r.Context(), uid, r.PathValue("user_id")); err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
	return nil
}

func (h *Handler) Followers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.svc.Followers(r.Context(), r.PathValue("user_id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"users": users}, http.StatusOK)
	return nil
}

func (h *Handler) Following(w http.ResponseWriter, r *http.Request) error {
	users, err := h.svc.Following(r.Context(), r.PathValue("user_id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"users": users}, http.StatusOK)
	return nil
}
