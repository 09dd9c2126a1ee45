package user

import (
	"net/http"

	"github.com/Upadhyay76/Chitrashala/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) error {
	u, err := h.svc.GetProfile(r.Context(), r.PathValue("user_id"))
	if err != nil {
		return err
	}
	// Public profile only, never the full row.
	out := map[string]any{
		"id":         u.ID,
		"name":       u.Name,
		"image":      u.Image,
		"avatar":     u.AvatarImage,
		"cover":      u.CoverImage,
		"created_at": u.CreatedAt,
	}
	httpx.WriteJSON(w, out, http.StatusOK)
	return nil
}
