package comment

import (
	"net/http"

	"github.com/Upadhyay76/Chitrashala/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[CreateReq](r)
	if err != nil {
		return err
	}
	c, err := h.svc.Create(r.Context(), uid, r.PathValue("post_id"), in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, c, http.StatusCreated)
	return nil
}

func (h *Handler) ListByPost(w http.ResponseWriter, r *http.Request) error {
	items, err := h.svc.ListByPost(r.Context(), r.PathValue("post_id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"comments": items}, http.StatusOK)
	return nil
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(r.Context(), r.PathValue("comment_id"), uid); err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
	return nil
}
