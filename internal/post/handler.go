package post

import (
	"net/http"

	"github.com/Upadhyay76/Chitrashala/internal/shared/apperr"
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
	v, err := h.svc.Create(r.Context(), uid, in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, v, http.StatusCreated)
	return nil
}

func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) error {
	posts, err := h.svc.ListPublic(r.Context())
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, ListResponse{Posts: posts}, http.StatusOK)
	return nil
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) error {
	v, err := h.svc.GetByID(r.Context(), r.PathValue("post_id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, v, http.StatusOK)
	return nil
}

func (h *Handler) ListOwn(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	posts, err := h.svc.ListOwn(r.Context(), uid)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, ListResponse{Posts: posts}, http.StatusOK)
	return nil
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query().Get("q")
	if q == "" {
		return apperr.Validation("search term required")
	}
	posts, err := h.svc.Search(r.Context(), q)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, ListResponse{Posts: posts}, http.StatusOK)
	return nil
}

func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[EditReq](r)
	if err != nil {
		return err
	}
	if err := h.svc.Edit(r.Context(), r.PathValue("post_id"), uid, in); err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
	return nil
}
