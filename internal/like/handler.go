package like

import (
	"net/http"

	"github.com/Upadhyay76/Chitrashala/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

type countResponse struct {
	Likes int64 `json:"likes"`
}

func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) error {
	return h.respond(w, r, func(uid string) (int64, error) {
		return h.svc.LikePost(r.Context(), uid, r.PathValue("post_id"))
	})
}

func (h *Handler) UnlikePost(w http.ResponseWriter, r *http.Request) error {
	return h.respond(w, r, func(uid string) (int64, error) {
		return h.svc.UnlikePost(r.Context(), uid, r.PathValue("post_id"))
	})
}

func (h *Handler) LikeComment(w http.ResponseWriter, r *http.Request) error {
	return h.respond(w, r, func(uid string) (int64, error) {
		return h.svc.LikeComment(r.Context(), uid, r.PathValue("comment_id"))
	})
}

func (h *Handler) UnlikeComment(w http.ResponseWriter, r *http.Request) error {
	return h.respond(w, r, func(uid string) (int64, error) {
		return h.svc.UnlikeComment(r.Context(), uid, r.PathValue("comment_id"))
	})
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, op func(string) (int64, error)) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	n, err := op(uid)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, countResponse{Likes: n}, http.StatusOK)
	return nil
}
