package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"blogAPI/internal/repository"

	"github.com/gorilla/mux"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdatePostRequest fields are optional, but a supplied field must not be empty.
type UpdatePostRequest struct {
	Title   *string `json:"title" validate:"omitnil,min=1"`
	Content *string `json:"content" validate:"omitnil,min=1"`
}

// queryInt reads the leading integer of value ("3abc" is 3). Absent,
// non-numeric, zero, negative or oversized values give defaultValue.
func queryInt(value string, defaultValue int) int {
	value = strings.TrimSpace(value)

	end := 0
	if end < len(value) && (value[end] == '+' || value[end] == '-') {
		end++
	}
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(value[:end])
	if err != nil || n < 1 || n > math.MaxInt32 {
		return defaultValue
	}
	return n
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := queryInt(query.Get("page"), defaultPage)
	limit := queryInt(query.Get("limit"), defaultLimit)

	posts, err := h.PostService.ListPosts(r.Context(), page, limit)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.GetPost(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := AuthorIDFromContext(r.Context())
	if !ok {
		WriteMessage(w, MsgNoToken, http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if !h.bind(w, r, &req) {
		return
	}

	// the author always comes from the token, never from the body
	post, err := h.PostService.CreatePost(r.Context(), authorID, repository.CreatePostRequest{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := AuthorIDFromContext(r.Context())
	if !ok {
		WriteMessage(w, MsgNoToken, http.StatusUnauthorized)
		return
	}

	var req UpdatePostRequest
	if !h.bind(w, r, &req) {
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), mux.Vars(r)["id"], authorID, repository.UpdatePostRequest{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := AuthorIDFromContext(r.Context())
	if !ok {
		WriteMessage(w, MsgNoToken, http.StatusUnauthorized)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), mux.Vars(r)["id"], authorID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteMessage(w, msgPostRemoved, http.StatusOK)
}
