package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ListAuthors returns every registered author, without password hashes.
func (h *Handlers) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.AuthorService.ListAuthors(r.Context())
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	WriteJSON(w, authors, http.StatusOK)
}

func (h *Handlers) GetAuthor(w http.ResponseWriter, r *http.Request) {
	author, err := h.AuthorService.GetAuthor(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, author, http.StatusOK)
}
