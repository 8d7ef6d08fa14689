package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogAPI/internal/service"

	"github.com/sirupsen/logrus"
)

const (
	MsgServerError      = "Server error"
	msgInvalidBody      = "Invalid request body"
	msgBodyTooLarge     = "Request body too large"
	msgEmailInUse       = "Email already in use"
	msgInvalidCreds     = "Invalid credentials"
	msgAuthorNotFound   = "Author not found"
	msgPostNotFound     = "Post not found"
	msgNotAuthorized    = "Not authorized"
	msgPostRemoved      = "Post removed"
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"

	MsgNoToken      = "No token, authorization denied"
	MsgInvalidToken = "Token is not valid"
)

// MessageResponse is the {"msg": "..."} body used for every non-validation error.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// WriteMessage sends {"msg": message} with the given status.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, MessageResponse{Msg: message}, statusCode)
}

// WriteJSON sends data as a JSON body.
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// ServerError is the error boundary: it logs err and answers with a generic 500.
func (h *Handlers) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.Log.WithError(err).WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Error("request failed")
	WriteMessage(w, MsgServerError, http.StatusInternalServerError)
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteMessage(w, msgNotFound, http.StatusNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteMessage(w, msgMethodNotAllowed, http.StatusMethodNotAllowed)
}

// writeServiceError translates the service sentinels into their responses.
// Anything else goes to ServerError.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrEmailInUse):
		WriteMessage(w, msgEmailInUse, http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteMessage(w, msgInvalidCreds, http.StatusBadRequest)
	case errors.Is(err, service.ErrAuthorNotFound):
		WriteMessage(w, msgAuthorNotFound, http.StatusNotFound)
	case errors.Is(err, service.ErrPostNotFound):
		WriteMessage(w, msgPostNotFound, http.StatusNotFound)
	case errors.Is(err, service.ErrNotPostOwner):
		WriteMessage(w, msgNotAuthorized, http.StatusForbidden)
	default:
		h.ServerError(w, r, err)
	}
}
