package router

import (
	"net/http"

	handlers "blogAPI/internal/handler"
	"blogAPI/internal/middleware"
	"blogAPI/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// New builds the HTTP surface. Global stages run in the order
// Recovery, Logging, CORS; protected routes add the auth stage.
func New(h *handlers.Handlers, verifier service.TokenVerifier, log logrus.FieldLogger) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	auth := middleware.AuthMiddleware(verifier, log)
	protected := func(fn http.HandlerFunc) http.Handler {
		return middleware.Chain(fn, auth)
	}

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	r.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	r.Handle("/authors", protected(h.ListAuthors)).Methods(http.MethodGet)
	r.Handle("/authors/{id}", protected(h.GetAuthor)).Methods(http.MethodGet)

	r.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	r.Handle("/posts", protected(h.CreatePost)).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	r.Handle("/posts/{id}", protected(h.UpdatePost)).Methods(http.MethodPut)
	r.Handle("/posts/{id}", protected(h.DeletePost)).Methods(http.MethodDelete)

	return middleware.Chain(r,
		middleware.RecoveryMiddleware(log),
		middleware.LoggingMiddleware(log),
		middleware.CORSMiddleware,
	)
}
