package middleware

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	handlers "blogAPI/internal/handler"
	"blogAPI/internal/service"

	"github.com/sirupsen/logrus"
)

// Middleware is one stage of a request pipeline. A stage either calls the
// next handler or writes a terminal response itself.
type Middleware func(http.Handler) http.Handler

// LegacyTokenHeader is accepted when no Authorization header is sent.
const LegacyTokenHeader = "x-auth-token"

// AuthMiddleware resolves the bearer token to an author id and stores it in
// the request context. The wrapped handler only runs for a valid token.
func AuthMiddleware(verifier service.TokenVerifier, log logrus.FieldLogger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := tokenFromRequest(r)
			if tokenString == "" {
				handlers.WriteMessage(w, handlers.MsgNoToken, http.StatusUnauthorized)
				return
			}

			authorID, err := verifier.ValidateToken(tokenString)
			if err != nil {
				log.WithError(err).WithField("path", r.URL.Path).Debug("rejected token")
				handlers.WriteMessage(w, handlers.MsgInvalidToken, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(handlers.WithAuthorID(r.Context(), authorID)))
		})
	}
}

// tokenFromRequest reads "Authorization: Bearer <token>", falling back to
// the x-auth-token header when there is no bearer credential.
func tokenFromRequest(r *http.Request) string {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}

	return strings.TrimSpace(r.Header.Get(LegacyTokenHeader))
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+LegacyTokenHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func LoggingMiddleware(log logrus.FieldLogger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"duration": time.Since(start).String(),
			}).Info("request")
		})
	}
}

// RecoveryMiddleware turns a panic into the generic 500 response.
func RecoveryMiddleware(log logrus.FieldLogger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.WithFields(logrus.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
						"panic":  rec,
						"stack":  string(debug.Stack()),
					}).Error("panic while serving request")
					handlers.WriteMessage(w, handlers.MsgServerError, http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// Chain wraps h so that the first middleware listed runs first.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
