package handler

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/eventease-app/eventease/internal/session"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "eventease_session"

// Logger is a structured access-log middleware.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
	})
}

// CORS is a permissive CORS middleware for browser clients.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithActor resolves the session cookie to an account id and carries it in
// the request context. Requests without a valid token stay anonymous.
func WithActor(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(SessionCookie); err == nil {
				if userID, ok := sessions.User(c.Value); ok {
					r = r.WithContext(session.WithUserID(r.Context(), userID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// actorID returns the authenticated account id for the request, 0 when
// anonymous.
func actorID(r *http.Request) int {
	return session.UserIDFromContext(r.Context())
}

// requireActor writes 401 and returns 0 when the request is anonymous.
func requireActor(w http.ResponseWriter, r *http.Request) int {
	id := actorID(r)
	if id == 0 {
		writeError(w, http.StatusUnauthorized, "authentication required")
	}
	return id
}
