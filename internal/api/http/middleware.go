package http

import (
	"net/http"
	"strings"
	"time"

	"movierental-backend/internal/logger"
	"movierental-backend/internal/security"

	"github.com/google/uuid"
)

// RequestID assigns each request an id, preferring one supplied by the client.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

// RequestLogger logs one structured line per request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", RequestIDFromContext(r.Context()),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Gate authenticates requests and checks admin claims before handlers run.
type Gate struct {
	tokens security.TokenManager
}

func NewGate(tokens security.TokenManager) *Gate {
	return &Gate{tokens: tokens}
}

// Authenticate rejects the request unless it carries a valid, unexpired
// token. The claims are stored in the request context for handlers.
func (g *Gate) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		claims, err := g.tokens.ValidateToken(token)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// RequireAdmin allows only requests whose token carries the admin claim.
// Wire it after Authenticate.
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			writeDomainError(w, security.ErrMissingToken)
			return
		}
		if !claims.IsAdmin {
			writeError(w, http.StatusForbidden, codeForbidden, "Access denied.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractToken reads the bearer credential from the Authorization header, or
// from the x-auth-token header legacy clients send.
func extractToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer"))
	}
	return r.Header.Get("x-auth-token")
}
