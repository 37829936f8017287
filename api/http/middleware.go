package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-http-utils/headers"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

const bearerPrefix = "Bearer "

// RequestID echoes the caller's request id or mints one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

// RequestLogger logs one line per request. The token query parameter is
// scrubbed so the shared secret never reaches the logs.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"query":    scrubbedQuery(r),
			"duration": time.Since(start).String(),
		}).Info("request handled")
	})
}

func scrubbedQuery(r *http.Request) string {
	q := r.URL.Query()
	if q.Has("token") {
		q.Set("token", "***")
	}
	return q.Encode()
}

// CORS allows the separately served chart frontend to call the facade.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Auth gates a handler behind the static shared secret, accepted either as a
// bearer header or a token query parameter. Comparison is exact equality; on
// mismatch the request is rejected before any state change.
func Auth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := ""
			if h := r.Header.Get(headers.Authorization); strings.HasPrefix(h, bearerPrefix) {
				presented = strings.TrimPrefix(h, bearerPrefix)
			}
			if presented == "" {
				presented = r.URL.Query().Get("token")
			}
			if presented == "" || presented != token {
				w.Header().Set(headers.ContentType, "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
