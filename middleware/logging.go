package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"pickem-league-go/logging"
)

// statusRecorder captures the response code for access logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware tags every request with an ID and writes one access
// log line per request
func LoggingMiddleware(next http.Handler) http.Handler {
	logger := logging.WithPrefix("http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		logger.Infof("%s %s -> %d (%s) request_id=%s remote=%s",
			r.Method, r.URL.Path, recorder.status, time.Since(start).Round(time.Microsecond), requestID, r.RemoteAddr)
	})
}
