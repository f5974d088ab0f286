package middleware

import (
	"net/http"
	"time"

	"agrimart-be/internal/logger"
	"agrimart-be/internal/metrics"
	"agrimart-be/internal/utils"

	"go.uber.org/zap"
)

// responseRecorder lets us capture HTTP status codes.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs every HTTP request in structured form.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		metrics.RequestsServed.Inc()

		userID, _ := utils.GetUserIDFromContext(r.Context())
		logger.FromCtx(r.Context()).Info("incoming request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.statusCode),
			zap.String("ip", r.RemoteAddr),
			zap.Uint("user_id", userID),
			zap.Duration("duration_ms", time.Since(start)),
		)
	})
}
