package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/learnhub-api/internal/platform"
)

// PlatformErrors recovers panics from the handler chain and converts them into
// the uniform structured error envelope. Together with the handlers' own error
// writer it guarantees every failed response has the
// {"error":{code,message,statusCode,category}} shape; it must never propagate
// a panic itself.
func PlatformErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.Error("panic while handling request",
					"method", r.Method, "path", r.URL.Path, "panic", rec)
				WritePlatformEnvelope(w, platform.Coded("INTERNAL_UNEXPECTED_ERROR"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// WritePlatformEnvelope resolves err through the error registry and writes the
// structured envelope at the descriptor's status. Unrecognized errors get the
// fixed internal-unexpected envelope. Error bodies are never cacheable.
func WritePlatformEnvelope(w http.ResponseWriter, err error) {
	status, body := platform.Envelope(err)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
