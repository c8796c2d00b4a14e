package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per request once the response has been written.
// Requests that passed RequireDriver are tagged with the driver's user id.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		r, holder := attachSessionHolder(r)

		defer func() {
			user := "-"
			if holder.userID != "" {
				user = holder.userID
			}
			log.Printf(
				"%s %s %d %dB %s user=%s %s",
				r.Method,
				r.URL.Path,
				ww.Status(),
				ww.BytesWritten(),
				time.Since(start),
				user,
				r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
