package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	apperrors "github.com/Sagar0810k/Happy-taxi-full-stack/internal/errors"
	"github.com/Sagar0810k/Happy-taxi-full-stack/pkg/utils"
)

// Recovery is a middleware that recovers from panics
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				log.Printf("panic recovered on %s %s: %v\n%s", r.Method, r.URL.Path, err, debug.Stack())
				utils.Error(w, apperrors.InternalError("an unexpected error occurred"))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
