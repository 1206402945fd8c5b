package middleware

import (
	"log"
	"net/http"

	"fintrack-server/src/util"
)

// RecoverMiddleware converts an uncaught panic into a 500 with the standard
// error envelope instead of tearing down the connection.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("ERROR: Panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				util.RespondError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
