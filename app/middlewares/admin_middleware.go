package middlewares

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/bepasal/bazar/app/helpers"
)

func writeForbidden(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": message})
}

// AdminOrReadOnlyMiddleware lets anyone read; writes require a staff
// principal.
func AdminOrReadOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		principal := helpers.CurrentPrincipal(r)
		if !principal.IsStaff {
			log.Printf("AdminOrReadOnlyMiddleware: %s %s rejected for non-staff principal %q", r.Method, r.URL.Path, principal.ID)
			writeForbidden(w, "You do not have permission to perform this action.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminOnlyMiddleware gates the /api/system endpoints entirely.
func AdminOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := helpers.CurrentPrincipal(r)
		if !principal.IsStaff {
			log.Printf("AdminOnlyMiddleware: %s %s rejected for non-staff principal %q", r.Method, r.URL.Path, principal.ID)
			writeForbidden(w, "You do not have permission to perform this action.")
			return
		}
		next.ServeHTTP(w, r)
	})
}
