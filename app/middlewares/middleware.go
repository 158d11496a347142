package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/bepasal/bazar/app/helpers"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/utils/sessions"
)

// PrincipalMiddleware resolves the session user, if any, into the
// Principal the projection layer keys its redaction on. Anonymous requests
// pass through with the zero principal.
func PrincipalMiddleware(store sessions.SessionStore, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := store.GetUserID(r)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("PrincipalMiddleware: session user %s not found: %v", userID, err)
				next.ServeHTTP(w, r)
				return
			}

			principal := helpers.Principal{
				ID:              user.ID,
				IsStaff:         user.IsStaff,
				IsAuthenticated: true,
			}
			ctx := context.WithValue(r.Context(), helpers.ContextKeyPrincipal, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
