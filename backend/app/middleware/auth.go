package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	jwtutil "ieltsim/backend/app/jwt"
	"ieltsim/backend/app/models"
	"ieltsim/backend/app/services"
	"ieltsim/backend/global"
)

type ctxKey int

const ClaimsKey ctxKey = 1

type Auth struct {
	Signer *jwtutil.Signer
	Users  *services.UserService
}

func (a *Auth) bearerClaims(r *http.Request) (*jwtutil.Claims, error) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return nil, errors.New("missing bearer token")
	}
	return a.Signer.Parse(strings.TrimPrefix(authz, "Bearer "))
}

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := a.bearerClaims(r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid token"}`))
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin verifies the token, then re-reads the user's role from
// storage. Token claims are a point-in-time identity snapshot; authorization
// is decided by the current role, so a demoted admin loses access on the
// very next request.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := a.bearerClaims(r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid token"}`))
			return
		}
		role, err := a.Users.RoleOf(claims.UserID)
		if err != nil {
			// A vanished user is an auth failure; anything else is storage
			// trouble and must not masquerade as one.
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"invalid token"}`))
				return
			}
			global.Logger.Error().Err(err).Uint("user_id", claims.UserID).Msg("admin role lookup failed")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"database error"}`))
			return
		}
		if role != models.RoleAdmin {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"admin only"}`))
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
