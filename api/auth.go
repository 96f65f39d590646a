package api

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rpupo63/fullstack-suite-backend/errs"
	"github.com/rs/zerolog/log"
)

// Claims is the payload of a verified bearer token. Permissions holds
// the caller's permission strings (e.g. "delete drink"); a token without
// the claim is rejected before any permission comparison.
type Claims struct {
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

type authMiddleware struct {
	responder Responder
	secret    []byte
}

func newAuthMiddleware(secret string) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		secret:    []byte(secret),
	}
}

// verify walks the token-check stages in order, short-circuiting at the
// first failure: missing header, malformed header, bad signature,
// expired, missing permissions claim.
func (m authMiddleware) verify(r *http.Request) (*Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errs.NewMissingAuthHeaderError()
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errs.NewInvalidAuthHeaderError()
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if raw == "" {
		return nil, errs.NewInvalidAuthHeaderError()
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.NewTokenExpiredError()
		}
		return nil, errs.NewInvalidTokenError(err)
	}
	if !token.Valid {
		return nil, errs.NewInvalidTokenError(nil)
	}

	if claims.Permissions == nil {
		return nil, errs.NewInvalidClaimsError()
	}
	return claims, nil
}

// requirePermission returns a guard composed in front of a handler. The
// wrapped handler only runs once the bearer token is verified and carries
// the required permission; every failing stage responds with its own
// machine-readable reason code.
func (m authMiddleware) requirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := m.verify(r)
			if err != nil {
				m.responder.WriteError(w, err)
				return
			}

			if !slices.Contains(claims.Permissions, permission) {
				m.responder.WriteError(w, errs.NewPermissionNotFoundError(permission))
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxWithClaims(r.Context(), claims)))
		})
	}
}
