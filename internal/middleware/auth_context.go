package middleware

import (
	"context"
	"net/http"
	"strings"

	"kaupapa-calendar/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// EntityHeader es el header de modo dev para elegir la entidad que actúa.
const EntityHeader = "X-Entity-ID"

// AuthContext resuelve la entidad que actúa en cada request:
// - Si verifier == nil => modo dev: header X-Entity-ID.
// - Si verifier != nil y viene Bearer token => Verify() y usa claims.EntityID.
// - Si no hay claims, el request sigue igual; los handlers deciden el 401.
//
// Cambiar de entidad es mandar otro header/token; no hay estado global.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				if eid := strings.TrimSpace(r.Header.Get(EntityHeader)); eid != "" {
					ctx := WithClaims(r.Context(), auth.Claims{EntityID: eid})
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}

				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// ActingEntity devuelve el id de la entidad que actúa, si hay.
func ActingEntity(ctx context.Context) (string, bool) {
	c, ok := GetClaims(ctx)
	if !ok {
		return "", false
	}
	id := strings.TrimSpace(c.EntityID)
	return id, id != ""
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
