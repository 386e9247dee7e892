package auth

import "context"

// AuthVerifier verifica un bearer token y devuelve los claims del caller.
// La implementación concreta (IdP) queda fuera de este servicio.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
