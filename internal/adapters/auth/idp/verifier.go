package idp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kaupapa-calendar/internal/platform/httpclient"
	"kaupapa-calendar/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("idp verifier not configured")
	ErrTokenEmpty    = errors.New("token is empty")
	ErrUnauthorized  = errors.New("idp unauthorized")
	ErrUpstream      = errors.New("idp upstream error")
)

// Config del verificador. Vienen de env vars (AUTH_*).
type Config struct {
	// VerifyURL es el endpoint completo que valida tokens (POST {"token": ...}).
	VerifyURL string
	APIKey    string

	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

// Verifier implementa auth.AuthVerifier contra un IdP externo por HTTP.
// El IdP devuelve la entidad (kaupapa) en cuyo nombre actúa el usuario.
type Verifier struct {
	http         *httpclient.Client
	verifyURL    string
	apiKey       string
	apiKeyHeader string
}

func NewVerifier(cfg Config) *Verifier {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	return &Verifier{
		http:         httpclient.New(cfg.Timeout),
		verifyURL:    strings.TrimSpace(cfg.VerifyURL),
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}
}

func (v *Verifier) IsConfigured() bool {
	return v != nil && v.verifyURL != ""
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	EntityID string `json:"entity_id"`
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if !v.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	headers := map[string]string{"Authorization": "Bearer " + token}
	if v.apiKey != "" {
		headers[v.apiKeyHeader] = v.apiKey
	}

	var out verifyResponse
	err := v.http.DoJSON(ctx, "POST", v.verifyURL, headers, verifyRequest{Token: token}, &out)
	if err != nil {
		var herr *httpclient.HTTPError
		if errors.As(err, &herr) && (herr.StatusCode == 401 || herr.StatusCode == 403) {
			return auth.Claims{}, ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	claims := auth.Claims{
		UserID:   strings.TrimSpace(out.UserID),
		Email:    strings.TrimSpace(out.Email),
		EntityID: strings.TrimSpace(out.EntityID),
	}
	if claims.UserID == "" || claims.EntityID == "" {
		return auth.Claims{}, fmt.Errorf("%w: claims missing user_id or entity_id", ErrUpstream)
	}
	return claims, nil
}
