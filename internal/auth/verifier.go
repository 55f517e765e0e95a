// Package auth verifies bearer credentials against the identity provider and
// derives the role context used to steer the chat model. Verification is a
// stateless call into the Firebase Admin SDK; role flags come from
// provider-issued custom claims.
package auth

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"

	"github.com/smartstore/go-store-backend/internal/domain"
	"github.com/smartstore/go-store-backend/internal/services"
)

// TokenVerifier is the slice of the Firebase auth client the Verifier needs.
// Tests substitute a fake; production wires *fbauth.Client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// Verifier resolves opaque bearer credentials into Claims. It holds no state
// beyond the provider client and is safe for concurrent use.
type Verifier struct {
	client TokenVerifier
}

// NewVerifier constructs a Verifier around an already-initialized provider
// client.
func NewVerifier(client TokenVerifier) *Verifier {
	return &Verifier{client: client}
}

// NewFirebaseClient initializes the Firebase Admin app for the project and
// returns its auth client. On Cloud Run, Application Default Credentials are
// picked up automatically; local development sets
// GOOGLE_APPLICATION_CREDENTIALS.
func NewFirebaseClient(ctx context.Context, projectID string) (*fbauth.Client, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}
	return client, nil
}

// Verify validates a bearer credential and returns the caller's Claims.
//
// Any provider-side failure (malformed, expired, bad signature) collapses to
// ErrUnauthenticated: the distinction is logged upstream but never exposed to
// the caller. There are no retries; verification either succeeds now or the
// request fails with 401.
func (v *Verifier) Verify(ctx context.Context, credential string) (*domain.Claims, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, services.ErrUnauthenticated
	}

	tok, err := v.client.VerifyIDToken(ctx, credential)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrUnauthenticated, err)
	}

	return &domain.Claims{
		Subject: tok.UID,
		Roles: domain.Roles{
			Admin:    boolClaim(tok.Claims, "admin"),
			Merchant: boolClaim(tok.Claims, "merchant"),
		},
	}, nil
}

// boolClaim reads a boolean custom claim, tolerating its absence and any
// non-boolean value (both mean "flag not set").
func boolClaim(claims map[string]interface{}, name string) bool {
	if claims == nil {
		return false
	}
	b, _ := claims[name].(bool)
	return b
}
