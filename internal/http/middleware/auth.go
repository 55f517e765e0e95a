// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the bearer-token authentication gate. Every protected
// route passes through RequireAuth, which extracts the Authorization header,
// verifies the credential against the identity provider, and attaches the
// resolved claims to the Gin context for downstream handlers.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smartstore/go-store-backend/internal/domain"
)

const (
	// ctxKeyClaims is the Gin context key under which verified claims are stored.
	ctxKeyClaims = "claims"
	// ctxKeyUserID mirrors the claim subject for logging and rate-limit keying.
	ctxKeyUserID = "userID"
)

// ClaimsVerifier validates an opaque bearer credential and returns the
// caller's identity claims.
type ClaimsVerifier interface {
	Verify(ctx context.Context, credential string) (*domain.Claims, error)
}

// RequireAuth returns a Gin middleware that rejects unauthenticated requests.
//
// Behavior:
//   - Extracts the credential from "Authorization: Bearer <token>". The scheme
//     match is case-insensitive; a missing or malformed header is a 401.
//   - Delegates verification to the ClaimsVerifier. Any verification failure
//     is a 401 with the standard error envelope; the provider-side reason is
//     never exposed to the client.
//   - On success, stores the claims under "claims" and the subject under
//     "userID" so logging and rate limiting key by user rather than IP.
//
// 401 responses carry "WWW-Authenticate: Bearer" per RFC 6750.
func RequireAuth(verifier ClaimsVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c)
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), credential)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(ctxKeyClaims, claims)
		c.Set(ctxKeyUserID, claims.Subject)
		c.Next()
	}
}

// ClaimsFrom returns the verified claims attached by RequireAuth, or nil when
// the request did not pass through it.
func ClaimsFrom(c *gin.Context) *domain.Claims {
	if v, ok := c.Get(ctxKeyClaims); ok {
		if cl, ok := v.(*domain.Claims); ok {
			return cl
		}
	}
	return nil
}

// bearerToken splits an Authorization header into its bearer credential.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get("X-Request-ID"),
		"code":       "unauthorized",
		"message":    "invalid or missing credentials",
	})
}
