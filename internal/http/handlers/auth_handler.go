// Auth introspection endpoint.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartstore/go-store-backend/internal/domain"
	"github.com/smartstore/go-store-backend/internal/http/middleware"
)

// MeResponse echoes the verified identity of the caller.
type MeResponse struct {
	UID   string       `json:"uid" example:"q2hJ9Yw1XHR0y7Fh3kPZbQ"`
	Roles domain.Roles `json:"roles"`
}

// Me godoc
// @ID          authMe
// @Summary     Return the caller's verified identity
// @Description Echoes the subject and role flags resolved from the bearer credential.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.MeResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid or missing credentials"
// @Router      /auth/me [get]
func (h *Handlers) Me(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid or missing credentials")
		return
	}
	ok(c, http.StatusOK, MeResponse{UID: claims.Subject, Roles: claims.Roles})
}
