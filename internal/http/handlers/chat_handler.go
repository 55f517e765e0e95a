// Streaming chat endpoint.
//
// The response is a text/plain chunked stream: each model fragment is written
// and flushed as soon as it arrives. Once the first byte is on the wire the
// HTTP status can no longer change, so a mid-stream failure is signaled by a
// single tagged terminal fragment instead.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartstore/go-store-backend/internal/ai"
	"github.com/smartstore/go-store-backend/internal/auth"
	"github.com/smartstore/go-store-backend/internal/domain"
	"github.com/smartstore/go-store-backend/internal/http/middleware"
	"github.com/smartstore/go-store-backend/internal/services"
)

// streamErrorFragment is appended as the final chunk when the model stream
// fails after output has started. The bracket tag keeps it distinguishable
// from ordinary model text; clients must treat it as terminal.
const streamErrorFragment = "\n[stream-error] the response was interrupted by an upstream failure"

// Chat godoc
// @ID          chatRelay
// @Summary     Stream a model response
// @Description Relays the prompt and prior turns to the generative model and streams the
// @Description response back as plain-text chunks. The caller's role selects the persona
// @Description used as system instruction. A mid-stream failure appends one terminal
// @Description "[stream-error]" fragment; the HTTP status does not change at that point.
// @Tags        Chat
// @Accept      json
// @Produce     plain
// @Security    BearerAuth
//
// @Param       body  body  domain.ChatRequest  true  "Prompt and conversation history"
//
// @Success     200  {string}  string  "Chunked model response"
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed body or empty prompt"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid or missing credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Model call could not be opened"
// @Router      /chat/ [post]
func (h *Handlers) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid or missing credentials")
		return
	}
	persona := auth.Persona(claims.Roles)

	// The stream headers are written lazily, just before the first chunk.
	// A failure before any output must still produce a JSON error envelope,
	// so the plain-text headers cannot go out until streaming actually
	// starts.
	streamHeaders := func() {
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.Header("Cache-Control", "no-store")
		c.Header("X-Accel-Buffering", "no")
	}

	streamed := false
	err := h.chatSvc.Relay(c.Request.Context(), req, persona, func(ev ai.Event) error {
		switch ev.Type {
		case ai.EventToken:
			if !streamed {
				streamHeaders()
			}
			if _, werr := c.Writer.WriteString(ev.Text); werr != nil {
				return werr
			}
			streamed = true
			middleware.ObserveChatChunk()
			c.Writer.Flush()
		case ai.EventError:
			// Terminal in-band failure marker; the status line is long gone.
			middleware.ObserveChatFailure()
			_, _ = c.Writer.WriteString(streamErrorFragment)
			c.Writer.Flush()
		case ai.EventDone:
			// Nothing to append; the stream ends with the last token.
		}
		return nil
	})

	if err != nil && !streamed {
		switch {
		case errors.Is(err, services.ErrEmptyPrompt):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, services.ErrEmptyPrompt.Error())
		case errors.Is(err, services.ErrModelUnavailable):
			fail(c, http.StatusInternalServerError, ErrCodeAnswerFailed, "model is not available")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeAnswerFailed, "failed to answer prompt")
		}
		return
	}
	if err != nil {
		// Mid-stream failure: already signaled in-band, log for operators.
		middleware.LoggerFrom(c).Error().Err(err).Msg("chat stream interrupted")
	}
}
