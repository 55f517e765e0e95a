package ingest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smartstore/go-store-backend/internal/http/handlers"
	"github.com/smartstore/go-store-backend/internal/http/middleware"
)

// Handler exposes the Pub/Sub push endpoint of the ingest worker.
type Handler struct {
	Proc *Processor
}

// HandlePush godoc
// @ID          ingestPush
// @Summary     Process one queued spreadsheet
// @Description Receives a Pub/Sub push delivery, validates the ingest message, and runs
// @Description the download → parse → fan-out pipeline. A malformed envelope is a 400 so
// @Description the subscription does not redeliver it; a pipeline failure is a 500 so it
// @Description does.
// @Tags        Ingest
// @Accept      json
// @Produce     json
//
// @Success     200  {object}  map[string]any
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed push envelope or message"
// @Failure     500  {object}  handlers.ErrorResponse  "Retryable pipeline failure"
// @Router      / [post]
func (h *Handler) HandlePush(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		handlers.Fail(c, http.StatusBadRequest, handlers.ErrCodeBadRequest, "unreadable request body")
		return
	}

	msg, err := DecodeEnvelope(body)
	if err != nil {
		middleware.LoggerFrom(c).Warn().Err(err).Msg("rejecting push delivery")
		handlers.Fail(c, http.StatusBadRequest, handlers.ErrCodeBadRequest, err.Error())
		return
	}

	rows, err := h.Proc.Process(c.Request.Context(), msg)
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Str("uri", msg.GCSURI).Msg("ingest pipeline failed")
		handlers.Fail(c, http.StatusInternalServerError, handlers.ErrCodeInternal, "ingest failed; delivery will be retried")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "rows": rows})
}

// RegisterRoutes attaches the worker's middleware and endpoints to the given
// Gin engine. The worker runs a slimmer chain than the API server: it is only
// reachable by the queue's push subscription, so there is no CORS, auth, or
// rate limiting.
func RegisterRoutes(r *gin.Engine, proc *Processor) {
	r.Use(middleware.RequestID())
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	h := &Handler{Proc: proc}
	r.POST("/", h.HandlePush)
}
