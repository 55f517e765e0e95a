// Command server runs the store backend API: bearer-authenticated endpoints
// for chat relay, product CRUD, and spreadsheet upload, all backed by shared
// managed-service clients constructed once at startup.
//
// @title           Smart Store Backend API
// @version         1.0
// @description     HTTP backend proxying identity, storage, queueing, and generative-model services.
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	_ "github.com/smartstore/go-store-backend/docs"
	"github.com/smartstore/go-store-backend/internal/ai"
	"github.com/smartstore/go-store-backend/internal/auth"
	"github.com/smartstore/go-store-backend/internal/config"
	"github.com/smartstore/go-store-backend/internal/gcs"
	httpapi "github.com/smartstore/go-store-backend/internal/http"
	"github.com/smartstore/go-store-backend/internal/observability"
	"github.com/smartstore/go-store-backend/internal/queue"
	"github.com/smartstore/go-store-backend/internal/secrets"
	"github.com/smartstore/go-store-backend/internal/sysutil"
)

const version = "1.0.0"

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.SetLogLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown failed")
		}
	}()

	// Managed-service clients: one of each per process, shared by all requests.
	fbClient, err := auth.NewFirebaseClient(ctx, cfg.GCP.ProjectID)
	if err != nil {
		log.Fatal().Err(err).Msg("firebase init failed")
	}

	fsClient, err := firestore.NewClient(ctx, cfg.GCP.ProjectID)
	if err != nil {
		log.Fatal().Err(err).Msg("firestore init failed")
	}
	defer fsClient.Close()

	blobClient, err := gcs.NewClient(ctx, cfg.GCP.BucketName)
	if err != nil {
		log.Fatal().Err(err).Msg("storage init failed")
	}
	defer blobClient.Close()

	publisher, err := queue.NewPublisher(ctx, cfg.GCP.ProjectID, cfg.GCP.TopicID)
	if err != nil {
		log.Fatal().Err(err).Msg("pubsub init failed")
	}
	defer publisher.Close()

	smClient, err := secrets.NewClient(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("secret manager init failed")
	}
	defer smClient.Close()
	models := secrets.NewSource(smClient, cfg.GCP.ProjectID,
		cfg.GCP.ModelSecretName, cfg.GCP.SecretVersion, cfg.GCP.ModelIDFallback)

	generator, err := ai.NewVertexGenerator(ctx, cfg.GCP.ProjectID, cfg.GCP.Region)
	if err != nil {
		log.Fatal().Err(err).Msg("vertex init failed")
	}
	defer generator.Close()

	r := gin.New()
	httpapi.RegisterRoutes(r, httpapi.Clients{
		Verifier:  auth.NewVerifier(fbClient),
		Generator: generator,
		Models:    models,
		Firestore: fsClient,
		Blobs:     blobClient,
		Queue:     publisher,
	}, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
