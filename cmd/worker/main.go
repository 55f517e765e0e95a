// Command worker runs the spreadsheet ingest worker. It exposes a single
// Pub/Sub push endpoint: each delivery names an uploaded workbook, which the
// worker downloads, parses, and fans out to Firestore and BigQuery.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/smartstore/go-store-backend/internal/config"
	"github.com/smartstore/go-store-backend/internal/gcs"
	"github.com/smartstore/go-store-backend/internal/ingest"
	"github.com/smartstore/go-store-backend/internal/sysutil"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.SetLogLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	blobClient, err := gcs.NewClient(ctx, cfg.GCP.BucketName)
	if err != nil {
		log.Fatal().Err(err).Msg("storage init failed")
	}
	defer blobClient.Close()

	fsClient, err := firestore.NewClient(ctx, cfg.GCP.ProjectID)
	if err != nil {
		log.Fatal().Err(err).Msg("firestore init failed")
	}
	defer fsClient.Close()

	bqClient, err := bigquery.NewClient(ctx, cfg.GCP.ProjectID)
	if err != nil {
		log.Fatal().Err(err).Msg("bigquery init failed")
	}
	defer bqClient.Close()

	proc := &ingest.Processor{
		Blobs: blobClient,
		Docs:  ingest.FirestoreWriter{FS: fsClient},
		Warehouse: ingest.BigQueryInserter{
			BQ:      bqClient,
			Dataset: cfg.GCP.BQDataset,
			Table:   cfg.GCP.BQTable,
		},
	}

	r := gin.New()
	ingest.RegisterRoutes(r, proc)

	// Cloud Run style: the platform sets PORT; the shared config default applies
	// elsewhere.
	port := sysutil.FirstNonEmpty(os.Getenv("PORT"), cfg.Port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("ingest worker listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("worker stopped")
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
