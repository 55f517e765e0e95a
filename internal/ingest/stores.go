package ingest

import (
	"context"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/firestore"

	"github.com/smartstore/go-store-backend/internal/repo"
)

// FirestoreWriter adapts the repo free functions to the DocumentWriter
// interface, binding the shared Firestore client.
type FirestoreWriter struct {
	FS *firestore.Client
}

// WriteRows proxies repo.WriteIngestRows.
func (w FirestoreWriter) WriteRows(ctx context.Context, rows []map[string]string) (int, error) {
	return repo.WriteIngestRows(ctx, w.FS, rows)
}

// BigQueryInserter adapts the repo free functions to the WarehouseInserter
// interface, binding the shared BigQuery client and destination table.
type BigQueryInserter struct {
	BQ      *bigquery.Client
	Dataset string
	Table   string
}

// InsertRows proxies repo.InsertWarehouseRows.
func (w BigQueryInserter) InsertRows(ctx context.Context, rows []map[string]string) error {
	return repo.InsertWarehouseRows(ctx, w.BQ, w.Dataset, w.Table, rows)
}
