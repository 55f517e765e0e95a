package ingest

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/smartstore/go-store-backend/internal/domain"
)

// BlobDownloader fetches an object by its gs:// URI.
type BlobDownloader interface {
	Download(ctx context.Context, uri string) ([]byte, error)
}

// DocumentWriter persists parsed rows into the document store.
type DocumentWriter interface {
	WriteRows(ctx context.Context, rows []map[string]string) (int, error)
}

// WarehouseInserter streams parsed rows into the analytics warehouse.
type WarehouseInserter interface {
	InsertRows(ctx context.Context, rows []map[string]string) error
}

// Processor runs the ingest pipeline for a single queued spreadsheet.
type Processor struct {
	Blobs     BlobDownloader
	Docs      DocumentWriter
	Warehouse WarehouseInserter
}

// Process downloads, parses, and fans out one spreadsheet. It returns the
// number of data rows ingested. Any error is retryable: the caller should
// surface a server error so the queue redelivers the message.
func (p *Processor) Process(ctx context.Context, msg domain.IngestMessage) (int, error) {
	data, err := p.Blobs.Download(ctx, msg.GCSURI)
	if err != nil {
		return 0, fmt.Errorf("download %s: %w", msg.GCSURI, err)
	}

	rows, err := ParseXLSX(data)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", msg.Filename, err)
	}
	if len(rows) == 0 {
		log.Warn().Str("uri", msg.GCSURI).Str("filename", msg.Filename).Msg("spreadsheet has no data rows")
		return 0, nil
	}

	written, err := p.Docs.WriteRows(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("write document rows: %w", err)
	}
	if err := p.Warehouse.InsertRows(ctx, rows); err != nil {
		return 0, fmt.Errorf("insert warehouse rows: %w", err)
	}

	log.Info().
		Str("uri", msg.GCSURI).
		Str("user_id", msg.UserID).
		Int("rows", written).
		Msg("spreadsheet ingested")
	return written, nil
}
