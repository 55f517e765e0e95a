// Package repo implements the persistence layer against the managed document
// store (Cloud Firestore) and the analytics warehouse (BigQuery). Functions
// take the client handle as an explicit argument so services stay decoupled
// from construction and tests can wire fakes at the service boundary.
package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/smartstore/go-store-backend/internal/domain"
)

// Firestore collections.
const (
	ProductsCollection   = "products"
	IngestRowsCollection = "products_from_xlsx"
)

// CreateProduct writes a new product document with a generated id and a
// server-side creation timestamp. OwnerID must already be stamped by the
// service; this function persists what it is given.
func CreateProduct(ctx context.Context, fs *firestore.Client, p *domain.Product) (*domain.Product, error) {
	ref := fs.Collection(ProductsCollection).NewDoc()
	p.ID = ref.ID
	p.CreatedAt = time.Now().UTC()

	if _, err := ref.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// ListProducts returns a page of products ordered newest-first. A limit <= 0
// returns everything after offset.
func ListProducts(ctx context.Context, fs *firestore.Client, offset, limit int) ([]domain.Product, error) {
	q := fs.Collection(ProductsCollection).OrderBy("created_at", firestore.Desc)
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	out := []domain.Product{}
	it := q.Documents(ctx)
	defer it.Stop()
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		var p domain.Product
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode product %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		out = append(out, p)
	}
	return out, nil
}

// WriteIngestRows bulk-writes parsed spreadsheet rows as documents of the
// ingest collection, one document per row, and returns the number written.
// The bulk writer batches and parallelizes under the hood; a single failed
// row fails the whole call so the queue redelivers the message.
func WriteIngestRows(ctx context.Context, fs *firestore.Client, rows []map[string]string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	bw := fs.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(rows))
	for _, row := range rows {
		job, err := bw.Create(fs.Collection(IngestRowsCollection).NewDoc(), row)
		if err != nil {
			bw.End()
			return 0, fmt.Errorf("enqueue ingest row: %w", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for i, job := range jobs {
		if _, err := job.Results(); err != nil {
			return i, fmt.Errorf("write ingest row %d: %w", i, err)
		}
	}
	return len(jobs), nil
}
