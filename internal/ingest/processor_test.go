package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/smartstore/go-store-backend/internal/domain"
)

type fakeDownloader struct {
	data []byte
	err  error
}

func (f *fakeDownloader) Download(ctx context.Context, uri string) ([]byte, error) {
	return f.data, f.err
}

type fakeDocWriter struct {
	rows []map[string]string
	err  error
}

func (f *fakeDocWriter) WriteRows(ctx context.Context, rows []map[string]string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.rows = rows
	return len(rows), nil
}

type fakeInserter struct {
	rows []map[string]string
	err  error
}

func (f *fakeInserter) InsertRows(ctx context.Context, rows []map[string]string) error {
	if f.err != nil {
		return f.err
	}
	f.rows = rows
	return nil
}

func ingestMsg() domain.IngestMessage {
	return domain.IngestMessage{
		GCSURI:   "gs://b/uploads/u/f.xlsx",
		UserID:   "u",
		Filename: "f.xlsx",
	}
}

func TestProcessor_FansOutToBothStores(t *testing.T) {
	data := workbook(t, [][]any{
		{"sku", "qty"},
		{"A-1", 3},
		{"B-2", 5},
	})
	docs := &fakeDocWriter{}
	wh := &fakeInserter{}
	p := &Processor{Blobs: &fakeDownloader{data: data}, Docs: docs, Warehouse: wh}

	n, err := p.Process(context.Background(), ingestMsg())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows ingested, got %d", n)
	}
	if len(docs.rows) != 2 || len(wh.rows) != 2 {
		t.Fatalf("expected both stores to receive 2 rows, got docs=%d warehouse=%d", len(docs.rows), len(wh.rows))
	}
	if docs.rows[0]["sku"] != "A-1" {
		t.Fatalf("unexpected first doc row: %v", docs.rows[0])
	}
}

func TestProcessor_EmptySheetIsNotAnError(t *testing.T) {
	data := workbook(t, [][]any{{"sku", "qty"}})
	docs := &fakeDocWriter{}
	wh := &fakeInserter{}
	p := &Processor{Blobs: &fakeDownloader{data: data}, Docs: docs, Warehouse: wh}

	n, err := p.Process(context.Background(), ingestMsg())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if n != 0 || docs.rows != nil || wh.rows != nil {
		t.Fatalf("expected no-op for header-only workbook, got n=%d", n)
	}
}

func TestProcessor_DownloadFailureIsRetryable(t *testing.T) {
	p := &Processor{
		Blobs:     &fakeDownloader{err: errors.New("storage down")},
		Docs:      &fakeDocWriter{},
		Warehouse: &fakeInserter{},
	}
	if _, err := p.Process(context.Background(), ingestMsg()); err == nil {
		t.Fatal("expected error when download fails")
	}
}

func TestProcessor_WarehouseFailureSurfaces(t *testing.T) {
	data := workbook(t, [][]any{{"sku"}, {"A-1"}})
	p := &Processor{
		Blobs:     &fakeDownloader{data: data},
		Docs:      &fakeDocWriter{},
		Warehouse: &fakeInserter{err: errors.New("bq down")},
	}
	if _, err := p.Process(context.Background(), ingestMsg()); err == nil {
		t.Fatal("expected error when warehouse insert fails")
	}
}
