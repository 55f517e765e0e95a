// Package services – UploadService
//
// Spreadsheet upload: gate on the file extension, write the payload to the
// object store, then publish the ingest message. The extension check runs
// before any side effect, and the storage write strictly happens-before the
// queue publish — the published message carries the URI the write returned.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/smartstore/go-store-backend/internal/domain"
)

// xlsxContentType is used when the client did not label the part.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BlobStore writes a buffered payload to the object store and returns its
// location URI.
type BlobStore interface {
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error)
}

// QueuePublisher publishes a payload and waits for the broker's
// acknowledgment.
type QueuePublisher interface {
	Publish(ctx context.Context, payload []byte) (string, error)
}

// UploadService stores uploaded spreadsheets and enqueues their ingestion.
type UploadService struct {
	Blobs BlobStore
	Queue QueuePublisher

	// newObjectID generates the collision-avoidance prefix for object names.
	// Overridable in tests.
	newObjectID func() string
}

// NewUploadService constructs an UploadService.
func NewUploadService(blobs BlobStore, queue QueuePublisher) *UploadService {
	return &UploadService{Blobs: blobs, Queue: queue, newObjectID: uuid.NewString}
}

// UploadSpreadsheet validates, stores, and enqueues one uploaded file on
// behalf of ownerID, returning the receipt exposed to the caller.
func (s *UploadService) UploadSpreadsheet(ctx context.Context, ownerID, filename, contentType string, data []byte) (*domain.UploadReceipt, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return nil, ErrInvalidFileType
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if contentType == "" {
		contentType = xlsxContentType
	}

	objectPath := fmt.Sprintf("uploads/%s/%s-%s", ownerID, s.newObjectID(), filename)
	uri, err := s.Blobs.Upload(ctx, objectPath, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	payload, err := json.Marshal(domain.IngestMessage{
		GCSURI:   uri,
		UserID:   ownerID,
		Filename: filename,
	})
	if err != nil {
		return nil, fmt.Errorf("encode ingest message: %w", err)
	}
	if _, err := s.Queue.Publish(ctx, payload); err != nil {
		return nil, fmt.Errorf("enqueue ingest: %w", err)
	}

	return &domain.UploadReceipt{
		Message: "File uploaded and processing started.",
		GCSURI:  uri,
	}, nil
}
