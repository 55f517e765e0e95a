// Handler wiring for the public API.
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. All business rules live in the
// services package; all identity resolution lives in auth middleware.
package handlers

import (
	"context"

	"github.com/smartstore/go-store-backend/internal/ai"
	"github.com/smartstore/go-store-backend/internal/domain"
)

//
// Service contracts (context-aware)
//

// ChatService relays a conversation to the generative model as a stream of
// typed events.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ChatService interface {
	// Relay streams the model response for req, steering the model with the
	// caller's persona as system instruction.
	Relay(ctx context.Context, req domain.ChatRequest, persona string, fn ai.StreamFunc) error
}

// ProductService defines product catalog operations consumed by HTTP handlers.
type ProductService interface {
	// Create persists a new product owned by ownerID and returns it with its
	// server-assigned ID and timestamp.
	Create(ctx context.Context, ownerID string, p domain.Product) (*domain.Product, error)
	// List returns a page of products, newest first.
	List(ctx context.Context, page, pageSize int) ([]domain.Product, error)
}

// UploadService stores a spreadsheet and enqueues it for ingestion.
type UploadService interface {
	// UploadSpreadsheet validates, stores, and enqueues one uploaded file.
	UploadSpreadsheet(ctx context.Context, ownerID, filename, contentType string, data []byte) (*domain.UploadReceipt, error)
}

// Handlers groups the HTTP endpoints for auth introspection, chat, products,
// and uploads. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	chatSvc    ChatService
	productSvc ProductService
	uploadSvc  UploadService
}

// New constructs a Handlers instance bound to the given services.
func New(chatSvc ChatService, productSvc ProductService, uploadSvc UploadService) *Handlers {
	return &Handlers{chatSvc: chatSvc, productSvc: productSvc, uploadSvc: uploadSvc}
}
