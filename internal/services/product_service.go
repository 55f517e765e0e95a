// Package services – ProductService
//
// Product creation and listing against the managed document store. The
// service owns one rule the store cannot enforce: owner_id always comes from
// the verified caller, never from the request body.
package services

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/smartstore/go-store-backend/internal/domain"
)

// ProductRepo defines the repository contract required by ProductService.
type ProductRepo interface {
	// CreateProduct persists a new product document.
	CreateProduct(ctx context.Context, fs *firestore.Client, p *domain.Product) (*domain.Product, error)

	// ListProducts returns a page of products, newest first.
	ListProducts(ctx context.Context, fs *firestore.Client, offset, limit int) ([]domain.Product, error)
}

// ProductService provides create and list operations on store products.
type ProductService struct {
	// FS is the Firestore handle used for persistence.
	FS *firestore.Client
	// Repo is the product repository used by this service.
	Repo ProductRepo
}

// NewProductService constructs a ProductService.
func NewProductService(fs *firestore.Client, r ProductRepo) *ProductService {
	return &ProductService{FS: fs, Repo: r}
}

// Create persists a product owned by ownerID. Any client-supplied owner or
// id is discarded before the write.
func (s *ProductService) Create(ctx context.Context, ownerID string, p domain.Product) (*domain.Product, error) {
	p.ID = ""
	p.OwnerID = ownerID
	return s.Repo.CreateProduct(ctx, s.FS, &p)
}

// List returns a page of products. page < 1 and pageSize <= 0 fall back to
// defaults; listing requires no authentication.
func (s *ProductService) List(ctx context.Context, page, pageSize int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize
	return s.Repo.ListProducts(ctx, s.FS, offset, pageSize)
}
