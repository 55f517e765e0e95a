// Product catalog endpoints.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smartstore/go-store-backend/internal/domain"
	"github.com/smartstore/go-store-backend/internal/http/middleware"
	"github.com/smartstore/go-store-backend/internal/utils"
)

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 50
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// CreateProduct godoc
// @ID          createProduct
// @Summary     Create a product
// @Description Persists a new product document. The owner is always the verified caller;
// @Description any owner_id in the payload is ignored.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  domain.Product  true  "Product payload"
//
// @Success     201  {object}  domain.Product
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid or missing credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /products/ [post]
func (h *Handlers) CreateProduct(c *gin.Context) {
	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid product payload")
		return
	}
	if strings.TrimSpace(p.Name) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "product name required")
		return
	}

	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid or missing credentials")
		return
	}

	created, err := h.productSvc.Create(c.Request.Context(), claims.Subject, p)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "failed to create product")
		return
	}
	ok(c, http.StatusCreated, created)
}

// ListProducts godoc
// @ID          listProducts
// @Summary     List products (paginated)
// @Description Returns a page of products ordered by creation time, newest first.
// @Description No credential is required.
// @Tags        Products
// @Produce     json
//
// @Param       page       query  int  false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page"  minimum(1) maximum(100) default(50)
//
// @Success     200  {array}   domain.Product
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /products/ [get]
func (h *Handlers) ListProducts(c *gin.Context) {
	page, pageSize := clampPagination(c)

	items, err := h.productSvc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to list products")
		return
	}
	if items == nil {
		items = []domain.Product{}
	}
	ok(c, http.StatusOK, items)
}
