// Spreadsheet upload endpoint.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartstore/go-store-backend/internal/http/middleware"
	"github.com/smartstore/go-store-backend/internal/services"
)

// UploadXLSX godoc
// @ID          uploadXLSX
// @Summary     Upload a product spreadsheet
// @Description Stores the uploaded .xlsx file in the object store and enqueues it for
// @Description asynchronous ingestion. The response is returned only after the queue has
// @Description acknowledged the message; row processing itself happens out of band.
// @Tags        Uploads
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
//
// @Param       file  formData  file  true  "Spreadsheet (.xlsx)"
//
// @Success     200  {object}  domain.UploadReceipt
// @Failure     400  {object}  handlers.ErrorResponse  "Missing file, wrong type, or empty file"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid or missing credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Storage or queue failure"
// @Router      /upload/upload-xlsx [post]
func (h *Handlers) UploadXLSX(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "multipart field 'file' required")
		return
	}

	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid or missing credentials")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unreadable upload")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unreadable upload")
		return
	}

	receipt, err := h.uploadSvc.UploadSpreadsheet(
		c.Request.Context(),
		claims.Subject,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFileType):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "file must be an .xlsx spreadsheet")
		case errors.Is(err, services.ErrEmptyFile):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "uploaded file is empty")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeUploadFailed, "failed to store upload")
		}
		return
	}
	ok(c, http.StatusOK, receipt)
}
