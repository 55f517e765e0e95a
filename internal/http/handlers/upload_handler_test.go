package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/smartstore/go-store-backend/internal/domain"
	"github.com/smartstore/go-store-backend/internal/services"
)

type fakeUploadSvc struct {
	err      error
	gotOwner string
	gotName  string
	gotData  []byte
}

func (f *fakeUploadSvc) UploadSpreadsheet(ctx context.Context, ownerID, filename, contentType string, data []byte) (*domain.UploadReceipt, error) {
	f.gotOwner, f.gotName, f.gotData = ownerID, filename, data
	if f.err != nil {
		return nil, f.err
	}
	return &domain.UploadReceipt{
		Message: "File uploaded and processing started.",
		GCSURI:  "gs://bucket/uploads/" + ownerID + "/" + filename,
	}, nil
}

func uploadRouter(svc UploadService, claims *domain.Claims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(nil, nil, svc)
	r := gin.New()
	r.POST("/upload/upload-xlsx", func(c *gin.Context) {
		if claims != nil {
			c.Set("claims", claims)
		}
		h.UploadXLSX(c)
	})
	return r
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUploadXLSX_Success(t *testing.T) {
	svc := &fakeUploadSvc{}
	r := uploadRouter(svc, &domain.Claims{Subject: "u9"})

	body, ctype := multipartBody(t, "file", "catalog.xlsx", []byte("rows"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload/upload-xlsx", body)
	req.Header.Set("Content-Type", ctype)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if svc.gotOwner != "u9" || svc.gotName != "catalog.xlsx" || string(svc.gotData) != "rows" {
		t.Fatalf("service saw owner=%q name=%q data=%q", svc.gotOwner, svc.gotName, svc.gotData)
	}
	var receipt domain.UploadReceipt
	if err := json.Unmarshal(w.Body.Bytes(), &receipt); err != nil {
		t.Fatalf("json: %v", err)
	}
	if receipt.GCSURI == "" || receipt.Message == "" {
		t.Fatalf("incomplete receipt: %+v", receipt)
	}
}

func TestUploadXLSX_MissingFileField(t *testing.T) {
	svc := &fakeUploadSvc{}
	r := uploadRouter(svc, &domain.Claims{Subject: "u9"})

	body, ctype := multipartBody(t, "document", "catalog.xlsx", []byte("rows"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload/upload-xlsx", body)
	req.Header.Set("Content-Type", ctype)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	if svc.gotName != "" {
		t.Fatalf("service should not be called")
	}
}

func TestUploadXLSX_ServiceErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"wrong type", services.ErrInvalidFileType, http.StatusBadRequest, ErrCodeBadRequest},
		{"empty file", services.ErrEmptyFile, http.StatusBadRequest, ErrCodeBadRequest},
		{"storage down", errors.New("gcs: unavailable"), http.StatusInternalServerError, ErrCodeUploadFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := uploadRouter(&fakeUploadSvc{err: tc.err}, &domain.Claims{Subject: "u9"})
			body, ctype := multipartBody(t, "file", "catalog.xlsx", []byte("rows"))
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/upload/upload-xlsx", body)
			req.Header.Set("Content-Type", ctype)
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("status=%d want %d", w.Code, tc.wantStatus)
			}
			var er ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
				t.Fatalf("json: %v", err)
			}
			if er.Code != tc.wantCode {
				t.Fatalf("code=%q want %q", er.Code, tc.wantCode)
			}
		})
	}
}
