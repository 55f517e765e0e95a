// Package gcs wraps the object-store operations used by the upload endpoint
// and the ingest worker: write a buffered payload to a bucket, and read an
// object back by its gs:// URI.
package gcs

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
)

// Client is a thin adapter over one bucket of Cloud Storage.
type Client struct {
	storageClient *storage.Client
	bucketName    string
}

// NewClient creates a storage client bound to the given bucket using
// Application Default Credentials.
func NewClient(ctx context.Context, bucketName string) (*Client, error) {
	sc, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &Client{storageClient: sc, bucketName: bucketName}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error { return c.storageClient.Close() }

// Upload writes data to objectPath in the bucket and returns the object's
// gs:// URI. The payload is already fully buffered by the caller; the write
// is a single pass.
func (c *Client) Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	w := c.storageClient.Bucket(c.bucketName).Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		return "", fmt.Errorf("write object %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close writer for %s: %w", objectPath, err)
	}
	return fmt.Sprintf("gs://%s/%s", c.bucketName, objectPath), nil
}

// Download reads the full object named by a gs:// URI into memory. The URI
// may point at any bucket, not only the client's own; the worker receives
// URIs minted by the upload endpoint.
func (c *Client) Download(ctx context.Context, uri string) ([]byte, error) {
	bucket, object, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}
	r, err := c.storageClient.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open object %s: %w", uri, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", uri, err)
	}
	return data, nil
}

// ParseURI splits a gs://bucket/path/to/object URI into bucket and object.
func ParseURI(uri string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(uri, "gs://")
	if !ok {
		return "", "", fmt.Errorf("not a gs:// URI: %q", uri)
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("malformed object URI: %q", uri)
	}
	return bucket, object, nil
}
