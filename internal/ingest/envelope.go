// Package ingest implements the spreadsheet ingest worker: it receives
// Pub/Sub push notifications, downloads the referenced spreadsheet from the
// object store, parses its rows, and fans them out to the document store and
// the analytics warehouse.
//
// The queue payload is a schema-validated JSON document (domain.IngestMessage)
// and is only ever treated as data. Malformed envelopes are rejected with a
// client error so the queue does not redeliver them; pipeline failures return
// a server error so it does.
package ingest

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/smartstore/go-store-backend/internal/domain"
)

// PushEnvelope mirrors the JSON body of a Pub/Sub push delivery.
type PushEnvelope struct {
	Message struct {
		Data      string `json:"data"`
		MessageID string `json:"messageId"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeEnvelope extracts and validates the IngestMessage carried by a push
// delivery body. Every failure here is a permanent, non-retryable rejection
// of the delivery.
func DecodeEnvelope(body []byte) (domain.IngestMessage, error) {
	var msg domain.IngestMessage

	var env PushEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return msg, fmt.Errorf("invalid push envelope: %w", err)
	}
	if env.Message.Data == "" {
		return msg, fmt.Errorf("push envelope has no message data")
	}

	raw, err := base64.StdEncoding.DecodeString(env.Message.Data)
	if err != nil {
		return msg, fmt.Errorf("message data is not base64: %w", err)
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		return msg, fmt.Errorf("message data is not a JSON ingest message: %w", err)
	}

	if !strings.HasPrefix(msg.GCSURI, "gs://") {
		return msg, fmt.Errorf("ingest message has invalid object URI %q", msg.GCSURI)
	}
	if strings.TrimSpace(msg.UserID) == "" {
		return msg, fmt.Errorf("ingest message has no user id")
	}
	if strings.TrimSpace(msg.Filename) == "" {
		return msg, fmt.Errorf("ingest message has no filename")
	}
	return msg, nil
}
