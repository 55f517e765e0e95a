// Package domain defines the core data types exchanged between the HTTP
// layer, the services, and the managed-service adapters: verified caller
// identity, chat conversation turns, store products, and the queue message
// that links the upload endpoint to the ingest worker.
package domain

import "time"

// Roles is the closed set of role flags carried by a verified credential.
// It is deliberately a struct of booleans rather than an open map so that
// persona resolution is exhaustive and statically checkable.
type Roles struct {
	Admin    bool `json:"admin"`
	Merchant bool `json:"merchant"`
}

// Claims is the verified identity of a caller, produced once per request by
// the token verifier. Claims are never persisted; their lifetime is the
// request that carried the credential.
//
// Fields:
//   - Subject: stable user identifier issued by the identity provider.
//   - Roles: role flags derived from provider-issued custom attributes.
type Claims struct {
	Subject string `json:"uid"`
	Roles   Roles  `json:"roles"`
}

// Chat turn roles as expected by the generative model endpoint.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatTurn is a single utterance in a conversation. The ordered sequence of
// turns supplied by the caller forms the conversation history; order is
// chronological and immutable once received.
type ChatTurn struct {
	Role string `json:"role" binding:"required,oneof=user model" example:"user"`
	Text string `json:"text" binding:"required" example:"Do you ship to Berlin?"`
}

// ChatRequest is the payload of the chat endpoint: a new prompt plus the
// prior turns of the conversation. The relay appends the prompt as the final
// user turn before dispatching to the model.
type ChatRequest struct {
	Prompt  string     `json:"prompt" binding:"required" example:"What is the return policy?"`
	History []ChatTurn `json:"history" binding:"dive"`
}

// Product is a store product document. OwnerID is always set server-side
// from the verified caller; any client-supplied value is discarded.
type Product struct {
	ID          string    `json:"id" firestore:"-"`
	Name        string    `json:"name" firestore:"name" binding:"required" example:"Widget"`
	Description string    `json:"description" firestore:"description" binding:"required" example:"A fine widget"`
	Price       float64   `json:"price" firestore:"price" binding:"required,gt=0" example:"9.99"`
	OwnerID     string    `json:"owner_id" firestore:"owner_id"`
	CreatedAt   time.Time `json:"created_at" firestore:"created_at"`
}

// IngestMessage is the JSON document published to the ingest queue after a
// successful spreadsheet upload, and decoded by the worker. It is always
// serialized as JSON and validated field-by-field on receipt; the payload is
// data, never code.
type IngestMessage struct {
	GCSURI   string `json:"gcs_uri"`
	UserID   string `json:"user_id"`
	Filename string `json:"filename"`
}

// UploadReceipt is returned by the upload endpoint once the object is stored
// and the ingest message has been acknowledged by the queue.
type UploadReceipt struct {
	Message string `json:"message" example:"File uploaded and processing started."`
	GCSURI  string `json:"gcs_uri" example:"gs://smart-store-uploads/uploads/u1/4f…-data.xlsx"`
}
