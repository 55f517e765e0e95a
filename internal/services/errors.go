// Package services implements the business logic for authentication-aware
// chat relaying, product management, and spreadsheet uploads. This file
// centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages and HTTP status codes is performed at the
// handler layer.
package services

import "errors"

var (
	// ErrUnauthenticated indicates an absent, malformed, expired, or otherwise
	// unverifiable bearer credential. Handlers map it to 401 with a
	// WWW-Authenticate challenge.
	ErrUnauthenticated = errors.New("invalid authentication credentials")

	// ErrEmptyPrompt is returned when a chat request carries an empty prompt.
	ErrEmptyPrompt = errors.New("prompt is empty")

	// ErrInvalidFileType is returned when an uploaded file does not carry the
	// .xlsx extension. The check runs before any storage or queue side effect.
	ErrInvalidFileType = errors.New("invalid file type: only .xlsx files are accepted")

	// ErrEmptyFile is returned when the uploaded spreadsheet has no content.
	ErrEmptyFile = errors.New("uploaded file is empty")

	// ErrModelUnavailable is returned when the model identifier cannot be
	// resolved and no fallback is configured, or the streaming call cannot be
	// opened. Failures after streaming has started are reported through the
	// stream's terminal event instead.
	ErrModelUnavailable = errors.New("generative model unavailable")
)
