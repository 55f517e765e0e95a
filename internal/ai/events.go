// Package ai wraps the hosted generative-model endpoint behind a small
// streaming interface. Consumers receive an ordered, finite sequence of typed
// events; errors are signaled by a distinguishable terminal event, never by a
// text convention inside the payload.
package ai

import (
	"context"

	"github.com/smartstore/go-store-backend/internal/domain"
)

// EventType discriminates stream events.
type EventType int

const (
	// EventToken carries one text fragment of the model response.
	EventToken EventType = iota
	// EventDone marks normal end of stream; Text and Err are unset.
	EventDone
	// EventError marks abnormal end of stream after tokens were already
	// emitted. It is always the last event, and there is exactly one.
	EventError
)

// Event is one element of a model response stream. The concatenation of all
// EventToken texts, in emission order, equals the full model response when
// the stream ends with EventDone.
type Event struct {
	Type EventType
	Text string
	Err  error
}

// StreamFunc consumes stream events. It is invoked sequentially, with at
// most one event in flight; returning an error aborts the stream.
type StreamFunc func(Event) error

// Generator opens streaming calls against a generative model. The turns
// sequence is the full ordered conversation, ending with the new user
// prompt; system is applied once for the whole call, not interleaved.
//
// Event contract:
//   - success: zero or more EventToken, then exactly one EventDone; returns nil.
//   - upstream failure after the first token: exactly one EventError, then the
//     stream ends and the upstream error is returned.
//   - failure before the first token: no events, the error is returned
//     (callers surface it as a regular server error).
//   - context cancellation: emission stops without a terminal event and
//     ctx.Err() is returned; the caller went away, this is not a failure.
type Generator interface {
	Stream(ctx context.Context, model string, turns []domain.ChatTurn, system string, fn StreamFunc) error
}
