// Package services – ChatService
//
// This file implements the chat relay engine. It assembles the full ordered
// conversation (caller-supplied history plus the new prompt as the final
// user turn), resolves the model identifier through the secret source, and
// opens a streaming call against the generative model, relaying each chunk
// downstream in the order received. The engine never buffers the whole
// response: at most one chunk is in flight between the model and the
// consumer.
//
// Failures before the stream opens are returned as ordinary errors so the
// transport can answer with a server-error status. Failures after the first
// chunk surface as the stream's single terminal error event (see internal/ai
// for the event contract).
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/smartstore/go-store-backend/internal/ai"
	"github.com/smartstore/go-store-backend/internal/domain"
	"github.com/smartstore/go-store-backend/internal/secrets"
)

// ChatService relays chat turns to the generative model endpoint.
type ChatService struct {
	// Generator opens streaming model calls.
	Generator ai.Generator
	// Models resolves the model identifier (secret-backed, process-cached).
	Models secrets.ModelSource
}

// NewChatService constructs a ChatService.
func NewChatService(gen ai.Generator, models secrets.ModelSource) *ChatService {
	return &ChatService{Generator: gen, Models: models}
}

// Relay streams the model's answer for (prompt, history, persona) to fn.
//
// The persona is applied once as the call's system instruction, never
// interleaved with turns. History order is preserved verbatim; the prompt
// becomes the final user turn. The sequence delivered to fn is finite and
// not restartable: a retry must re-issue the full call with full history.
func (s *ChatService) Relay(ctx context.Context, req domain.ChatRequest, persona string, fn ai.StreamFunc) error {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return ErrEmptyPrompt
	}

	model, err := s.Models.ModelID(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	turns := make([]domain.ChatTurn, 0, len(req.History)+1)
	turns = append(turns, req.History...)
	turns = append(turns, domain.ChatTurn{Role: domain.RoleUser, Text: prompt})

	return s.Generator.Stream(ctx, model, turns, persona, fn)
}
