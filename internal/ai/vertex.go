package ai

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/iterator"

	"github.com/smartstore/go-store-backend/internal/domain"
)

// VertexGenerator implements Generator against Vertex AI. One client is
// shared by all requests; per-call model handles are cheap.
type VertexGenerator struct {
	client *genai.Client
}

// NewVertexGenerator connects to Vertex AI in the given project and region
// using Application Default Credentials.
func NewVertexGenerator(ctx context.Context, projectID, region string) (*VertexGenerator, error) {
	client, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("create vertex client: %w", err)
	}
	return &VertexGenerator{client: client}, nil
}

// Close releases the underlying connection.
func (g *VertexGenerator) Close() error { return g.client.Close() }

// Stream opens a streaming generation call and relays chunks to fn in the
// order received, with no reordering or coalescing. The last turn must be
// the new user prompt; earlier turns become the chat history verbatim.
func (g *VertexGenerator) Stream(ctx context.Context, model string, turns []domain.ChatTurn, system string, fn StreamFunc) error {
	if len(turns) == 0 {
		return errors.New("empty conversation")
	}

	m := g.client.GenerativeModel(model)
	if system != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	cs := m.StartChat()
	cs.History = toContents(turns[:len(turns)-1])

	iter := cs.SendMessageStream(ctx, genai.Text(turns[len(turns)-1].Text))
	return relayChunks(ctx, iter.Next, fn)
}

// relayChunks drains a streaming call chunk by chunk. A failure before any
// text was emitted is returned as a plain error; after output has started it
// is additionally surfaced to fn as a single terminal EventError. If the
// context was canceled the call ends quietly with ctx.Err() and no terminal
// event, since the caller is gone.
func relayChunks(ctx context.Context, next func() (*genai.GenerateContentResponse, error), fn StreamFunc) error {
	emitted := false
	for {
		resp, err := next()
		if err == iterator.Done {
			return fn(Event{Type: EventDone})
		}
		if err != nil {
			if ctx.Err() != nil {
				// Caller disconnected; stop quietly and release the call.
				return ctx.Err()
			}
			if emitted {
				if cbErr := fn(Event{Type: EventError, Err: err}); cbErr != nil {
					return cbErr
				}
			}
			return fmt.Errorf("stream generate: %w", err)
		}

		text := chunkText(resp)
		if text == "" {
			continue
		}
		emitted = true
		if err := fn(Event{Type: EventToken, Text: text}); err != nil {
			return err
		}
	}
}

// toContents maps prior conversation turns to the wire shape, preserving
// order. Roles pass through unchanged: the API uses the same "user"/"model"
// pair the domain does.
func toContents(turns []domain.ChatTurn) []*genai.Content {
	out := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		out = append(out, &genai.Content{
			Role:  t.Role,
			Parts: []genai.Part{genai.Text(t.Text)},
		})
	}
	return out
}

// chunkText flattens the text parts of one streamed response chunk.
// Chunks without candidates (e.g. safety metadata) yield "".
func chunkText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var s string
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			s += string(t)
		}
	}
	return s
}
