// Package secrets resolves the generative-model identifier from Google
// Secret Manager. The value is fetched once per process and cached on
// success; an explicitly configured fallback keeps local development
// unblocked without silently masking production misconfiguration.
package secrets

import (
	"context"
	"fmt"
	"sync"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/rs/zerolog/log"
)

// versionAccessor is the slice of the Secret Manager client the source
// needs. *secretmanager.Client satisfies it; tests substitute fakes.
type versionAccessor interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
}

// ModelSource yields the model identifier for the chat relay.
type ModelSource interface {
	ModelID(ctx context.Context) (string, error)
}

// Source fetches a secret version and memoizes the first successful value
// for the process lifetime. The fallback, when non-empty, is returned on
// fetch failure but never cached, so a recovered Secret Manager is picked up
// on a later request.
type Source struct {
	client    versionAccessor
	projectID string
	name      string
	version   string
	fallback  string

	mu     sync.Mutex
	cached string
}

// NewClient dials the Secret Manager API with Application Default
// Credentials.
func NewClient(ctx context.Context) (*secretmanager.Client, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create secret manager client: %w", err)
	}
	return client, nil
}

// NewSource constructs a Source for one secret version. An empty fallback
// disables degrade-on-failure.
func NewSource(client versionAccessor, projectID, name, version, fallback string) *Source {
	if version == "" {
		version = "latest"
	}
	return &Source{
		client:    client,
		projectID: projectID,
		name:      name,
		version:   version,
		fallback:  fallback,
	}
}

// ModelID returns the model identifier, fetching it from Secret Manager on
// first use. When the fetch fails and a fallback is configured, the fallback
// is returned with a warning log; without a fallback the error propagates
// and the request fails.
func (s *Source) ModelID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != "" {
		return s.cached, nil
	}

	name := fmt.Sprintf("projects/%s/secrets/%s/versions/%s", s.projectID, s.name, s.version)
	resp, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		if s.fallback != "" {
			log.Warn().Err(err).
				Str("secret", s.name).
				Str("fallback_model", s.fallback).
				Msg("secret fetch failed, using configured fallback model")
			return s.fallback, nil
		}
		return "", fmt.Errorf("access secret %s: %w", s.name, err)
	}

	s.cached = string(resp.GetPayload().GetData())
	return s.cached, nil
}
