package config

import (
	"strings"
	"testing"
	"time"
)

// setRequired sets the four env vars without which Load must fail.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("GCP_PROJECT_ID", "proj-1")
	t.Setenv("GCS_BUCKET_NAME", "bucket-1")
	t.Setenv("PUBSUB_TOPIC_ID", "topic-1")
	t.Setenv("MODEL_SECRET_NAME", "model-id")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want release", cfg.GinMode)
	}
	if cfg.APIBasePath != "/api" {
		t.Errorf("APIBasePath = %q, want /api", cfg.APIBasePath)
	}
	if cfg.GCP.Region != "europe-west3" {
		t.Errorf("Region = %q, want europe-west3", cfg.GCP.Region)
	}
	if cfg.GCP.SecretVersion != "latest" {
		t.Errorf("SecretVersion = %q, want latest", cfg.GCP.SecretVersion)
	}
	if cfg.GCP.ModelIDFallback != "" {
		t.Errorf("ModelIDFallback = %q, want empty (fallback disabled)", cfg.GCP.ModelIDFallback)
	}
	if cfg.GCP.BQDataset != "shipments_analytics" || cfg.GCP.BQTable != "shipments" {
		t.Errorf("warehouse = %q.%q, want shipments_analytics.shipments", cfg.GCP.BQDataset, cfg.GCP.BQTable)
	}
	if cfg.WriteTimeout != 120*time.Second {
		t.Errorf("WriteTimeout = %v, want 120s", cfg.WriteTimeout)
	}
	if cfg.MaxUploadBytes != 20<<20 {
		t.Errorf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, 20<<20)
	}
}

func TestLoad_RequiredGCPValues(t *testing.T) {
	cases := []struct {
		missing string
		wantErr string
	}{
		{"GCP_PROJECT_ID", "GCP_PROJECT_ID"},
		{"GCS_BUCKET_NAME", "GCS_BUCKET_NAME"},
		{"PUBSUB_TOPIC_ID", "PUBSUB_TOPIC_ID"},
		{"MODEL_SECRET_NAME", "MODEL_SECRET_NAME"},
	}
	for _, tc := range cases {
		t.Run(tc.missing, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.missing, "")

			_, err := Load()
			if err == nil {
				t.Fatalf("Load succeeded with %s unset", tc.missing)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %s", err, tc.wantErr)
			}
		})
	}
}

func TestLoad_NormalizesLogLevelAndMode(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("GIN_MODE", "bogus")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want release", cfg.GinMode)
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "shout")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid LOG_LEVEL")
	}
}

func TestLoad_BasePathNormalization(t *testing.T) {
	setRequired(t)
	t.Setenv("API_BASE_PATH", "api/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBasePath != "/api" {
		t.Errorf("APIBasePath = %q, want /api", cfg.APIBasePath)
	}
}

func TestLoad_FallbackConfigurable(t *testing.T) {
	setRequired(t)
	t.Setenv("MODEL_ID_FALLBACK", "gemini-1.5-flash-001")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GCP.ModelIDFallback != "gemini-1.5-flash-001" {
		t.Errorf("ModelIDFallback = %q", cfg.GCP.ModelIDFallback)
	}
}

func TestMustLoad_PanicsOnInvalid(t *testing.T) {
	setRequired(t)
	t.Setenv("GCP_PROJECT_ID", "")

	defer func() {
		if recover() == nil {
			t.Fatal("MustLoad did not panic")
		}
	}()
	MustLoad()
}
