package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	SourceFile  = "file"
	SourceMySQL = "mysql"
)

type Config struct {
	Port string

	// ArtifactSource is "file" or "mysql".
	ArtifactSource  string
	ClassifierPath  string
	ScalerPath      string
	SchemaPath      string
	ArtifactVersion string
	LoadTimeout     time.Duration

	CorsOrigins string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            envOrDefault("PORT", "8080"),
		ArtifactSource:  strings.ToLower(envOrDefault("ARTIFACT_SOURCE", SourceFile)),
		ClassifierPath:  envOrDefault("MODEL_PATH", "artifacts/classifier.json"),
		ScalerPath:      envOrDefault("SCALER_PATH", "artifacts/scaler.json"),
		SchemaPath:      envOrDefault("SCHEMA_PATH", "artifacts/model_columns.json"),
		ArtifactVersion: envOrDefault("ARTIFACT_VERSION", ""),
		LoadTimeout:     10 * time.Second,
		CorsOrigins:     envOrDefault("CORS_ORIGINS", ""),
	}

	if raw := envOrDefault("ARTIFACT_LOAD_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("ARTIFACT_LOAD_TIMEOUT: %w", err)
		}
		cfg.LoadTimeout = d
	}

	switch cfg.ArtifactSource {
	case SourceFile, SourceMySQL:
	default:
		return nil, fmt.Errorf("ARTIFACT_SOURCE must be %q or %q, got %q", SourceFile, SourceMySQL, cfg.ArtifactSource)
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		if def != "" {
			log.Printf("info: %s is not set, using %q", key, def)
		}
		return def
	}
	return value
}
