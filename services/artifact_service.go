package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"hotel-cancellation/ml"
	"hotel-cancellation/models"
)

// ErrArtifactsUnavailable means at least one exported artifact could not be found.
var ErrArtifactsUnavailable = errors.New("model artifacts unavailable")

// Artifacts is the immutable model context shared by every request.
type Artifacts struct {
	Schema     *models.FeatureSchema
	Scaler     *ml.StandardScaler
	Classifier ml.Classifier
}

// NewArtifacts checks that scaler and classifier were fitted on rows as wide as the schema.
func NewArtifacts(schema *models.FeatureSchema, scaler *ml.StandardScaler, clf ml.Classifier) (*Artifacts, error) {
	if scaler.NumFeatures() != schema.Len() {
		return nil, fmt.Errorf("scaler has %d features, schema %s has %d: %w",
			scaler.NumFeatures(), schema.Version(), schema.Len(), ml.ErrShapeMismatch)
	}
	if clf.NumFeatures() != schema.Len() {
		return nil, fmt.Errorf("classifier has %d features, schema %s has %d: %w",
			clf.NumFeatures(), schema.Version(), schema.Len(), ml.ErrShapeMismatch)
	}
	return &Artifacts{Schema: schema, Scaler: scaler, Classifier: clf}, nil
}

// ArtifactSource returns the raw bytes of one artifact kind.
// A missing artifact is reported with an error wrapping ErrArtifactsUnavailable.
type ArtifactSource interface {
	Fetch(ctx context.Context, kind string) ([]byte, error)
}

// FileSource reads artifacts exported as JSON files.
type FileSource struct {
	ClassifierPath string
	ScalerPath     string
	SchemaPath     string
}

func (s FileSource) Fetch(_ context.Context, kind string) ([]byte, error) {
	var path string
	switch kind {
	case models.ArtifactClassifier:
		path = s.ClassifierPath
	case models.ArtifactScaler:
		path = s.ScalerPath
	case models.ArtifactSchema:
		path = s.SchemaPath
	default:
		return nil, fmt.Errorf("unknown artifact kind %q", kind)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s file %s: %w", kind, path, ErrArtifactsUnavailable)
		}
		return nil, fmt.Errorf("read %s file %s: %w", kind, path, err)
	}
	return data, nil
}

// LoadArtifacts fetches and decodes the three artifacts from src.
func LoadArtifacts(ctx context.Context, src ArtifactSource) (*Artifacts, error) {
	kinds := []string{models.ArtifactClassifier, models.ArtifactScaler, models.ArtifactSchema}
	payloads := make(map[string][]byte, len(kinds))
	var missing []string

	for _, kind := range kinds {
		data, err := src.Fetch(ctx, kind)
		if err != nil {
			if errors.Is(err, ErrArtifactsUnavailable) {
				log.Printf("warning: %v", err)
				missing = append(missing, kind)
				continue
			}
			return nil, err
		}
		payloads[kind] = data
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrArtifactsUnavailable, strings.Join(missing, ", "))
	}

	return DecodeArtifacts(payloads[models.ArtifactClassifier], payloads[models.ArtifactScaler], payloads[models.ArtifactSchema])
}

// DecodeArtifacts parses the three payloads and validates them against each other.
func DecodeArtifacts(classifier, scaler, schema []byte) (*Artifacts, error) {
	featureSchema, err := models.DecodeFeatureSchema(schema)
	if err != nil {
		return nil, err
	}
	sc, err := ml.DecodeScaler(scaler)
	if err != nil {
		return nil, err
	}
	clf, err := ml.DecodeClassifier(classifier)
	if err != nil {
		return nil, err
	}
	return NewArtifacts(featureSchema, sc, clf)
}
