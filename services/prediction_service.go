package services

import (
	"fmt"
	"log"

	"hotel-cancellation/ml"
	"hotel-cancellation/models"
)

// PredictionService runs build, align, scale and predict for one booking.
type PredictionService struct {
	artifacts *Artifacts
	loadErr   error
}

// NewPredictionService wraps the result of LoadArtifacts. When loadErr is set
// every call to Predict fails with it and nothing else runs.
func NewPredictionService(artifacts *Artifacts, loadErr error) *PredictionService {
	if loadErr == nil && artifacts == nil {
		loadErr = ErrArtifactsUnavailable
	}
	return &PredictionService{artifacts: artifacts, loadErr: loadErr}
}

// Ready reports why predictions cannot be served, or nil.
func (s *PredictionService) Ready() error {
	return s.loadErr
}

func (s *PredictionService) Schema() *models.FeatureSchema {
	if s.artifacts == nil {
		return nil
	}
	return s.artifacts.Schema
}

func (s *PredictionService) Predict(in models.BookingInput) (models.PredictionResult, error) {
	if s.loadErr != nil {
		return models.PredictionResult{}, s.loadErr
	}

	row, dropped := AlignFeatures(BuildFeatures(in), s.artifacts.Schema)
	for _, col := range dropped {
		log.Printf("warning: column %q is not in feature schema %s, treating it as 0", col, s.artifacts.Schema.Version())
	}

	return Predict(row, s.artifacts)
}

// Predict scales an aligned row and classifies it.
func Predict(row models.EncodedRow, a *Artifacts) (models.PredictionResult, error) {
	if err := checkAligned(row, a.Schema); err != nil {
		return models.PredictionResult{}, err
	}

	scaled, err := a.Scaler.Transform(row.Values)
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("scale row: %w", err)
	}
	label, err := a.Classifier.Predict(scaled)
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("predict: %w", err)
	}
	proba, err := a.Classifier.PredictProba(scaled)
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("predict probability: %w", err)
	}

	return models.PredictionResult{
		Label:                models.Label(label),
		ProbabilityOfStaying: proba[1],
	}, nil
}

func checkAligned(row models.EncodedRow, schema *models.FeatureSchema) error {
	if len(row.Columns) != schema.Len() || len(row.Values) != schema.Len() {
		return fmt.Errorf("row has %d columns, schema %s has %d: %w", len(row.Values), schema.Version(), schema.Len(), ml.ErrShapeMismatch)
	}
	for i, c := range row.Columns {
		if j, ok := schema.Index(c); !ok || j != i {
			return fmt.Errorf("row column %d is %q, not in schema order: %w", i, c, ml.ErrShapeMismatch)
		}
	}
	return nil
}
