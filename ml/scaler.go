package ml

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when a row does not have the width an artifact was fitted on.
var ErrShapeMismatch = errors.New("shape mismatch")

// StandardScaler reapplies a standardization fitted at training time.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

type scalerFile struct {
	Type  string    `json:"type"`
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// DecodeScaler parses the exported scaler JSON.
func DecodeScaler(data []byte) (*StandardScaler, error) {
	var f scalerFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode scaler: %w", err)
	}
	if f.Type != "" && f.Type != "standard" {
		return nil, fmt.Errorf("decode scaler: unsupported type %q", f.Type)
	}
	if len(f.Mean) != len(f.Scale) {
		return nil, fmt.Errorf("decode scaler: mean has %d values, scale has %d: %w", len(f.Mean), len(f.Scale), ErrShapeMismatch)
	}
	return &StandardScaler{Mean: f.Mean, Scale: f.Scale}, nil
}

// NumFeatures is the row width the scaler was fitted on.
func (s *StandardScaler) NumFeatures() int {
	return len(s.Mean)
}

// Transform returns (x - mean) / scale for every column. A zero scale counts as 1.
func (s *StandardScaler) Transform(row []float64) ([]float64, error) {
	if len(row) != len(s.Mean) {
		return nil, fmt.Errorf("scaler expects %d columns, got %d: %w", len(s.Mean), len(row), ErrShapeMismatch)
	}
	out := make([]float64, len(row))
	for i, v := range row {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out, nil
}
