package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const UnversionedSchema = "unversioned"

// FeatureSchema is the ordered column list produced at training time.
// It is immutable once constructed.
type FeatureSchema struct {
	version string
	columns []string
	index   map[string]int
}

func NewFeatureSchema(version string, columns []string) (*FeatureSchema, error) {
	if len(columns) == 0 {
		return nil, errors.New("feature schema has no columns")
	}
	if strings.TrimSpace(version) == "" {
		version = UnversionedSchema
	}

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if c == "" {
			return nil, fmt.Errorf("feature schema column %d is empty", i)
		}
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("feature schema column %q is duplicated", c)
		}
		index[c] = i
	}

	cols := make([]string, len(columns))
	copy(cols, columns)
	return &FeatureSchema{version: version, columns: cols, index: index}, nil
}

// DecodeFeatureSchema accepts {"version": ..., "columns": [...]} or a bare array.
func DecodeFeatureSchema(data []byte) (*FeatureSchema, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var cols []string
		if err := json.Unmarshal(data, &cols); err != nil {
			return nil, fmt.Errorf("decode feature schema: %w", err)
		}
		return NewFeatureSchema(UnversionedSchema, cols)
	}

	var f struct {
		Version string   `json:"version"`
		Columns []string `json:"columns"`
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode feature schema: %w", err)
	}
	return NewFeatureSchema(f.Version, f.Columns)
}

func (s *FeatureSchema) Version() string { return s.version }

func (s *FeatureSchema) Len() int { return len(s.columns) }

// Columns returns a copy of the column names in training order.
func (s *FeatureSchema) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

func (s *FeatureSchema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// RawFeature is a named value before encoding. Categorical features keep their label.
type RawFeature struct {
	Name        string
	Value       float64
	Category    string
	Categorical bool
}

type RawFeatures []RawFeature

// EncodedRow is a single row whose columns are exactly a FeatureSchema's.
type EncodedRow struct {
	Columns []string
	Values  []float64
}

func (r EncodedRow) Get(name string) (float64, bool) {
	for i, c := range r.Columns {
		if c == name {
			return r.Values[i], true
		}
	}
	return 0, false
}
