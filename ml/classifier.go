package ml

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Classifier artifact encodings.
const (
	FormatJSON          = "json"
	FormatSKLearnPickle = "sklearn_pickle"
)

// Classifier is a binary classifier over scaled rows.
// Class 0 and class 1 keep the meaning they had at training time.
type Classifier interface {
	NumFeatures() int
	Predict(x []float64) (int, error)
	PredictProba(x []float64) ([2]float64, error)
}

// ClassifierFormat tells a JSON export apart from a pickled scikit-learn model.
func ClassifierFormat(data []byte) string {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatSKLearnPickle
}

// DecodeClassifier parses an exported classifier. Pickles are gradient-boosted
// ensembles; JSON exports dispatch on their "type" field.
func DecodeClassifier(data []byte) (Classifier, error) {
	if ClassifierFormat(data) == FormatSKLearnPickle {
		return DecodeSKLearnEnsemble(data)
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode classifier: %w", err)
	}

	switch head.Type {
	case "logistic_regression":
		var lr LogisticRegression
		if err := json.Unmarshal(data, &lr); err != nil {
			return nil, fmt.Errorf("decode logistic regression: %w", err)
		}
		if err := lr.validate(); err != nil {
			return nil, err
		}
		return &lr, nil
	case "gradient_boosting":
		return nil, fmt.Errorf("decode classifier: gradient boosting models are loaded from their sklearn pickle, not JSON")
	default:
		return nil, fmt.Errorf("decode classifier: unsupported type %q", head.Type)
	}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func binaryProba(p1 float64) [2]float64 {
	return [2]float64{1 - p1, p1}
}

// class 1 wins only on a strict majority, ties go to class 0
func labelFor(p1 float64) int {
	if p1 > 0.5 {
		return 1
	}
	return 0
}

func checkWidth(want int, x []float64) error {
	if len(x) != want {
		return fmt.Errorf("classifier expects %d columns, got %d: %w", want, len(x), ErrShapeMismatch)
	}
	return nil
}
