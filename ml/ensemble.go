package ml

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/dmitryikh/leaves"
)

// ensemble is the part of *leaves.Ensemble the classifier uses.
type ensemble interface {
	NFeatures() int
	NRawOutputGroups() int
	PredictSingle(fvals []float64, nEstimators int) float64
}

// GradientBoosting is a binary scikit-learn GradientBoostingClassifier evaluated by leaves.
type GradientBoosting struct {
	model ensemble
}

// DecodeSKLearnEnsemble loads a GradientBoostingClassifier written with pickle.dump.
// leaves keeps sklearn ensembles untransformed, so PredictSingle yields the raw log-odds.
func DecodeSKLearnEnsemble(data []byte) (*GradientBoosting, error) {
	model, err := leaves.SKEnsembleFromReader(bufio.NewReader(bytes.NewReader(data)), false)
	if err != nil {
		return nil, fmt.Errorf("decode sklearn ensemble: %w", err)
	}
	return newGradientBoosting(model)
}

func newGradientBoosting(model ensemble) (*GradientBoosting, error) {
	if model.NRawOutputGroups() != 1 {
		return nil, fmt.Errorf("sklearn ensemble has %d output groups, want a binary classifier", model.NRawOutputGroups())
	}
	if model.NFeatures() <= 0 {
		return nil, fmt.Errorf("sklearn ensemble reports %d features", model.NFeatures())
	}
	return &GradientBoosting{model: model}, nil
}

func (g *GradientBoosting) NumFeatures() int {
	return g.model.NFeatures()
}

func (g *GradientBoosting) PredictProba(x []float64) ([2]float64, error) {
	if err := checkWidth(g.model.NFeatures(), x); err != nil {
		return [2]float64{}, err
	}
	// 0 estimators means all of them
	return binaryProba(sigmoid(g.model.PredictSingle(x, 0))), nil
}

func (g *GradientBoosting) Predict(x []float64) (int, error) {
	p, err := g.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return labelFor(p[1]), nil
}
