package ml

import "fmt"

// LogisticRegression is a binary linear classifier.
type LogisticRegression struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

func (l *LogisticRegression) NumFeatures() int {
	return len(l.Coef)
}

func (l *LogisticRegression) validate() error {
	if len(l.Coef) == 0 {
		return fmt.Errorf("logistic regression: coef is empty")
	}
	return nil
}

func (l *LogisticRegression) PredictProba(x []float64) ([2]float64, error) {
	if err := checkWidth(len(l.Coef), x); err != nil {
		return [2]float64{}, err
	}
	z := l.Intercept
	for i, w := range l.Coef {
		z += w * x[i]
	}
	return binaryProba(sigmoid(z)), nil
}

func (l *LogisticRegression) Predict(x []float64) (int, error) {
	p, err := l.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return labelFor(p[1]), nil
}
