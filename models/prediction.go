package models

// Label is the classifier output. The numeric values are fixed by training:
// 0 is the "cancelled" class and 1 is "not cancelled".
type Label int

const (
	WillCancel Label = 0
	WillStay   Label = 1
)

func (l Label) String() string {
	if l == WillCancel {
		return "will_cancel"
	}
	return "will_stay"
}

func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

type PredictionResult struct {
	Label                Label   `json:"label"`
	ProbabilityOfStaying float64 `json:"probability_of_staying"`
}

func (r PredictionResult) ProbabilityOfCancelling() float64 {
	return 1 - r.ProbabilityOfStaying
}

// ResultView is what the result block shows.
type ResultView struct {
	Cancel         bool    `json:"-"`
	Status         string  `json:"status"`
	MetricLabel    string  `json:"metric_label"`
	Percent        string  `json:"percent"`
	Recommendation string  `json:"recommendation"`
	Progress       float64 `json:"progress"`
}
