package services

import (
	"fmt"

	"hotel-cancellation/models"
)

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// RenderResult turns a prediction into the text of the result block.
func RenderResult(r models.PredictionResult) models.ResultView {
	if r.Label == models.WillCancel {
		p := r.ProbabilityOfCancelling()
		return models.ResultView{
			Cancel:      true,
			Status:      "Likely to Cancel",
			MetricLabel: "Cancellation Probability",
			Percent:     formatPercent(p),
			Recommendation: fmt.Sprintf("This booking has a high risk (%s) of cancellation. "+
				"Consider sending a re-confirmation email or offering a small incentive to confirm the stay.", formatPercent(p)),
			Progress: p,
		}
	}

	p := r.ProbabilityOfStaying
	return models.ResultView{
		Status:         "Likely to Stay",
		MetricLabel:    "Stay Probability",
		Percent:        formatPercent(p),
		Recommendation: fmt.Sprintf("This booking is safe with a %s confidence level. No immediate action required.", formatPercent(p)),
		Progress:       p,
	}
}
