package model

import "math"

// Predict applies the logistic regression to a vectorized input and returns
// the positive-class probability.
func (a *Artifact) Predict(vec map[int]float64) float64 {
	z := a.Intercept
	for idx, val := range vec {
		z += a.Coef[idx] * val
	}
	return 1.0 / (1.0 + math.Exp(-z))
}

// Score vectorizes raw text and returns its positive-class probability.
func (a *Artifact) Score(text string) float64 {
	return a.Predict(a.Vectorize(text))
}
