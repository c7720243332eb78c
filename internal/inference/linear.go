package inference

import (
	"context"
	"fmt"
)

// LinearModel is an ordinary least squares regressor exported from training:
// y = Intercept + sum(Coefficients[i] * x[i]).
type LinearModel struct {
	FeatureNames []string
	Coefficients []float64
	Intercept    float64
}

func newLinearModel(a artifact) (*LinearModel, error) {
	if len(a.Coefficients) == 0 {
		return nil, fmt.Errorf("%w: linear model has no coefficients", ErrMalformedModel)
	}
	if len(a.FeatureNames) > 0 && len(a.FeatureNames) != len(a.Coefficients) {
		return nil, fmt.Errorf("%w: %d feature names for %d coefficients",
			ErrMalformedModel, len(a.FeatureNames), len(a.Coefficients))
	}
	if a.NFeatures > 0 && a.NFeatures != len(a.Coefficients) {
		return nil, fmt.Errorf("%w: n_features is %d but there are %d coefficients",
			ErrMalformedModel, a.NFeatures, len(a.Coefficients))
	}
	return &LinearModel{
		FeatureNames: a.FeatureNames,
		Coefficients: a.Coefficients,
		Intercept:    a.Intercept,
	}, nil
}

func (m *LinearModel) Name() string { return "linear" }

func (m *LinearModel) Predict(ctx context.Context, rows [][]float64) ([]float64, error) {
	out := make([]float64, 0, len(rows))
	for _, row := range rows {
		if len(row) != len(m.Coefficients) {
			return nil, fmt.Errorf("%w: expected %d, got %d", ErrFeatureCount, len(m.Coefficients), len(row))
		}
		y := m.Intercept
		for i, x := range row {
			y += m.Coefficients[i] * x
		}
		out = append(out, y)
	}
	return out, nil
}
