package inference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearModelPredict(t *testing.T) {
	m, err := newLinearModel(artifact{
		ModelType:    ModelTypeLinear,
		Coefficients: []float64{2, -1, 0.5},
		Intercept:    10,
	})
	require.NoError(t, err)

	got, err := m.Predict(context.Background(), [][]float64{{1, 2, 4}, {0, 0, 0}})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{12, 10}, got, 1e-9)
}

func TestLinearModelFeatureCount(t *testing.T) {
	m, err := newLinearModel(artifact{Coefficients: []float64{1, 2}})
	require.NoError(t, err)

	_, err = m.Predict(context.Background(), [][]float64{{1, 2, 3}})
	assert.ErrorIs(t, err, ErrFeatureCount)
}

func TestLinearModelMalformed(t *testing.T) {
	_, err := newLinearModel(artifact{})
	assert.ErrorIs(t, err, ErrMalformedModel)

	_, err = newLinearModel(artifact{FeatureNames: []string{"a"}, Coefficients: []float64{1, 2}})
	assert.ErrorIs(t, err, ErrMalformedModel)

	_, err = newLinearModel(artifact{NFeatures: 3, Coefficients: []float64{1, 2}})
	assert.ErrorIs(t, err, ErrMalformedModel)
}
