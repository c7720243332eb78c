package inference

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct {
	out []float64
	err error
}

func (s stubModel) Name() string { return "stub" }

func (s stubModel) Predict(ctx context.Context, rows [][]float64) ([]float64, error) {
	return s.out, s.err
}

func TestPredictOneTakesFirstValue(t *testing.T) {
	got, err := PredictOne(context.Background(), stubModel{out: []float64{42.9, 7}}, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, 42.9, got)
}

func TestPredictOneErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := PredictOne(context.Background(), stubModel{err: boom}, nil)
	assert.ErrorIs(t, err, boom)

	_, err = PredictOne(context.Background(), stubModel{}, nil)
	assert.ErrorIs(t, err, ErrInvalidPrediction)

	_, err = PredictOne(context.Background(), stubModel{out: []float64{math.NaN()}}, nil)
	assert.ErrorIs(t, err, ErrInvalidPrediction)

	_, err = PredictOne(context.Background(), stubModel{out: []float64{math.Inf(1)}}, nil)
	assert.ErrorIs(t, err, ErrInvalidPrediction)
}

func TestToRankTruncates(t *testing.T) {
	cases := map[float64]int{
		1250.99: 1250,
		0.4:     0,
		-2.7:    -2,
		3:       3,
	}
	for in, want := range cases {
		got, err := ToRank(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "ToRank(%v)", in)
	}

	_, err := ToRank(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidPrediction)
	_, err = ToRank(1e300)
	assert.ErrorIs(t, err, ErrInvalidPrediction)
}
