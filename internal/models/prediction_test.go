package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleBody = `{
	"Mathematics": 18.5, "English": 16.0,
	"Specialized1": 17.0, "Specialized2": 15.5, "Specialized3": 14.0, "Specialized4": 16.5,
	"Quota": 1, "EffectiveGPA": 17.8
}`

func TestFeaturesOrder(t *testing.T) {
	var req PredictionRequest
	require.NoError(t, json.Unmarshal([]byte(exampleBody), &req))

	assert.Equal(t, []float64{18.5, 16.0, 17.0, 15.5, 14.0, 16.5, 1, 17.8}, req.Features())
	assert.Len(t, FeatureNames, len(req.Features()))
}

func TestNumberCoercion(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: `12`, want: 12},
		{in: `12.25`, want: 12.25},
		{in: `-3.5`, want: -3.5},
		{in: `"19.75"`, want: 19.75},
		{in: `" 7 "`, want: 7},
		{in: `1e1`, want: 10},
		{in: `"abc"`, wantErr: true},
		{in: `true`, wantErr: true},
		{in: `[1]`, wantErr: true},
		{in: `{"v": 1}`, wantErr: true},
		{in: `"NaN"`, wantErr: true},
		{in: `"Inf"`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(tc.in), &n)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, float64(n))
		})
	}
}

func TestIntegerCoercion(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: `1`, want: 1},
		{in: `3.0`, want: 3},
		{in: `"2"`, want: 2},
		{in: `-4`, want: -4},
		{in: `1.5`, wantErr: true},
		{in: `"1.5"`, wantErr: true},
		{in: `"x"`, wantErr: true},
		{in: `false`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var i Integer
			err := json.Unmarshal([]byte(tc.in), &i)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, int64(i))
		})
	}
}

func TestMissingFieldStaysNil(t *testing.T) {
	var req PredictionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"Mathematics": 0, "Quota": null}`), &req))

	require.NotNil(t, req.Mathematics)
	assert.Equal(t, Number(0), *req.Mathematics)
	assert.Nil(t, req.Quota)
	assert.Nil(t, req.English)
}
