package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteModelPredict(t *testing.T) {
	type captured struct {
		path string
		body remotePredictRequest
	}
	seen := make(chan captured, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var c captured
		c.path = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&c.body))
		seen <- c
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"predictions": [1234.6, [17.2]]}`))
	}))
	defer srv.Close()

	m := NewRemoteModel(srv.URL+"/", "konkur-rank", time.Second)
	got, err := m.Predict(context.Background(), [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1234.6, 17.2}, got)

	c := <-seen
	assert.Equal(t, "/v1/models/konkur-rank:predict", c.path)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, c.body.Instances)
}

func TestRemoteModelErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{"server error", http.StatusServiceUnavailable, `{"error": "not ready"}`, func(t *testing.T, err error) {
			assert.ErrorContains(t, err, "503")
		}},
		{"no predictions", http.StatusOK, `{"predictions": []}`, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrInvalidPrediction)
		}},
		{"multi output", http.StatusOK, `{"predictions": [[1, 2]]}`, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrInvalidPrediction)
		}},
		{"not a number", http.StatusOK, `{"predictions": ["high"]}`, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrInvalidPrediction)
		}},
		{"null", http.StatusOK, `{"predictions": [null]}`, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrInvalidPrediction)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewRemoteModel(srv.URL, "konkur-rank", time.Second).
				Predict(context.Background(), [][]float64{{1}})
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}
