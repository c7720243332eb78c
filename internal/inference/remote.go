package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// 원격 추론 서버 요청/응답 (KServe v1 / TF Serving REST)
type remotePredictRequest struct {
	Instances [][]float64 `json:"instances"`
}

type remotePredictResponse struct {
	Predictions []json.RawMessage `json:"predictions"`
}

// RemoteModel forwards feature rows to a model server speaking the
// KServe v1 protocol: POST /v1/models/{name}:predict.
type RemoteModel struct {
	name   string
	client *resty.Client
}

func NewRemoteModel(endpoint, name string, timeout time.Duration) *RemoteModel {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(endpoint, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &RemoteModel{name: name, client: client}
}

func (m *RemoteModel) Name() string { return "remote:" + m.name }

func (m *RemoteModel) Predict(ctx context.Context, rows [][]float64) ([]float64, error) {
	var result remotePredictResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(remotePredictRequest{Instances: rows}).
		SetResult(&result).
		Post(fmt.Sprintf("/v1/models/%s:predict", url.PathEscape(m.name)))
	if err != nil {
		return nil, fmt.Errorf("remote predict request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("remote predict failed with status: %s", resp.Status())
	}

	out := make([]float64, 0, len(result.Predictions))
	for i, raw := range result.Predictions {
		v, err := decodePrediction(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: prediction %d: %v", ErrInvalidPrediction, i, err)
		}
		out = append(out, v)
	}
	if len(out) != len(rows) {
		return nil, fmt.Errorf("%w: sent %d rows, got %d predictions", ErrInvalidPrediction, len(rows), len(out))
	}
	return out, nil
}

// a prediction is either a bare number or a single-element array
func decodePrediction(raw json.RawMessage) (float64, error) {
	if strings.TrimSpace(string(raw)) == "null" {
		return 0, fmt.Errorf("null prediction")
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err == nil {
		return v, nil
	}
	var arr []float64
	if err := json.Unmarshal(raw, &arr); err != nil {
		return 0, err
	}
	if len(arr) != 1 {
		return 0, fmt.Errorf("expected 1 output, got %d", len(arr))
	}
	return arr[0], nil
}
