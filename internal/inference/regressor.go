package inference

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("konkur-rank/internal/inference")

var (
	ErrFeatureCount      = errors.New("feature count does not match model")
	ErrUnknownModelType  = errors.New("unknown model type")
	ErrMalformedModel    = errors.New("malformed model artifact")
	ErrInvalidPrediction = errors.New("model returned an invalid prediction")
)

// Regressor is a loaded, read-only regression model.
// Implementations must be safe for concurrent Predict calls.
type Regressor interface {
	Name() string
	// Predict returns one value per input row.
	Predict(ctx context.Context, rows [][]float64) ([]float64, error)
}

// 모델 로드 옵션, Endpoint가 있으면 원격 추론 서버 사용
type Options struct {
	Path     string
	Endpoint string
	Name     string
	Timeout  time.Duration
}

// Load builds the process-wide model once at startup.
func Load(opts Options) (Regressor, error) {
	if opts.Endpoint != "" {
		return NewRemoteModel(opts.Endpoint, opts.Name, opts.Timeout), nil
	}
	return LoadFile(opts.Path)
}

// PredictOne runs a single feature vector through the model and returns the first value.
func PredictOne(ctx context.Context, model Regressor, features []float64) (float64, error) {
	ctx, span := tracer.Start(ctx, "PredictOne")
	defer span.End()
	span.SetAttributes(
		attribute.String("model", model.Name()),
		attribute.Int("features", len(features)),
	)

	predictions, err := model.Predict(ctx, [][]float64{features})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "prediction failed")
		return 0, err
	}
	if len(predictions) == 0 {
		span.SetStatus(codes.Error, "empty prediction")
		return 0, fmt.Errorf("%w: no value returned", ErrInvalidPrediction)
	}
	value := predictions[0]
	if math.IsNaN(value) || math.IsInf(value, 0) {
		span.SetStatus(codes.Error, "non-finite prediction")
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrediction, value)
	}
	return value, nil
}

// ToRank truncates a prediction toward zero.
func ToRank(value float64) (int, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || math.Abs(value) >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrediction, value)
	}
	return int(value), nil
}
