package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// 예측 요청 바디, 8개 필드 모두 필수
// 포인터 필드: 0점도 유효한 점수이므로 누락(nil)과 0을 구분해야 함
type PredictionRequest struct {
	Mathematics  *Number  `json:"Mathematics" binding:"required" example:"18.5"`
	English      *Number  `json:"English" binding:"required" example:"16.0"`
	Specialized1 *Number  `json:"Specialized1" binding:"required" example:"17.0"`
	Specialized2 *Number  `json:"Specialized2" binding:"required" example:"15.5"`
	Specialized3 *Number  `json:"Specialized3" binding:"required" example:"14.0"`
	Specialized4 *Number  `json:"Specialized4" binding:"required" example:"16.5"`
	Quota        *Integer `json:"Quota" binding:"required" example:"1"`
	EffectiveGPA *Number  `json:"EffectiveGPA" binding:"required" example:"17.8"`
}

// 예측 응답
type PredictionResponse struct {
	Rank int `json:"rank" example:"1250"`
}

// FeatureNames is the column order the model was trained with.
var FeatureNames = []string{
	"Mathematics",
	"English",
	"Specialized1",
	"Specialized2",
	"Specialized3",
	"Specialized4",
	"Quota",
	"EffectiveGPA",
}

// Features builds the model input in FeatureNames order.
// The request must have passed binding validation first.
func (r PredictionRequest) Features() []float64 {
	return []float64{
		float64(*r.Mathematics),
		float64(*r.English),
		float64(*r.Specialized1),
		float64(*r.Specialized2),
		float64(*r.Specialized3),
		float64(*r.Specialized4),
		float64(*r.Quota),
		float64(*r.EffectiveGPA),
	}
}

// Number is a decimal field. It accepts a JSON number or a numeric string.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	raw, err := numericText(data)
	if err != nil {
		return err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("value %s is not a valid decimal", data)
	}
	*n = Number(f)
	return nil
}

// Integer is an integer field. Integral decimals such as 1.0 are accepted, 1.5 is not.
type Integer int64

func (i *Integer) UnmarshalJSON(data []byte) error {
	raw, err := numericText(data)
	if err != nil {
		return err
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*i = Integer(v)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return fmt.Errorf("value %s is not a valid integer", data)
	}
	*i = Integer(f)
	return nil
}

// 숫자 또는 숫자 문자열만 허용
func numericText(data []byte) (string, error) {
	raw := strings.TrimSpace(string(data))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	if raw == "" || raw == "true" || raw == "false" || strings.ContainsAny(raw[:1], "[{") {
		return "", fmt.Errorf("value %s is not a number", data)
	}
	return raw, nil
}
