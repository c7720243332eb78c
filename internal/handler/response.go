package handler

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Error  string        `json:"error" example:"Invalid request"`
	Detail []FieldDetail `json:"detail,omitempty"`
}

type FieldDetail struct {
	Field  string `json:"field" example:"Mathematics"`
	Reason string `json:"reason" example:"required"`
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Model    string `json:"model" example:"linear"`
	Features int    `json:"features" example:"8"`
}

// 바인딩 실패를 클라이언트 입력 오류 응답으로 변환
func bindingError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		resp := ErrorResponse{Error: "Invalid request"}
		for _, fe := range verrs {
			resp.Detail = append(resp.Detail, FieldDetail{Field: fe.Field(), Reason: fe.Tag()})
		}
		return resp
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return ErrorResponse{
			Error:  "Invalid request",
			Detail: []FieldDetail{{Field: typeErr.Field, Reason: "expected " + typeErr.Type.String()}},
		}
	}
	return ErrorResponse{Error: "Invalid request: " + err.Error()}
}
