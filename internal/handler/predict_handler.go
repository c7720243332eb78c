/**
* Name: 			predict_handler.go
* Description: 		순위 예측 HTTP 핸들러
* Workflow: 		요청 바인딩/검증 -> 특성 벡터 생성 -> 모델 추론 -> 정수 순위 반환
 */
package handler

import (
	"context"
	"log"
	"net/http"

	"KonkurRankPredictor/internal/inference"
	"KonkurRankPredictor/internal/models"

	"github.com/gin-gonic/gin"
)

// 프로세스 시작 시 한 번 로드된 모델을 모든 요청이 읽기 전용으로 공유
type PredictHandler struct {
	model inference.Regressor
}

func NewPredictHandler(model inference.Regressor) *PredictHandler {
	return &PredictHandler{model: model}
}

// Predict godoc
// @Summary      순위 예측 (Predict)
// @Description  수학, 영어, 전공 4과목 점수, 쿼터, 유효 GPA로 예상 순위를 반환합니다.
// @Tags         Prediction
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.PredictionRequest true "8개 입력 특성"
// @Success      200 {object} models.PredictionResponse
// @Failure      401 {object} handler.ErrorResponse "인증 실패 (AUTH_JWT_SECRET 설정 시)"
// @Failure      422 {object} handler.ErrorResponse "필드 누락 또는 형식 오류"
// @Failure      500 {object} handler.ErrorResponse "모델 추론 실패"
// @Router       /predict [post]
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, bindingError(err))
		return
	}

	rank, err := h.rank(c.Request.Context(), req)
	if err != nil {
		log.Printf("Predict(): model prediction failed (request %s): %v", c.GetString("request_id"), err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, models.PredictionResponse{Rank: rank})
}

func (h *PredictHandler) rank(ctx context.Context, req models.PredictionRequest) (int, error) {
	value, err := inference.PredictOne(ctx, h.model, req.Features())
	if err != nil {
		return 0, err
	}
	return inference.ToRank(value)
}

// Health godoc
// @Summary      상태 확인 (Health)
// @Description  서버와 로드된 모델 정보를 반환합니다.
// @Tags         System
// @Produce      json
// @Success      200 {object} handler.HealthResponse
// @Router       /health [get]
func (h *PredictHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		Model:    h.model.Name(),
		Features: len(models.FeatureNames),
	})
}
