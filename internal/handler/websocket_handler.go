package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"KonkurRankPredictor/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/gorilla/websocket"
)

// 예측 요청 한 건은 수백 바이트, 이를 넘는 프레임은 연결 종료
const maxFrameSize = 4 << 10

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamPredict godoc
// @Summary      실시간 순위 예측 WebSocket
// @Description  텍스트 프레임마다 /predict와 같은 JSON 요청을 보내면 {"rank": int} 또는 {"error": "..."} 프레임으로 응답합니다.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.** `ws://` 또는 `wss://` 스킴으로 연결하세요.
// @Description  AUTH_JWT_SECRET 설정 시 쿼리 파라미터 `token`으로 인증합니다.
// @Tags         Prediction
// @Param        token    query     string  false  "JWT 토큰 (인증 활성화 시)"
// @Success      101      {string}  string  "101 Switching Protocols"
// @Failure      401      {object}  handler.ErrorResponse "토큰 누락 또는 유효하지 않은 토큰"
// @Router       /ws/predict [get]
func (h *PredictHandler) StreamPredict(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("StreamPredict(): Failed to upgrade to WebSocket: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxFrameSize)

	remote := c.ClientIP()
	log.Printf("StreamPredict(): session started for %s", remote)
	ctx := c.Request.Context()

ReadLoop:
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("StreamPredict(): read error from %s: %v", remote, err)
			}
			break ReadLoop
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var reply any
		var req models.PredictionRequest
		if err := json.Unmarshal(message, &req); err != nil {
			reply = bindingError(err)
		} else if err := binding.Validator.ValidateStruct(&req); err != nil {
			reply = bindingError(err)
		} else if rank, err := h.rank(ctx, req); err != nil {
			log.Printf("StreamPredict(): model prediction failed: %v", err)
			reply = ErrorResponse{Error: "Internal Server Error"}
		} else {
			reply = models.PredictionResponse{Rank: rank}
		}

		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("StreamPredict(): write error to %s: %v", remote, err)
			break ReadLoop
		}
	}
	log.Printf("StreamPredict(): session ended for %s", remote)
}
