package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"KonkurRankPredictor/internal/auth"
	"KonkurRankPredictor/internal/config"
	"KonkurRankPredictor/internal/inference"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleBody = `{"Mathematics": 18.5, "English": 16.0, "Specialized1": 17.0, "Specialized2": 15.5,
	"Specialized3": 14.0, "Specialized4": 16.5, "Quota": 1, "EffectiveGPA": 17.8}`

func newTestServer(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	model, err := inference.LoadFile("../inference/testdata/linear.json")
	require.NoError(t, err)
	return NewRouter(cfg, model)
}

func do(r http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPredictEndToEnd(t *testing.T) {
	r := newTestServer(t, config.Config{AllowOrigins: []string{"*"}})

	w := do(r, http.MethodPost, "/predict", exampleBody, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, map[string]any{"rank": float64(2232)}, got)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestPredictMissingField(t *testing.T) {
	r := newTestServer(t, config.Config{})

	w := do(r, http.MethodPost, "/predict", `{"Mathematics": 18.5}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHealth(t *testing.T) {
	r := newTestServer(t, config.Config{})

	w := do(r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","model":"linear","features":8}`, w.Body.String())
}

func TestAuthEnabled(t *testing.T) {
	secret := []byte("router-secret")
	r := newTestServer(t, config.Config{JWTSecret: secret})

	w := do(r, http.MethodPost, "/predict", exampleBody, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := auth.GenerateToken(secret, "tester", time.Minute)
	require.NoError(t, err)
	w = do(r, http.MethodPost, "/predict", exampleBody, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)

	// health stays public
	w = do(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitEnabled(t *testing.T) {
	r := newTestServer(t, config.Config{RateLimitRPS: 0.001, RateLimitBurst: 1})

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/health", "", nil).Code)
}

func TestCORS(t *testing.T) {
	r := newTestServer(t, config.Config{AllowOrigins: []string{"https://app.example"}})

	w := do(r, http.MethodGet, "/health", "", map[string]string{"Origin": "https://app.example"})
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, http.MethodGet, "/health", "", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSwaggerDoc(t *testing.T) {
	r := newTestServer(t, config.Config{})

	w := do(r, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/predict")
}
