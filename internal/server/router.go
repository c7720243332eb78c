package server

import (
	_ "KonkurRankPredictor/docs"
	"KonkurRankPredictor/internal/config"
	"KonkurRankPredictor/internal/handler"
	"KonkurRankPredictor/internal/inference"
	"KonkurRankPredictor/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every route around the already loaded model.
func NewRouter(cfg config.Config, model inference.Regressor) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	corsConfig := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, middleware.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	if cfg.RateLimitRPS > 0 {
		router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	h := handler.NewPredictHandler(model)
	router.GET("/health", h.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	predict := router.Group("/")
	if len(cfg.JWTSecret) > 0 {
		predict.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	}
	{
		predict.POST("/predict", h.Predict)
		predict.GET("/ws/predict", h.StreamPredict)
	}
	return router
}
