package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"KonkurRankPredictor/internal/config"
	"KonkurRankPredictor/internal/inference"
	"KonkurRankPredictor/internal/server"

	"golang.org/x/sync/errgroup"
)

// @title           Konkur Rank Predictor API
// @version         1.0
// @description     시험 점수로 예상 순위를 예측하는 API
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main(): Failed to load config: %v", err)
	}

	// 모델은 시작 시 한 번만 로드, 이후 읽기 전용
	model, err := inference.Load(inference.Options{
		Path:     cfg.ModelPath,
		Endpoint: cfg.ModelEndpoint,
		Name:     cfg.ModelName,
		Timeout:  cfg.ModelTimeout,
	})
	if err != nil {
		log.Fatalf("main(): Failed to load model: %v", err)
	}
	log.Printf("main(): Using model %s", model.Name())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(cfg, model),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("main(): Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Println("main(): Shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("main(): Server error: %v", err)
	}
}
