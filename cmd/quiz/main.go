package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/nft-marketplace-quiz/internal/config"
	"github.com/aliskhannn/nft-marketplace-quiz/internal/delivery/console"
	"github.com/aliskhannn/nft-marketplace-quiz/internal/logger"
	"github.com/aliskhannn/nft-marketplace-quiz/internal/repository"
	"github.com/aliskhannn/nft-marketplace-quiz/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	questionRepo := repository.NewQuestionRepository()
	quizService := service.NewQuizService(questionRepo)

	handler := console.NewHandler(zl, quizService, os.Stdin, os.Stdout)

	// A cancelled session is a normal exit, same as a completed one.
	if err := handler.Run(ctx); err != nil && !errors.Is(err, console.ErrCancelled) {
		zl.Fatal("quiz session failed", zap.Error(err))
	}
}
