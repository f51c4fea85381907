package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"fakeshot/internal/app"
	"fakeshot/internal/config"
)

func main() {
	logger := log.Default()
	cfg := config.Load(logger)

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Printf("Error starting bot: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nShutting down...")
}
