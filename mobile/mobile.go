package mobile

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"fakeshot/internal/app"
	"fakeshot/internal/config"
)

type BotControl struct {
	cancel context.CancelFunc
}

func NewBotControl() *BotControl {
	return &BotControl{}
}

// StartBot runs the bot with default settings rooted at assetsDir. Fonts are
// looked up in assetsDir/fonts.
func (bc *BotControl) StartBot(token string, assetsDir string, tempDir string) string {
	if bc.cancel != nil {
		return "Bot already started"
	}

	logger := log.Default()

	cfg := config.Default()
	cfg.BotToken = token
	cfg.AssetsDir = assetsDir
	cfg.FontsDir = filepath.Join(assetsDir, "fonts")
	cfg.TempDir = tempDir
	cfg.MaxFileSize = 50 * 1024 * 1024

	a, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Sprintf("Error creating bot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	bc.cancel = cancel

	go func() {
		log.Println("Bot goroutine started")
		if err := a.Run(ctx); err != nil {
			log.Printf("Bot stopped: %v", err)
		}
	}()

	return "Bot started successfully"
}

func (bc *BotControl) StopBot() {
	if bc.cancel != nil {
		bc.cancel()
		bc.cancel = nil
		log.Println("Bot stopped by user")
	}
}
