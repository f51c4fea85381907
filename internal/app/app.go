package app

import (
	"context"
	"fmt"
	"log"

	"fakeshot/internal/bot"
	"fakeshot/internal/config"
	"fakeshot/internal/files"
	"fakeshot/internal/handlers"
	"fakeshot/internal/image"
	"fakeshot/internal/services"
	"fakeshot/internal/storage"
)

type App struct {
	Bot     bot.Bot
	Handler *handlers.Handler
}

// NewRenderer builds the screenshot renderer described by cfg.
func NewRenderer(cfg *config.Config, assets *files.AssetLoader, logger *log.Logger) *image.Renderer {
	return image.NewRenderer(
		image.NewSourceLoader(cfg.AssetsDir, cfg.MaxFileSize),
		image.NewFontBook(cfg.FontsDir, cfg.FallbackFont),
		image.WithQuotes(image.NewQuotePicker(cfg.Quotes, nil)),
		image.WithWatermark(image.Watermark{
			Text:    cfg.Watermark.Text,
			Overlay: assets.Overlay(),
			Opacity: cfg.Watermark.Opacity,
		}),
		image.WithLogger(logger),
	)
}

func New(cfg *config.Config, logger *log.Logger) (*App, error) {
	heroes := make(map[string]string, len(cfg.Heroes))
	for _, h := range cfg.Heroes {
		heroes[h.Name] = h.File
	}
	assets := files.NewAssetLoader(cfg.AssetsDir, cfg.OverlayFile, cfg.DefaultHero, heroes)

	defaults := storage.Session{
		FontFamily: cfg.Render.FontFamily,
		FontSize:   cfg.Render.FontSize,
	}
	if hero, err := assets.DefaultHero(); err == nil {
		defaults.ImageSource = hero.Path
	} else {
		logger.Printf("[WARN]: no default hero: %v", err)
	}

	botService, err := bot.NewTelegramBot(cfg.BotToken, logger, cfg.MaxFileSize)
	if err != nil {
		return nil, err
	}

	fileManager, err := files.NewTelegramFileManager(botService, cfg.TempDir)
	if err != nil {
		return nil, err
	}

	imageService, err := services.NewImageService(NewRenderer(cfg, assets, logger), cfg.TempDir)
	if err != nil {
		return nil, fmt.Errorf("image service: %w", err)
	}

	handler := handlers.NewHandler(
		imageService,
		botService,
		fileManager,
		assets,
		storage.NewRenderStateStore(defaults),
		cfg.MaxFileSize,
		logger,
	)

	return &App{Bot: botService, Handler: handler}, nil
}

func (a *App) Run(ctx context.Context) error {
	return a.Bot.Start(ctx, a.Handler.HandleUpdate)
}
