package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"

	"fakeshot/internal/bot"
	"fakeshot/internal/files"
	"fakeshot/internal/image"
	"fakeshot/internal/services"
	"fakeshot/internal/storage"
)

const helpText = `Send any text and I'll put it under the current hero, one line per row.
Send a photo (caption optional) to use your own hero.

/heroes - list bundled heroes
/hero <name> - pick a bundled hero
/fonts - pick a font
/size <12-48> - font size
/watermark - toggle the watermark
/settings - show current settings`

var errBusy = errors.New("already processing")

type Handler struct {
	imageService *services.ImageService
	bot          bot.Bot
	fileManager  files.FileManager
	assets       *files.AssetLoader
	stateStore   *storage.RenderStateStore
	maxUpload    int64
	logger       *log.Logger
}

func NewHandler(
	imageService *services.ImageService,
	bot bot.Bot,
	fileManager files.FileManager,
	assets *files.AssetLoader,
	stateStore *storage.RenderStateStore,
	maxUpload int64,
	logger *log.Logger,
) *Handler {
	return &Handler{
		imageService: imageService,
		bot:          bot,
		fileManager:  fileManager,
		assets:       assets,
		stateStore:   stateStore,
		maxUpload:    maxUpload,
		logger:       logger,
	}
}

func (h *Handler) HandleUpdate(ctx context.Context, update telego.Update) {
	if update.Message == nil {
		return
	}
	msg := update.Message
	chatID := msg.Chat.ID

	if cmd, arg, ok := parseCommand(msg.Text); ok {
		h.handleCommand(ctx, chatID, cmd, arg)
		return
	}

	_ = h.withProcessing(ctx, chatID, func() error {
		if hasPhoto(msg) {
			return h.handleUpload(ctx, msg)
		}
		return h.handleRender(ctx, chatID, getText(msg))
	})
}

func (h *Handler) handleCommand(ctx context.Context, chatID int64, cmd, arg string) {
	switch cmd {
	case "/start", "/help":
		if cmd == "/start" {
			h.stateStore.Reset(chatID)
		}
		_ = h.bot.ShowMenu(ctx, chatID, helpText, []string{"/heroes", "/fonts", "/watermark", "/settings"})

	case "/heroes":
		buttons := make([]string, 0, len(h.assets.HeroNames()))
		for _, name := range h.assets.HeroNames() {
			buttons = append(buttons, "/hero "+name)
		}
		_ = h.bot.ShowMenu(ctx, chatID, "🎭 Pick a hero:", buttons)

	case "/hero":
		hero, err := h.assets.Hero(arg)
		if err != nil {
			_ = h.bot.SendText(ctx, chatID, fmt.Sprintf("❌ Unknown hero %q. Try /heroes.", arg))
			return
		}
		h.stateStore.SetImage(chatID, hero.Path)
		_ = h.bot.SendText(ctx, chatID, fmt.Sprintf("✅ Hero set to %s.", hero.Name))

	case "/fonts":
		buttons := make([]string, 0, len(image.FontFamilies))
		for _, family := range image.FontFamilies {
			buttons = append(buttons, "/font "+family)
		}
		_ = h.bot.ShowMenu(ctx, chatID, "🔤 Pick a font:", buttons)

	case "/font":
		if !image.IsFontFamily(arg) {
			_ = h.bot.SendText(ctx, chatID, fmt.Sprintf("❌ Unknown font %q. Try /fonts.", arg))
			return
		}
		h.stateStore.SetFontFamily(chatID, arg)
		_ = h.bot.SendText(ctx, chatID, fmt.Sprintf("✅ Font set to %s.", arg))

	case "/size":
		size, err := strconv.Atoi(arg)
		if err != nil || size < image.MinFontSize || size > image.MaxFontSize {
			_ = h.bot.SendText(ctx, chatID, fmt.Sprintf("❌ Size must be a number from %d to %d.", image.MinFontSize, image.MaxFontSize))
			return
		}
		h.stateStore.SetFontSize(chatID, size)
		_ = h.bot.SendText(ctx, chatID, fmt.Sprintf("✅ Font size set to %dpx.", size))

	case "/watermark":
		if h.stateStore.ToggleWatermark(chatID) {
			_ = h.bot.SendText(ctx, chatID, "💧 Watermark on.")
		} else {
			_ = h.bot.SendText(ctx, chatID, "💧 Watermark off.")
		}

	case "/settings":
		req := h.stateStore.Request(chatID, "")
		_ = h.bot.SendText(ctx, chatID, fmt.Sprintf("⚙️ Font: %s %dpx\nWatermark: %t\nHero: %s",
			req.FontFamily, req.FontSize, req.ShowWatermark, describeSource(req.ImageSource)))

	default:
		_ = h.bot.SendText(ctx, chatID, "❓ Unknown command. Try /help.")
	}
}

func (h *Handler) handleUpload(ctx context.Context, msg *telego.Message) error {
	chatID := msg.Chat.ID

	fileID, err := extractFileID(msg)
	if err != nil {
		return h.fail(ctx, chatID, "extract file", "❌ Photo required.", err)
	}

	localPath, cleanup, err := h.fileManager.DownloadToTemp(ctx, fileID)
	if err != nil {
		return h.fail(ctx, chatID, "download failed", "🚧 Error downloading image", err)
	}
	defer cleanup()

	source, err := files.ReadDataURL(localPath, h.maxUpload)
	if err != nil {
		return h.fail(ctx, chatID, "read upload", "🚧 Error reading image", err)
	}
	h.stateStore.SetImage(chatID, source)

	return h.handleRender(ctx, chatID, getText(msg))
}

func (h *Handler) handleRender(ctx context.Context, chatID int64, text string) error {
	req := h.stateStore.Request(chatID, text)
	h.logger.Printf("chat %d: rendering %d line(s) with %s %dpx", chatID, len(image.SplitLines(text)), req.FontFamily, req.FontSize)

	resultPath, cleanup, err := h.imageService.Render(ctx, req)
	if err != nil {
		return h.fail(ctx, chatID, "render failed", "🚧 Error rendering screenshot", err)
	}
	defer cleanup()

	if err := h.bot.SendFileAuto(ctx, chatID, resultPath); err != nil {
		return h.fail(ctx, chatID, "send error", "🚧 Error sending screenshot", err)
	}
	return nil
}

func (h *Handler) withProcessing(ctx context.Context, chatID int64, fn func() error) error {
	if !h.stateStore.TryStart(chatID) {
		_ = h.bot.SendText(ctx, chatID, "😵‍💫 Slow down, I'm still drawing the last one.")
		return errBusy
	}
	defer h.stateStore.Finish(chatID)
	return fn()
}

func (h *Handler) fail(ctx context.Context, chatID int64, logMsg, userMsg string, err error) error {
	h.logger.Printf("%s: %v", logMsg, err)
	_ = h.bot.SendText(context.WithoutCancel(ctx), chatID, userMsg)
	return err
}

// parseCommand splits "/cmd@bot arg" into "/cmd" and "arg".
func parseCommand(text string) (string, string, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	cmd, arg, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd), strings.TrimSpace(arg), true
}

func describeSource(source string) string {
	if strings.HasPrefix(source, "data:") {
		return "uploaded image"
	}
	return source
}

func extractFileID(msg *telego.Message) (string, error) {
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID, nil
	}
	if msg.Document != nil {
		return msg.Document.FileID, nil
	}
	return "", fmt.Errorf("no file")
}

func hasPhoto(msg *telego.Message) bool {
	return len(msg.Photo) > 0 || msg.Document != nil
}

func getText(msg *telego.Message) string {
	if msg.Caption != "" {
		return msg.Caption
	}
	return msg.Text
}
