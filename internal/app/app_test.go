package app

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fakeshot/internal/config"
	"fakeshot/internal/files"
	rimage "fakeshot/internal/image"
)

func TestNewRendererUsesConfiguredQuotes(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 256, 128))
	img.Set(1, 1, color.White)
	f, err := os.Create(filepath.Join(dir, "hero.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg := config.Default()
	cfg.AssetsDir = dir
	cfg.FontsDir = filepath.Join(dir, "fonts")
	cfg.Quotes = []string{"one\ntwo\nthree\nfour"}

	assets := files.NewAssetLoader(dir, cfg.OverlayFile, "hero", map[string]string{"hero": "hero.png"})
	r := NewRenderer(cfg, assets, nil)

	c := rimage.NewCanvas()
	if err := r.Render(context.Background(), c, rimage.RenderRequest{ImageSource: "hero.png"}); err != nil {
		t.Fatal(err)
	}
	// 128 * 512/256 = 256, plus three extension rows for the quote.
	if c.Width() != 512 || c.Height() != 256+3*50 {
		t.Fatalf("canvas %dx%d, want 512x406", c.Width(), c.Height())
	}
}
