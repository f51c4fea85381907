package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fakeshot/internal/image"
)

type ImageService struct {
	tempDir  string
	renderer *image.Renderer
}

func NewImageService(renderer *image.Renderer, tempDir string) (*ImageService, error) {
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &ImageService{
		tempDir:  tempDir,
		renderer: renderer,
	}, nil
}

// Render paints req onto a fresh canvas and exports it as screenshot.png in
// its own temp directory. cleanup removes that directory.
func (s *ImageService) Render(ctx context.Context, req image.RenderRequest) (string, func(), error) {
	canvas := image.NewCanvas()
	defer canvas.Release()

	if err := s.renderer.Render(ctx, canvas, req); err != nil {
		return "", nil, fmt.Errorf("render: %w", err)
	}

	dir, err := os.MkdirTemp(s.tempDir, "render-*")
	if err != nil {
		return "", nil, fmt.Errorf("create output dir: %w", err)
	}
	cleanup := func() {
		_ = os.RemoveAll(dir)
	}

	out := filepath.Join(dir, image.ExportFileName)
	if err := canvas.SavePNG(out); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("save output: %w", err)
	}

	return out, cleanup, nil
}
