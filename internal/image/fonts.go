package image

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var familyFiles = map[string]string{
	"Arial":             "arial.ttf",
	"Verdana":           "verdana.ttf",
	"Times New Roman":   "times.ttf",
	"Courier New":       "cour.ttf",
	"Georgia":           "georgia.ttf",
	"Palatino Linotype": "pala.ttf",
	"Comic Sans MS":     "comic.ttf",
}

// FontBook resolves font families to faces. Lookup order: the family's file
// in dir, the fallback file, then the embedded Go fonts. Parsed fonts are
// shared; faces hold glyph buffers and are built per call.
type FontBook struct {
	dir      string
	fallback string

	mu    sync.Mutex
	fonts map[string]*truetype.Font
}

func NewFontBook(dir, fallback string) *FontBook {
	return &FontBook{
		dir:      dir,
		fallback: fallback,
		fonts:    make(map[string]*truetype.Font),
	}
}

func (b *FontBook) Face(family string, size int) (font.Face, error) {
	b.mu.Lock()
	f, err := b.font(family)
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}

	return truetype.NewFace(f, &truetype.Options{
		Size:    float64(size),
		Hinting: font.HintingFull,
	}), nil
}

func (b *FontBook) font(family string) (*truetype.Font, error) {
	if f, ok := b.fonts[family]; ok {
		return f, nil
	}

	var candidates []string
	if name, ok := familyFiles[family]; ok && b.dir != "" {
		candidates = append(candidates, filepath.Join(b.dir, name))
	}
	if b.fallback != "" {
		candidates = append(candidates, b.fallback)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse font %s: %w", path, err)
		}
		b.fonts[family] = f
		return f, nil
	}

	data := goregular.TTF
	if family == "Courier New" {
		data = gomono.TTF
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	b.fonts[family] = f
	return f, nil
}
