package files

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type Hero struct {
	Name string
	Path string
}

// AssetLoader knows the bundled hero images and the optional watermark
// overlay under the assets directory.
type AssetLoader struct {
	assetsDir   string
	overlayPath string
	defaultHero string
	heroes      map[string]Hero
}

func NewAssetLoader(assetsDir, overlayFile, defaultHero string, heroes map[string]string) *AssetLoader {
	l := &AssetLoader{
		assetsDir:   assetsDir,
		defaultHero: defaultHero,
		heroes:      make(map[string]Hero, len(heroes)),
	}
	if overlayFile != "" {
		l.overlayPath = filepath.Join(assetsDir, overlayFile)
	}
	for name, file := range heroes {
		l.heroes[strings.ToLower(name)] = Hero{Name: name, Path: filepath.Join(assetsDir, file)}
	}
	return l
}

func (l *AssetLoader) AssetsDir() string {
	return l.assetsDir
}

func (l *AssetLoader) Hero(name string) (Hero, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	h, ok := l.heroes[key]
	if !ok {
		return Hero{}, fmt.Errorf("%w: %s", ErrUnknownHero, name)
	}
	return h, nil
}

// DefaultHero falls back to the first hero by name when the configured
// default is missing.
func (l *AssetLoader) DefaultHero() (Hero, error) {
	if h, err := l.Hero(l.defaultHero); err == nil {
		return h, nil
	}
	names := l.HeroNames()
	if len(names) == 0 {
		return Hero{}, ErrUnknownHero
	}
	return l.Hero(names[0])
}

func (l *AssetLoader) HeroNames() []string {
	names := make([]string, 0, len(l.heroes))
	for _, h := range l.heroes {
		names = append(names, h.Name)
	}
	sort.Strings(names)
	return names
}

// Overlay returns nil when no overlay file is configured or readable.
func (l *AssetLoader) Overlay() image.Image {
	if l.overlayPath == "" {
		return nil
	}
	overlay, _ := openImage(l.overlayPath)
	return overlay
}

func openImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}
