package image

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrNoSource          = errors.New("empty image source")
	ErrUnsupportedSource = errors.New("unsupported image source")
)

type Loader interface {
	Load(ctx context.Context, source string) (image.Image, error)
}

type LoadResult struct {
	Image image.Image
	Err   error
}

// LoadAsync starts loading source and returns a channel that yields exactly
// one result.
func LoadAsync(ctx context.Context, l Loader, source string) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		img, err := l.Load(ctx, source)
		ch <- LoadResult{Image: img, Err: err}
	}()
	return ch
}

// SourceLoader reads data URIs, http(s) URLs and local files. Relative paths
// are resolved against BaseDir.
type SourceLoader struct {
	BaseDir string
	Client  *http.Client
	MaxSize int64
}

func NewSourceLoader(baseDir string, maxSize int64) *SourceLoader {
	return &SourceLoader{
		BaseDir: baseDir,
		Client:  http.DefaultClient,
		MaxSize: maxSize,
	}
}

func (l *SourceLoader) Load(ctx context.Context, source string) (image.Image, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, ErrNoSource
	}

	var (
		data []byte
		err  error
	)
	switch {
	case strings.HasPrefix(source, "data:"):
		data, err = decodeDataURL(source)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		data, err = l.fetch(ctx, source)
	default:
		data, err = l.readFile(source)
	}
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func (l *SourceLoader) readFile(source string) ([]byte, error) {
	path := source
	if l.BaseDir != "" {
		if rest, ok := strings.CutPrefix(path, "/assets/"); ok {
			path = filepath.Join(l.BaseDir, rest)
		} else if !filepath.IsAbs(path) {
			path = filepath.Join(l.BaseDir, path)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	return l.readAll(f)
}

func (l *SourceLoader) fetch(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed: status %s", resp.Status)
	}
	return l.readAll(resp.Body)
}

func (l *SourceLoader) readAll(r io.Reader) ([]byte, error) {
	if l.MaxSize <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, l.MaxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > l.MaxSize {
		return nil, fmt.Errorf("image larger than %d bytes", l.MaxSize)
	}
	return data, nil
}

func decodeDataURL(source string) ([]byte, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(source, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("%w: malformed data url", ErrUnsupportedSource)
	}

	if strings.HasSuffix(header, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("decode data url: %w", err)
		}
		return data, nil
	}

	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("decode data url: %w", err)
	}
	return []byte(s), nil
}

// EncodeDataURL is the inverse of the data URL branch of Load.
func EncodeDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
