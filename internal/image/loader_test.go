package image

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(w, h, color.White)); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestSourceLoaderDataURL(t *testing.T) {
	l := NewSourceLoader("", 0)
	img, err := l.Load(context.Background(), EncodeDataURL("image/png", encodePNG(t, 3, 2)))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, want 3x2", b)
	}

	if _, err := l.Load(context.Background(), "data:image/png;base64"); !errors.Is(err, ErrUnsupportedSource) {
		t.Fatalf("malformed data url err = %v", err)
	}
}

func TestSourceLoaderFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hero.png"), encodePNG(t, 4, 4), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewSourceLoader(dir, 0)

	for _, src := range []string{"hero.png", "/assets/hero.png", filepath.Join(dir, "hero.png")} {
		img, err := l.Load(context.Background(), src)
		if err != nil {
			t.Fatalf("Load(%q): %v", src, err)
		}
		if img.Bounds().Dx() != 4 {
			t.Fatalf("Load(%q) bounds = %v", src, img.Bounds())
		}
	}

	if _, err := l.Load(context.Background(), "nope.png"); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := l.Load(context.Background(), "  "); !errors.Is(err, ErrNoSource) {
		t.Fatalf("blank source err = %v, want ErrNoSource", err)
	}
}

func TestSourceLoaderHTTP(t *testing.T) {
	data := encodePNG(t, 5, 5)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hero.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	l := NewSourceLoader("", 0)
	img, err := l.Load(context.Background(), srv.URL+"/hero.png")
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 5 {
		t.Fatalf("bounds = %v", img.Bounds())
	}

	if _, err := l.Load(context.Background(), srv.URL+"/missing.png"); err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("missing url err = %v, want 404", err)
	}
}

func TestSourceLoaderMaxSize(t *testing.T) {
	data := encodePNG(t, 64, 64)
	l := NewSourceLoader("", int64(len(data)-1))
	if _, err := l.Load(context.Background(), EncodeDataURL("image/png", data)); err != nil {
		t.Fatalf("data urls are not size limited: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "big.png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Load(context.Background(), path); err == nil {
		t.Fatal("expected size limit error")
	}
}

func TestSourceLoaderRejectsGarbage(t *testing.T) {
	l := NewSourceLoader("", 0)
	if _, err := l.Load(context.Background(), "data:text/plain,hello%20world"); err == nil {
		t.Fatal("expected decode error for non-image payload")
	}
}

func TestLoadAsync(t *testing.T) {
	res := <-LoadAsync(context.Background(), staticLoader{img: solid(2, 2, color.Black)}, "x")
	if res.Err != nil || res.Image.Bounds().Dx() != 2 {
		t.Fatalf("unexpected result %+v", res)
	}
}
