package files

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fakeshot/internal/bot"
)

type stubBot struct {
	bot.Bot
	baseURL string
}

func (b stubBot) GetFile(ctx context.Context, fileID string) (*bot.File, error) {
	return &bot.File{FileID: fileID, FilePath: "photos/" + fileID + ".jpg"}, nil
}

func (b stubBot) FileDownloadURL(filePath string) string {
	return b.baseURL + "/" + filePath
}

func TestAssetLoaderHeroes(t *testing.T) {
	l := NewAssetLoader("/srv/assets", "", "Missing", map[string]string{"鲁迅": "鲁迅.jpg", "Musk": "musk.jpg"})

	h, err := l.Hero("musk")
	if err != nil {
		t.Fatal(err)
	}
	if h.Name != "Musk" || h.Path != filepath.Join("/srv/assets", "musk.jpg") {
		t.Fatalf("hero = %+v", h)
	}

	if _, err := l.Hero("nobody"); !errors.Is(err, ErrUnknownHero) {
		t.Fatalf("err = %v, want ErrUnknownHero", err)
	}

	def, err := l.DefaultHero()
	if err != nil {
		t.Fatal(err)
	}
	if def.Name != "Musk" {
		t.Fatalf("default hero = %q, want first by name", def.Name)
	}

	if names := l.HeroNames(); len(names) != 2 || names[0] != "Musk" {
		t.Fatalf("names = %q", names)
	}
	if l.Overlay() != nil {
		t.Fatal("expected no overlay")
	}
}

func TestReadDataURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "up.gif")
	if err := os.WriteFile(path, []byte("GIF89a....."), 0o644); err != nil {
		t.Fatal(err)
	}

	url, err := ReadDataURL(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(url, "data:image/gif;base64,") {
		t.Fatalf("url = %q", url)
	}

	if _, err := ReadDataURL(path, 4); err == nil {
		t.Fatal("expected size error")
	}
}

func TestDownloadToTemp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/photos/abc.jpg" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("jpeg bytes"))
	}))
	defer srv.Close()

	fm, err := NewTelegramFileManager(stubBot{baseURL: srv.URL}, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path, cleanup, err := fm.DownloadToTemp(context.Background(), "abc")
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "jpeg bytes" {
		t.Fatalf("downloaded %q, %v", data, err)
	}
	if filepath.Ext(path) != ".jpg" {
		t.Fatalf("path = %s, want .jpg extension", path)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("cleanup did not remove the file")
	}

	if _, _, err := fm.DownloadToTemp(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for 404")
	}
}
