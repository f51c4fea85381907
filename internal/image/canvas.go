package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"sync"

	"github.com/fogleman/gg"
)

const (
	DefaultCanvasWidth  = 300
	DefaultCanvasHeight = 150
)

// Canvas is the drawing surface a render paints into. It is owned by the
// caller; the renderer only swaps in a finished composite.
type Canvas struct {
	mu  sync.Mutex
	dc  *gg.Context
	gen uint64
}

func NewCanvas() *Canvas {
	return &Canvas{dc: gg.NewContext(DefaultCanvasWidth, DefaultCanvasHeight)}
}

// Context returns nil when the canvas is nil, zero or released.
func (c *Canvas) Context() *gg.Context {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dc
}

func (c *Canvas) Width() int {
	if dc := c.Context(); dc != nil {
		return dc.Width()
	}
	return 0
}

func (c *Canvas) Height() int {
	if dc := c.Context(); dc != nil {
		return dc.Height()
	}
	return 0
}

func (c *Canvas) Image() image.Image {
	if dc := c.Context(); dc != nil {
		return dc.Image()
	}
	return nil
}

// Release drops the drawing context. Later renders become no-ops.
func (c *Canvas) Release() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dc = nil
}

func (c *Canvas) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return c.gen
}

// commit installs dc if no newer render has begun since ticket was issued.
func (c *Canvas) commit(ticket uint64, dc *gg.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dc == nil || ticket != c.gen {
		return false
	}
	c.dc = dc
	return true
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	img := c.Image()
	if img == nil {
		return fmt.Errorf("canvas has no context")
	}
	return png.Encode(w, img)
}

func (c *Canvas) DataURL() (string, error) {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := c.EncodePNG(f); err != nil {
		return err
	}
	return f.Close()
}
