package image

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/fogleman/gg"
)

// ErrSuperseded is returned when a newer render on the same canvas started
// while this one was loading its image. The canvas is left to the newer one.
var ErrSuperseded = errors.New("render superseded")

type Renderer struct {
	loader    Loader
	fonts     *FontBook
	quotes    *QuotePicker
	processor *Processor
	text      *TextRenderer
	watermark Watermark
	logger    *log.Logger
}

type Option func(*Renderer)

func WithQuotes(q *QuotePicker) Option {
	return func(r *Renderer) { r.quotes = q }
}

func WithWatermark(w Watermark) Option {
	return func(r *Renderer) { r.watermark = w }
}

func WithTextStyle(s TextStyle) Option {
	return func(r *Renderer) { r.text.Style = s }
}

func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewRenderer(loader Loader, fonts *FontBook, opts ...Option) *Renderer {
	processor := &Processor{}
	r := &Renderer{
		loader:    loader,
		fonts:     fonts,
		quotes:    NewQuotePicker(nil, nil),
		processor: processor,
		text:      &TextRenderer{Style: DefaultTextStyle, Processor: processor},
		watermark: Watermark{Text: DefaultWatermarkText, Opacity: DefaultWatermarkOpacity},
		logger:    log.Default(),
	}
	if r.fonts == nil {
		r.fonts = NewFontBook("", "")
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render loads req.ImageSource and paints the composite into c. A nil or
// released canvas makes it a no-op. On a load failure nothing is painted.
func (r *Renderer) Render(ctx context.Context, c *Canvas, req RenderRequest) error {
	if c.Context() == nil {
		return nil
	}

	req.Text = r.quotes.Resolve(req.Text)
	ticket := c.begin()

	var res LoadResult
	select {
	case res = <-LoadAsync(ctx, r.loader, req.ImageSource):
	case <-ctx.Done():
		return ctx.Err()
	}
	if res.Err != nil {
		r.logger.Printf("load image %.64q: %v", req.ImageSource, res.Err)
		return fmt.Errorf("load image: %w", res.Err)
	}

	dc, err := r.compose(res.Image, req)
	if err != nil {
		return err
	}
	return install(c, ticket, dc)
}

// Paint draws the composite for an already loaded bitmap. It does no I/O.
func (r *Renderer) Paint(c *Canvas, bitmap image.Image, req RenderRequest) error {
	if c.Context() == nil {
		return nil
	}
	req.Text = r.quotes.Resolve(req.Text)
	ticket := c.begin()

	dc, err := r.compose(bitmap, req)
	if err != nil {
		return err
	}
	return install(c, ticket, dc)
}

// install commits dc to c. A canvas released meanwhile is a silent no-op; a
// newer ticket on a live canvas is ErrSuperseded.
func install(c *Canvas, ticket uint64, dc *gg.Context) error {
	if c.commit(ticket, dc) || c.Context() == nil {
		return nil
	}
	return ErrSuperseded
}

func (r *Renderer) compose(bitmap image.Image, req RenderRequest) (*gg.Context, error) {
	req = req.Normalize()
	b := bitmap.Bounds()
	layout := ComputeLayout(b.Dx(), b.Dy(), req.Text, req.FontSize)
	if layout.Width == 0 {
		return nil, fmt.Errorf("empty image %dx%d", b.Dx(), b.Dy())
	}

	face, err := r.fonts.Face(req.FontFamily, req.FontSize)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", req.FontFamily, err)
	}

	dc := gg.NewContext(layout.Width, layout.Height)
	dc.DrawImage(r.processor.ScaleToWidth(bitmap, layout.Width, layout.ScaledHeight), 0, 0)

	if len(layout.Rows) > 1 {
		strip := r.processor.Strip(bitmap, layout.SourceStrip, layout.Width, LineHeight)
		for _, row := range layout.Rows[1:] {
			dc.DrawImage(strip, row.Strip.Min.X, row.Strip.Min.Y)
		}
	}

	r.text.DrawRows(dc, face, layout.Rows)

	if req.ShowWatermark && !r.watermark.Empty() {
		r.watermark.Draw(dc, r.processor)
	}
	return dc, nil
}
