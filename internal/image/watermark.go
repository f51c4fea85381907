package image

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const (
	DefaultWatermarkText    = "fake-screenshot"
	DefaultWatermarkOpacity = 0.6

	watermarkMargin = 8
)

// Watermark is drawn in the bottom-right corner. A zero Watermark draws
// nothing.
type Watermark struct {
	Text    string
	Overlay image.Image
	Opacity float64
}

func (w Watermark) Empty() bool {
	return w.Text == "" && w.Overlay == nil
}

func (w Watermark) Draw(dc *gg.Context, p *Processor) {
	opacity := w.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = DefaultWatermarkOpacity
	}

	right := float64(dc.Width() - watermarkMargin)
	bottom := float64(dc.Height() - watermarkMargin)

	if w.Overlay != nil {
		ob := w.Overlay.Bounds()
		pt := image.Pt(int(right)-ob.Dx(), int(bottom)-ob.Dy())
		if rgba, ok := dc.Image().(*image.RGBA); ok {
			p.OverlayAt(rgba, w.Overlay, pt, opacity)
		}
		bottom -= float64(ob.Dy() + watermarkMargin/2)
	}

	if w.Text != "" {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: uint8(255 * opacity)})
		dc.DrawStringAnchored(w.Text, right, bottom, 1, 0)
	}
}
