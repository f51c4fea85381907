package image

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

type Processor struct{}

// ScaleToWidth resizes img to width keeping the aspect ratio. The height is
// passed explicitly so it matches the layout's rounding.
func (p *Processor) ScaleToWidth(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(max(height, 1)), img, resize.Lanczos3)
}

// Strip crops src out of img and stretches it to w×h.
func (p *Processor) Strip(img image.Image, src image.Rectangle, w, h int) image.Image {
	b := img.Bounds()
	crop := imaging.Crop(img, src.Add(b.Min).Intersect(b))
	if crop.Bounds().Empty() {
		crop = imaging.Clone(img)
	}
	return resize.Resize(uint(w), uint(h), crop, resize.Lanczos3)
}

func (p *Processor) Blur(img image.Image, radius float64) image.Image {
	if radius <= 0 {
		return img
	}
	// Canvas shadow blur is twice the gaussian sigma.
	return imaging.Blur(img, radius/2)
}

// OverlayAt draws overlay onto dst with its top-left corner at pt, scaling the
// overlay's alpha by alpha.
func (p *Processor) OverlayAt(dst draw.Image, overlay image.Image, pt image.Point, alpha float64) {
	ob := overlay.Bounds()
	faded := image.NewNRGBA(image.Rect(0, 0, ob.Dx(), ob.Dy()))
	for y := 0; y < ob.Dy(); y++ {
		for x := 0; x < ob.Dx(); x++ {
			c := color.NRGBAModel.Convert(overlay.At(ob.Min.X+x, ob.Min.Y+y)).(color.NRGBA)
			c.A = uint8(float64(c.A) * alpha)
			faded.SetNRGBA(x, y, c)
		}
	}

	draw.Draw(dst, faded.Bounds().Add(pt), faded, image.Point{}, draw.Over)
}
