package image

import (
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// TextStyle is shared by every line of a composite.
type TextStyle struct {
	Fill          color.Color
	Shadow        color.Color
	ShadowBlur    float64
	ShadowOffsetX float64
	ShadowOffsetY float64
}

var DefaultTextStyle = TextStyle{
	Fill:          color.White,
	Shadow:        color.Black,
	ShadowBlur:    4,
	ShadowOffsetX: 2,
	ShadowOffsetY: 2,
}

type TextRenderer struct {
	Style     TextStyle
	Processor *Processor
}

// DrawRows draws every row horizontally centered on its X with the baseline
// at Y. Shadows go on a separate layer which is blurred once and composited
// under the fill.
func (tr *TextRenderer) DrawRows(dc *gg.Context, face font.Face, rows []Row) {
	shadow := gg.NewContext(dc.Width(), dc.Height())
	shadow.SetFontFace(face)
	shadow.SetColor(tr.Style.Shadow)
	for _, row := range rows {
		shadow.DrawStringAnchored(row.Text,
			row.X+tr.Style.ShadowOffsetX,
			row.Y+tr.Style.ShadowOffsetY,
			0.5, 0,
		)
	}
	dc.DrawImage(tr.Processor.Blur(shadow.Image(), tr.Style.ShadowBlur), 0, 0)

	dc.SetFontFace(face)
	dc.SetColor(tr.Style.Fill)
	for _, row := range rows {
		dc.DrawStringAnchored(row.Text, row.X, row.Y, 0.5, 0)
	}
}
