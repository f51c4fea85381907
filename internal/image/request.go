package image

const (
	TargetWidth = 512
	LineHeight  = 50

	MinFontSize     = 12
	MaxFontSize     = 48
	DefaultFontSize = 24

	DefaultFontFamily = "Arial"
	ExportFileName    = "screenshot.png"
)

var FontFamilies = []string{
	"Arial",
	"Verdana",
	"Times New Roman",
	"Courier New",
	"Georgia",
	"Palatino Linotype",
	"Comic Sans MS",
}

// RenderRequest carries everything a single render needs. It is passed by
// value and never modified by the renderer.
type RenderRequest struct {
	Text          string
	ImageSource   string
	FontFamily    string
	FontSize      int
	ShowWatermark bool
}

// Normalize restricts the font family to FontFamilies and clamps the size.
func (r RenderRequest) Normalize() RenderRequest {
	if !IsFontFamily(r.FontFamily) {
		r.FontFamily = DefaultFontFamily
	}
	switch {
	case r.FontSize == 0:
		r.FontSize = DefaultFontSize
	case r.FontSize < MinFontSize:
		r.FontSize = MinFontSize
	case r.FontSize > MaxFontSize:
		r.FontSize = MaxFontSize
	}
	return r
}

func IsFontFamily(name string) bool {
	for _, f := range FontFamilies {
		if f == name {
			return true
		}
	}
	return false
}
