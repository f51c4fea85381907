package image

import (
	"image"
	"math"
	"strings"
)

// Row is one text line of the composite. Strip is empty for the first row,
// which sits on the bottom margin of the scaled image.
type Row struct {
	Text  string
	Strip image.Rectangle
	X, Y  float64
}

type Layout struct {
	ScaleFactor  float64
	Width        int
	ScaledHeight int
	Height       int
	// SourceStrip is the bottom band of the source image, in source pixels,
	// stretched into every extension row.
	SourceStrip image.Rectangle
	Rows        []Row
}

func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func ComputeLayout(srcW, srcH int, text string, fontSize int) Layout {
	if srcW <= 0 || srcH <= 0 {
		return Layout{}
	}

	scale := float64(TargetWidth) / float64(srcW)
	// Truncated like a fractional canvas height.
	scaledHeight := max(srcH*TargetWidth/srcW, 1)

	imageLineHeight := float64(LineHeight) / scale
	top := max(srcH-int(math.Round(imageLineHeight)), 0)

	lines := SplitLines(text)
	rows := make([]Row, len(lines))
	baselineShift := float64(LineHeight-fontSize) / 2
	for i, line := range lines {
		row := Row{
			Text: line,
			X:    float64(TargetWidth) / 2,
			Y:    float64(scaledHeight+i*LineHeight) - baselineShift,
		}
		if i > 0 {
			y := scaledHeight + (i-1)*LineHeight
			row.Strip = image.Rect(0, y, TargetWidth, y+LineHeight)
		}
		rows[i] = row
	}

	return Layout{
		ScaleFactor:  scale,
		Width:        TargetWidth,
		ScaledHeight: scaledHeight,
		Height:       scaledHeight + (len(lines)-1)*LineHeight,
		SourceStrip:  image.Rect(0, top, srcW, srcH),
		Rows:         rows,
	}
}
