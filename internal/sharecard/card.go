package sharecard

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Standard Open Graph image dimensions.
const (
	Width  = 1200
	Height = 630
)

// Data is the headline content drawn on the card. It reflects the whole
// table, not the current filters: the card is a share artifact.
type Data struct {
	MatchCount int
	Cities     int
	MeanRuns   float64
	MeanTempC  float64
	Site       string
}

// Generate renders the PNG share card: gradient background, headline
// average, and the dataset footprint underneath.
func Generate(data Data) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	drawGradient(img)

	white := color.RGBA{255, 255, 255, 255}
	lightGray := color.RGBA{200, 200, 200, 255}

	headline := fmt.Sprintf("%.1f avg total runs", data.MeanRuns)
	footprint := fmt.Sprintf("%d matches in %d cities", data.MatchCount, data.Cities)
	tempLine := fmt.Sprintf("%.1f°C average match-day temperature", data.MeanTempC)

	drawScaledText(img, headline, 60, 180, 9, white)
	drawScaledText(img, footprint, 60, 360, 4, lightGray)
	drawScaledText(img, tempLine, 60, 430, 4, lightGray)

	site := data.Site
	if site == "" {
		site = "pitchweather"
	}
	drawScaledText(img, site, 60, Height-70, 3, lightGray)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode share card: %w", err)
	}
	return buf.Bytes(), nil
}

// drawGradient fills the card with a dark blue vertical gradient.
func drawGradient(img *image.RGBA) {
	for y := 0; y < Height; y++ {
		progress := float64(y) / float64(Height)
		r := uint8(20 + progress*10)
		g := uint8(25 + progress*20)
		b := uint8(45 + progress*35)
		for x := 0; x < Width; x++ {
			img.SetRGBA(x, y, color.RGBA{r, g, b, 255})
		}
	}
}

// drawScaledText draws s at (x, y) with the basicfont face enlarged by an
// integer factor. The 7x13 bitmap face is tiny at card resolution;
// nearest-neighbor scaling keeps its pixel edges sharp.
func drawScaledText(dst *image.RGBA, s string, x, y, scale int, col color.Color) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	metrics := face.Metrics()
	h := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()
	if w == 0 || h == 0 {
		return
	}

	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: fixed.I(ascent)},
	}
	d.DrawString(s)

	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			c := tmp.RGBAAt(tx, ty)
			if c.A == 0 {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					dst.SetRGBA(x+tx*scale+dx, y+ty*scale+dy, c)
				}
			}
		}
	}
}
