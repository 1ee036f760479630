package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Preview is the scaled rendering of the workspace image for the terminal.
// Each cell shows two vertically stacked preview pixels through the upper
// half block, so a cell is one preview pixel wide and two tall.
type Preview struct {
	px    *image.NRGBA
	cols  int
	rows  int
	scale float64 // preview pixels per image pixel
}

func newPreview(img image.Image, maxCols, maxRows int) *Preview {
	if img == nil || maxCols < 1 || maxRows < 1 {
		return nil
	}
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil
	}

	// Fit into the cell grid, preserving aspect ratio in preview pixels.
	scale := float64(maxCols) / float64(b.Dx())
	if s := float64(maxRows*2) / float64(b.Dy()); s < scale {
		scale = s
	}
	pw := int(float64(b.Dx()) * scale)
	ph := int(float64(b.Dy()) * scale)
	if pw < 1 {
		pw = 1
	}
	if ph < 1 {
		ph = 1
	}

	return &Preview{
		px:    imaging.Resize(img, pw, ph, imaging.Lanczos),
		cols:  pw,
		rows:  (ph + 1) / 2,
		scale: float64(pw) / float64(b.Dx()),
	}
}

func (p *Preview) inBounds(col, row int) bool {
	return col >= 0 && col < p.cols && row >= 0 && row < p.rows
}

// imagePoint maps a terminal cell back to image-workspace pixel
// coordinates.
func (p *Preview) imagePoint(col, row int) Point {
	return Point{
		X: float64(col) / p.scale,
		Y: float64(row*2) / p.scale,
	}
}

type overlayCell struct {
	r   rune
	hex string
}

// Render produces one styled string per terminal row: the image as half
// blocks with the committed boxes and the live draft drawn over it.
func (p *Preview) Render(boxes []Box, draft *Box) []string {
	overlay := make([][]overlayCell, p.rows)
	for i := range overlay {
		overlay[i] = make([]overlayCell, p.cols)
	}
	for _, box := range boxes {
		p.addOverlay(overlay, box)
	}
	if draft != nil {
		p.addOverlay(overlay, *draft)
	}

	ph := p.px.Bounds().Dy()
	lines := make([]string, 0, p.rows)
	for row := 0; row < p.rows; row++ {
		var sb strings.Builder
		for col := 0; col < p.cols; col++ {
			if oc := overlay[row][col]; oc.r != 0 {
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(oc.hex)).
					Bold(true).
					Render(string(oc.r)))
				continue
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexAt(p.px, col, row*2)))
			if row*2+1 < ph {
				style = style.Background(lipgloss.Color(hexAt(p.px, col, row*2+1)))
			}
			sb.WriteString(style.Render("▀"))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// addOverlay draws one box border onto the cell grid, normalizing the
// signed extents so right-to-left drags still show where they were drawn.
func (p *Preview) addOverlay(overlay [][]overlayCell, box Box) {
	nx, ny, nw, nh := box.Normalized()
	c0 := clamp(int(nx*p.scale), 0, p.cols-1)
	c1 := clamp(int((nx+nw)*p.scale), 0, p.cols-1)
	r0 := clamp(int(ny*p.scale)/2, 0, p.rows-1)
	r1 := clamp(int((ny+nh)*p.scale)/2, 0, p.rows-1)

	hex := hexColor(box.Label.Color())
	set := func(row, col int, r rune) {
		overlay[row][col] = overlayCell{r: r, hex: hex}
	}

	if c0 == c1 && r0 == r1 {
		set(r0, c0, '□')
	} else {
		for col := c0; col <= c1; col++ {
			set(r0, col, '─')
			set(r1, col, '─')
		}
		for row := r0; row <= r1; row++ {
			set(row, c0, '│')
			set(row, c1, '│')
		}
		set(r0, c0, '┌')
		set(r0, c1, '┐')
		set(r1, c0, '└')
		set(r1, c1, '┘')
	}

	// Label code on the top edge.
	for i, r := range box.Label {
		col := c0 + 1 + i
		if col >= c1 || col >= p.cols {
			break
		}
		set(r0, col, r)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func hexAt(img *image.NRGBA, x, y int) string {
	c := img.NRGBAAt(x, y)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// renderAnnotatedPNG draws the committed boxes over the original image and
// saves the result.
func renderAnnotatedPNG(path string, img image.Image, boxes []Box) error {
	dc := gg.NewContextForImage(img)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	b := img.Bounds()
	fontSize := float64(b.Dy()) / 40
	if fontSize < 12 {
		fontSize = 12
	}
	if fontSize > 28 {
		fontSize = 28
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	lineWidth := float64(b.Dx()) / 400
	if lineWidth < 2 {
		lineWidth = 2
	}

	for _, box := range boxes {
		x, y, w, h := box.Normalized()
		dc.SetColor(box.Label.Color())
		dc.SetLineWidth(lineWidth)
		dc.DrawRectangle(x, y, w, h)
		dc.Stroke()

		tag := string(box.Label)
		tw, th := dc.MeasureString(tag)
		tagY := y - 4
		if tagY-th < 0 {
			// No room above the box, draw the tag just inside it.
			tagY = y + th + 4
		}
		dc.DrawRectangle(x, tagY-th, tw+8, th+4)
		dc.Fill()
		dc.SetColor(color.White)
		dc.DrawString(tag, x+4, tagY)
	}

	return dc.SavePNG(path)
}
