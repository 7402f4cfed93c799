package canvas

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ppmMaxLineLength is the PPM spec's limit on plain-text line width.
const ppmMaxLineLength = 70

// WritePPM serializes the canvas as plain-text PPM (P3): a header with the
// dimensions and the 255 color scale, then one clamped byte triple per
// pixel, wrapped so no line exceeds 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.width, c.height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	var line strings.Builder
	for y := 0; y < c.height; y++ {
		line.Reset()
		for x := 0; x < c.width; x++ {
			pixel := c.PixelAt(x, y)
			for _, value := range [3]float64{pixel.R, pixel.G, pixel.B} {
				s := strconv.Itoa(clampByte(value))
				if line.Len() > 0 && line.Len()+1+len(s) > ppmMaxLineLength {
					if _, err := fmt.Fprintln(w, line.String()); err != nil {
						return fmt.Errorf("writing ppm row: %w", err)
					}
					line.Reset()
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(s)
			}
		}
		if line.Len() > 0 {
			if _, err := fmt.Fprintln(w, line.String()); err != nil {
				return fmt.Errorf("writing ppm row: %w", err)
			}
		}
	}
	return nil
}

// clampByte scales a [0,1] color component to a 0-255 byte, clamping values
// outside the display range.
func clampByte(value float64) int {
	scaled := math.Round(value * 255)
	return int(math.Max(0, math.Min(255, scaled)))
}
