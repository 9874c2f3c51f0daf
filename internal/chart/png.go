package chart

import (
	"fmt"
	"image/png"
	"io"
)

// EncodePNG writes the canvas as a PNG image
func EncodePNG(w io.Writer, c *Canvas) error {
	if err := png.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	return nil
}
