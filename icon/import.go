// This file is part of Cardrex.
//
// Cardrex is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cardrex is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cardrex.  If not, see <https://www.gnu.org/licenses/>.

package icon

import (
	"image"
	"image/color"
	"io"

	// image formats supported by Import
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/logger"
	"github.com/jetsetilly/cardrex/memcard"
)

// Decode an image in any of the supported formats.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, curated.Errorf("icon: %v", err)
	}
	logger.Logf(logger.Allow, "icon", "decoded %s image", format)
	return img, nil
}

// Import replaces the numbered frame with the image. The image must be 16x16
// pixels and have no more than sixteen colours.
//
// The palette of the icon is replaced by the colours of the image, in the
// order in which they are first seen. Unused palette entries are set to black.
// The palette is shared by all frames so the colours of the other frames will
// change.
func (ic *Icon) Import(frame int, img image.Image) error {
	if err := checkFrame(frame); err != nil {
		return err
	}

	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return curated.Errorf(WrongSize, b.Dx(), b.Dy())
	}

	var pal []color.RGBA
	var g grid

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			if c.A == 0 {
				c = color.RGBA{}
			}

			idx := -1
			for i := range pal {
				if pal[i] == c {
					idx = i
					break // for loop
				}
			}
			if idx == -1 {
				pal = append(pal, c)
				idx = len(pal) - 1
			}

			g[x][y] = uint8(idx)
		}
	}

	if len(pal) > memcard.IconColors {
		return curated.Errorf(TooManyColors, len(pal))
	}

	for i := 0; i < memcard.IconColors; i++ {
		c := color.RGBA{A: 0xff}
		if i < len(pal) {
			c = pal[i]
		}
		ic.data[i*2], ic.data[i*2+1] = memcard.EncodeColor(c)
	}

	ic.setGrid(frame, g)

	return nil
}
