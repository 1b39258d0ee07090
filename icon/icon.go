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

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/memcard"
)

// Error patterns.
const (
	InvalidData   = "icon: icon data must be %d bytes (not %d)"
	InvalidFrame  = "icon: frame number out of range (%d)"
	InvalidPixel  = "icon: pixel out of range (%d, %d)"
	InvalidColor  = "icon: palette index out of range (%d)"
	WrongSize     = "icon: image must be 16x16 pixels (not %dx%d)"
	TooManyColors = "icon: image has more than 16 colours (%d)"
)

const (
	width  = memcard.IconWidth
	height = memcard.IconHeight
)

// Icon is the palette and frames of a save.
type Icon struct {
	data [memcard.IconBytesSize]byte
}

// New creates a new Icon from icon data.
func New(data []byte) (*Icon, error) {
	if len(data) != memcard.IconBytesSize {
		return nil, curated.Errorf(InvalidData, memcard.IconBytesSize, len(data))
	}
	ic := &Icon{}
	copy(ic.data[:], data)
	return ic, nil
}

// Bytes returns the icon data. Suitable for Card.SetIconBytes().
func (ic *Icon) Bytes() []byte {
	b := make([]byte, len(ic.data))
	copy(b, ic.data[:])
	return b
}

// Palette returns the sixteen colours of the icon.
func (ic *Icon) Palette() color.Palette {
	pal := make(color.Palette, memcard.IconColors)
	for i := range pal {
		pal[i] = memcard.DecodeColor(ic.data[i*2], ic.data[i*2+1])
	}
	return pal
}

// grid of palette indexes, addressed [x][y].
type grid [width][height]uint8

func checkFrame(frame int) error {
	if frame < 0 || frame >= memcard.MaxIconFrames {
		return curated.Errorf(InvalidFrame, frame)
	}
	return nil
}

func (ic *Icon) frameOrigin(frame int) int {
	return memcard.IconPaletteLen + frame*memcard.IconFrameSize
}

func (ic *Icon) grid(frame int) grid {
	var g grid
	o := ic.frameOrigin(frame)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x += 2 {
			g[x][y] = ic.data[o] & 0x0f
			g[x+1][y] = ic.data[o] >> 4
			o++
		}
	}
	return g
}

func (ic *Icon) setGrid(frame int, g grid) {
	o := ic.frameOrigin(frame)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x += 2 {
			ic.data[o] = g[x][y]&0x0f | g[x+1][y]<<4
			o++
		}
	}
}

// Frame returns the numbered frame as a paletted image.
func (ic *Icon) Frame(frame int) (*image.Paletted, error) {
	if err := checkFrame(frame); err != nil {
		return nil, err
	}

	img := image.NewPaletted(image.Rect(0, 0, width, height), ic.Palette())
	g := ic.grid(frame)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetColorIndex(x, y, g[x][y])
		}
	}

	return img, nil
}

// SetPixel sets the pixel in the numbered frame to the palette index.
func (ic *Icon) SetPixel(frame int, x int, y int, idx uint8) error {
	if err := checkFrame(frame); err != nil {
		return err
	}
	if x < 0 || x >= width || y < 0 || y >= height {
		return curated.Errorf(InvalidPixel, x, y)
	}
	if int(idx) >= memcard.IconColors {
		return curated.Errorf(InvalidColor, idx)
	}

	g := ic.grid(frame)
	g[x][y] = idx
	ic.setGrid(frame, g)

	return nil
}

// SetColor changes the palette entry.
func (ic *Icon) SetColor(idx int, c color.Color) error {
	if idx < 0 || idx >= memcard.IconColors {
		return curated.Errorf(InvalidColor, idx)
	}
	ic.data[idx*2], ic.data[idx*2+1] = memcard.EncodeColor(c)
	return nil
}
