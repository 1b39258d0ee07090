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

package icon_test

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/icon"
	"github.com/jetsetilly/cardrex/memcard"
	"github.com/jetsetilly/cardrex/test"
)

func blank(t *testing.T) *icon.Icon {
	t.Helper()
	ic, err := icon.New(make([]byte, memcard.IconBytesSize))
	test.DemandSuccess(t, err)
	return ic
}

func index(t *testing.T, ic *icon.Icon, frame int, x int, y int) uint8 {
	t.Helper()
	img, err := ic.Frame(frame)
	test.DemandSuccess(t, err)
	return img.ColorIndexAt(x, y)
}

func TestNew(t *testing.T) {
	_, err := icon.New(make([]byte, 100))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, icon.InvalidData))

	ic := blank(t)
	test.ExpectEquality(t, len(ic.Bytes()), memcard.IconBytesSize)
	test.ExpectEquality(t, len(ic.Palette()), memcard.IconColors)
}

func TestPixelPacking(t *testing.T) {
	ic := blank(t)
	test.ExpectSuccess(t, ic.SetPixel(0, 0, 0, 1))
	test.ExpectSuccess(t, ic.SetPixel(0, 1, 0, 2))
	test.ExpectSuccess(t, ic.SetPixel(1, 15, 15, 3))

	// low nibble is the even pixel
	b := ic.Bytes()
	test.ExpectEquality(t, b[32], byte(0x21))
	test.ExpectEquality(t, b[32+128+127], byte(0x30))

	test.ExpectFailure(t, ic.SetPixel(3, 0, 0, 1))
	test.ExpectFailure(t, ic.SetPixel(0, 16, 0, 1))
	test.ExpectFailure(t, ic.SetPixel(0, 0, 0, 16))
	_, err := ic.Frame(-1)
	test.ExpectSuccess(t, curated.Is(err, icon.InvalidFrame))
}

func TestFlip(t *testing.T) {
	ic := blank(t)
	test.DemandSuccess(t, ic.SetPixel(0, 2, 3, 5))

	test.ExpectSuccess(t, ic.FlipHorizontal(0))
	test.ExpectEquality(t, index(t, ic, 0, 13, 3), uint8(5))
	test.ExpectEquality(t, index(t, ic, 0, 2, 3), uint8(0))

	test.ExpectSuccess(t, ic.FlipVertical(0))
	test.ExpectEquality(t, index(t, ic, 0, 13, 12), uint8(5))

	// flipping only affects the numbered frame
	test.ExpectSuccess(t, ic.SetPixel(1, 0, 0, 7))
	test.ExpectSuccess(t, ic.FlipVertical(0))
	test.ExpectEquality(t, index(t, ic, 1, 0, 0), uint8(7))

	test.ExpectFailure(t, ic.FlipHorizontal(3))
}

func TestRotate(t *testing.T) {
	ic := blank(t)
	test.DemandSuccess(t, ic.SetPixel(0, 0, 0, 9))
	original := ic.Bytes()

	// anti-clockwise moves the top-left corner to the bottom-left
	test.ExpectSuccess(t, ic.RotateLeft(0))
	test.ExpectEquality(t, index(t, ic, 0, 0, 15), uint8(9))

	test.ExpectSuccess(t, ic.RotateRight(0))
	test.ExpectSuccess(t, bytes.Equal(ic.Bytes(), original))

	// clockwise moves the top-left corner to the top-right
	test.ExpectSuccess(t, ic.RotateRight(0))
	test.ExpectEquality(t, index(t, ic, 0, 15, 0), uint8(9))

	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, ic.RotateRight(0))
	}
	test.ExpectSuccess(t, bytes.Equal(ic.Bytes(), original))
}

func TestImport(t *testing.T) {
	red := color.RGBA{R: 248, A: 255}
	blue := color.RGBA{B: 248, A: 255}

	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if x < 8 {
				img.Set(x, y, red)
			} else {
				img.Set(x, y, blue)
			}
		}
	}

	ic := blank(t)
	test.ExpectSuccess(t, ic.Import(2, img))

	pal := ic.Palette()
	test.ExpectEquality(t, pal[0], color.Color(red))
	test.ExpectEquality(t, pal[1], color.Color(blue))

	// unused entries are black, which reads back as transparent
	test.ExpectEquality(t, pal[2], color.Color(color.RGBA{}))

	test.ExpectEquality(t, index(t, ic, 2, 0, 0), uint8(0))
	test.ExpectEquality(t, index(t, ic, 2, 15, 15), uint8(1))
	test.ExpectEquality(t, index(t, ic, 0, 15, 15), uint8(0))
}

func TestImportErrors(t *testing.T) {
	ic := blank(t)

	err := ic.Import(0, image.NewNRGBA(image.Rect(0, 0, 8, 8)))
	test.ExpectSuccess(t, curated.Is(err, icon.WrongSize))

	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x * 8), A: 255})
	}
	img.Set(0, 1, color.RGBA{G: 8, A: 255})
	err = ic.Import(0, img)
	test.ExpectSuccess(t, curated.Is(err, icon.TooManyColors))

	// icon is unchanged by a failed import
	test.ExpectSuccess(t, bytes.Equal(ic.Bytes(), make([]byte, memcard.IconBytesSize)))
}

func TestParseFormat(t *testing.T) {
	f, err := icon.ParseFormat("frame.JPG")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, icon.JPEG)

	f, err = icon.ParseFormat("png")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, icon.PNG)

	_, err = icon.ParseFormat("icon.tiff")
	test.ExpectSuccess(t, curated.Is(err, icon.UnsupportedFormat))
}

func TestExport(t *testing.T) {
	ic := blank(t)
	test.DemandSuccess(t, ic.SetColor(1, color.RGBA{G: 248, A: 255}))
	test.DemandSuccess(t, ic.SetPixel(0, 1, 0, 1))

	var b bytes.Buffer
	test.ExpectSuccess(t, ic.Export(&b, 0, icon.PNG, 4))
	img, err := png.Decode(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 64, 64))

	_, g, _, _ := img.At(5, 3).RGBA()
	test.ExpectEquality(t, g>>8, uint32(248))
	_, g, _, _ = img.At(3, 3).RGBA()
	test.ExpectEquality(t, g, uint32(0))

	for _, f := range []icon.Format{icon.BMP, icon.GIF, icon.JPEG} {
		b.Reset()
		test.ExpectSuccess(t, ic.Export(&b, 0, f, 1), f)
		img, err := icon.Decode(&b)
		test.ExpectSuccess(t, err, f)
		if img != nil {
			test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 16, 16), f)
		}
	}
}

func TestExportAnimation(t *testing.T) {
	ic := blank(t)

	var b bytes.Buffer
	test.ExpectSuccess(t, ic.ExportAnimation(&b, 3, 2))
	anim, err := gif.DecodeAll(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(anim.Image), 3)
	test.ExpectEquality(t, anim.Image[0].Bounds(), image.Rect(0, 0, 32, 32))

	test.ExpectFailure(t, ic.ExportAnimation(&b, 0, 1))
	test.ExpectFailure(t, ic.ExportAnimation(&b, 4, 1))
}

func TestCardIcon(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())
	save := make([]byte, memcard.HeaderSize+memcard.BlockSize)
	save[memcard.HeaderSize] = 'S'
	save[memcard.HeaderSize+1] = 'C'
	save[memcard.HeaderSize+2] = 0x11
	_, err := c.SetSaveBytes(0, save)
	test.DemandSuccess(t, err)

	data, err := c.IconBytes(0)
	test.DemandSuccess(t, err)
	ic, err := icon.New(data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ic.SetColor(3, color.RGBA{R: 8, G: 16, B: 24, A: 255}))
	test.DemandSuccess(t, ic.SetPixel(0, 4, 4, 3))
	test.DemandSuccess(t, c.SetIconBytes(0, ic.Bytes()))

	s, err := c.Slot(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.IconFrames, 1)
	test.ExpectEquality(t, s.Icon(0).ColorIndexAt(4, 4), uint8(3))
	test.ExpectEquality(t, s.Palette[3], color.Color(color.RGBA{R: 8, G: 16, B: 24, A: 255}))
}
