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

package memcard_test

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/memcard"
	"github.com/jetsetilly/cardrex/test"
)

func TestCustomRegion(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())
	_, err := c.SetSaveBytes(0, makeSave(1, 0))
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, c.SetHeader(0, "SLPS-01234", "CUSTOM", memcard.Region(0x1234)))
	checksums(t, c)

	s, err := c.Slot(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Region, memcard.Region(0x1234))
	test.ExpectEquality(t, s.Region.String(), "0x1234")
	test.ExpectEquality(t, s.ProductCode, "SLPS-01234")
	test.ExpectEquality(t, s.Identifier, "CUSTOM")
	test.ExpectEquality(t, s.Header[10], byte(0x34))
	test.ExpectEquality(t, s.Header[11], byte(0x12))

	// re-parsing the card gives the same region
	d, err := memcard.Parse(c.Raw(), "", memcard.DefaultConfig())
	test.DemandSuccess(t, err)
	s, err = d.Slot(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Region, memcard.Region(0x1234))
}

func TestSetHeader(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())
	_, err := c.SetSaveBytes(0, makeSave(1, 0))
	test.DemandSuccess(t, err)

	// overlong fields are truncated and do not spill into the next field
	test.ExpectSuccess(t, c.SetHeader(0, "SLES-000001", "IDENTIFIER", memcard.RegionJapan))
	s, err := c.Slot(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Region, memcard.RegionJapan)
	test.ExpectEquality(t, s.Region.String(), "Japan")
	test.ExpectEquality(t, s.ProductCode, "SLES-00000")
	test.ExpectEquality(t, s.Identifier, "IDENTIFI")
	test.ExpectEquality(t, s.Header[30], byte(0x00))

	// short fields are zero padded
	test.ExpectSuccess(t, c.SetHeader(0, "ABC", "D", memcard.RegionAmerica))
	s, err = c.Slot(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.ProductCode, "ABC")
	test.ExpectEquality(t, s.Identifier, "D")

	name, err := c.ExportName(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "BAABCD")

	test.ExpectSuccess(t, curated.Is(c.SetHeader(20, "", "", 0), memcard.SlotOutOfRange))
}

func TestExportNameFiltering(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())
	_, err := c.SetSaveBytes(0, makeSave(1, 0))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, c.SetHeader(0, "SLUS/00001", "A:B*C", memcard.RegionEurope))

	name, err := c.ExportName(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "BESLUS00001ABC")
}

func TestParseRegion(t *testing.T) {
	r, err := memcard.ParseRegion("Europe")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, memcard.RegionEurope)

	r, err = memcard.ParseRegion("0x1234")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, memcard.Region(0x1234))

	_, err = memcard.ParseRegion("mars")
	test.ExpectFailure(t, err)
}

func TestTitle(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())
	_, err := c.SetSaveBytes(0, makeSave(1, 0))
	test.DemandSuccess(t, err)

	s, err := c.Slot(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Title, "FF7")
	test.ExpectEquality(t, s.NativeTitle, "ＦＦ７")
	test.ExpectEquality(t, s.IconFrames, 1)

	// a title with no transliteration falls back to the codepage
	save := makeSave(1, 1)
	copy(save[128+4:], "PLAIN TITLE\x00\x00\x00\x00\x00")
	_, err = c.SetSaveBytes(1, save)
	test.DemandSuccess(t, err)

	s, err = c.Slot(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Title, "PLAIN TITLE")
}

func TestPalette(t *testing.T) {
	// zero is transparent
	test.ExpectEquality(t, memcard.DecodeColor(0x00, 0x00), color.Color(color.RGBA{}))

	// the flag bit alone is black
	test.ExpectEquality(t, memcard.DecodeColor(0x00, 0x80), color.Color(color.RGBA{A: 0xff}))

	test.ExpectEquality(t, memcard.DecodeColor(0x1f, 0x00), color.Color(color.RGBA{R: 0xf8, A: 0xff}))
	test.ExpectEquality(t, memcard.DecodeColor(0xe0, 0x03), color.Color(color.RGBA{G: 0xf8, A: 0xff}))
	test.ExpectEquality(t, memcard.DecodeColor(0x00, 0x7c), color.Color(color.RGBA{B: 0xf8, A: 0xff}))

	for _, c := range []color.RGBA{
		{R: 0xf8, G: 0x80, B: 0x08, A: 0xff},
		{R: 0x10, G: 0x28, B: 0xa0, A: 0xff},
		{R: 0xf8, G: 0xf8, B: 0xf8, A: 0xff},
	} {
		b0, b1 := memcard.EncodeColor(c)
		test.ExpectEquality(t, memcard.DecodeColor(b0, b1), color.Color(c))
	}
}

func TestIconBytes(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())
	_, err := c.SetSaveBytes(0, makeSave(1, 0))
	test.DemandSuccess(t, err)

	icon := make([]byte, memcard.IconBytesSize)

	// palette entry 1 is red and entry 2 is blue
	icon[2], icon[3] = 0x1f, 0x00
	icon[4], icon[5] = 0x00, 0x7c

	// the first two pixels of frame 0 and the last pixel of frame 2
	icon[32] = 0x21
	icon[len(icon)-1] = 0x20

	test.ExpectSuccess(t, c.SetIconBytes(0, icon))
	checksums(t, c)

	got, err := c.IconBytes(0)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(got, icon))

	s, err := c.Slot(0)
	test.DemandSuccess(t, err)

	img := s.Icon(0)
	test.DemandSuccess(t, img != nil)
	test.ExpectEquality(t, img.ColorIndexAt(0, 0), uint8(1))
	test.ExpectEquality(t, img.ColorIndexAt(1, 0), uint8(2))
	test.ExpectEquality(t, img.ColorIndexAt(2, 0), uint8(0))
	test.ExpectEquality(t, img.At(0, 0), color.Color(color.RGBA{R: 0xf8, A: 0xff}))
	test.ExpectEquality(t, img.At(2, 0), color.Color(color.RGBA{}))

	img = s.Icon(2)
	test.DemandSuccess(t, img != nil)
	test.ExpectEquality(t, img.ColorIndexAt(15, 15), uint8(2))
	test.ExpectEquality(t, img.ColorIndexAt(14, 15), uint8(0))

	test.ExpectSuccess(t, s.Icon(3) == nil)

	err = c.SetIconBytes(0, icon[:10])
	test.ExpectSuccess(t, curated.Is(err, memcard.InvalidIconData))
}
