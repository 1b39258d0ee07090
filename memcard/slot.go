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

package memcard

import (
	"image"
	"image/color"

	"github.com/jetsetilly/cardrex/sjis"
)

// offsets in the slot header.
const (
	hdrType     = 0
	hdrSize     = 4
	hdrNext     = 8
	hdrRegion   = 10
	hdrProduct  = 12
	hdrIdent    = 22
	hdrEnd      = 30
	hdrChecksum = 127
)

// offsets in the slot data.
const (
	dataFrames  = 2
	dataTitle   = 4
	titleLen    = 64
	dataPalette = 96
	dataIcons   = 128
)

// Icon dimensions and the size of the icon data in the data block.
const (
	IconWidth      = 16
	IconHeight     = 16
	IconColors     = 16
	IconFrameSize  = IconWidth * IconHeight / 2
	MaxIconFrames  = 3
	IconPaletteLen = IconColors * 2
	IconBytesSize  = IconPaletteLen + MaxIconFrames*IconFrameSize
)

// Slot is one of the fifteen save slots on a memory card. The Header and Data
// fields are the raw bytes of the slot. All other fields are derived from the
// raw bytes.
//
// Slot values returned by the Card are copies. Changing a Slot has no effect
// on the Card.
type Slot struct {
	Header [HeaderSize]byte
	Data   [BlockSize]byte

	// comment is only persisted by the GME container
	Comment string

	Type        SaveType
	Region      Region
	ProductCode string
	Identifier  string

	// Title is an ASCII approximation of NativeTitle
	Title       string
	NativeTitle string

	// size of the save in kilobytes, as recorded in the header
	Size int

	IconFrames int
	Palette    color.Palette

	// whether the checksum in the header matches the header bytes. a slot
	// with an invalid checksum is still usable
	ChecksumValid bool
}

// checksum is the XOR of the header bytes before the checksum byte. The
// stored checksum at offset 127 covers bytes 0 to 126 inclusive.
func checksum(hdr []byte) byte {
	var x byte
	for _, b := range hdr[:hdrChecksum] {
		x ^= b
	}
	return x
}

func (s *Slot) updateChecksum() {
	s.Header[hdrChecksum] = checksum(s.Header[:])
}

// derive all fields from the raw bytes.
func (s *Slot) derive(cfg Config) {
	s.ChecksumValid = s.Header[hdrChecksum] == checksum(s.Header[:])
	s.Type = classifySaveType(s.Header[hdrType])
	s.Region = Region(uint16(s.Header[hdrRegion]) | uint16(s.Header[hdrRegion+1])<<8)
	s.ProductCode = cfg.decode(s.Header[hdrProduct:hdrIdent])
	s.Identifier = cfg.decode(s.Header[hdrIdent:hdrEnd])

	title := s.Data[dataTitle : dataTitle+titleLen]
	s.NativeTitle = sjis.Decode(title)
	s.Title = sjis.Transliterate(title)
	if s.Title == "" {
		s.Title = cfg.decode(title[:titleLen/2])
	}

	size := int(s.Header[hdrSize]) | int(s.Header[hdrSize+1])<<8 | int(s.Header[hdrSize+2])<<16
	s.Size = size / 1024

	switch s.Data[dataFrames] {
	case 0x11:
		s.IconFrames = 1
	case 0x12:
		s.IconFrames = 2
	case 0x13:
		s.IconFrames = 3
	default:
		s.IconFrames = 0
	}

	s.Palette = make(color.Palette, IconColors)
	for i := range s.Palette {
		o := dataPalette + i*2
		s.Palette[i] = DecodeColor(s.Data[o], s.Data[o+1])
	}
}

// format the slot. header and data are zeroed apart from the free slot
// markers.
func (s *Slot) format() {
	*s = Slot{}
	s.Header[hdrType] = Formatted.Tag()
	s.Header[hdrNext] = 0xff
	s.Header[hdrNext+1] = 0xff
}

// Icon decodes an icon frame to a paletted image using the slot's palette.
// Returns nil if the frame number is not between 0 and 2. All three frames can
// be decoded regardless of the IconFrames value.
func (s Slot) Icon(frame int) *image.Paletted {
	if frame < 0 || frame >= MaxIconFrames {
		return nil
	}

	pal := s.Palette
	if len(pal) != IconColors {
		s.derive(DefaultConfig())
		pal = s.Palette
	}

	img := image.NewPaletted(image.Rect(0, 0, IconWidth, IconHeight), pal)
	o := dataIcons + frame*IconFrameSize
	for y := 0; y < IconHeight; y++ {
		for x := 0; x < IconWidth; x += 2 {
			b := s.Data[o]
			img.Pix[y*img.Stride+x] = b & 0x0f
			img.Pix[y*img.Stride+x+1] = b >> 4
			o++
		}
	}

	return img
}

// DecodeColor converts the two bytes of an RGBA5551 palette entry to a color.
// An entry of zero is fully transparent.
func DecodeColor(b0, b1 byte) color.Color {
	r := (b0 & 0x1f) << 3
	g := (b0&0xe0)>>2 | (b1&0x03)<<6
	b := (b1 & 0x7c) << 1
	if r|g|b|(b1&0x80) == 0 {
		return color.RGBA{}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// EncodeColor converts a color to the two bytes of an RGBA5551 palette entry.
// The flag bit is never set.
func EncodeColor(c color.Color) (byte, byte) {
	n := color.RGBAModel.Convert(c).(color.RGBA)
	r := n.R >> 3
	g := n.G >> 3
	b := n.B >> 3
	return r | (g&0x07)<<5, b<<2 | (g&0x18)>>3
}
