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
	"strings"
	"unicode"

	"github.com/jetsetilly/cardrex/curated"
)

// SetHeader changes the region, product code and identifier of the numbered
// slot. The product code is truncated to 10 bytes and the identifier to 8
// bytes after conversion to the card's codepage.
func (c *Card) SetHeader(slot int, productCode string, identifier string, region Region) error {
	if err := checkSlot(slot); err != nil {
		return err
	}

	hdr := &c.slots[slot].Header
	for i := hdrRegion; i < hdrEnd; i++ {
		hdr[i] = 0x00
	}

	hdr[hdrRegion] = byte(region)
	hdr[hdrRegion+1] = byte(region >> 8)
	copy(hdr[hdrProduct:hdrIdent], c.cfg.encode(productCode))
	copy(hdr[hdrIdent:hdrEnd], c.cfg.encode(identifier))

	c.update()

	return nil
}

// SetComment changes the comment of the numbered slot. Comments are only
// written to the GME container, where they are truncated to 256 bytes.
func (c *Card) SetComment(slot int, comment string) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	c.slots[slot].Comment = comment
	c.Changed = true
	return nil
}

// IconBytes returns the palette and the three icon frames of the numbered
// slot, as they are stored in the data block.
func (c *Card) IconBytes(slot int) ([]byte, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	b := make([]byte, IconBytesSize)
	copy(b, c.slots[slot].Data[dataPalette:dataPalette+IconBytesSize])
	return b, nil
}

// SetIconBytes replaces the palette and icon frames of the numbered slot. The
// data must be in the form returned by IconBytes().
func (c *Card) SetIconBytes(slot int, icon []byte) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	if len(icon) != IconBytesSize {
		return curated.Errorf(InvalidIconData, IconBytesSize, len(icon))
	}
	copy(c.slots[slot].Data[dataPalette:], icon)
	c.update()
	return nil
}

// ExportName returns the conventional filename for the save in the numbered
// slot: the region characters, the product code and the identifier. Characters
// that are not allowed in a filename are removed.
func (c *Card) ExportName(slot int) (string, error) {
	if err := checkSlot(slot); err != nil {
		return "", err
	}

	sl := &c.slots[slot]
	name := c.cfg.decode(sl.Header[hdrRegion:hdrProduct]) + sl.ProductCode + sl.Identifier

	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(`<>:"/\|?*`, r) {
			return -1
		}
		return r
	}, name), nil
}
