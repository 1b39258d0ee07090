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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/cardrex/curated"
)

// Raw returns the 131072 byte card body. The body is built from the slots on
// every call.
func (c *Card) Raw() []byte {
	body := make([]byte, CardSize)

	// card signature and its mirror at the end of the directory block
	for _, o := range []int{0, mirrorOrigin} {
		body[o] = 'M'
		body[o+1] = 'C'
		body[o+hdrChecksum] = 0x0e
	}

	for i := range c.slots {
		copy(body[headerOrigin+i*HeaderSize:], c.slots[i].Header[:])
		copy(body[(i+1)*BlockSize:], c.slots[i].Data[:])
	}

	// the reserved entries are unused but are expected by real hardware
	for i := 0; i < reservedEntries; i++ {
		o := reservedOrigin + i*HeaderSize
		copy(body[o:o+4], []byte{0xff, 0xff, 0xff, 0xff})
		body[o+hdrNext] = 0xff
		body[o+hdrNext+1] = 0xff
	}

	return body
}

func (c *Card) gmeHeader() []byte {
	hdr := make([]byte, GMEHeaderSize)
	copy(hdr, "123-456-STD")
	hdr[18] = 0x01
	hdr[20] = 0x01
	hdr[21] = 'M'

	for i := range c.slots {
		hdr[22+i] = c.slots[i].Header[hdrType]
		hdr[38+i] = c.slots[i].Header[hdrNext]

		// comments are truncated to fit
		o := 64 + i*CommentSize
		copy(hdr[o:o+CommentSize], c.cfg.encode(c.slots[i].Comment))
	}

	return hdr
}

func vgsHeader() []byte {
	hdr := make([]byte, VGSHeaderSize)
	copy(hdr, "VgsM")
	hdr[4] = 0x01
	hdr[8] = 0x01
	hdr[12] = 0x01
	hdr[17] = 0x02
	return hdr
}

// Serialize the card to the container type.
func (c *Card) Serialize(typ ContainerType) ([]byte, error) {
	var hdr []byte

	switch typ {
	case ContainerRaw:
	case ContainerGME:
		hdr = c.gmeHeader()
	case ContainerVGS:
		hdr = vgsHeader()
	default:
		return nil, curated.Errorf(UnsupportedWrite, typ)
	}

	return append(hdr, c.Raw()...), nil
}

// SaveTo writes the card to io.Writer in the container type. The Changed
// flag is cleared if the write is successful.
func (c *Card) SaveTo(w io.Writer, typ ContainerType) error {
	data, err := c.Serialize(typ)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return curated.Errorf("memcard: %v", err)
	}

	c.Changed = false
	return nil
}

// SaveFile writes the card to the named file in the container type. On
// success the card Location, Name and Type are updated.
func (c *Card) SaveFile(filename string, typ ContainerType) error {
	data, err := c.Serialize(typ)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return curated.Errorf("memcard: %v", err)
	}

	c.Location = filename
	c.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	c.Type = typ
	c.Changed = false
	return nil
}
