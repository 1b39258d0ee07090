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
	"testing"

	"github.com/jetsetilly/cardrex/memcard"
)

// makeSave returns a save of n blocks that is already in the form it will be
// stored when placed at the numbered slot of an otherwise empty card. ie.
// SetSaveBytes() followed by GetSaveBytes() will return exactly the same bytes.
func makeSave(n int, slot int) []byte {
	save := make([]byte, memcard.HeaderSize+n*memcard.BlockSize)

	hdr := save[:memcard.HeaderSize]
	hdr[0] = 0x51
	sz := n * memcard.BlockSize
	hdr[4] = byte(sz)
	hdr[5] = byte(sz >> 8)
	hdr[6] = byte(sz >> 16)
	if n > 1 {
		hdr[8] = byte(slot + 1)
		hdr[9] = 0x00
	} else {
		hdr[8] = 0xff
		hdr[9] = 0xff
	}
	copy(hdr[10:], "BASLUS-00594FF7SAVE1")

	var x byte
	for _, b := range hdr[:127] {
		x ^= b
	}
	hdr[127] = x

	data := save[memcard.HeaderSize:]
	copy(data, "SC")
	data[2] = 0x11

	// title is "ＦＦ７" in Shift-JIS
	copy(data[4:], []byte{0x82, 0x65, 0x82, 0x65, 0x82, 0x56})

	for i := 512; i < len(data); i++ {
		data[i] = byte(i % 251)
	}

	return save
}

// checksums tests the header checksum of every slot.
func checksums(t *testing.T, c *memcard.Card) {
	t.Helper()
	for i := 0; i < memcard.NumSlots; i++ {
		s, err := c.Slot(i)
		if err != nil {
			t.Fatalf("slot %d: %v", i, err)
		}
		var x byte
		for _, b := range s.Header[:127] {
			x ^= b
		}
		if s.Header[127] != x || !s.ChecksumValid {
			t.Errorf("slot %d: checksum is %02x (expected %02x)", i, s.Header[127], x)
		}
	}
}

func slotType(t *testing.T, c *memcard.Card, slot int) memcard.SaveType {
	t.Helper()
	s, err := c.Slot(slot)
	if err != nil {
		t.Fatalf("slot %d: %v", slot, err)
	}
	return s.Type
}

func equalInts(a []int, b ...int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
