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
	"testing"

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/memcard"
	"github.com/jetsetilly/cardrex/test"
)

func TestLinkChain(t *testing.T) {
	for n := 1; n <= 3; n++ {
		c := memcard.NewCard(memcard.DefaultConfig())
		const slot = 5

		save := makeSave(n, slot)
		required, err := c.SetSaveBytes(slot, save)
		test.DemandSuccess(t, err, n)
		test.ExpectEquality(t, required, n, n)
		test.ExpectSuccess(t, c.Changed, n)

		links, err := c.FindSaveLinks(slot)
		test.DemandSuccess(t, err, n)
		test.DemandEquality(t, len(links), n, n)

		test.ExpectEquality(t, slotType(t, c, links[0]), memcard.Initial, n)
		if n > 1 {
			test.ExpectEquality(t, slotType(t, c, links[n-1]), memcard.EndLink, n)
		}
		for i := 1; i < n-1; i++ {
			test.ExpectEquality(t, slotType(t, c, links[i]), memcard.MiddleLink, n)
		}

		got, err := c.GetSaveBytes(slot)
		test.DemandSuccess(t, err, n)
		test.ExpectSuccess(t, bytes.Equal(got, save), n)

		checksums(t, c)

		s, err := c.Slot(slot)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, s.Size, n*8, n)
	}
}

func TestSingleSlotTerminator(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())
	_, err := c.SetSaveBytes(0, makeSave(1, 0))
	test.DemandSuccess(t, err)

	s, err := c.Slot(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Type, memcard.Initial)
	test.ExpectEquality(t, s.Header[8], byte(0xff))
	test.ExpectEquality(t, s.Header[9], byte(0xff))
}

func TestShortSave(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())

	// data that doesn't fill a block is padded
	save := makeSave(1, 0)[:128+100]
	required, err := c.SetSaveBytes(0, save)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, required, 1)

	got, err := c.GetSaveBytes(0)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(got), 128+8192)
	test.ExpectSuccess(t, bytes.Equal(got[128:228], save[128:]))
	test.ExpectSuccess(t, bytes.Equal(got[228:], make([]byte, 8192-100)))

	// a save shorter than a header is not allowed
	_, err = c.SetSaveBytes(1, make([]byte, 100))
	test.ExpectSuccess(t, curated.Is(err, memcard.InvalidSave))

	test.ExpectEquality(t, memcard.RequiredSlots(128), 1)
	test.ExpectEquality(t, memcard.RequiredSlots(128+8192), 1)
	test.ExpectEquality(t, memcard.RequiredSlots(128+8193), 2)
}

func TestCapacityFailure(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())

	_, err := c.SetSaveBytes(2, makeSave(1, 2))
	test.DemandSuccess(t, err)

	before := c.Raw()

	// only slots 0 and 1 are free before slot 2
	required, err := c.SetSaveBytes(0, makeSave(3, 0))
	test.ExpectSuccess(t, curated.Is(err, memcard.NotEnoughSlots))
	test.ExpectEquality(t, required, 3)
	test.ExpectEquality(t, err.Error(), "memcard: 3 free slots are required")
	test.ExpectSuccess(t, bytes.Equal(c.Raw(), before))

	// the occupied slot itself
	required, err = c.SetSaveBytes(2, makeSave(1, 2))
	test.ExpectSuccess(t, curated.Is(err, memcard.NotEnoughSlots))
	test.ExpectEquality(t, required, 1)
	test.ExpectSuccess(t, bytes.Equal(c.Raw(), before))

	// running off the end of the card
	required, err = c.SetSaveBytes(13, makeSave(3, 13))
	test.ExpectSuccess(t, curated.Is(err, memcard.NotEnoughSlots))
	test.ExpectEquality(t, required, 3)
	test.ExpectSuccess(t, bytes.Equal(c.Raw(), before))

	_, err = c.SetSaveBytes(15, makeSave(1, 0))
	test.ExpectSuccess(t, curated.Is(err, memcard.SlotOutOfRange))
}

func TestFindContinuousFreeSlots(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())
	_, err := c.SetSaveBytes(4, makeSave(1, 4))
	test.DemandSuccess(t, err)

	free, err := c.FindContinuousFreeSlots(0, 10)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, equalInts(free, 0, 1, 2, 3))

	free, err = c.FindContinuousFreeSlots(4, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(free), 0)

	free, err = c.FindContinuousFreeSlots(12, 5)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, equalInts(free, 12, 13, 14))
}

func TestToggleDelete(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())
	_, err := c.SetSaveBytes(0, makeSave(3, 0))
	test.DemandSuccess(t, err)
	before := c.Raw()

	// toggling any member of the chain toggles all members
	test.ExpectSuccess(t, c.ToggleDeleteSave(1))
	test.ExpectEquality(t, slotType(t, c, 0), memcard.DeletedInitial)
	test.ExpectEquality(t, slotType(t, c, 1), memcard.DeletedMiddleLink)
	test.ExpectEquality(t, slotType(t, c, 2), memcard.DeletedEndLink)
	test.ExpectEquality(t, slotType(t, c, 3), memcard.Formatted)
	checksums(t, c)

	// deleted saves still have their data
	got, err := c.GetSaveBytes(0)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(got[128:], makeSave(3, 0)[128:]))

	test.ExpectSuccess(t, c.ToggleDeleteSave(2))
	test.ExpectEquality(t, slotType(t, c, 0), memcard.Initial)
	test.ExpectEquality(t, slotType(t, c, 1), memcard.MiddleLink)
	test.ExpectEquality(t, slotType(t, c, 2), memcard.EndLink)
	test.ExpectSuccess(t, bytes.Equal(c.Raw(), before))

	test.ExpectSuccess(t, c.ToggleDeleteSave(0))
	test.ExpectSuccess(t, c.ToggleDeleteSave(0))
	test.ExpectSuccess(t, bytes.Equal(c.Raw(), before))

	// toggling a free slot does nothing
	test.ExpectSuccess(t, c.ToggleDeleteSave(10))
	test.ExpectEquality(t, slotType(t, c, 10), memcard.Formatted)
}

func TestFormatSave(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())
	_, err := c.SetSaveBytes(6, makeSave(2, 6))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, c.SetComment(6, "to be removed"))

	test.ExpectSuccess(t, c.FormatSave(6))
	checksums(t, c)

	for _, slot := range []int{6, 7} {
		links, err := c.FindSaveLinks(slot)
		test.ExpectSuccess(t, err)
		test.ExpectSuccess(t, equalInts(links, slot))

		s, err := c.Slot(slot)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, s.Type, memcard.Formatted)
		test.ExpectEquality(t, s.Size, 0)
		test.ExpectEquality(t, s.Comment, "")
		test.ExpectSuccess(t, bytes.Equal(s.Data[:], make([]byte, memcard.BlockSize)))

		for i, b := range s.Header[:127] {
			switch i {
			case 0:
				test.ExpectEquality(t, b, byte(0xa0))
			case 8, 9:
				test.ExpectEquality(t, b, byte(0xff))
			default:
				test.ExpectEquality(t, b, byte(0x00), i)
			}
		}
	}

	// formatting from the end of a chain formats the whole chain
	_, err = c.SetSaveBytes(0, makeSave(3, 0))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, c.FormatSave(2))
	free, err := c.FindContinuousFreeSlots(0, 15)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(free), 15)
}

func TestCorruptedChain(t *testing.T) {
	cfg := memcard.DefaultConfig()
	raw := memcard.NewCard(cfg).Raw()

	hdr := func(slot int) []byte {
		return raw[128+slot*128 : 128+slot*128+128]
	}

	// chain 0 -> 1 -> 2 where slot 1 is corrupted
	hdr(0)[0], hdr(0)[8] = 0x51, 1
	hdr(1)[0], hdr(1)[8] = 0x77, 2
	hdr(2)[0], hdr(2)[8] = 0x53, 0xff

	// chain 4 -> 5 -> 4
	hdr(4)[0], hdr(4)[8] = 0x51, 5
	hdr(5)[0], hdr(5)[8] = 0x52, 4

	// chain 7 -> 20
	hdr(7)[0], hdr(7)[8] = 0x51, 20

	c, err := memcard.Parse(raw, "corrupt.mcr", cfg)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, slotType(t, c, 1), memcard.Corrupted)

	links, err := c.FindSaveLinks(0)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, equalInts(links, 0, 1))

	links, err = c.FindSaveLinks(4)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, equalInts(links, 4, 5))

	links, err = c.FindSaveLinks(7)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, equalInts(links, 7))

	// the corrupted slot is unchanged by a toggle
	test.ExpectSuccess(t, c.ToggleDeleteSave(0))
	test.ExpectEquality(t, slotType(t, c, 0), memcard.DeletedInitial)
	s, err := c.Slot(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Header[0], byte(0x77))

	_, err = c.FindSaveLinks(15)
	test.ExpectSuccess(t, curated.Is(err, memcard.SlotOutOfRange))
}

func TestSaveTypes(t *testing.T) {
	for _, st := range []memcard.SaveType{
		memcard.Formatted, memcard.Initial, memcard.MiddleLink, memcard.EndLink,
		memcard.DeletedInitial, memcard.DeletedMiddleLink, memcard.DeletedEndLink,
	} {
		test.ExpectInequality(t, st.Tag(), byte(0xff))
	}
	test.ExpectEquality(t, memcard.Corrupted.Tag(), byte(0xff))
	test.ExpectSuccess(t, memcard.DeletedMiddleLink.Deleted())
	test.ExpectFailure(t, memcard.MiddleLink.Deleted())
	test.ExpectEquality(t, memcard.Formatted.String(), "Free")
}
