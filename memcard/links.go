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
	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/logger"
)

// FindSaveLinks returns the slots in the chain beginning with the numbered
// slot. The returned list always contains the numbered slot.
//
// The chain is walked for at most fifteen slots. The walk stops at a corrupted
// slot, at a terminating pointer (0xff), at a pointer outside the range of
// slots, or at a slot that has already been visited.
func (c *Card) FindSaveLinks(slot int) ([]int, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}

	var visited [NumSlots]bool
	links := make([]int, 0, NumSlots)

	for i := 0; i < NumSlots; i++ {
		links = append(links, slot)
		visited[slot] = true

		if c.slots[slot].Type == Corrupted {
			logger.Logf(logger.Allow, "memcard", "%s: save link stopped at corrupted slot %d", c.Name, slot)
			break // for loop
		}

		next := int(c.slots[slot].Header[hdrNext])
		if next == 0xff || next >= NumSlots || visited[next] {
			break // for loop
		}
		slot = next
	}

	return links, nil
}

// FindContinuousFreeSlots returns the formatted slots beginning with the
// numbered slot. No more than count slots are returned. The search stops at
// the first slot that is not formatted.
func (c *Card) FindContinuousFreeSlots(slot int, count int) ([]int, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}

	free := make([]int, 0, count)
	for i := slot; i < NumSlots && i < slot+count; i++ {
		if c.slots[i].Type != Formatted {
			break // for loop
		}
		free = append(free, i)
	}

	return free, nil
}

// GetSaveBytes returns the save beginning with the numbered slot. The save is
// the header of the numbered slot followed by the data block of every slot
// in the chain.
func (c *Card) GetSaveBytes(slot int) ([]byte, error) {
	links, err := c.FindSaveLinks(slot)
	if err != nil {
		return nil, err
	}

	save := make([]byte, 0, HeaderSize+len(links)*BlockSize)
	save = append(save, c.slots[slot].Header[:]...)
	for _, l := range links {
		save = append(save, c.slots[l].Data[:]...)
	}

	return save, nil
}

// RequiredSlots returns the number of slots required to store a save of the
// specified length in bytes. The length includes the 128 byte header.
func RequiredSlots(length int) int {
	n := (length - HeaderSize + BlockSize - 1) / BlockSize
	if n < 1 {
		return 1
	}
	return n
}

// SetSaveBytes stores the save in the card beginning with the numbered slot.
// The save is a 128 byte header followed by the save data. Data that does not
// fill a whole number of blocks is padded with zero bytes.
//
// The number of required slots is always returned. If there are not enough
// free slots, beginning with the numbered slot, then the card is unchanged and
// the NotEnoughSlots error is returned.
func (c *Card) SetSaveBytes(slot int, save []byte) (int, error) {
	if err := checkSlot(slot); err != nil {
		return 0, err
	}

	if len(save) < HeaderSize {
		return 0, curated.Errorf(InvalidSave, "shorter than a slot header")
	}

	required := RequiredSlots(len(save))

	free, err := c.FindContinuousFreeSlots(slot, required)
	if err != nil {
		return required, err
	}

	if len(free) < required {
		logger.Logf(logger.Allow, "memcard", "%s: %d free slots required at slot %d, %d available",
			c.Name, required, slot, len(free))
		return required, curated.Errorf(NotEnoughSlots, required)
	}

	data := save[HeaderSize:]
	for i, s := range free {
		sl := &c.slots[s]
		sl.Header = [HeaderSize]byte{}
		sl.Data = [BlockSize]byte{}

		if i == 0 {
			copy(sl.Header[:], save[:HeaderSize])
			sz := required * BlockSize
			sl.Header[hdrSize] = byte(sz)
			sl.Header[hdrSize+1] = byte(sz >> 8)
			sl.Header[hdrSize+2] = byte(sz >> 16)
			sl.Header[hdrType] = Initial.Tag()
		} else if i == len(free)-1 {
			sl.Header[hdrType] = EndLink.Tag()
		} else {
			sl.Header[hdrType] = MiddleLink.Tag()
		}

		if i < len(free)-1 {
			sl.Header[hdrNext] = byte(free[i+1])
			sl.Header[hdrNext+1] = 0x00
		} else {
			sl.Header[hdrNext] = 0xff
			sl.Header[hdrNext+1] = 0xff
		}

		if len(data) > 0 {
			n := copy(sl.Data[:], data)
			data = data[n:]
		}
	}

	c.update()

	return required, nil
}

// FindSaveHead returns the initial slot of the chain that the numbered slot
// belongs to. If the slot is not a link, or no initial slot links to it, then
// the numbered slot is returned.
func (c *Card) FindSaveHead(slot int) (int, error) {
	if err := checkSlot(slot); err != nil {
		return 0, err
	}

	switch c.slots[slot].Type {
	case MiddleLink, EndLink, DeletedMiddleLink, DeletedEndLink:
	default:
		return slot, nil
	}

	for i := range c.slots {
		if t := c.slots[i].Type; t != Initial && t != DeletedInitial {
			continue // for loop
		}
		links, _ := c.FindSaveLinks(i)
		for _, l := range links {
			if l == slot {
				return i, nil
			}
		}
	}

	return slot, nil
}

// ToggleDeleteSave deletes or restores every slot in the chain that the
// numbered slot belongs to. Save data is not changed.
func (c *Card) ToggleDeleteSave(slot int) error {
	head, err := c.FindSaveHead(slot)
	if err != nil {
		return err
	}

	links, err := c.FindSaveLinks(head)
	if err != nil {
		return err
	}

	for _, l := range links {
		sl := &c.slots[l]
		if t := sl.Type.toggled(); t != sl.Type {
			sl.Header[hdrType] = t.Tag()
		}
	}

	c.update()

	return nil
}

// FormatSave formats every slot in the chain that the numbered slot belongs
// to. The formatted slots are free for reuse and have no comment.
func (c *Card) FormatSave(slot int) error {
	head, err := c.FindSaveHead(slot)
	if err != nil {
		return err
	}

	links, err := c.FindSaveLinks(head)
	if err != nil {
		return err
	}

	for _, l := range links {
		c.slots[l].format()
	}

	c.update()

	return nil
}
