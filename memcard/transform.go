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
)

// Transformer implementations are able to edit the bytes of a save. The
// product code of the save is supplied so that the implementation can decide
// whether it supports the save.
//
// If the Transformer declines to edit the save then the boolean return value
// should be false. The error return value is for failures of the
// implementation itself.
type Transformer interface {
	Transform(productCode string, save []byte) ([]byte, bool, error)
}

// TransformSave applies the Transformer to the save beginning with the
// numbered slot. The transformed save replaces the original. If it can not be
// stored then the card is left unchanged.
//
// Returns false if the Transformer declined to edit the save.
func (c *Card) TransformSave(slot int, t Transformer) (bool, error) {
	if err := c.exportable(slot); err != nil {
		return false, err
	}

	save, err := c.GetSaveBytes(slot)
	if err != nil {
		return false, err
	}

	edited, ok, err := t.Transform(c.slots[slot].ProductCode, save)
	if err != nil {
		return false, curated.Errorf("memcard: %v", err)
	}
	if !ok || len(edited) == 0 {
		return false, nil
	}

	// restore the card on failure
	snapshot := c.slots
	changed := c.Changed
	comment := c.slots[slot].Comment

	if err := c.FormatSave(slot); err != nil {
		return false, err
	}

	if _, err := c.SetSaveBytes(slot, edited); err != nil {
		c.slots = snapshot
		c.Changed = changed
		return false, err
	}

	c.slots[slot].Comment = comment

	return true, nil
}
