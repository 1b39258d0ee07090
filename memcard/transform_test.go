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
	"errors"
	"testing"

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/memcard"
	"github.com/jetsetilly/cardrex/test"
)

// transformer for testing. the save is resized to the number of blocks and
// the last byte is inverted.
type transformer struct {
	productCode string
	blocks      int
	decline     bool
	err         error
}

func (tr *transformer) Transform(productCode string, save []byte) ([]byte, bool, error) {
	tr.productCode = productCode
	if tr.err != nil {
		return nil, false, tr.err
	}
	if tr.decline {
		return nil, false, nil
	}

	edited := make([]byte, memcard.HeaderSize+tr.blocks*memcard.BlockSize)
	copy(edited, save)
	edited[len(edited)-1] ^= 0xff
	return edited, true, nil
}

func TestTransformSave(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())
	_, err := c.SetSaveBytes(2, makeSave(1, 2))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, c.SetComment(2, "keep me"))

	tr := &transformer{blocks: 2}
	ok, err := c.TransformSave(2, tr)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, tr.productCode, "SLUS-00594")

	links, err := c.FindSaveLinks(2)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, equalInts(links, 2, 3))

	save, err := c.GetSaveBytes(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, save[len(save)-1], byte(0xff))

	s, err := c.Slot(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Comment, "keep me")
	checksums(t, c)
}

func TestTransformDeclined(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())
	_, err := c.SetSaveBytes(0, makeSave(1, 0))
	test.DemandSuccess(t, err)
	before := c.Raw()

	ok, err := c.TransformSave(0, &transformer{decline: true})
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, bytes.Equal(c.Raw(), before))

	failure := errors.New("plugin crashed")
	ok, err = c.TransformSave(0, &transformer{err: failure})
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, errors.Is(err, failure))
	test.ExpectSuccess(t, bytes.Equal(c.Raw(), before))
}

func TestTransformNoSpace(t *testing.T) {
	c := memcard.NewCard(memcard.DefaultConfig())
	_, err := c.SetSaveBytes(0, makeSave(1, 0))
	test.DemandSuccess(t, err)
	_, err = c.SetSaveBytes(1, makeSave(1, 1))
	test.DemandSuccess(t, err)
	before := c.Raw()
	c.Changed = false

	// the transformed save needs two slots but slot 1 is occupied
	ok, err := c.TransformSave(0, &transformer{blocks: 2})
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, curated.Is(err, memcard.NotEnoughSlots))
	test.ExpectSuccess(t, bytes.Equal(c.Raw(), before))
	test.ExpectFailure(t, c.Changed)

	// only initial slots can be transformed
	_, err = c.TransformSave(5, &transformer{blocks: 1})
	test.ExpectSuccess(t, curated.Is(err, memcard.NotExportable))
}
