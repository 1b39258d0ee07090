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
	"bytes"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/logger"
)

// Card is a PS1 memory card.
type Card struct {
	// the path the card was loaded from or last saved to. empty if the card
	// has never been on disk
	Location string

	// the name of the card. the base filename without extension
	Name string

	// the container the card was loaded from. it is used as the default
	// container when saving
	Type ContainerType

	// the card has been changed since it was loaded or last saved
	Changed bool

	cfg   Config
	slots [NumSlots]Slot
}

// NewCard returns a newly formatted card.
func NewCard(cfg Config) *Card {
	c := &Card{
		Name: "Untitled",
		Type: ContainerRaw,
		cfg:  cfg,
	}
	c.Format()
	c.Changed = false
	return c
}

// the signatures of the container types. a signature is compared to the start
// of the data, after filler characters have been trimmed.
var signatures = []struct {
	sig string
	typ ContainerType
}{
	{sig: "MC", typ: ContainerRaw},
	{sig: "123-456-STD", typ: ContainerGME},
	{sig: "VgsM", typ: ContainerVGS},
	{sig: "PMV", typ: ContainerVMP},
}

const signatureLen = 11

// Detect returns the container type of the data. Returns ContainerNone if the
// data is not recognised.
func Detect(data []byte) ContainerType {
	n := signatureLen
	if len(data) < n {
		n = len(data)
	}

	s := strings.Trim(string(data[:n]), "\x00\x01\x3f")
	for _, v := range signatures {
		if s == v.sig {
			return v.typ
		}
	}

	return ContainerNone
}

// Parse memory card data. The container type is detected automatically. The
// location is used to name the card and can be empty.
func Parse(data []byte, location string, cfg Config) (*Card, error) {
	c := &Card{
		Location: location,
		Name:     strings.TrimSuffix(filepath.Base(location), filepath.Ext(location)),
		cfg:      cfg,
	}

	if location == "" {
		c.Name = "Untitled"
	}

	c.Type = Detect(data)
	if c.Type == ContainerNone {
		return nil, curated.Errorf(UnsupportedFormat, c.Name)
	}

	o := c.Type.Offset()
	if len(data)-o < CardSize {
		return nil, curated.Errorf(TruncatedCard, c.Name, len(data)-o, CardSize)
	}

	c.load(data[o : o+CardSize])

	if c.Type == ContainerGME {
		for i := range c.slots {
			o := 64 + i*CommentSize
			c.slots[i].Comment = cfg.decode(data[o : o+CommentSize])
		}
	}

	for i := range c.slots {
		c.slots[i].derive(c.cfg)
		if !c.slots[i].ChecksumValid {
			logger.Logf(logger.Allow, "memcard", "%s: slot %d has an invalid checksum", c.Name, i)
		}
	}

	logger.Logf(logger.Allow, "memcard", "%s: %s container", c.Name, c.Type)

	return c, nil
}

// FromRaw creates a card from a raw card body, such as one read from a card
// reader. The card is marked as changed because it has never been saved.
func FromRaw(raw []byte, cfg Config) (*Card, error) {
	if len(raw) < CardSize {
		return nil, curated.Errorf(TruncatedCard, "Untitled", len(raw), CardSize)
	}

	c := &Card{
		Name:    "Untitled",
		Type:    ContainerRaw,
		Changed: true,
		cfg:     cfg,
	}

	c.load(raw[:CardSize])
	for i := range c.slots {
		c.slots[i].derive(c.cfg)
	}

	return c, nil
}

// load slots from card body.
func (c *Card) load(body []byte) {
	for i := range c.slots {
		o := headerOrigin + i*HeaderSize
		copy(c.slots[i].Header[:], body[o:o+HeaderSize])
		o = (i + 1) * BlockSize
		copy(c.slots[i].Data[:], body[o:o+BlockSize])
	}
}

// update checksums and derived fields of every slot. called after every
// mutation.
func (c *Card) update() {
	for i := range c.slots {
		c.slots[i].updateChecksum()
		c.slots[i].derive(c.cfg)
	}
	c.Changed = true
}

// Config returns the Config the card was created with.
func (c *Card) Config() Config {
	return c.cfg
}

func checkSlot(slot int) error {
	if slot < 0 || slot >= NumSlots {
		return curated.Errorf(SlotOutOfRange, slot)
	}
	return nil
}

// Slot returns a copy of the numbered slot.
func (c *Card) Slot(slot int) (Slot, error) {
	if err := checkSlot(slot); err != nil {
		return Slot{}, err
	}
	return c.slots[slot], nil
}

// Format every slot on the card.
func (c *Card) Format() {
	for i := range c.slots {
		c.slots[i].format()
	}
	c.update()
}

// Equal returns true if the card bodies of both cards are identical. Comments
// and container types are not compared.
func (c *Card) Equal(d *Card) bool {
	return bytes.Equal(c.Raw(), d.Raw())
}
