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
	"path/filepath"
	"strings"

	"github.com/jetsetilly/cardrex/curated"
)

// SaveFormat is the format of a single save file.
type SaveFormat int

// List of valid SaveFormat values.
const (
	// the full save as stored on the card: 128 byte header followed by the
	// data blocks. also known as PSXGameEdit or Memory Juggler format
	FormatMCS SaveFormat = iota

	// 54 byte header followed by the data blocks. used by Action Replay,
	// GameShark, Xploder and Caetla
	FormatActionReplay

	// the data blocks without a header. the filename is used as the region,
	// product code and identifier
	FormatRaw

	// PS3 virtual save. import only
	FormatPSV
)

func (f SaveFormat) String() string {
	switch f {
	case FormatMCS:
		return "MCS"
	case FormatActionReplay:
		return "Action Replay"
	case FormatRaw:
		return "Raw"
	case FormatPSV:
		return "PSV"
	}
	return "unknown"
}

// ParseSaveFormat converts a string to a SaveFormat. Accepts format names and
// common filename extensions.
func ParseSaveFormat(s string) (SaveFormat, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "mcs", "ps1":
		return FormatMCS, nil
	case "ar", "psx", "mcb", "mcx", "pda":
		return FormatActionReplay, nil
	case "raw":
		return FormatRaw, nil
	case "psv":
		return FormatPSV, nil
	}
	return FormatMCS, curated.Errorf(UnsupportedSave, s)
}

// offsets in the Action Replay header.
const (
	arHeaderSize = 54
	arTitle      = 21

	// the first two bytes of the save data follow the header
	arMagic = arHeaderSize
)

// offsets in the PSV header.
const (
	psvPlatform = 60
	psvHeader   = 100
	psvData     = 132
)

// the length of the region, product code and identifier in the slot header.
const headerCodeLen = hdrEnd - hdrRegion

// DetectSaveFormat returns the format of the single save file data.
func DetectSaveFormat(data []byte) (SaveFormat, error) {
	var sig string
	if len(data) > 1 {
		sig = strings.Trim(string(data[:2]), "\x00")
	}

	switch sig {
	case "Q":
		return FormatMCS, nil
	case "SC":
		return FormatRaw, nil
	case "V":
		return FormatPSV, nil
	}

	if len(data) >= arMagic+2 && data[arMagic] == 'S' && data[arMagic+1] == 'C' {
		return FormatActionReplay, nil
	}

	return FormatMCS, curated.Errorf(UnsupportedSave, "unrecognised signature")
}

// ToSaveBytes converts a single save file to a save suitable for
// Card.SetSaveBytes(). The filename is used by the raw single save format.
// Data beyond the largest possible save is ignored.
func ToSaveBytes(data []byte, filename string, cfg Config) ([]byte, error) {
	if len(data) > MaxSingleSaveSize {
		data = data[:MaxSingleSaveSize]
	}

	f, err := DetectSaveFormat(data)
	if err != nil {
		return nil, err
	}

	var save []byte

	switch f {
	case FormatMCS:
		if len(data) < HeaderSize {
			return nil, curated.Errorf(InvalidSave, "shorter than a slot header")
		}
		save = make([]byte, len(data))
		copy(save, data)

	case FormatRaw:
		save = make([]byte, len(data)+HeaderSize)
		name := cfg.encode(filepath.Base(filename))
		if len(name) > headerCodeLen {
			name = name[:headerCodeLen]
		}
		copy(save[hdrRegion:], name)
		copy(save[HeaderSize:], data)

	case FormatPSV:
		if len(data) < psvData {
			return nil, curated.Errorf(InvalidSave, "PSV file is truncated")
		}
		if data[psvPlatform] != 1 {
			return nil, curated.Errorf(UnsupportedSave, "PSV file is not a PS1 save")
		}
		save = make([]byte, len(data)-4)
		copy(save[hdrRegion:hdrEnd], data[psvHeader:psvHeader+headerCodeLen])
		copy(save[HeaderSize:], data[psvData:])

	case FormatActionReplay:
		save = make([]byte, len(data)-arHeaderSize+HeaderSize)
		copy(save[hdrRegion:hdrEnd], data[:headerCodeLen])
		copy(save[HeaderSize:], data[arHeaderSize:])
	}

	save[hdrType] = Initial.Tag()

	return save, nil
}

// ImportSave adds the single save file to the card, beginning at the numbered
// slot. The number of required slots is always returned, even on error.
func (c *Card) ImportSave(slot int, data []byte, filename string) (int, error) {
	if err := checkSlot(slot); err != nil {
		return 0, err
	}

	save, err := ToSaveBytes(data, filename, c.cfg)
	if err != nil {
		return 0, err
	}

	return c.SetSaveBytes(slot, save)
}

// check that the numbered slot can be exported. only initial slots are
// exportable.
func (c *Card) exportable(slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}

	switch c.slots[slot].Type {
	case Initial:
		return nil
	case DeletedInitial:
		return curated.Errorf(NotExportable, slot, "deleted")
	case MiddleLink, EndLink, DeletedMiddleLink, DeletedEndLink:
		return curated.Errorf(NotExportable, slot, "linked")
	case Formatted:
		return curated.Errorf(NotExportable, slot, "free")
	}
	return curated.Errorf(NotExportable, slot, "corrupted")
}

// ExportSave returns the save in the numbered slot in the single save format.
// Only the initial slot of a save can be exported. Deleted saves must be
// restored before they can be exported.
func (c *Card) ExportSave(slot int, f SaveFormat) ([]byte, error) {
	if err := c.exportable(slot); err != nil {
		return nil, err
	}

	save, err := c.GetSaveBytes(slot)
	if err != nil {
		return nil, err
	}

	switch f {
	case FormatMCS:
		return save, nil

	case FormatRaw:
		return save[HeaderSize:], nil

	case FormatActionReplay:
		out := make([]byte, arHeaderSize, arHeaderSize+len(save)-HeaderSize)
		copy(out, save[hdrRegion:hdrEnd])
		copy(out[arTitle:arHeaderSize], c.cfg.encode(c.slots[slot].Title))
		return append(out, save[HeaderSize:]...), nil
	}

	return nil, curated.Errorf(UnsupportedWrite, f)
}
