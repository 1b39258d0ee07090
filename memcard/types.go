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
	"fmt"
	"strings"

	"github.com/jetsetilly/cardrex/curated"
)

// Sizes of the memory card and of its parts.
const (
	NumSlots   = 15
	HeaderSize = 128
	BlockSize  = 8192
	CardSize   = 16 * BlockSize

	// the size of the comment for each slot in the GME header
	CommentSize = 256

	// the largest single save that will be read
	MaxSingleSaveSize = HeaderSize + NumSlots*BlockSize
)

// byte offsets in the directory block.
const (
	headerOrigin    = HeaderSize
	reservedOrigin  = HeaderSize * (NumSlots + 1)
	reservedEntries = 20
	mirrorOrigin    = BlockSize - HeaderSize
)

// ContainerType is the outer format of a memory card image.
type ContainerType int

// List of valid ContainerType values.
const (
	ContainerNone ContainerType = iota
	ContainerRaw
	ContainerGME
	ContainerVGS
	ContainerVMP
)

// container header sizes.
const (
	GMEHeaderSize = 64 + NumSlots*CommentSize
	VGSHeaderSize = 64
	VMPHeaderSize = 128
)

func (t ContainerType) String() string {
	switch t {
	case ContainerRaw:
		return "Raw"
	case ContainerGME:
		return "GME"
	case ContainerVGS:
		return "VGS"
	case ContainerVMP:
		return "VMP"
	}
	return "none"
}

// Offset returns the number of bytes in the container before the card body.
func (t ContainerType) Offset() int {
	switch t {
	case ContainerGME:
		return GMEHeaderSize
	case ContainerVGS:
		return VGSHeaderSize
	case ContainerVMP:
		return VMPHeaderSize
	}
	return 0
}

// Writable returns true if cards can be serialised to the container type.
func (t ContainerType) Writable() bool {
	switch t {
	case ContainerRaw, ContainerGME, ContainerVGS:
		return true
	}
	return false
}

// ParseContainerType converts a string to a ContainerType. Accepts the type
// names in any letter case, as well as common filename extensions.
func ParseContainerType(s string) (ContainerType, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "raw", "mcr", "bin", "mcd", "mc", "mem", "ddf", "ps", "psm", "mci", "srm", "vm1", "vmc":
		return ContainerRaw, nil
	case "gme":
		return ContainerGME, nil
	case "vgs", "mem2":
		return ContainerVGS, nil
	case "vmp":
		return ContainerVMP, nil
	}
	return ContainerNone, curated.Errorf("memcard: unrecognised container type (%s)", s)
}

// SaveType is the state of a save slot, as indicated by the first byte of the
// slot header.
type SaveType int

// List of valid SaveType values. Corrupted is used for any header byte that is
// not one of the other types.
const (
	Formatted SaveType = iota
	Initial
	MiddleLink
	EndLink
	DeletedInitial
	DeletedMiddleLink
	DeletedEndLink
	Corrupted
)

// the header tag for each SaveType, indexed by SaveType.
var saveTypeTags = [...]byte{0xa0, 0x51, 0x52, 0x53, 0xa1, 0xa2, 0xa3}

// Tag returns the header byte for the SaveType. Corrupted has no tag and
// returns 0xff.
func (t SaveType) Tag() byte {
	if t < 0 || int(t) >= len(saveTypeTags) {
		return 0xff
	}
	return saveTypeTags[t]
}

func classifySaveType(tag byte) SaveType {
	for i, v := range saveTypeTags {
		if v == tag {
			return SaveType(i)
		}
	}
	return Corrupted
}

func (t SaveType) String() string {
	switch t {
	case Formatted:
		return "Free"
	case Initial:
		return "Initial"
	case MiddleLink:
		return "Middle link"
	case EndLink:
		return "End link"
	case DeletedInitial:
		return "Deleted initial"
	case DeletedMiddleLink:
		return "Deleted middle link"
	case DeletedEndLink:
		return "Deleted end link"
	}
	return "Corrupted"
}

// Deleted returns true if the SaveType is one of the deleted types.
func (t SaveType) Deleted() bool {
	return t == DeletedInitial || t == DeletedMiddleLink || t == DeletedEndLink
}

// toggled returns the deleted type for an active type and vice versa. Other
// types are returned unchanged.
func (t SaveType) toggled() SaveType {
	switch t {
	case Initial:
		return DeletedInitial
	case MiddleLink:
		return DeletedMiddleLink
	case EndLink:
		return DeletedEndLink
	case DeletedInitial:
		return Initial
	case DeletedMiddleLink:
		return MiddleLink
	case DeletedEndLink:
		return EndLink
	}
	return t
}

// Region of a save, stored little-endian in bytes 10 and 11 of the slot
// header. Values other than the three known regions are allowed.
type Region uint16

// List of known regions. The values are the ASCII strings "BA", "BE" and "BI"
// in little-endian order.
const (
	RegionAmerica Region = 0x4142
	RegionEurope  Region = 0x4542
	RegionJapan   Region = 0x4942
)

func (r Region) String() string {
	switch r {
	case RegionAmerica:
		return "America"
	case RegionEurope:
		return "Europe"
	case RegionJapan:
		return "Japan"
	}
	return fmt.Sprintf("0x%04X", uint16(r))
}

// ParseRegion converts a region name or a 16 bit hexadecimal value to a Region.
func ParseRegion(s string) (Region, error) {
	switch strings.ToLower(s) {
	case "america", "us", "usa", "ba":
		return RegionAmerica, nil
	case "europe", "eu", "pal", "be":
		return RegionEurope, nil
	case "japan", "jp", "bi":
		return RegionJapan, nil
	}

	var v uint16
	if _, err := fmt.Sscanf(strings.ToLower(s), "0x%x", &v); err != nil {
		return 0, curated.Errorf("memcard: unrecognised region (%s)", s)
	}
	return Region(v), nil
}
