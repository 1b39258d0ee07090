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

// Error patterns returned by the package. Use curated.Is() to test for a
// specific error.
const (
	UnsupportedFormat = "memcard: '%s' is not a supported memory card format"
	TruncatedCard     = "memcard: '%s' is truncated (%d bytes of card data, %d required)"
	UnsupportedWrite  = "memcard: writing %s format is not supported"
	SlotOutOfRange    = "memcard: slot number out of range (%d)"
	NotEnoughSlots    = "memcard: %d free slots are required"
	InvalidSave       = "memcard: invalid save: %s"
	UnsupportedSave   = "memcard: unsupported single save: %s"
	NotExportable     = "memcard: slot %d is %s"
	InvalidIconData   = "memcard: icon data must be %d bytes (not %d)"
	SizeMismatch      = "memcard: saves are of different sizes (%d and %d)"
)
