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

// Package memcard reads, edits and writes PS1 memory card images.
//
// A memory card is 131072 bytes long, divided into sixteen blocks of 8192
// bytes. The first block is the directory. It contains a card signature, a
// 128 byte header for each of the fifteen save slots, and twenty reserved
// entries. The remaining fifteen blocks are the data blocks of the save
// slots.
//
// Card images are found on disk in one of several containers. The Raw
// container is the card body without any wrapper. The GME, VGS and VMP
// containers prepend a header of their own, which is discarded when the card
// is parsed (the GME header carries a comment for each slot, which is kept).
// The VMP container can be read but not written.
//
// A save larger than 8192 bytes occupies more than one slot. The slots form
// a chain, linked by the next-slot pointer in each slot header. Operations
// that take a slot number act on the entire chain the slot belongs to.
//
// Individual saves can be imported from and exported to the single save
// formats supported by third-party tools: MCS, Action Replay (and
// compatible), Raw and PSV (import only).
//
// Every mutating operation recalculates the header checksums and all the
// derived fields of every slot before returning. A Card is not safe for
// concurrent use.
package memcard
