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

// Package device transfers a memory card to and from a card reader, one frame
// at a time. A memory card is 1024 frames of 128 bytes.
//
// Card readers are represented by the Provider interface. The transport used
// to reach the reader is the concern of the Provider implementation. The Mock
// type is a Provider that keeps the card in memory, optionally backed by an
// image file.
//
// Every frame is accompanied by a checksum. The checksum is the XOR of the
// most significant byte of the frame number, the least significant byte of
// the frame number and all 128 bytes of the frame data. See Checksum().
package device
