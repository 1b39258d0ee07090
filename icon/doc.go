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

// Package icon edits the icons of a PS1 save. The icons of a save are a
// sixteen colour palette and three 16x16 frames of four bit pixels. All three
// frames share the palette.
//
// Icon data is exchanged with the memcard package in the form returned by
// Card.IconBytes() and accepted by Card.SetIconBytes().
//
// Frames can be flipped and rotated, imported from an image file, or exported
// as BMP, GIF, JPEG or PNG. All frames can be exported as an animated GIF.
package icon
