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

// Package sjis decodes the Shift-JIS encoded save titles found in the data
// block of a PS1 save.
//
// Two representations are available. Decode() returns the title as the
// native Japanese text. Transliterate() returns an approximation using only
// the halfwidth equivalents of the full-width punctuation and alphanumeric
// characters commonly used in titles. Characters with no equivalent are
// dropped by Transliterate().
package sjis
