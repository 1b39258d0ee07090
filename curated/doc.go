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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages that return
// expected errors export their patterns as constants and callers test for them
// with the Is() and Has() functions:
//
//	if curated.Is(err, memcard.NotEnoughSlots) {
//		...
//	}
//
// Is() only checks the outermost error. Has() checks the outermost error and
// every curated error used as a placeholder value, at any depth.
//
// The Error() function normalises the message chain. Chains are composed of
// parts separated by the sub-string ': ' and adjacent duplicate parts are
// removed. Wrapping an error with the package prefix that the error already
// carries therefore does not repeat the prefix:
//
//	e := curated.Errorf("memcard: %v", curated.Errorf("memcard: slot number out of range (%d)", 20))
//
// prints as "memcard: slot number out of range (20)".
//
// Uncurated errors placed in the values list are available to the errors
// package of the standard library through the Unwrap() function. This means
// that errors.Is(err, fs.ErrNotExist) continues to work for file errors that
// have been wrapped by a curated error.
package curated
