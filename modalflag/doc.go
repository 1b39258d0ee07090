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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. Each mode can have its own set of flags and its own set of
// sub-modes.
//
// Arguments are given to the Modes type with NewArgs() and then Parse() is
// called without arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SHELL", "LIST", "EXPORT")
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode added is the default mode. After Parse(), Mode() returns
// the mode that was selected. If the first non-flag argument does not name a
// sub-mode then the default mode is selected and the argument remains
// available through RemainingArgs().
//
// Flags for the selected mode are declared after calling NewMode() and before
// the next call to Parse():
//
//	md.NewMode()
//	format := md.AddString("format", "raw", "container format")
//	md.Parse()
//
// Mode comparisons are case insensitive. Modes are always reported in upper
// case.
package modalflag
