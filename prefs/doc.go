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

// Package prefs facilitates the storage of preferences on disk.
//
// A preferences value is declared with one of the types in this package.
// For example:
//
//	var backup prefs.Bool
//
// The value is then associated with a key in a Disk instance:
//
//	dsk, _ := prefs.NewDisk(filename)
//	dsk.Add("cardrex.backup", &backup)
//
// Save() and Load() move all values associated with the Disk to and from the
// file. Values in the file that are not associated with the Disk instance are
// preserved on Save().
//
// Values can also be supplied on the command line, in the form of key::value
// pairs separated by a semicolon. A group is added with
// PushCommandLineStack(); when Load() is next called any value for a key in
// the top-most group takes precedence over the value on disk.
package prefs
