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

// Package archivefs allows files inside zip archives to be addressed as
// though the archive was a directory. For example:
//
//	saves/collection.zip/ff7/BASLUS-00557.mcs
//
// Paths that do not pass through an archive refer to files on disk in the
// normal way.
package archivefs

// Open the named file and return its contents. The filename can refer to a
// file inside a zip archive.
func Open(filename string) ([]byte, error) {
	var afs Path
	if err := afs.Set(filename); err != nil {
		return nil, err
	}
	defer afs.Close()
	return afs.Read()
}
