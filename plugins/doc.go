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

// Package plugins runs external programs that edit the saves on a memory
// card.
//
// A plugin is described by a manifest file with the .plugin extension. The
// manifest is a list of "key :: value" lines. For example:
//
//	name :: Max Money
//	author :: A. N. Other
//	games :: Final Fantasy VII
//	codes :: SCUS-94163, SCES-00867
//	command :: ff7edit --money
//
// The codes entry is a comma separated list of product codes. The special
// code "*.*" means that the plugin supports every save. A command that is not
// an absolute path is taken to be relative to the directory containing the
// manifest, if such a file exists, otherwise it is looked for in the PATH.
//
// The command is run with the product code of the save as the final argument
// and the save bytes are written to its standard input. The edited save is
// read from the standard output. A plugin that exits with status 1, or that
// exits without writing anything, has declined to edit the save.
//
// The Plugin type implements the memcard.Transformer interface.
package plugins
