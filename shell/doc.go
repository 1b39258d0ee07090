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

// Package shell is an interactive command line for examining and editing
// memory cards. Commands are read from a terminal.Terminal and results are
// printed to it.
//
// One memory card is open at any time. Saves can be moved between cards with
// the COPY and PASTE commands, which use a buffer that survives the opening of
// a different card. The HELP command lists all commands.
//
// Slots are numbered from 0 to 14.
package shell
