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

// Package logger is the central log for the application. Entries are made up
// of a tag and a detail string. The tag should identify the subsystem making
// the entry (eg. "memcard", "plugins") and the detail should be a single line.
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count.
//
// Logging can be gated with the Permission interface. The Allow value should
// be used when an entry should always be made.
package logger
