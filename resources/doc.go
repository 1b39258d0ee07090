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

// Package resources contains functions to prepare paths for cardrex
// resources: the preferences file, the backup directory and the plugin
// directory.
//
// If a directory named ".cardrex" exists in the current working directory
// then that directory is used as the base path. This is the "portable" mode.
// Otherwise the user's configuration directory, as reported by
// os.UserConfigDir(), is used with a "cardrex" sub-directory.
//
// The CARDREX_HOME environment variable overrides both.
package resources
