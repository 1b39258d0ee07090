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

package shell

import (
	"sort"
	"strings"
)

// Shell keywords.
const (
	KeywordHelp    = "HELP"
	KeywordOpen    = "OPEN"
	KeywordNew     = "NEW"
	KeywordList    = "LIST"
	KeywordInfo    = "INFO"
	KeywordDelete  = "DELETE"
	KeywordRestore = "RESTORE"
	KeywordRemove  = "REMOVE"
	KeywordCopy    = "COPY"
	KeywordPaste   = "PASTE"
	KeywordExport  = "EXPORT"
	KeywordImport  = "IMPORT"
	KeywordSave    = "SAVE"
	KeywordComment = "COMMENT"
	KeywordHeader  = "HEADER"
	KeywordCompare = "COMPARE"
	KeywordIcon    = "ICON"
	KeywordPlugin  = "PLUGIN"
	KeywordPrefs   = "PREFS"
	KeywordLog     = "LOG"
	KeywordMemviz  = "MEMVIZ"
	KeywordQuit    = "QUIT"
)

// sub-commands of the ICON command.
const (
	IconFlipH  = "FLIPH"
	IconFlipV  = "FLIPV"
	IconLeft   = "LEFT"
	IconRight  = "RIGHT"
	IconExport = "EXPORT"
	IconImport = "IMPORT"
)

// sub-commands of the LOG command.
const (
	LogClear = "CLEAR"
)

// help contains the help text for the shell's commands.
var help = map[string]string{
	KeywordHelp:    "Lists commands and provides help for individual commands",
	KeywordOpen:    "Open a memory card file or URL. The current card is closed",
	KeywordNew:     "Create a new, formatted memory card. The current card is closed",
	KeywordList:    "List the slots of the memory card",
	KeywordInfo:    "Show detailed information about the save in a slot",
	KeywordDelete:  "Mark the save in a slot as deleted. All linked slots are also deleted",
	KeywordRestore: "Restore a deleted save. All linked slots are also restored",
	KeywordRemove:  "Remove the save in a slot completely, freeing the slots for reuse",
	KeywordCopy:    "Copy the save in a slot to the save buffer",
	KeywordPaste:   "Paste the save buffer into the card. Without a slot number the first free space is used",
	KeywordExport:  "Export the save in a slot to a single save file (formats: MCS, AR, RAW)",
	KeywordImport:  "Import a single save file. Without a slot number the first free space is used",
	KeywordSave:    "Save the memory card. Without a filename the card is saved to where it was opened from",
	KeywordComment: "Show or change the comment of a slot. Comments are only saved in the GME format",
	KeywordHeader:  "Change the product code, identifier and region of a save",
	KeywordCompare: "Compare the save in a slot with the save buffer",
	KeywordIcon:    "Flip, rotate, import or export a frame of a save's icon",
	KeywordPlugin:  "List plugins, or edit the save in a slot with a plugin",
	KeywordPrefs:   "Show the preferences, or change a preference",
	KeywordLog:     "Show the most recent log entries, or clear the log",
	KeywordMemviz:  "Write a graphviz description of the card structure to a file",
	KeywordQuit:    "Quit the shell",
}

// usage contains a brief description of the arguments of each command.
var usage = map[string]string{
	KeywordHelp:    "[command]",
	KeywordOpen:    "<file>",
	KeywordNew:     "",
	KeywordList:    "",
	KeywordInfo:    "<slot>",
	KeywordDelete:  "<slot>",
	KeywordRestore: "<slot>",
	KeywordRemove:  "<slot>",
	KeywordCopy:    "<slot>",
	KeywordPaste:   "[slot]",
	KeywordExport:  "<slot> [format] [file]",
	KeywordImport:  "<file> [slot]",
	KeywordSave:    "[file] [RAW|GME|VGS]",
	KeywordComment: "<slot> [text]",
	KeywordHeader:  "<slot> <product code> <identifier> [region]",
	KeywordCompare: "<slot>",
	KeywordIcon:    "<slot> [FLIPH|FLIPV|LEFT|RIGHT|EXPORT|IMPORT] [frame] [file]",
	KeywordPlugin:  "[slot] [plugin name]",
	KeywordPrefs:   "[key value]",
	KeywordLog:     "[number|CLEAR]",
	KeywordMemviz:  "<file>",
	KeywordQuit:    "",
}

// subCommands are the fixed words that can follow a keyword.
var subCommands = map[string][]string{
	KeywordIcon: {IconFlipH, IconFlipV, IconLeft, IconRight, IconExport, IconImport},
	KeywordLog:  {LogClear},
	KeywordSave: {"RAW", "GME", "VGS"},
}

// keywords is the sorted list of all keywords.
var keywords []string

func init() {
	for k := range help {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)

	// help can be given for every command
	subCommands[KeywordHelp] = keywords
}

// findKeyword returns the keyword matching the input. The input can be in
// any letter case.
func findKeyword(s string) (string, bool) {
	s = strings.ToUpper(s)
	_, ok := help[s]
	return s, ok
}
