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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/cardrex/cardloader"
	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/logger"
	"github.com/jetsetilly/cardrex/memcard"
	"github.com/jetsetilly/cardrex/terminal"
)

// the number of log entries shown by the LOG command by default.
const defaultLogTail = 20

func (sh *Shell) execute(keyword string, tk *tokens) error {
	switch keyword {
	case KeywordHelp:
		return sh.cmdHelp(tk)
	case KeywordOpen:
		return sh.cmdOpen(tk)
	case KeywordNew:
		return sh.cmdNew()
	case KeywordList:
		return sh.cmdList()
	case KeywordInfo:
		return sh.cmdInfo(tk)
	case KeywordDelete:
		return sh.cmdDelete(tk, true)
	case KeywordRestore:
		return sh.cmdDelete(tk, false)
	case KeywordRemove:
		return sh.cmdRemove(tk)
	case KeywordCopy:
		return sh.cmdCopy(tk)
	case KeywordPaste:
		return sh.cmdPaste(tk)
	case KeywordExport:
		return sh.cmdExport(tk)
	case KeywordImport:
		return sh.cmdImport(tk)
	case KeywordSave:
		return sh.cmdSave(tk)
	case KeywordComment:
		return sh.cmdComment(tk)
	case KeywordHeader:
		return sh.cmdHeader(tk)
	case KeywordCompare:
		return sh.cmdCompare(tk)
	case KeywordIcon:
		return sh.cmdIcon(tk)
	case KeywordPlugin:
		return sh.cmdPlugin(tk)
	case KeywordPrefs:
		return sh.cmdPrefs(tk)
	case KeywordLog:
		return sh.cmdLog(tk)
	case KeywordMemviz:
		return sh.cmdMemviz(tk)
	case KeywordQuit:
		return sh.cmdQuit()
	}

	return curated.Errorf(UnknownCommand, keyword)
}

func (sh *Shell) cmdHelp(tk *tokens) error {
	if s, ok := tk.Get(); ok {
		kw, ok := findKeyword(s)
		if !ok {
			return curated.Errorf(UnknownCommand, s)
		}
		sh.print(terminal.StyleHelp, "%s", strings.TrimSpace(fmt.Sprintf("%s %s", kw, usage[kw])))
		sh.print(terminal.StyleHelp, "  %s", help[kw])
		return nil
	}

	const columns = 6

	var s strings.Builder
	for i, k := range keywords {
		s.WriteString(fmt.Sprintf("%-10s", k))
		if (i+1)%columns == 0 || i == len(keywords)-1 {
			sh.print(terminal.StyleHelp, "%s", strings.TrimSpace(s.String()))
			s.Reset()
		}
	}

	return nil
}

// continueWithChanges asks the user whether to continue with an operation that
// will lose the changes to the current card.
func (sh *Shell) continueWithChanges() (bool, error) {
	if !sh.card.Changed {
		return true, nil
	}
	return sh.confirm("the card has unsaved changes. continue?")
}

func (sh *Shell) cmdOpen(tk *tokens) error {
	fn, ok := tk.Get()
	if !ok {
		return curated.Errorf(MissingArg, KeywordOpen, "filename")
	}

	if ok, err := sh.continueWithChanges(); !ok || err != nil {
		return err
	}

	if err := sh.Open(fn); err != nil {
		return err
	}

	sh.print(terminal.StyleFeedback, "%s opened (%s)", sh.card.Name, sh.card.Type)
	return nil
}

func (sh *Shell) cmdNew() error {
	if ok, err := sh.continueWithChanges(); !ok || err != nil {
		return err
	}

	sh.card = memcard.NewCard(sh.cfg)
	sh.card.Type = sh.prefs.Container()
	sh.print(terminal.StyleFeedback, "new card created")
	return nil
}

// summary returns the single line description of a slot used by LIST.
func (sh *Shell) summary(i int, s memcard.Slot) string {
	switch s.Type {
	case memcard.Initial, memcard.DeletedInitial:
		title := s.Title
		if sh.prefs.NativeTitles() {
			title = s.NativeTitle
		}

		var deleted string
		if s.Type.Deleted() {
			deleted = " (deleted)"
		}

		return fmt.Sprintf("%2d  %-7s %-10s %-8s %3dKB  %s%s", i, s.Region, s.ProductCode, s.Identifier, s.Size, title, deleted)
	}

	return fmt.Sprintf("%2d  %s", i, strings.ToLower(s.Type.String()))
}

func (sh *Shell) cmdList() error {
	for i := 0; i < memcard.NumSlots; i++ {
		s, err := sh.card.Slot(i)
		if err != nil {
			return err
		}
		sh.print(terminal.StyleListing, "%s", sh.summary(i, s))
	}
	return nil
}

func (sh *Shell) cmdInfo(tk *tokens) error {
	slot, err := sh.slotArg(KeywordInfo, tk)
	if err != nil {
		return err
	}

	s, err := sh.card.Slot(slot)
	if err != nil {
		return err
	}

	sh.print(terminal.StyleFeedback, "type: %s", s.Type)

	switch s.Type {
	case memcard.Initial, memcard.DeletedInitial:
		sh.print(terminal.StyleFeedback, "region: %s", s.Region)
		sh.print(terminal.StyleFeedback, "product code: %s", s.ProductCode)
		sh.print(terminal.StyleFeedback, "identifier: %s", s.Identifier)
		sh.print(terminal.StyleFeedback, "title: %s", s.Title)
		sh.print(terminal.StyleFeedback, "native title: %s", s.NativeTitle)
		sh.print(terminal.StyleFeedback, "size: %dKB", s.Size)
		sh.print(terminal.StyleFeedback, "icon frames: %d", s.IconFrames)

		links, err := sh.card.FindSaveLinks(slot)
		if err != nil {
			return err
		}
		l := make([]string, len(links))
		for i := range links {
			l[i] = strconv.Itoa(links[i])
		}
		sh.print(terminal.StyleFeedback, "slots: %s", strings.Join(l, ", "))

	case memcard.MiddleLink, memcard.EndLink, memcard.DeletedMiddleLink, memcard.DeletedEndLink:
		head, err := sh.card.FindSaveHead(slot)
		if err != nil {
			return err
		}
		sh.print(terminal.StyleFeedback, "part of save in slot %d", head)
	}

	if !s.ChecksumValid {
		sh.print(terminal.StyleFeedback, "checksum: invalid")
	}
	if s.Comment != "" {
		sh.print(terminal.StyleFeedback, "comment: %s", s.Comment)
	}

	return nil
}

func (sh *Shell) cmdDelete(tk *tokens, del bool) error {
	keyword := KeywordDelete
	if !del {
		keyword = KeywordRestore
	}

	slot, err := sh.slotArg(keyword, tk)
	if err != nil {
		return err
	}

	head, err := sh.card.FindSaveHead(slot)
	if err != nil {
		return err
	}
	s, err := sh.card.Slot(head)
	if err != nil {
		return err
	}

	switch s.Type {
	case memcard.Formatted, memcard.Corrupted:
		return curated.Errorf(BadArg, keyword, fmt.Sprintf("slot %d does not contain a save", slot))
	}

	if s.Type.Deleted() == del {
		if del {
			return curated.Errorf(BadArg, keyword, fmt.Sprintf("slot %d is already deleted", slot))
		}
		return curated.Errorf(BadArg, keyword, fmt.Sprintf("slot %d is not deleted", slot))
	}

	if err := sh.card.ToggleDeleteSave(head); err != nil {
		return err
	}

	if del {
		sh.print(terminal.StyleFeedback, "save in slot %d deleted", head)
	} else {
		sh.print(terminal.StyleFeedback, "save in slot %d restored", head)
	}

	return nil
}

func (sh *Shell) cmdRemove(tk *tokens) error {
	slot, err := sh.slotArg(KeywordRemove, tk)
	if err != nil {
		return err
	}

	s, err := sh.card.Slot(slot)
	if err != nil {
		return err
	}
	if s.Type == memcard.Formatted {
		return curated.Errorf(BadArg, KeywordRemove, fmt.Sprintf("slot %d is already free", slot))
	}

	if ok, err := sh.confirm("the save will be removed permanently. continue?"); !ok || err != nil {
		return err
	}

	if err := sh.card.FormatSave(slot); err != nil {
		return err
	}

	sh.print(terminal.StyleFeedback, "save in slot %d removed", slot)
	return nil
}

func (sh *Shell) cmdCopy(tk *tokens) error {
	slot, err := sh.slotArg(KeywordCopy, tk)
	if err != nil {
		return err
	}

	b, err := sh.card.ExportSave(slot, memcard.FormatMCS)
	if err != nil {
		return err
	}

	s, err := sh.card.Slot(slot)
	if err != nil {
		return err
	}

	sh.buffer = b
	sh.bufferName = s.ProductCode
	sh.print(terminal.StyleFeedback, "%s copied to the save buffer (%d slots)", sh.bufferName, memcard.RequiredSlots(len(b)))

	return nil
}

func (sh *Shell) cmdPaste(tk *tokens) error {
	slot, err := sh.optionalSlotArg(KeywordPaste, tk)
	if err != nil {
		return err
	}

	if len(sh.buffer) == 0 {
		return curated.Errorf(EmptyBuffer)
	}

	return sh.insert(slot, sh.buffer, sh.bufferName)
}

// insert the save into the card at the numbered slot. a slot of -1 means
// the first free space.
func (sh *Shell) insert(slot int, save []byte, name string) error {
	var err error

	if slot == -1 {
		slot, err = sh.freeSpace(len(save))
		if err != nil {
			return err
		}
	}

	n, err := sh.card.SetSaveBytes(slot, save)
	if err != nil {
		return err
	}

	sh.print(terminal.StyleFeedback, "%s added at slot %d (%d slots)", name, slot, n)
	return nil
}

// extensions for exported single saves.
var saveExtensions = map[memcard.SaveFormat]string{
	memcard.FormatMCS:          ".mcs",
	memcard.FormatActionReplay: ".psx",
	memcard.FormatRaw:          "",
}

func (sh *Shell) cmdExport(tk *tokens) error {
	slot, err := sh.slotArg(KeywordExport, tk)
	if err != nil {
		return err
	}

	f := memcard.FormatMCS
	var fn string

	if s, ok := tk.Get(); ok {
		if sf, err := memcard.ParseSaveFormat(s); err == nil {
			f = sf
			fn, _ = tk.Get()
		} else {
			fn = s
			if sf, err := memcard.ParseSaveFormat(filepath.Ext(s)); err == nil {
				f = sf
			}
		}
	}

	b, err := sh.card.ExportSave(slot, f)
	if err != nil {
		return err
	}

	if fn == "" {
		fn, err = sh.card.ExportName(slot)
		if err != nil {
			return err
		}
		fn += saveExtensions[f]
	}

	if err := os.WriteFile(fn, b, 0o644); err != nil {
		return curated.Errorf("shell: %v", err)
	}

	sh.print(terminal.StyleFeedback, "slot %d exported to %s (%s)", slot, fn, f)
	return nil
}

func (sh *Shell) cmdImport(tk *tokens) error {
	fn, ok := tk.Get()
	if !ok {
		return curated.Errorf(MissingArg, KeywordImport, "filename")
	}

	slot, err := sh.optionalSlotArg(KeywordImport, tk)
	if err != nil {
		return err
	}

	ld := cardloader.NewLoader(fn)
	save, err := ld.Save(sh.cfg)
	if err != nil {
		return err
	}

	return sh.insert(slot, save, ld.ShortName())
}

func (sh *Shell) cmdSave(tk *tokens) error {
	fn := sh.card.Location
	typ := memcard.ContainerNone

	for !tk.IsEnd() {
		s, _ := tk.Get()
		switch strings.ToUpper(s) {
		case "RAW", "GME", "VGS":
			typ, _ = memcard.ParseContainerType(s)
		default:
			fn = s
			if typ == memcard.ContainerNone {
				if t, err := memcard.ParseContainerType(filepath.Ext(s)); err == nil && t.Writable() {
					typ = t
				}
			}
		}
	}

	if fn == "" {
		return curated.Errorf(MissingArg, KeywordSave, "filename")
	}

	if typ == memcard.ContainerNone {
		typ = sh.card.Type
		if !typ.Writable() {
			typ = sh.prefs.Container()
		}
	}

	if err := sh.card.SaveFile(fn, typ); err != nil {
		return err
	}

	sh.print(terminal.StyleFeedback, "saved to %s (%s)", fn, typ)
	return nil
}

func (sh *Shell) cmdComment(tk *tokens) error {
	slot, err := sh.slotArg(KeywordComment, tk)
	if err != nil {
		return err
	}

	if tk.IsEnd() {
		s, err := sh.card.Slot(slot)
		if err != nil {
			return err
		}
		sh.print(terminal.StyleFeedback, "comment: %s", s.Comment)
		return nil
	}

	if err := sh.card.SetComment(slot, tk.Remainder()); err != nil {
		return err
	}

	if sh.card.Type != memcard.ContainerGME {
		sh.print(terminal.StyleInfo, "comments are only saved in the GME format")
	}

	return nil
}

func (sh *Shell) cmdHeader(tk *tokens) error {
	slot, err := sh.slotArg(KeywordHeader, tk)
	if err != nil {
		return err
	}

	productCode, ok := tk.Get()
	if !ok {
		return curated.Errorf(MissingArg, KeywordHeader, "product code")
	}
	identifier, ok := tk.Get()
	if !ok {
		return curated.Errorf(MissingArg, KeywordHeader, "identifier")
	}

	s, err := sh.card.Slot(slot)
	if err != nil {
		return err
	}
	region := s.Region

	if r, ok := tk.Get(); ok {
		region, err = memcard.ParseRegion(r)
		if err != nil {
			return err
		}
	}

	if err := sh.card.SetHeader(slot, productCode, identifier, region); err != nil {
		return err
	}

	sh.print(terminal.StyleFeedback, "header of slot %d changed", slot)
	return nil
}

func (sh *Shell) cmdCompare(tk *tokens) error {
	slot, err := sh.slotArg(KeywordCompare, tk)
	if err != nil {
		return err
	}

	if len(sh.buffer) == 0 {
		return curated.Errorf(EmptyBuffer)
	}

	save, err := sh.card.ExportSave(slot, memcard.FormatMCS)
	if err != nil {
		return err
	}

	diff, err := memcard.Compare(sh.buffer, save)
	if err != nil {
		return err
	}

	if len(diff) == 0 {
		sh.print(terminal.StyleFeedback, "saves are identical")
		return nil
	}

	sh.print(terminal.StyleFeedback, "offset: buffer slot")
	for _, d := range diff {
		sh.print(terminal.StyleListing, "%s", d.String())
	}
	sh.print(terminal.StyleFeedback, "%d differences", len(diff))

	return nil
}

func (sh *Shell) cmdPrefs(tk *tokens) error {
	if tk.IsEnd() {
		for _, l := range strings.Split(strings.TrimSpace(sh.prefs.String()), "\n") {
			sh.print(terminal.StyleFeedback, "%s", l)
		}
		return nil
	}

	key, _ := tk.Get()
	if tk.IsEnd() {
		return curated.Errorf(MissingArg, KeywordPrefs, "value")
	}

	if err := sh.prefs.Set(key, tk.Remainder()); err != nil {
		return curated.Errorf("shell: %v", err)
	}

	return sh.prefs.Save()
}

func (sh *Shell) cmdLog(tk *tokens) error {
	n := defaultLogTail

	if s, ok := tk.Get(); ok {
		if strings.EqualFold(s, LogClear) {
			logger.Clear()
			return nil
		}

		var err error
		n, err = strconv.Atoi(s)
		if err != nil || n < 1 {
			return curated.Errorf(BadArg, KeywordLog, fmt.Sprintf("not a number of entries (%s)", s))
		}
	}

	var s strings.Builder
	logger.Tail(&s, n)
	for _, l := range strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n") {
		if l != "" {
			sh.print(terminal.StyleInfo, "%s", l)
		}
	}

	return nil
}

func (sh *Shell) cmdMemviz(tk *tokens) error {
	fn, ok := tk.Get()
	if !ok {
		return curated.Errorf(MissingArg, KeywordMemviz, "filename")
	}

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("shell: %v", err)
	}
	defer f.Close()

	memviz.Map(f, sh.card)

	sh.print(terminal.StyleFeedback, "card structure written to %s", fn)
	return nil
}

func (sh *Shell) cmdQuit() error {
	if ok, err := sh.continueWithChanges(); !ok || err != nil {
		return err
	}
	sh.quit = true
	return nil
}
