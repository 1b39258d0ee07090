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

	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/memcard"
	"github.com/jetsetilly/cardrex/terminal"
)

func (sh *Shell) cmdPlugin(tk *tokens) error {
	if tk.IsEnd() {
		pl := sh.plugins.Plugins()
		if len(pl) == 0 {
			sh.print(terminal.StyleFeedback, "no plugins found")
			return nil
		}
		for _, p := range pl {
			sh.print(terminal.StyleListing, "%s", p.String())
		}
		return nil
	}

	slot, err := sh.slotArg(KeywordPlugin, tk)
	if err != nil {
		return err
	}

	s, err := sh.card.Slot(slot)
	if err != nil {
		return err
	}
	if s.Type != memcard.Initial {
		return curated.Errorf(BadArg, KeywordPlugin, fmt.Sprintf("slot %d is not the start of a save", slot))
	}

	if tk.IsEnd() {
		pl := sh.plugins.Supported(s.ProductCode)
		if len(pl) == 0 {
			sh.print(terminal.StyleFeedback, "no plugins support %s", s.ProductCode)
			return nil
		}
		for _, p := range pl {
			sh.print(terminal.StyleListing, "%s", p.String())
		}
		return nil
	}

	name := tk.Remainder()
	p, ok := sh.plugins.Find(name)
	if !ok {
		return curated.Errorf(BadArg, KeywordPlugin, fmt.Sprintf("no plugin named %s", name))
	}
	if !p.Supports(s.ProductCode) {
		return curated.Errorf(BadArg, KeywordPlugin, fmt.Sprintf("%s does not support %s", p.Name, s.ProductCode))
	}

	if ok, err := sh.confirm(fmt.Sprintf("edit slot %d with %s?", slot, p.Name)); !ok || err != nil {
		return err
	}

	ok, err = sh.card.TransformSave(slot, p)
	if err != nil {
		return err
	}
	if !ok {
		sh.print(terminal.StyleFeedback, "%s made no changes", p.Name)
		return nil
	}

	sh.print(terminal.StyleFeedback, "save in slot %d edited by %s", slot, p.Name)
	return nil
}
