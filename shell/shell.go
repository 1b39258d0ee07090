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
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/cardrex/backup"
	"github.com/jetsetilly/cardrex/cardloader"
	"github.com/jetsetilly/cardrex/curated"
	"github.com/jetsetilly/cardrex/logger"
	"github.com/jetsetilly/cardrex/memcard"
	"github.com/jetsetilly/cardrex/plugins"
	"github.com/jetsetilly/cardrex/prefs"
	"github.com/jetsetilly/cardrex/terminal"
)

// maximum length of a line of input.
const inputLen = 255

// Error patterns.
const (
	UnknownCommand = "shell: unknown command (%s)"
	MissingArg     = "shell: %s: missing %s"
	BadArg         = "shell: %s: %s"
	EmptyBuffer    = "shell: the save buffer is empty"
	NoFreeSlots    = "shell: no room for a save of %d slots"
)

// Shell is an interactive command line for a memory card.
type Shell struct {
	term  terminal.Terminal
	prefs *Preferences
	cfg   memcard.Config

	card *memcard.Card

	// the save buffer used by COPY and PASTE. the buffer survives the
	// opening of another card
	buffer     []byte
	bufferName string

	plugins *plugins.Registry

	// events monitored by the terminal during input
	Events *terminal.ReadEvents

	quit bool
}

// NewShell is the preferred method of initialisation for the Shell type. The
// shell starts with a new, formatted memory card.
func NewShell(term terminal.Terminal, p *Preferences) (*Shell, error) {
	sh := &Shell{
		term:   term,
		prefs:  p,
		Events: &terminal.ReadEvents{},
	}

	var err error

	sh.cfg, err = p.Config()
	if err != nil {
		return nil, err
	}

	sh.plugins, err = plugins.NewRegistry(p.PluginDir.String())
	if err != nil {
		return nil, err
	}

	sh.card = memcard.NewCard(sh.cfg)

	// changes to the codepage take effect for cards opened after the change
	p.Codepage.SetHookPost(func(_ prefs.Value) error {
		cfg, err := p.Config()
		if err != nil {
			return err
		}
		sh.cfg = cfg
		return nil
	})

	return sh, nil
}

// Card returns the currently open memory card.
func (sh *Shell) Card() *memcard.Card {
	return sh.card
}

// Open the memory card file or URL. The file is backed up if the Backup
// preference is set.
func (sh *Shell) Open(filename string) error {
	ld := cardloader.NewLoader(filename)
	c, err := ld.Card(sh.cfg)
	if err != nil {
		return err
	}

	if sh.prefs.Backup.Get().(bool) && ld.IsLocal() {
		if dest, err := backup.Card(filename); err != nil {
			logger.Log(logger.Allow, "shell", err.Error())
		} else {
			sh.print(terminal.StyleInfo, "backup created: %s", dest)
		}
	}

	sh.card = c
	return nil
}

// SetCard makes the card the currently open memory card.
func (sh *Shell) SetCard(c *memcard.Card) {
	sh.card = c
}

func (sh *Shell) print(style terminal.Style, s string, a ...interface{}) {
	sh.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

func (sh *Shell) prompt() terminal.Prompt {
	return terminal.Prompt{
		Type:    terminal.PromptTypeCard,
		Content: sh.card.Name,
		Changed: sh.card.Changed,
	}
}

// confirm asks the user to confirm an operation. Confirmation is only
// requested if the Warnings preference is set and the terminal is interactive.
func (sh *Shell) confirm(question string) (bool, error) {
	if !sh.prefs.Warnings.Get().(bool) || !sh.term.IsInteractive() {
		return true, nil
	}

	buf := make([]byte, inputLen)
	n, err := sh.term.TermRead(buf, terminal.Prompt{
		Type:    terminal.PromptTypeConfirm,
		Content: fmt.Sprintf("%s (y/n) ", question),
	}, sh.Events)
	if err != nil {
		return false, err
	}

	s := strings.ToLower(strings.TrimSpace(string(buf[:n])))
	return s == "y" || s == "yes", nil
}

// Run the shell until QUIT or the end of input.
func (sh *Shell) Run() error {
	sh.term.RegisterTabCompletion(&tabCompletion{})

	buf := make([]byte, inputLen)

	for !sh.quit {
		n, err := sh.term.TermRead(buf, sh.prompt(), sh.Events)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			// interrupts abandon the current input. a second interrupt
			// with an empty line quits
			if curated.Is(err, terminal.UserInterrupt) {
				sh.print(terminal.StyleFeedback, "use QUIT to leave the shell")
				continue // for loop
			}
			if curated.Is(err, terminal.UserAbort) {
				return nil
			}

			return err
		}

		if err := sh.Command(string(buf[:n])); err != nil {
			sh.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// Command parses and executes a single line of input.
func (sh *Shell) Command(input string) error {
	tk, err := tokenise(input)
	if err != nil {
		return curated.Errorf("shell: %v", err)
	}

	kw, ok := tk.Get()
	if !ok {
		return nil
	}

	keyword, ok := findKeyword(kw)
	if !ok {
		return curated.Errorf(UnknownCommand, kw)
	}

	sh.term.TermPrintLine(terminal.StyleEcho, tk.String())

	return sh.execute(keyword, tk)
}

// Execute the command with arguments that have already been divided into
// words. Arguments are not subject to quoting.
func (sh *Shell) Execute(command string, args ...string) error {
	keyword, ok := findKeyword(command)
	if !ok {
		return curated.Errorf(UnknownCommand, command)
	}

	tk := &tokens{
		input:  strings.Join(append([]string{keyword}, args...), " "),
		tokens: args,
	}

	return sh.execute(keyword, tk)
}

// slotArg gets the next token as a slot number.
func (sh *Shell) slotArg(keyword string, tk *tokens) (int, error) {
	s, ok := tk.Get()
	if !ok {
		return 0, curated.Errorf(MissingArg, keyword, "slot number")
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= memcard.NumSlots {
		return 0, curated.Errorf(BadArg, keyword, fmt.Sprintf("slot must be a number from 0 to %d (not %s)", memcard.NumSlots-1, s))
	}

	return n, nil
}

// optionalSlotArg is like slotArg but returns -1 if there are no more tokens.
func (sh *Shell) optionalSlotArg(keyword string, tk *tokens) (int, error) {
	if tk.IsEnd() {
		return -1, nil
	}
	return sh.slotArg(keyword, tk)
}

// freeSpace returns the first slot with enough continuous free slots for a
// save of the specified length.
func (sh *Shell) freeSpace(length int) (int, error) {
	required := memcard.RequiredSlots(length)
	for i := 0; i < memcard.NumSlots; i++ {
		free, err := sh.card.FindContinuousFreeSlots(i, required)
		if err != nil {
			return 0, err
		}
		if len(free) == required {
			return i, nil
		}
	}
	return 0, curated.Errorf(NoFreeSlots, required)
}
