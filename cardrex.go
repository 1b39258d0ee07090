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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/jetsetilly/cardrex/cardloader"
	"github.com/jetsetilly/cardrex/device"
	"github.com/jetsetilly/cardrex/logger"
	"github.com/jetsetilly/cardrex/memcard"
	"github.com/jetsetilly/cardrex/modalflag"
	"github.com/jetsetilly/cardrex/prefs"
	"github.com/jetsetilly/cardrex/shell"
	"github.com/jetsetilly/cardrex/statsview"
	"github.com/jetsetilly/cardrex/terminal"
	"github.com/jetsetilly/cardrex/terminal/colorterm"
	"github.com/jetsetilly/cardrex/terminal/plainterm"
	"github.com/jetsetilly/cardrex/version"
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch returns the exit status of the program.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("SHELL", "LIST", "EXPORT", "IMPORT", "CONVERT", "NEW", "DELETE", "RESTORE",
		"REMOVE", "HEADER", "COMMENT", "ICON", "READ", "WRITE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "SHELL":
		err = interactive(md)

	case "LIST":
		err = batch(md, batchMode{
			args:    "<card>",
			minArgs: 1,
			command: shell.KeywordList,
		})

	case "EXPORT":
		err = batch(md, batchMode{
			args:    "<card> <slot> [format] [file]",
			minArgs: 2,
			command: shell.KeywordExport,
		})

	case "IMPORT":
		err = batch(md, batchMode{
			args:    "<card> <save file> [slot]",
			minArgs: 2,
			command: shell.KeywordImport,
			save:    true,
		})

	case "CONVERT":
		err = batch(md, batchMode{
			args:    "<card> <file> [RAW|GME|VGS]",
			minArgs: 2,
			command: shell.KeywordSave,
		})

	case "NEW":
		err = newCard(md)

	case "DELETE":
		err = batch(md, batchMode{
			args:    "<card> <slot>",
			minArgs: 2,
			command: shell.KeywordDelete,
			save:    true,
		})

	case "RESTORE":
		err = batch(md, batchMode{
			args:    "<card> <slot>",
			minArgs: 2,
			command: shell.KeywordRestore,
			save:    true,
		})

	case "REMOVE":
		err = batch(md, batchMode{
			args:    "<card> <slot>",
			minArgs: 2,
			command: shell.KeywordRemove,
			save:    true,
		})

	case "HEADER":
		err = batch(md, batchMode{
			args:    "<card> <slot> <product code> <identifier> [region]",
			minArgs: 4,
			command: shell.KeywordHeader,
			save:    true,
		})

	case "COMMENT":
		err = batch(md, batchMode{
			args:    "<card> <slot> [text]",
			minArgs: 2,
			command: shell.KeywordComment,
			save:    true,
		})

	case "ICON":
		err = batch(md, batchMode{
			args:    "<card> <slot> <FLIPH|FLIPV|LEFT|RIGHT|EXPORT|IMPORT> [frame] [file]",
			minArgs: 3,
			command: shell.KeywordIcon,
			save:    true,
		})

	case "READ":
		err = readDevice(md)

	case "WRITE":
		err = writeDevice(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags common to every mode that opens a card.
type commonFlags struct {
	log   *bool
	prefs *string
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		log:   md.AddBool("log", false, "echo log to stdout"),
		prefs: md.AddString("prefs", "", "preferences for this session. eg. \"cardrex.warnings::false; cardrex.codepage::shift-jis\""),
	}
}

func (f commonFlags) apply() {
	if *f.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}
}

func interactive(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)
	termType := md.AddString("term", "AUTO", "terminal type: AUTO, COLOR, PLAIN")
	stats := md.AddBool("statsview", false, "launch runtime statistics web server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	common.apply()

	if *stats {
		statsview.Launch(os.Stdout)
	}

	var trm terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "AUTO":
		if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = &plainterm.PlainTerminal{}
		}
	case "COLOR":
		trm = &colorterm.ColorTerminal{}
	case "PLAIN":
		trm = &plainterm.PlainTerminal{}
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	if err := trm.Initialise(); err != nil {
		return err
	}
	defer trm.CleanUp()

	pr, err := shell.NewPreferences()
	if err != nil {
		return err
	}

	sh, err := shell.NewShell(trm, pr)
	if err != nil {
		return err
	}

	sh.Events.IntEvents = make(chan os.Signal, 1)
	signal.Notify(sh.Events.IntEvents, os.Interrupt)
	defer signal.Stop(sh.Events.IntEvents)

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		if err := sh.Open(md.GetArg(0)); err != nil {
			trm.TermPrintLine(terminal.StyleError, err.Error())
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return sh.Run()
}

// batchMode describes a non-interactive mode that opens a card and runs a
// single shell command on it.
type batchMode struct {
	args    string
	minArgs int
	command string

	// save the card to where it was opened from after the command
	save bool
}

// batchShell creates a shell with a non-interactive terminal. Output is
// written to stdout.
func batchShell() (*shell.Shell, error) {
	pr, err := shell.NewPreferences()
	if err != nil {
		return nil, err
	}
	return shell.NewShell(plainterm.NewPlainTerminal(strings.NewReader(""), os.Stdout), pr)
}

func batch(md *modalflag.Modes, bm batchMode) error {
	md.NewMode()
	md.AdditionalHelp(fmt.Sprintf("arguments: %s", bm.args))

	common := addCommonFlags(md)

	var output *string
	if bm.save {
		output = md.AddString("o", "", "save the changed card to this file rather than the original")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	common.apply()

	args := md.RemainingArgs()
	if len(args) < bm.minArgs {
		return fmt.Errorf("%s mode requires arguments: %s", md, bm.args)
	}

	sh, err := batchShell()
	if err != nil {
		return err
	}

	if err := sh.Open(args[0]); err != nil {
		return err
	}

	if err := sh.Execute(bm.command, args[1:]...); err != nil {
		return err
	}

	if !bm.save || !sh.Card().Changed {
		return nil
	}

	if *output != "" {
		return sh.Execute(shell.KeywordSave, *output)
	}
	return sh.Execute(shell.KeywordSave)
}

func newCard(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("arguments: <file> [RAW|GME|VGS]")

	common := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	common.apply()

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("filename required for %s mode", md)
	}

	sh, err := batchShell()
	if err != nil {
		return err
	}

	if err := sh.Execute(shell.KeywordNew); err != nil {
		return err
	}

	return sh.Execute(shell.KeywordSave, md.RemainingArgs()...)
}

// progress writes a simple progress indicator for device transfers.
func progress(frame int) {
	n := frame + 1
	if n%64 == 0 {
		fmt.Printf("\r%d/%d frames", n, device.NumFrames)
	}
	if n == device.NumFrames {
		fmt.Println()
	}
}

// deviceContext is cancelled by an interrupt signal.
func deviceContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func readDevice(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("arguments: <device image> <output file>")

	common := addCommonFlags(md)
	format := md.AddString("format", "", "container type of the output file: RAW, GME, VGS")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	common.apply()

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("%s mode requires a device image and an output file", md)
	}

	dev, err := device.OpenMock(md.GetArg(0))
	if err != nil {
		return err
	}

	ctx, cancel := deviceContext()
	defer cancel()

	raw, err := device.ReadCard(ctx, dev, progress)
	if err != nil {
		return err
	}

	sh, err := batchShell()
	if err != nil {
		return err
	}

	pr, err := shell.NewPreferences()
	if err != nil {
		return err
	}
	cfg, err := pr.Config()
	if err != nil {
		return err
	}

	c, err := memcard.FromRaw(raw, cfg)
	if err != nil {
		return err
	}
	sh.SetCard(c)

	args := []string{md.GetArg(1)}
	if *format != "" {
		args = append(args, *format)
	}
	return sh.Execute(shell.KeywordSave, args...)
}

func writeDevice(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("arguments: <card> <device image>")

	common := addCommonFlags(md)
	quick := md.AddBool("quick", false, fmt.Sprintf("only write the first %d frames (directory block)", device.QuickFormatFrames))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	common.apply()

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("%s mode requires a card and a device image", md)
	}

	pr, err := shell.NewPreferences()
	if err != nil {
		return err
	}
	cfg, err := pr.Config()
	if err != nil {
		return err
	}

	ld := cardloader.NewLoader(md.GetArg(0))
	c, err := ld.Card(cfg)
	if err != nil {
		return err
	}

	dev, err := device.OpenMock(md.GetArg(1))
	if err != nil {
		return err
	}

	ctx, cancel := deviceContext()
	defer cancel()

	if *quick {
		err = device.WriteFrames(ctx, dev, c.Raw(), device.QuickFormatFrames, progress)
	} else {
		err = device.WriteCard(ctx, dev, c.Raw(), progress)
	}
	if err != nil {
		return err
	}

	return dev.Flush()
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Printf("%s %s\n", version.ApplicationName, ver)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
