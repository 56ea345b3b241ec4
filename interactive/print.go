package interactive

import (
	"fmt"
	"io"

	"github.com/bilidl/bilidl/color"
	"github.com/bilidl/bilidl/icon"
	"github.com/bilidl/bilidl/style"
	"github.com/bilidl/bilidl/util"
	"github.com/charmbracelet/lipgloss"
)

// Printer writes the colored status lines of a run.
type Printer struct {
	out io.Writer
}

// NewPrinter returns a printer writing to out.
func NewPrinter(out io.Writer) Printer {
	return Printer{out: out}
}

func (p Printer) line(c lipgloss.Color, i icon.Icon, msg string) {
	if prefix := icon.Get(i); prefix != "" {
		msg = prefix + " " + msg
	}
	fmt.Fprintln(p.out, style.Fg(c)(msg))
}

func (p Printer) Info(msg string)    { p.line(color.Cyan, icon.Info, msg) }
func (p Printer) Success(msg string) { p.line(color.Green, icon.Success, msg) }
func (p Printer) Warn(msg string)    { p.line(color.Yellow, icon.Warn, msg) }
func (p Printer) Fail(msg string)    { p.line(color.Red, icon.Fail, msg) }

// Hint prints an indented follow-up to the previous line.
func (p Printer) Hint(msg string) {
	fmt.Fprintln(p.out, style.Fg(color.Yellow)("    "+msg))
}

// Title prints a section banner.
func (p Printer) Title(msg string) {
	fmt.Fprintln(p.out, style.New().Bold(true).Foreground(style.Pink).Render(fmt.Sprintf("\n=== %s ===", msg)))
}

// Plain prints msg unchanged.
func (p Printer) Plain(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Faint prints msg dimmed.
func (p Printer) Faint(msg string) {
	fmt.Fprintln(p.out, style.Faint(msg))
}

// Progress prints an erasable status message.
func (p Printer) Progress(msg string) (erase func()) {
	if prefix := icon.Get(icon.Progress); prefix != "" {
		msg = prefix + " " + msg
	}
	return util.PrintErasableTo(p.out, msg)
}
