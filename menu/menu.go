// Package menu implements the main menu loop around the interactive download run.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bilidl/bilidl/cookie"
	"github.com/bilidl/bilidl/interactive"
	"github.com/bilidl/bilidl/key"
	"github.com/bilidl/bilidl/log"
	"github.com/bilidl/bilidl/query"
	"github.com/bilidl/bilidl/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type item int

const (
	startDownload item = iota
	changeCookie
	showSettings
	quit
)

var items = []string{
	startDownload: "Start Download",
	changeCookie:  "Change Cookie File",
	showSettings:  "Show Current Settings",
	quit:          "Quit",
}

// clearWords reset the cookie file at the cookie prompt.
var clearWords = []string{"none", "no", "n"}

// Options configure the menu.
type Options struct {
	Prompter interactive.Prompter
	Out      io.Writer
	// Base is copied into every download run.
	Base interactive.Options
	// Run defaults to interactive.Run.
	Run func(context.Context, *interactive.Options) (*interactive.Result, error)
}

type menu struct {
	opts   Options
	prompt interactive.Prompter
	print  interactive.Printer
	cookie mo.Option[string]
}

// Run shows the menu until the user quits or interrupts.
func Run(ctx context.Context, options Options) error {
	if options.Prompter == nil {
		options.Prompter = interactive.Survey{}
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Run == nil {
		options.Run = interactive.Run
	}

	m := &menu{
		opts:   options,
		prompt: options.Prompter,
		print:  interactive.NewPrinter(options.Out),
	}

	m.print.Title("Welcome to the BiliBili Video Downloader!")
	m.detectCookie()

	for ctx.Err() == nil {
		if err := m.handle(ctx); err != nil {
			if errors.Is(err, errQuit) || errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
	}

	return nil
}

var errQuit = errors.New("quit")

func (m *menu) detectCookie() {
	if m.opts.Base.NoCookies {
		return
	}

	if m.opts.Base.Cookie != "" {
		if path, err := cookie.Resolve(m.opts.Base.Cookie); err == nil {
			m.cookie = mo.Some(path)
			m.print.Success("Using cookie file: " + path)
			return
		}
	}

	m.cookie = cookie.Detect()
	if path, ok := m.cookie.Get(); ok {
		m.print.Success("Auto-detected cookie file: " + path)
	} else {
		m.print.Warn("No cookie file detected.")
	}
}

func (m *menu) handle(ctx context.Context) error {
	idx, err := m.prompt.Select("MAIN MENU", items)
	if err != nil {
		return err
	}

	switch item(idx) {
	case startDownload:
		return m.startDownload(ctx)
	case changeCookie:
		return m.changeCookie()
	case showSettings:
		m.showSettings()
		return nil
	case quit:
		m.print.Success("Exiting, goodbye!")
		return errQuit
	default:
		return fmt.Errorf("unknown menu item %d", idx)
	}
}

func (m *menu) startDownload(ctx context.Context) error {
	var url string
	for url == "" {
		answer, err := m.prompt.Input("Enter download URL", "", query.SuggestMany)
		if err != nil {
			return err
		}

		if url = strings.TrimSpace(answer); url == "" {
			m.print.Fail("URL cannot be empty.")
		}
	}

	if err := query.Remember(url, 1); err != nil {
		log.Warnf("remember %s: %v", url, err)
	}

	run := m.opts.Base
	run.URLs = []string{url}
	run.Prompter = m.prompt
	run.Out = m.opts.Out

	if path, ok := m.cookie.Get(); ok {
		run.Cookie = path
		run.NoCookies = false
	} else {
		run.Cookie = ""
		run.NoCookies = true
	}

	_, err := m.opts.Run(ctx, &run)
	return err
}

func (m *menu) changeCookie() error {
	for {
		answer, err := m.prompt.Input("Enter cookie file path (none to clear)", "", nil)
		if err != nil {
			return err
		}

		if lo.Contains(clearWords, strings.ToLower(strings.TrimSpace(answer))) {
			m.cookie = mo.None[string]()
			m.print.Success("Cookie file cleared.")
			return nil
		}

		path, err := cookie.Resolve(answer)
		if err != nil {
			m.print.Fail("File not found. Try again.")
			continue
		}

		m.cookie = mo.Some(path)
		m.print.Success("Cookie file updated.")
		return nil
	}
}

func (m *menu) showSettings() {
	m.print.Title("Current Settings")

	m.print.Plain("Cookie file:        " + m.cookie.OrElse("None detected"))

	dir := m.opts.Base.Dir
	if dir == "" {
		dir = where.Downloads()
	}
	m.print.Plain("Download directory: " + dir)
	m.print.Plain(fmt.Sprintf("Formats shown:      %d", viper.GetInt(key.FormatsLimit)))
	m.print.Plain(fmt.Sprintf("History:            %t", viper.GetBool(key.HistorySave)))
}
