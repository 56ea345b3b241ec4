// Package interactive implements the prompt-driven download run.
package interactive

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bilidl/bilidl/extractor"
	"github.com/bilidl/bilidl/log"
	"github.com/bilidl/bilidl/tools"
	"github.com/samber/mo"
)

// Options configure a run. Zero values mean "ask".
type Options struct {
	// URLs skip the URL prompt when not empty.
	URLs []string
	// Cookie is an explicit cookie file. It skips detection.
	Cookie string
	// NoCookies disables cookies entirely.
	NoCookies bool
	// Aria2 uses aria2c without asking when it is installed.
	Aria2 bool
	// Dir overrides the download directory.
	Dir string
	// Format is a yt-dlp selector that skips the format prompt.
	Format string
	// Update updates yt-dlp without asking.
	Update bool
	// ExpandPlaylists downloads every entry of YouTube playlists.
	ExpandPlaylists bool

	Prompter     Prompter
	Out          io.Writer
	NewExtractor func(extractor.Options) extractor.Extractor
	DetectTools  func() tools.Tools
}

func (o *Options) withDefaults() *Options {
	opts := *o
	if opts.Prompter == nil {
		opts.Prompter = Survey{}
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.NewExtractor == nil {
		opts.NewExtractor = func(options extractor.Options) extractor.Extractor {
			return extractor.New(options)
		}
	}
	if opts.DetectTools == nil {
		opts.DetectTools = tools.Detect
	}
	return &opts
}

// Result lists what happened to each URL.
type Result struct {
	Downloaded []string
	Failed     []string
}

type state int

const (
	urlsState state = iota + 1
	directoryState
	cookieState
	toolsState
	updateState
	processState
	doneState
	quitState
)

type session struct {
	ctx    context.Context
	opts   *Options
	prompt Prompter
	print  Printer

	state state

	urls      []string
	dir       string
	cookie    mo.Option[string]
	tools     tools.Tools
	aria2     bool
	extractor extractor.Extractor

	result Result
}

// Run executes the whole pipeline: URLs, directory, cookies, tools, update, then every URL in turn.
// Failures of a single URL are reported and skipped. An interrupt ends the run without error.
func Run(ctx context.Context, options *Options) (*Result, error) {
	opts := options.withDefaults()
	s := &session{
		ctx:    ctx,
		opts:   opts,
		prompt: opts.Prompter,
		print:  NewPrinter(opts.Out),
		state:  urlsState,
	}

	for s.state != quitState {
		if err := s.handleState(); err != nil {
			if errors.Is(err, terminal.InterruptErr) || errors.Is(err, context.Canceled) {
				log.Info("run interrupted")
				s.print.Faint("\nInterrupted.")
				return &s.result, nil
			}
			return &s.result, err
		}
	}

	return &s.result, nil
}

func (s *session) newState(st state) {
	s.state = st
}

func (s *session) handleState() error {
	switch s.state {
	case urlsState:
		return s.handleURLsState()
	case directoryState:
		return s.handleDirectoryState()
	case cookieState:
		return s.handleCookieState()
	case toolsState:
		return s.handleToolsState()
	case updateState:
		return s.handleUpdateState()
	case processState:
		return s.handleProcessState()
	case doneState:
		return s.handleDoneState()
	}

	return nil
}
