// Package inline implements the non-interactive mode used by scripts.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bilidl/bilidl/constant"
	"github.com/bilidl/bilidl/extractor"
	"github.com/bilidl/bilidl/log"
	"github.com/bilidl/bilidl/media"
	"github.com/bilidl/bilidl/progress"
)

// Run lists the formats of every URL, or downloads the picked format when Download is set.
// JSON output is one document per line.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Err == nil {
		options.Err = os.Stderr
	}
	if options.Extractor == nil {
		return errors.New("no extractor configured")
	}

	for _, url := range options.URLs {
		if err := runOne(ctx, url, options); err != nil {
			return fmt.Errorf("%s: %w", url, err)
		}
	}

	return nil
}

func runOne(ctx context.Context, url string, options *Options) error {
	info, err := options.Extractor.Extract(ctx, url)
	if err != nil {
		return err
	}

	if info.IsPlaylist() {
		log.Warnf("%s is a playlist, using the first entry", url)
		info = info.FirstEntry()
	}

	// indexes given to the picker match the listed ones
	filtered := media.Sorted(info.Formats)
	if filter, ok := options.FormatsFilter.Get(); ok {
		filtered = filter(filtered)
	}

	var selector string
	if picker, ok := options.FormatPicker.Get(); ok {
		if selector, err = picker(filtered); err != nil {
			return err
		}
	}

	listed := media.Shown(filtered, options.Limit)

	output := newOutput(url, info, listed)
	output.Selected = selector

	if options.Download {
		if selector == "" {
			selector = constant.FormatBest
			output.Selected = selector
		}

		err = options.Extractor.Download(ctx, url, &extractor.Request{
			Format:   selector,
			Dir:      options.Dir,
			Aria2:    options.Aria2,
			Progress: progress.New(options.Err).Handle,
		})
		if err != nil {
			return err
		}
		output.Downloaded = true
	}

	if options.Json {
		return writeJson(options.Out, output)
	}

	switch {
	case options.Download:
		fmt.Fprintln(options.Out, info.SafeTitle())
	case selector != "":
		fmt.Fprintln(options.Out, selector)
	default:
		fmt.Fprintln(options.Out, media.Table(listed))
	}

	return nil
}
