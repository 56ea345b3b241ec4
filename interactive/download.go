package interactive

import (
	"errors"
	"fmt"

	"github.com/bilidl/bilidl/constant"
	"github.com/bilidl/bilidl/extractor"
	"github.com/bilidl/bilidl/history"
	"github.com/bilidl/bilidl/key"
	"github.com/bilidl/bilidl/log"
	"github.com/bilidl/bilidl/media"
	"github.com/bilidl/bilidl/progress"
	"github.com/bilidl/bilidl/util"
	"github.com/spf13/viper"
)

var errNoFormats = errors.New("no formats")

// process downloads a single URL. Only interrupts are returned; everything else is reported.
func (s *session) process(url string) error {
	s.print.Title("Processing: " + url)

	id := media.VideoID(url)
	if v, ok := id.Get(); ok {
		s.print.Info("Video ID: " + v)
	}

	erase := s.print.Progress("Extracting video info...")
	info, err := s.extractor.Extract(s.ctx, url)
	erase()
	if err != nil {
		if s.ctx.Err() != nil {
			return s.ctx.Err()
		}
		s.print.Fail(fmt.Sprintf("Error extracting video info: %v", err))
		s.print.Hint("Make sure the URL is valid and yt-dlp is updated.")
		s.fail(url, err)
		return nil
	}

	if info.IsPlaylist() {
		s.print.Warn("URL is a playlist; selecting first entry by default.")
		info = info.FirstEntry()
	}

	s.print.Info("Title: " + info.SafeTitle())
	if info.Duration > 0 {
		s.print.Info("Duration: " + util.FormatDuration(info.Duration))
	}

	sorted := media.Sorted(info.Formats)
	if len(sorted) == 0 {
		s.print.Fail("No formats found. Try cookies or update yt-dlp.")
		s.fail(url, errNoFormats)
		return nil
	}

	selector, err := s.selectFormat(sorted)
	if err != nil {
		return err
	}

	renderer := progress.New(s.opts.Out)
	s.print.Success("Starting download ...")
	err = s.extractor.Download(s.ctx, url, &extractor.Request{
		Format:   selector,
		Dir:      s.dir,
		Aria2:    s.aria2,
		Progress: renderer.Handle,
	})
	if err != nil {
		if s.ctx.Err() != nil {
			return s.ctx.Err()
		}
		s.print.Fail(fmt.Sprintf("Download failed: %v", err))
		s.print.Hint("If this is member-only content, try exporting cookies from a browser and placing cookies.txt in your storage.")
		s.fail(url, err)
		return nil
	}

	s.print.Success("Done. File should be in: " + s.dir)
	s.result.Downloaded = append(s.result.Downloaded, url)

	if err := history.Save(history.Record{
		URL:       url,
		Title:     info.SafeTitle(),
		VideoID:   id.OrEmpty(),
		Format:    selector,
		Directory: s.dir,
	}); err != nil {
		log.Warnf("save history for %s: %v", url, err)
	}

	return nil
}

func (s *session) fail(url string, err error) {
	log.Errorf("%s: %v", url, err)
	s.result.Failed = append(s.result.Failed, url)
}

// selectFormat shows the format table and asks for a selection.
// After formats.max_attempts invalid answers the best format is used.
func (s *session) selectFormat(sorted []media.Format) (string, error) {
	if s.opts.Format != "" {
		s.print.Info("Using format: " + s.opts.Format)
		return s.opts.Format, nil
	}

	shown := media.Shown(sorted, viper.GetInt(key.FormatsLimit))
	s.print.Plain(media.Table(shown))
	if hidden := len(sorted) - len(shown); hidden > 0 {
		s.print.Faint(fmt.Sprintf("... %s not shown", util.Quantify(hidden, "format", "formats")))
	}

	s.print.Info("Download type options:")
	for _, p := range media.Presets {
		s.print.Plain(fmt.Sprintf("  %s = %s", p.Key, p.Description))
	}

	attempts := max(viper.GetInt(key.FormatsMaxAttempts), 1)
	for i := 0; i < attempts; i++ {
		answer, err := s.prompt.Input("Enter index number shown above to pick a specific format, or 0 for automatic BEST", "0", nil)
		if err != nil {
			return "", err
		}

		choice, err := media.Resolve(answer, shown)
		if err != nil {
			s.print.Warn(err.Error())
			continue
		}

		if choice.Automatic {
			kind, err := s.prompt.Input("Which download type? (0=auto,1=best,2=audio-only,3=video-only)", "0", nil)
			if err != nil {
				return "", err
			}
			return media.Preset(kind), nil
		}

		s.print.Info("Selected format id: " + choice.Selector)
		return choice.Selector, nil
	}

	s.print.Warn("No valid format selected after multiple tries; defaulting to best.")
	return constant.FormatBest, nil
}
