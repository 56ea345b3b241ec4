package interactive

import (
	"fmt"
	"os"
	"strings"

	"github.com/bilidl/bilidl/constant"
	"github.com/bilidl/bilidl/cookie"
	"github.com/bilidl/bilidl/extractor"
	"github.com/bilidl/bilidl/filesystem"
	"github.com/bilidl/bilidl/key"
	"github.com/bilidl/bilidl/log"
	"github.com/bilidl/bilidl/open"
	"github.com/bilidl/bilidl/playlist"
	"github.com/bilidl/bilidl/query"
	"github.com/bilidl/bilidl/tools"
	"github.com/bilidl/bilidl/util"
	"github.com/bilidl/bilidl/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

func (s *session) handleURLsState() error {
	urls := s.opts.URLs

	if len(urls) == 0 {
		multi, err := s.prompt.Confirm("Paste multiple URLs?", false)
		if err != nil {
			return err
		}

		if multi {
			s.print.Info("Paste URLs one per line. Enter an empty line to finish:")
			for {
				line, err := s.prompt.Input(">", "", nil)
				if err != nil {
					return err
				}
				if line = strings.TrimSpace(line); line == "" {
					break
				}
				urls = append(urls, line)
			}
		} else {
			u, err := s.prompt.Input("Enter BiliBili video URL", "", query.SuggestMany)
			if err != nil {
				return err
			}
			urls = append(urls, u)
		}

		for _, u := range urls {
			if err := query.Remember(u, 1); err != nil {
				log.Warnf("remember %s: %v", u, err)
			}
		}
	}

	urls = lo.Compact(lo.Map(urls, func(u string, _ int) string {
		return strings.TrimSpace(u)
	}))

	if len(urls) == 0 {
		s.print.Fail("No URL provided. Exiting.")
		s.newState(quitState)
		return nil
	}

	if s.opts.ExpandPlaylists || viper.GetBool(key.PlaylistExpand) {
		urls = s.expandPlaylists(urls)
	}

	s.urls = urls
	s.newState(directoryState)
	return nil
}

func (s *session) expandPlaylists(urls []string) []string {
	var expanded []string
	for _, u := range urls {
		if !playlist.IsPlaylist(u) {
			expanded = append(expanded, u)
			continue
		}

		erase := s.print.Progress("Enumerating playlist...")
		items, err := playlist.Expand(s.ctx, u)
		erase()
		if err != nil || len(items) == 0 {
			s.print.Warn(fmt.Sprintf("Could not expand playlist, using the URL as is: %v", err))
			expanded = append(expanded, u)
			continue
		}

		s.print.Info(fmt.Sprintf("Playlist expanded into %s", util.Quantify(len(items), "video", "videos")))
		expanded = append(expanded, playlist.URLs(items)...)
	}
	return expanded
}

func (s *session) handleDirectoryState() error {
	if dir := s.opts.Dir; dir != "" {
		if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("create download directory: %w", err)
		}
		s.dir = dir
	} else {
		s.dir = where.Downloads()
	}

	s.print.Info("Download directory: " + s.dir)
	s.newState(cookieState)
	return nil
}

func (s *session) handleCookieState() error {
	defer s.newState(toolsState)

	if s.opts.NoCookies {
		return nil
	}

	if s.opts.Cookie != "" {
		s.useCookie(s.opts.Cookie)
		return nil
	}

	if detected, ok := cookie.Detect().Get(); ok {
		s.print.Info("Auto-detected cookie file: " + detected)
		use, err := s.prompt.Confirm("Use this cookie file?", true)
		if err != nil {
			return err
		}
		if use {
			s.useCookie(detected)
		}
		return nil
	}

	manual, err := s.prompt.Confirm("No cookie file auto-detected. Do you want to provide a cookies.txt path?", false)
	if err != nil || !manual {
		return err
	}

	path, err := s.prompt.Input("Enter path to cookies.txt", "", nil)
	if err != nil {
		return err
	}

	s.useCookie(path)
	return nil
}

// useCookie validates path and reports on its contents. Invalid paths leave cookies disabled.
func (s *session) useCookie(path string) {
	resolved, err := cookie.Resolve(path)
	if err != nil {
		s.print.Warn("Cookie file not found; continuing without cookies.")
		log.Warnf("cookie %q: %v", path, err)
		return
	}

	s.cookie = mo.Some(resolved)
	s.print.Success("Using cookie file: " + resolved)

	report, err := cookie.Inspect(resolved)
	if err != nil {
		s.print.Warn(fmt.Sprintf("Could not read cookie file: %v", err))
		return
	}

	s.print.Faint("    " + report.String())
	if !report.Session {
		s.print.Hint("No " + cookie.SessionCookie + " cookie; high quality and member-only formats may be missing.")
	}
}

func (s *session) handleToolsState() error {
	s.tools = s.opts.DetectTools()

	if s.tools.YtDlp.IsAbsent() {
		s.print.Warn(constant.YtDlp + " not found in PATH; a managed copy will be installed. Install with: " + tools.InstallHint(constant.YtDlp))
	}

	if path, ok := s.tools.Aria2c.Get(); ok {
		s.print.Info("aria2c found at: " + path)
		switch {
		case s.opts.Aria2:
			s.aria2 = true
		case viper.GetBool(key.Aria2Prompt):
			use, err := s.prompt.Confirm("Use aria2c for segmented downloads?", false)
			if err != nil {
				return err
			}
			s.aria2 = use
		}
	} else if s.opts.Aria2 {
		s.print.Warn("aria2c requested but not found; using the built-in downloader.")
	}

	if s.tools.FFmpeg.IsAbsent() {
		s.print.Warn("ffmpeg not found; merges or re-muxing may fail for separate streams. Install with: " + tools.InstallHint(constant.FFmpeg))
	}

	s.extractor = s.opts.NewExtractor(extractor.Options{
		Executable: s.tools.YtDlp,
		Cookie:     s.cookie,
		FFmpeg:     s.tools.FFmpeg,
	})

	s.newState(updateState)
	return nil
}

func (s *session) handleUpdateState() error {
	defer s.newState(processState)

	// extraction cannot run until a yt-dlp is installed
	update := s.opts.Update || s.tools.YtDlp.IsAbsent()
	if !update && viper.GetBool(key.ExtractorUpdatePrompt) {
		var err error
		update, err = s.prompt.Confirm("Check for yt-dlp updates before downloading?", false)
		if err != nil {
			return err
		}
	}

	if !update {
		return nil
	}

	erase := s.print.Progress("Updating yt-dlp...")
	version, err := s.extractor.Update(s.ctx)
	erase()
	if err != nil {
		if s.ctx.Err() != nil {
			return s.ctx.Err()
		}
		s.print.Warn(fmt.Sprintf("Could not update yt-dlp: %v. Please update manually if needed.", err))
		return nil
	}

	s.print.Info("yt-dlp " + version + " ready.")
	return nil
}

func (s *session) handleProcessState() error {
	for _, u := range s.urls {
		if err := s.process(u); err != nil {
			return err
		}
	}

	s.newState(doneState)
	return nil
}

func (s *session) handleDoneState() error {
	s.print.Title("All tasks complete")

	if len(s.result.Failed) > 0 {
		s.print.Warn(fmt.Sprintf("%s downloaded, %d failed", util.Quantify(len(s.result.Downloaded), "video", "videos"), len(s.result.Failed)))
	}

	if viper.GetBool(key.DownloadsOpenAfter) && len(s.result.Downloaded) > 0 {
		if err := open.Start(s.dir); err != nil {
			log.Warnf("open %s: %v", s.dir, err)
		}
	}

	s.newState(quitState)
	return nil
}
