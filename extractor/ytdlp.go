package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bilidl/bilidl/constant"
	"github.com/bilidl/bilidl/internal/cache"
	"github.com/bilidl/bilidl/key"
	"github.com/bilidl/bilidl/log"
	"github.com/bilidl/bilidl/media"
	"github.com/bilidl/bilidl/progress"
	"github.com/bilidl/bilidl/tools"
	"github.com/bilidl/bilidl/where"
	"github.com/lrstanley/go-ytdlp"
	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// progressInterval is how often go-ytdlp reports progress. The renderer throttles further.
const progressInterval = 100 * time.Millisecond

// memo keeps results in memory for the lifetime of the process, in front of the on-disk cache.
// The menu creates a new extractor for every run.
var memo = gocache.New(gocache.NoExpiration, 10*time.Minute)

// YtDlp is an Extractor backed by the yt-dlp program.
type YtDlp struct {
	options Options
	ttl     time.Duration
	cache   *cache.Store
}

// New creates a yt-dlp extractor with a metadata cache in where.Metadata.
func New(options Options) *YtDlp {
	ttl := time.Duration(viper.GetInt(key.ExtractorCacheTTL)) * time.Minute
	return &YtDlp{
		options: options,
		ttl:     ttl,
		cache:   cache.New(where.Metadata(), ttl),
	}
}

func (y *YtDlp) command() *ytdlp.Command {
	cmd := ytdlp.New().NoWarnings()

	if path, ok := y.options.Executable.Get(); ok {
		cmd = cmd.SetExecutable(path)
	}

	if path, ok := y.options.Cookie.Get(); ok {
		cmd = cmd.Cookies(path)
	}

	return cmd
}

// cacheKey separates results obtained with and without cookies, since members-only formats differ.
func (y *YtDlp) cacheKey(url string) string {
	return cache.GenerateKey(url + "|" + y.options.Cookie.OrEmpty())
}

// Extract runs yt-dlp with --skip-download --dump-single-json and parses the result.
func (y *YtDlp) Extract(ctx context.Context, url string) (*media.Info, error) {
	k := y.cacheKey(url)

	if y.ttl > 0 {
		if v, ok := memo.Get(k); ok {
			info := *v.(*media.Info)
			return &info, nil
		}
	}

	var cached media.Info
	if y.cache.Read(k, &cached) {
		log.Debugf("metadata cache hit for %s", url)
		y.remember(k, &cached)
		return &cached, nil
	}

	result, err := y.command().
		SkipDownload().
		DumpSingleJSON().
		Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", url, err)
	}

	info, err := Parse([]byte(result.Stdout))
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", url, err)
	}

	if y.ttl > 0 {
		if err := y.cache.Write(k, info); err != nil {
			log.Warnf("could not cache metadata for %s: %v", url, err)
		}
		y.remember(k, info)
	}

	return info, nil
}

func (y *YtDlp) remember(k string, info *media.Info) {
	if y.ttl > 0 {
		copied := *info
		memo.Set(k, &copied, y.ttl)
	}
}

// Download runs yt-dlp with the request's format, writing into the request's directory.
func (y *YtDlp) Download(ctx context.Context, url string, req *Request) error {
	cmd := y.command().
		Format(req.Format).
		Output(filepath.Join(req.Dir, viper.GetString(key.DownloadsOutputTemplate))).
		MergeOutputFormat(viper.GetString(key.DownloadsMergeFormat))

	if path, ok := y.options.FFmpeg.Get(); ok {
		cmd = cmd.FFmpegLocation(path)
	}

	if req.Aria2 {
		cmd = cmd.
			Downloader(constant.Aria2c).
			DownloaderArgs(tools.DownloaderArgs())
	}

	if req.Progress != nil {
		cmd = cmd.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
			req.Progress(toEvent(update, time.Now()))
		})
	}

	log.Infof("downloading %s as %q into %s", url, req.Format, req.Dir)

	if _, err := cmd.Run(ctx, url); err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	return nil
}

// Update runs yt-dlp's self-update. Without a yt-dlp on PATH the release pinned by go-ytdlp
// is installed first and then updated in place.
func (y *YtDlp) Update(ctx context.Context) (string, error) {
	installed := false
	if y.options.Executable.IsAbsent() {
		resolved, err := ytdlp.Install(ctx, nil)
		if err != nil {
			return "", fmt.Errorf("install yt-dlp: %w", err)
		}

		y.options.Executable = mo.Some(resolved.Executable)
		installed = true
		log.Infof("installed yt-dlp %s at %s", resolved.Version, resolved.Executable)
	}

	if _, err := y.command().Update(ctx); err != nil {
		if !installed {
			return "", fmt.Errorf("update yt-dlp: %w", err)
		}
		log.Warnf("could not update the installed yt-dlp: %v", err)
	}

	result, err := y.command().Version(ctx)
	if err != nil {
		return "", fmt.Errorf("yt-dlp version: %w", err)
	}

	version := strings.TrimSpace(result.Stdout)
	log.Infof("using yt-dlp %s at %s", version, y.options.Executable.OrEmpty())
	return version, nil
}

// toEvent translates a go-ytdlp update. Speed is averaged since the transfer started.
func toEvent(update ytdlp.ProgressUpdate, now time.Time) progress.Event {
	e := progress.Event{
		Status:     progress.Status(update.Status),
		Downloaded: int64(update.DownloadedBytes),
		Total:      int64(update.TotalBytes),
		ETA:        update.ETA(),
		Filename:   update.Filename,
	}

	if !update.Started.IsZero() {
		if elapsed := now.Sub(update.Started).Seconds(); elapsed > 0 {
			e.Speed = float64(e.Downloaded) / elapsed
		}
	}

	if e.Status == progress.StatusError {
		e.Err = fmt.Errorf("yt-dlp failed on %s", update.Filename)
	}

	return e
}

// CollectGarbage removes expired metadata documents from where.Metadata.
func CollectGarbage() {
	ttl := time.Duration(viper.GetInt(key.ExtractorCacheTTL)) * time.Minute
	if removed := cache.New(where.Metadata(), ttl).CollectGarbage(); removed > 0 {
		log.Debugf("removed %d expired metadata documents", removed)
	}
}
