// Package extractor delegates metadata extraction and downloading to yt-dlp.
package extractor

import (
	"context"

	"github.com/bilidl/bilidl/media"
	"github.com/bilidl/bilidl/progress"
	"github.com/samber/mo"
)

// Extractor resolves URLs into metadata and downloads selected formats.
type Extractor interface {
	// Extract fetches metadata for url without downloading anything.
	Extract(ctx context.Context, url string) (*media.Info, error)
	// Download fetches url with the given request.
	Download(ctx context.Context, url string, req *Request) error
	// Update installs or updates the extraction backend and returns its version.
	Update(ctx context.Context) (string, error)
}

// Options configure a YtDlp extractor.
type Options struct {
	// Executable overrides the yt-dlp binary. When absent go-ytdlp resolves it.
	Executable mo.Option[string]
	// Cookie is a Netscape cookie file passed to every invocation.
	Cookie mo.Option[string]
	// FFmpeg is an explicit ffmpeg location.
	FFmpeg mo.Option[string]
}

// Request describes a single download.
type Request struct {
	// Format is a yt-dlp format selector.
	Format string
	// Dir is the output directory.
	Dir string
	// Aria2 hands the transfer to aria2c.
	Aria2 bool
	// Progress receives progress events. May be nil.
	Progress func(progress.Event)
}
