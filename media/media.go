// Package media defines the metadata model produced by extraction and the format-selection rules built on it.
package media

import (
	"github.com/bilidl/bilidl/util"
)

// Info is the metadata of a single video or of a playlist.
type Info struct {
	// ID assigned by the extractor (e.g. "BV1xx411c7mD").
	ID string `json:"id"`
	// Title as published.
	Title string `json:"title"`
	// Duration in seconds. Zero when unknown.
	Duration float64 `json:"duration,omitempty"`
	// WebpageURL is the canonical page of the video.
	WebpageURL string `json:"webpage_url,omitempty"`
	// Extractor is the name of the yt-dlp extractor that handled the URL.
	Extractor string `json:"extractor,omitempty"`
	// Formats available for download.
	Formats []Format `json:"formats"`
	// Entries are populated for playlists only.
	Entries []*Info `json:"entries,omitempty"`
}

// IsPlaylist reports whether the info describes a playlist.
func (i *Info) IsPlaylist() bool {
	return len(i.Entries) > 0
}

// FirstEntry returns the first usable playlist entry, or an empty Info when none is usable.
func (i *Info) FirstEntry() *Info {
	for _, e := range i.Entries {
		if e != nil {
			return e
		}
	}
	return &Info{}
}

// SafeTitle returns the title sanitized for use as a file name.
func (i *Info) SafeTitle() string {
	if title := util.SanitizeFilename(i.Title); title != "" {
		return title
	}
	return "video"
}

// String returns the title for display.
func (i *Info) String() string {
	return i.SafeTitle()
}
