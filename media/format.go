package media

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Stream kinds as shown in the format table.
const (
	KindMuxed = "video+audio"
	KindVideo = "video"
	KindAudio = "audio"
)

// codecNone is the codec yt-dlp reports for an absent stream.
const codecNone = "none"

// Format is a single downloadable rendition. Zero numeric fields mean "unknown".
type Format struct {
	ID             string  `json:"format_id"`
	Note           string  `json:"format_note,omitempty"`
	Ext            string  `json:"ext,omitempty"`
	Width          int     `json:"width,omitempty"`
	Height         int     `json:"height,omitempty"`
	FPS            float64 `json:"fps,omitempty"`
	VCodec         string  `json:"vcodec,omitempty"`
	ACodec         string  `json:"acodec,omitempty"`
	Filesize       int64   `json:"filesize,omitempty"`
	FilesizeApprox int64   `json:"filesize_approx,omitempty"`
}

// Kind classifies the format by the streams it carries.
func (f Format) Kind() string {
	hasVideo := f.VCodec != codecNone
	hasAudio := f.ACodec != codecNone

	switch {
	case hasVideo && hasAudio:
		return KindMuxed
	case hasVideo:
		return KindVideo
	default:
		return KindAudio
	}
}

// Size returns the exact size when known, the approximation otherwise, or -1.
func (f Format) Size() int64 {
	switch {
	case f.Filesize > 0:
		return f.Filesize
	case f.FilesizeApprox > 0:
		return f.FilesizeApprox
	default:
		return -1
	}
}

// Resolution renders WxH with "?" for unknown dimensions.
func (f Format) Resolution() string {
	dim := func(v int) string {
		if v <= 0 {
			return "?"
		}
		return fmt.Sprint(v)
	}
	return dim(f.Width) + "x" + dim(f.Height)
}

// String returns the format id for display.
func (f Format) String() string {
	return f.ID
}

// Sorted drops formats without an id and orders the rest by height, then exact filesize, both descending.
// The result is the single ordering used for both the table and index selection.
func Sorted(formats []Format) []Format {
	sorted := lo.Filter(formats, func(f Format, _ int) bool {
		return f.ID != ""
	})

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Height != sorted[j].Height {
			return sorted[i].Height > sorted[j].Height
		}
		return sorted[i].Filesize > sorted[j].Filesize
	})

	return sorted
}

// Shown returns the first limit formats of an already sorted list.
func Shown(sorted []Format, limit int) []Format {
	if limit <= 0 || limit >= len(sorted) {
		return sorted
	}
	return sorted[:limit]
}
