package inline

import (
	"encoding/json"
	"io"

	"github.com/bilidl/bilidl/media"
)

// Format is a listed format with its derived columns.
type Format struct {
	// Index is the 1-based position accepted by the format selector.
	Index int `json:"index"`
	media.Format
	Kind       string `json:"kind"`
	Resolution string `json:"resolution"`
	// Size in bytes, -1 when unknown.
	Size int64 `json:"size"`
}

// Output describes one URL.
type Output struct {
	URL      string    `json:"url"`
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Duration float64   `json:"duration"`
	Formats  []*Format `json:"formats"`
	// Selected is the selector that was picked, if any.
	Selected string `json:"selected,omitempty"`
	// Downloaded is true when the selection was downloaded.
	Downloaded bool `json:"downloaded,omitempty"`
}

func newOutput(url string, info *media.Info, formats []media.Format) *Output {
	out := &Output{
		URL:      url,
		ID:       info.ID,
		Title:    info.Title,
		Duration: info.Duration,
		Formats:  make([]*Format, len(formats)),
	}

	for i, f := range formats {
		out.Formats[i] = &Format{
			Index:      i + 1,
			Format:     f,
			Kind:       f.Kind(),
			Resolution: f.Resolution(),
			Size:       f.Size(),
		}
	}

	return out
}

func writeJson(w io.Writer, output *Output) error {
	return json.NewEncoder(w).Encode(output)
}
