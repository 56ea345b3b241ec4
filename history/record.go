package history

import (
	"fmt"
	"time"
)

// Record is a finished download.
type Record struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	VideoID   string    `json:"video_id,omitempty"`
	Format    string    `json:"format"`
	Directory string    `json:"directory"`
	Time      time.Time `json:"time"`
	// Count is how many times the URL was downloaded.
	Count int `json:"count"`
}

func (r *Record) encode() string {
	return r.URL
}

func (r *Record) String() string {
	return fmt.Sprintf("%s (%s)", r.Title, r.Format)
}
