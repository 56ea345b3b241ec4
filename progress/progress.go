// Package progress renders download progress events as a single, throttled terminal line.
package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/bilidl/bilidl/color"
	"github.com/bilidl/bilidl/icon"
	"github.com/bilidl/bilidl/key"
	"github.com/bilidl/bilidl/log"
	"github.com/bilidl/bilidl/style"
	"github.com/bilidl/bilidl/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/spf13/viper"
)

// Status is the lifecycle stage reported by the extractor.
type Status string

const (
	StatusStarting       Status = "starting"
	StatusDownloading    Status = "downloading"
	StatusPostProcessing Status = "post_processing"
	StatusFinished       Status = "finished"
	StatusError          Status = "error"
)

// barWidth matches the 30 column bar of the first releases.
const barWidth = 30

// Event is a single progress notification.
type Event struct {
	Status Status
	// Downloaded and Total are byte counts. Total is zero when unknown.
	Downloaded int64
	Total      int64
	// Speed in bytes per second.
	Speed    float64
	ETA      time.Duration
	Filename string
	Err      error
}

// Percent returns completion in the range [0, 100], or 0 when the total is unknown.
func (e Event) Percent() float64 {
	if e.Total <= 0 {
		return 0
	}
	return float64(e.Downloaded) / float64(e.Total) * 100
}

// Renderer writes progress lines, redrawing downloading updates in place.
type Renderer struct {
	out      io.Writer
	throttle time.Duration
	bar      *progress.Model
	now      func() time.Time
	last     time.Time
}

// New creates a renderer configured from the progress.* settings.
func New(out io.Writer) *Renderer {
	r := &Renderer{
		out:      out,
		throttle: time.Duration(viper.GetInt(key.ProgressThrottle)) * time.Millisecond,
		now:      time.Now,
	}

	if viper.GetBool(key.ProgressBar) && roomForBar() {
		bar := progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		)
		r.bar = &bar
	}

	return r
}

// minBarColumns is the narrowest terminal that fits the bar next to the text.
// Portrait phone terminals are usually narrower.
const minBarColumns = 90

// roomForBar reports whether stdout is wide enough for the bar. Output that is not a terminal always is.
var roomForBar = func() bool {
	width, _, err := util.TerminalSize()
	return err != nil || width >= minBarColumns
}

// Handle renders one event. Downloading updates closer together than the throttle interval are dropped.
func (r *Renderer) Handle(e Event) {
	switch e.Status {
	case StatusDownloading:
		now := r.now()
		if !r.last.IsZero() && now.Sub(r.last) <= r.throttle {
			return
		}
		r.last = now
		fmt.Fprint(r.out, "\r"+style.Fg(color.Green)(r.line(e)))
	case StatusFinished:
		r.last = time.Time{}
		fmt.Fprintf(r.out, "\n%s\n", style.Fg(color.Green)(icon.Get(icon.Success)+" Download finished, post-processing (if any) ..."))
	case StatusError:
		r.last = time.Time{}
		fmt.Fprintf(r.out, "\n%s\n", style.Fg(color.Red)(fmt.Sprintf("%s Error during download: %v", icon.Get(icon.Fail), e.Err)))
	default:
		log.Debugf("progress %s: %s", e.Status, e.Filename)
	}
}

func (r *Renderer) line(e Event) string {
	text := fmt.Sprintf(
		"Downloading: %5.1f%% %s/%s  ETA:%ds  %s/s",
		e.Percent(),
		util.HumanSize(e.Downloaded),
		util.HumanSize(e.Total),
		int(e.ETA.Seconds()),
		util.HumanSize(int64(e.Speed)),
	)

	if r.bar == nil {
		return text
	}

	return r.bar.ViewAs(e.Percent()/100) + " " + text
}
