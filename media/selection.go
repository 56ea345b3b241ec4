package media

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bilidl/bilidl/constant"
)

var (
	ErrInvalidInput = errors.New("invalid input; enter a number from the list or 0")
	ErrOutOfRange   = errors.New("index out of shown range, try again")
	ErrMissingID    = errors.New("selected entry has no format id; choose another or use 0 for best")
)

// Choice is the outcome of a selection prompt.
type Choice struct {
	// Selector is the yt-dlp format selector, empty when Automatic.
	Selector string
	// Automatic means the user asked for the best format and a preset should be chosen next.
	Automatic bool
}

// Resolve maps raw prompt input to a choice over the shown formats.
// Empty input and "0" request the automatic best selection.
func Resolve(input string, shown []Format) (Choice, error) {
	input = strings.TrimSpace(input)
	if input == "" || input == "0" {
		return Choice{Automatic: true}, nil
	}

	idx, err := strconv.Atoi(input)
	if err != nil || idx < 0 {
		return Choice{}, ErrInvalidInput
	}

	if idx == 0 {
		return Choice{Automatic: true}, nil
	}

	if idx > len(shown) {
		return Choice{}, ErrOutOfRange
	}

	f := shown[idx-1]
	if f.ID == "" {
		return Choice{}, ErrMissingID
	}

	return Choice{Selector: f.ID}, nil
}

// PresetOption describes one entry of the download type legend.
type PresetOption struct {
	Key         string
	Description string
}

// Presets is the download type legend in display order.
var Presets = []PresetOption{
	{"0", "Automatic BEST (" + constant.FormatBest + ")"},
	{"1", "Best (video+audio)"},
	{"2", "Audio only (" + constant.FormatAudio + ")"},
	{"3", "Video only (" + constant.FormatVideo + ")"},
}

// Preset maps a download type answer to a format selector. Anything unrecognized means best.
func Preset(answer string) string {
	switch strings.TrimSpace(answer) {
	case "2":
		return constant.FormatAudio
	case "3":
		return constant.FormatVideo
	default:
		return constant.FormatBest
	}
}
