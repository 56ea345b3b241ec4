package inline

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bilidl/bilidl/constant"
	"github.com/bilidl/bilidl/extractor"
	"github.com/bilidl/bilidl/media"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type (
	// FormatPicker chooses a yt-dlp selector from the sorted formats.
	FormatPicker func([]media.Format) (string, error)
	// FormatsFilter narrows the listed formats.
	FormatsFilter func([]media.Format) []media.Format
)

// Options configure an inline run.
type Options struct {
	Out io.Writer
	// Err receives progress lines while downloading.
	Err       io.Writer
	Extractor extractor.Extractor
	URLs      []string
	Json      bool
	// Download fetches the picked format instead of only listing.
	Download bool
	Dir      string
	Aria2    bool
	// Limit caps the formats listed. Zero lists all.
	Limit         int
	FormatPicker  mo.Option[FormatPicker]
	FormatsFilter mo.Option[FormatsFilter]
}

// rawPrefix forces the remainder of a selector to be used as a format id.
const rawPrefix = "id:"

// ParseFormatPicker parses a format selector:
//
//	best, audio, video - the presets
//	[number]           - 1-based index into the sorted list, or a format id when out of range
//	id:[format]        - a raw yt-dlp format selector
//	anything else      - used as a raw yt-dlp format selector
func ParseFormatPicker(value string) (FormatPicker, error) {
	value = strings.TrimSpace(value)

	switch strings.ToLower(value) {
	case "":
		return nil, errors.New("empty format selector")
	case "best":
		return preset(constant.FormatBest), nil
	case "audio":
		return preset(constant.FormatAudio), nil
	case "video":
		return preset(constant.FormatVideo), nil
	}

	if raw, ok := strings.CutPrefix(value, rawPrefix); ok {
		if raw == "" {
			return nil, errors.New("empty format id")
		}
		return preset(raw), nil
	}

	if idx, err := strconv.Atoi(value); err == nil {
		if idx <= 0 {
			return nil, fmt.Errorf("invalid index: %s", value)
		}

		return func(formats []media.Format) (string, error) {
			if idx <= len(formats) {
				return formats[idx-1].ID, nil
			}

			// BiliBili format ids are numeric too
			if _, ok := lo.Find(formats, func(f media.Format) bool { return f.ID == value }); ok {
				return value, nil
			}

			return "", fmt.Errorf("%w: %d of %d", media.ErrOutOfRange, idx, len(formats))
		}, nil
	}

	return preset(value), nil
}

func preset(selector string) FormatPicker {
	return func([]media.Format) (string, error) {
		return selector, nil
	}
}

// ParseFormatsFilter parses a listing filter:
//
//	all                        - every format
//	video+audio, video, audio  - formats of that kind
//	@[substring]@              - formats whose note contains substring
func ParseFormatsFilter(description string) (FormatsFilter, error) {
	description = strings.TrimSpace(description)

	switch description {
	case "all":
		return func(formats []media.Format) []media.Format { return formats }, nil
	case media.KindMuxed, media.KindVideo, media.KindAudio:
		return func(formats []media.Format) []media.Format {
			return lo.Filter(formats, func(f media.Format, _ int) bool {
				return f.Kind() == description
			})
		}, nil
	}

	if len(description) > 2 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(formats []media.Format) []media.Format {
			return lo.Filter(formats, func(f media.Format, _ int) bool {
				return strings.Contains(strings.ToLower(f.Note), sub)
			})
		}, nil
	}

	return nil, fmt.Errorf("invalid formats filter: %s", description)
}
