package interactive

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bilidl/bilidl/extractor"
	"github.com/bilidl/bilidl/media"
	"github.com/bilidl/bilidl/progress"
	"github.com/bilidl/bilidl/tools"
	"github.com/samber/mo"
)

// interrupt makes the fake prompter behave as if Ctrl-C was pressed.
const interrupt = "^C"

type fakePrompter struct {
	confirms []bool
	inputs   []string
	selects  []int
	asked    []string
}

func (f *fakePrompter) Confirm(message string, def bool) (bool, error) {
	f.asked = append(f.asked, message)
	if len(f.confirms) == 0 {
		return def, nil
	}
	answer := f.confirms[0]
	f.confirms = f.confirms[1:]
	return answer, nil
}

func (f *fakePrompter) Input(message, def string, _ func(string) []string) (string, error) {
	f.asked = append(f.asked, message)
	if len(f.inputs) == 0 {
		return def, nil
	}
	answer := f.inputs[0]
	f.inputs = f.inputs[1:]

	switch answer {
	case interrupt:
		return "", terminal.InterruptErr
	case "":
		return def, nil
	default:
		return answer, nil
	}
}

func (f *fakePrompter) Select(message string, options []string) (int, error) {
	f.asked = append(f.asked, message)
	if len(f.selects) == 0 {
		return len(options) - 1, nil
	}
	answer := f.selects[0]
	f.selects = f.selects[1:]
	if answer < 0 {
		return 0, terminal.InterruptErr
	}
	return answer, nil
}

type fakeExtractor struct {
	options     extractor.Options
	infos       map[string]*media.Info
	downloadErr error
	requests    []*extractor.Request
	downloaded  []string
	updated     bool
}

var errUnsupported = errors.New("Unsupported URL")

func (f *fakeExtractor) Extract(_ context.Context, url string) (*media.Info, error) {
	info, ok := f.infos[url]
	if !ok {
		return nil, errUnsupported
	}
	return info, nil
}

func (f *fakeExtractor) Download(_ context.Context, url string, req *extractor.Request) error {
	f.requests = append(f.requests, req)
	if f.downloadErr != nil {
		return f.downloadErr
	}
	if req.Progress != nil {
		req.Progress(progress.Event{Status: progress.StatusFinished})
	}
	f.downloaded = append(f.downloaded, url)
	return nil
}

func (f *fakeExtractor) Update(context.Context) (string, error) {
	f.updated = true
	return "2025.01.01", nil
}

func onlyYtDlp() tools.Tools {
	return tools.Tools{YtDlp: mo.Some("/usr/bin/yt-dlp")}
}

// video returns metadata with three formats. Sorted by height they are 80, 64, 30280.
func video(title string) *media.Info {
	return &media.Info{
		ID:       "BV1xx411c7mD",
		Title:    title,
		Duration: 125,
		Formats: []media.Format{
			{ID: "30280", VCodec: "none", ACodec: "mp4a.40.2", Filesize: 1000},
			{ID: "64", Height: 720, Width: 1280, VCodec: "avc1", ACodec: "none", Filesize: 2000},
			{ID: "80", Height: 1080, Width: 1920, VCodec: "avc1", ACodec: "none", Filesize: 3000},
		},
	}
}
