package extractor

import (
	"errors"

	"github.com/bilidl/bilidl/media"
	"github.com/tidwall/gjson"
)

// ErrMalformed is returned when yt-dlp output is not valid JSON.
var ErrMalformed = errors.New("malformed yt-dlp output")

// Parse decodes the single JSON document printed by --dump-single-json.
func Parse(data []byte) (*media.Info, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformed
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, ErrMalformed
	}

	return parseInfo(root), nil
}

func parseInfo(r gjson.Result) *media.Info {
	info := &media.Info{
		ID:         r.Get("id").String(),
		Title:      r.Get("title").String(),
		Duration:   r.Get("duration").Float(),
		WebpageURL: r.Get("webpage_url").String(),
		Extractor:  r.Get("extractor").String(),
	}

	r.Get("formats").ForEach(func(_, f gjson.Result) bool {
		info.Formats = append(info.Formats, parseFormat(f))
		return true
	})

	r.Get("entries").ForEach(func(_, e gjson.Result) bool {
		if e.IsObject() {
			info.Entries = append(info.Entries, parseInfo(e))
		} else {
			info.Entries = append(info.Entries, nil)
		}
		return true
	})

	return info
}

func parseFormat(f gjson.Result) media.Format {
	return media.Format{
		ID:             f.Get("format_id").String(),
		Note:           f.Get("format_note").String(),
		Ext:            f.Get("ext").String(),
		Width:          int(f.Get("width").Int()),
		Height:         int(f.Get("height").Int()),
		FPS:            f.Get("fps").Float(),
		VCodec:         f.Get("vcodec").String(),
		ACodec:         f.Get("acodec").String(),
		Filesize:       f.Get("filesize").Int(),
		FilesizeApprox: f.Get("filesize_approx").Int(),
	}
}
