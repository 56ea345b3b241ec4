package media

import (
	"regexp"

	"github.com/bilidl/bilidl/util"
	"github.com/samber/mo"
)

var (
	bvPattern = regexp.MustCompile(`(?P<id>BV[0-9A-Za-z]{10})`)
	avPattern = regexp.MustCompile(`av(?P<id>\d+)`)
)

// VideoID extracts a BiliBili BV or av identifier from a URL.
// yt-dlp parses URLs on its own; this only serves the "Detected video id" hint.
func VideoID(url string) mo.Option[string] {
	if id, ok := util.ReGroups(bvPattern, url)["id"]; ok {
		return mo.Some(id)
	}

	if id, ok := util.ReGroups(avPattern, url)["id"]; ok {
		return mo.Some("av" + id)
	}

	return mo.None[string]()
}
