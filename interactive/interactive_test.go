package interactive

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/bilidl/bilidl/config"
	"github.com/bilidl/bilidl/constant"
	"github.com/bilidl/bilidl/extractor"
	"github.com/bilidl/bilidl/filesystem"
	"github.com/bilidl/bilidl/key"
	"github.com/bilidl/bilidl/media"
	"github.com/bilidl/bilidl/tools"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

const (
	urlA = "https://www.bilibili.com/video/BV1xx411c7mD"
	urlB = "https://www.bilibili.com/video/BV1yy411c7mD"
)

type harness struct {
	out       *bytes.Buffer
	prompter  *fakePrompter
	extractor *fakeExtractor
	opts      *Options
}

func newHarness() *harness {
	h := &harness{
		out:      &bytes.Buffer{},
		prompter: &fakePrompter{},
		extractor: &fakeExtractor{
			infos: map[string]*media.Info{
				urlA: video("Summer Festival"),
				urlB: video("Winter Festival"),
			},
		},
	}

	h.opts = &Options{
		Dir:         "/downloads",
		Prompter:    h.prompter,
		Out:         h.out,
		DetectTools: onlyYtDlp,
		NewExtractor: func(options extractor.Options) extractor.Extractor {
			h.extractor.options = options
			return h.extractor
		},
	}
	return h
}

func (h *harness) run() *Result {
	result, err := Run(context.Background(), h.opts)
	So(err, ShouldBeNil)
	return result
}

func TestRun(t *testing.T) {
	Convey("Given a run", t, func() {
		viper.Set(key.CookiesAutoDetect, false)
		viper.Set(key.ProgressBar, false)
		viper.Set(key.HistorySave, false)
		viper.Set(key.FormatsMaxAttempts, 3)
		viper.Set(key.FormatsLimit, 30)
		h := newHarness()

		Convey("With a URL argument and an index selection", func() {
			h.opts.URLs = []string{urlA}
			h.prompter.inputs = []string{"1"}
			result := h.run()

			Convey("The highest format is downloaded", func() {
				So(h.extractor.requests, ShouldHaveLength, 1)
				So(h.extractor.requests[0].Format, ShouldEqual, "80")
				So(h.extractor.requests[0].Dir, ShouldEqual, "/downloads")
				So(h.extractor.requests[0].Aria2, ShouldBeFalse)
				So(result.Downloaded, ShouldResemble, []string{urlA})
			})

			Convey("Metadata and the table are printed", func() {
				out := h.out.String()
				So(out, ShouldContainSubstring, "Download directory: /downloads")
				So(out, ShouldContainSubstring, "Video ID: BV1xx411c7mD")
				So(out, ShouldContainSubstring, "Title: Summer Festival")
				So(out, ShouldContainSubstring, "Duration: 2:05")
				So(out, ShouldContainSubstring, "1920x1080")
				So(out, ShouldContainSubstring, "Selected format id: 80")
				So(out, ShouldContainSubstring, "Download finished")
				So(out, ShouldContainSubstring, "All tasks complete")
			})

			Convey("Cookies are not used", func() {
				So(h.extractor.options.Cookie.IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("Without a URL", func() {
			result := h.run()

			Convey("The run ends early", func() {
				So(h.out.String(), ShouldContainSubstring, "No URL provided. Exiting.")
				So(h.out.String(), ShouldNotContainSubstring, "All tasks complete")
				So(result.Downloaded, ShouldBeEmpty)
				So(h.extractor.requests, ShouldBeEmpty)
			})
		})

		Convey("With multiple pasted URLs and presets", func() {
			h.prompter.confirms = []bool{true}
			h.prompter.inputs = []string{urlA, "  " + urlB + "  ", "", "0", "2", "", ""}
			result := h.run()

			Convey("Each URL is downloaded with its preset", func() {
				So(result.Downloaded, ShouldResemble, []string{urlA, urlB})
				So(h.extractor.requests[0].Format, ShouldEqual, constant.FormatAudio)
				So(h.extractor.requests[1].Format, ShouldEqual, constant.FormatBest)
			})
		})

		Convey("With invalid selections only", func() {
			h.opts.URLs = []string{urlA}
			h.prompter.inputs = []string{"abc", "9", "-1"}
			h.run()

			Convey("The best format is used after three attempts", func() {
				out := h.out.String()
				So(out, ShouldContainSubstring, media.ErrInvalidInput.Error())
				So(out, ShouldContainSubstring, media.ErrOutOfRange.Error())
				So(out, ShouldContainSubstring, "defaulting to best")
				So(h.extractor.requests[0].Format, ShouldEqual, constant.FormatBest)
			})
		})

		Convey("With a format flag", func() {
			h.opts.URLs = []string{urlA}
			h.opts.Format = "bestaudio"
			h.run()

			Convey("No selection is asked", func() {
				So(h.extractor.requests[0].Format, ShouldEqual, "bestaudio")
				So(h.prompter.asked, ShouldNotContain, "Enter index number shown above to pick a specific format, or 0 for automatic BEST")
			})
		})

		Convey("With an unsupported URL among others", func() {
			h.opts.URLs = []string{"https://example.com/nope", urlA}
			h.opts.Format = constant.FormatBest
			result := h.run()

			Convey("It is reported and the next URL is processed", func() {
				So(h.out.String(), ShouldContainSubstring, "Error extracting video info: Unsupported URL")
				So(result.Failed, ShouldResemble, []string{"https://example.com/nope"})
				So(result.Downloaded, ShouldResemble, []string{urlA})
				So(h.out.String(), ShouldContainSubstring, "1 video downloaded, 1 failed")
			})
		})

		Convey("With a playlist", func() {
			h.extractor.infos[urlA] = &media.Info{Entries: []*media.Info{nil, video("Entry One")}}
			h.opts.URLs = []string{urlA}
			h.opts.Format = constant.FormatBest
			h.run()

			Convey("The first entry is used", func() {
				So(h.out.String(), ShouldContainSubstring, "selecting first entry")
				So(h.out.String(), ShouldContainSubstring, "Title: Entry One")
			})
		})

		Convey("With no formats", func() {
			h.extractor.infos[urlA] = &media.Info{Title: "Empty"}
			h.opts.URLs = []string{urlA}
			result := h.run()

			Convey("It fails without downloading", func() {
				So(h.out.String(), ShouldContainSubstring, "No formats found")
				So(result.Failed, ShouldResemble, []string{urlA})
				So(h.extractor.requests, ShouldBeEmpty)
			})
		})

		Convey("When the download fails", func() {
			h.extractor.downloadErr = errors.New("HTTP Error 403")
			h.opts.URLs = []string{urlA}
			h.opts.Format = constant.FormatBest
			result := h.run()

			Convey("The cookie hint is shown", func() {
				So(h.out.String(), ShouldContainSubstring, "Download failed: HTTP Error 403")
				So(h.out.String(), ShouldContainSubstring, "member-only content")
				So(result.Failed, ShouldResemble, []string{urlA})
			})
		})

		Convey("When interrupted at the selection prompt", func() {
			h.opts.URLs = []string{urlA}
			h.prompter.inputs = []string{interrupt}
			result := h.run()

			Convey("The run ends quietly", func() {
				So(h.out.String(), ShouldContainSubstring, "Interrupted.")
				So(result.Downloaded, ShouldBeEmpty)
			})
		})

		Convey("With aria2c installed", func() {
			h.opts.URLs = []string{urlA}
			h.opts.Format = constant.FormatBest
			h.opts.DetectTools = func() tools.Tools {
				return tools.Tools{
					YtDlp:  mo.Some("/usr/bin/yt-dlp"),
					Aria2c: mo.Some("/usr/bin/aria2c"),
					FFmpeg: mo.Some("/usr/bin/ffmpeg"),
				}
			}

			Convey("The user is asked", func() {
				viper.Set(key.Aria2Prompt, true)
				h.prompter.confirms = []bool{false, true}
				h.run()
				So(h.prompter.asked, ShouldContain, "Use aria2c for segmented downloads?")
				So(h.extractor.requests[0].Aria2, ShouldBeTrue)
				So(h.out.String(), ShouldNotContainSubstring, "ffmpeg not found")
			})

			Convey("The flag skips the question", func() {
				h.opts.Aria2 = true
				h.run()
				So(h.prompter.asked, ShouldNotContain, "Use aria2c for segmented downloads?")
				So(h.extractor.requests[0].Aria2, ShouldBeTrue)
			})
		})

		Convey("With the update flag", func() {
			h.opts.URLs = []string{urlA}
			h.opts.Format = constant.FormatBest
			h.opts.Update = true
			h.run()

			So(h.extractor.updated, ShouldBeTrue)
			So(h.out.String(), ShouldContainSubstring, "yt-dlp 2025.01.01 ready.")
		})

		Convey("Without yt-dlp in PATH", func() {
			h.opts.URLs = []string{urlA}
			h.opts.Format = constant.FormatBest
			h.opts.DetectTools = func() tools.Tools { return tools.Tools{} }
			result := h.run()

			Convey("A copy is installed before extracting", func() {
				So(h.out.String(), ShouldContainSubstring, "a managed copy will be installed")
				So(h.extractor.updated, ShouldBeTrue)
				So(h.prompter.asked, ShouldNotContain, "Check for yt-dlp updates before downloading?")
				So(result.Downloaded, ShouldResemble, []string{urlA})
			})
		})

		Convey("With yt-dlp in PATH and the update declined", func() {
			h.opts.URLs = []string{urlA}
			h.opts.Format = constant.FormatBest
			h.run()

			So(h.prompter.asked, ShouldContain, "Check for yt-dlp updates before downloading?")
			So(h.extractor.updated, ShouldBeFalse)
			So(h.extractor.options.Executable.OrEmpty(), ShouldEqual, "/usr/bin/yt-dlp")
		})

		Convey("With cookie auto-detection", func() {
			filesystem.SetMemMapFs()
			viper.Set(key.CookiesAutoDetect, true)
			h.opts.URLs = []string{urlA}
			h.opts.Format = constant.FormatBest

			Reset(func() {
				viper.Set(key.CookiesAutoDetect, false)
				filesystem.SetMemMapFs()
			})

			Convey("When a file is detected", func() {
				detected := "/sdcard/Download/bili_cookies.txt"
				lo.Must0(filesystem.API().MkdirAll("/sdcard/Download", os.ModePerm))
				lo.Must0(filesystem.API().WriteFile(detected, []byte("# Netscape HTTP Cookie File\n"), 0o644))

				Convey("It is used by default", func() {
					h.run()
					So(h.out.String(), ShouldContainSubstring, "Auto-detected cookie file: "+detected)
					So(h.prompter.asked, ShouldContain, "Use this cookie file?")
					So(h.extractor.options.Cookie.OrEmpty(), ShouldEqual, detected)
				})

				Convey("Declining continues without cookies", func() {
					h.prompter.confirms = []bool{false}
					h.run()
					So(h.extractor.options.Cookie.IsAbsent(), ShouldBeTrue)
					So(h.prompter.asked, ShouldNotContain, "No cookie file auto-detected. Do you want to provide a cookies.txt path?")
				})
			})

			Convey("When nothing is detected", func() {
				Convey("A manual path is offered and used", func() {
					lo.Must0(filesystem.API().MkdirAll("/data", os.ModePerm))
					lo.Must0(filesystem.API().WriteFile("/data/mine.txt", []byte("# Netscape HTTP Cookie File\n"), 0o644))
					h.prompter.confirms = []bool{true}
					h.prompter.inputs = []string{"/data/mine.txt"}
					h.run()

					So(h.prompter.asked, ShouldContain, "No cookie file auto-detected. Do you want to provide a cookies.txt path?")
					So(h.extractor.options.Cookie.OrEmpty(), ShouldEqual, "/data/mine.txt")
				})

				Convey("A missing manual path is reported", func() {
					h.prompter.confirms = []bool{true}
					h.prompter.inputs = []string{"/nope/cookies.txt"}
					h.run()

					So(h.out.String(), ShouldContainSubstring, "Cookie file not found; continuing without cookies.")
					So(h.extractor.options.Cookie.IsAbsent(), ShouldBeTrue)
				})
			})
		})

		Convey("With a cookie flag", func() {
			h.opts.URLs = []string{urlA}
			h.opts.Format = constant.FormatBest

			Convey("An existing file is used and inspected", func() {
				lo.Must0(filesystem.API().MkdirAll("/sdcard", os.ModePerm))
				lo.Must0(filesystem.API().WriteFile("/sdcard/cookies.txt", []byte("# Netscape HTTP Cookie File\n"), 0o644))
				h.opts.Cookie = "/sdcard/cookies.txt"
				h.run()

				So(h.extractor.options.Cookie.OrEmpty(), ShouldEqual, "/sdcard/cookies.txt")
				So(h.out.String(), ShouldContainSubstring, "Using cookie file: /sdcard/cookies.txt")
				So(h.out.String(), ShouldContainSubstring, "No SESSDATA cookie")
			})

			Convey("A missing file disables cookies", func() {
				h.opts.Cookie = "/nope/cookies.txt"
				h.run()

				So(h.extractor.options.Cookie.IsAbsent(), ShouldBeTrue)
				So(h.out.String(), ShouldContainSubstring, "continuing without cookies")
			})

			Convey("No cookies wins over everything", func() {
				h.opts.Cookie = "/sdcard/cookies.txt"
				h.opts.NoCookies = true
				h.run()

				So(h.extractor.options.Cookie.IsAbsent(), ShouldBeTrue)
			})
		})
	})
}
