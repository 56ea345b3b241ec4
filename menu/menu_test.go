package menu

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bilidl/bilidl/filesystem"
	"github.com/bilidl/bilidl/interactive"
	"github.com/bilidl/bilidl/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

type scripted struct {
	selects []int
	inputs  []string
}

func (s *scripted) Confirm(_ string, def bool) (bool, error) {
	return def, nil
}

func (s *scripted) Input(_, def string, _ func(string) []string) (string, error) {
	if len(s.inputs) == 0 {
		return "", terminal.InterruptErr
	}
	answer := s.inputs[0]
	s.inputs = s.inputs[1:]
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (s *scripted) Select(string, []string) (int, error) {
	if len(s.selects) == 0 {
		return 0, terminal.InterruptErr
	}
	answer := s.selects[0]
	s.selects = s.selects[1:]
	return answer, nil
}

func TestMenu(t *testing.T) {
	Convey("Given the main menu", t, func() {
		viper.Set(key.CookiesAutoDetect, false)
		filesystem.SetMemMapFs()
		lo.Must0(filesystem.API().MkdirAll("/sdcard", os.ModePerm))
		lo.Must0(filesystem.API().WriteFile("/sdcard/cookies.txt", []byte("# Netscape HTTP Cookie File\n"), 0o644))

		var (
			out  bytes.Buffer
			runs []*interactive.Options
		)
		prompt := &scripted{}
		options := Options{
			Prompter: prompt,
			Out:      &out,
			Base:     interactive.Options{Dir: "/downloads"},
			Run: func(_ context.Context, o *interactive.Options) (*interactive.Result, error) {
				runs = append(runs, o)
				return &interactive.Result{}, nil
			},
		}

		Convey("Quit ends the loop", func() {
			prompt.selects = []int{int(quit)}
			So(Run(context.Background(), options), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "No cookie file detected.")
			So(out.String(), ShouldContainSubstring, "goodbye")
		})

		Convey("Start Download re-asks on empty input and runs without cookies", func() {
			prompt.selects = []int{int(startDownload), int(quit)}
			prompt.inputs = []string{"  ", "https://www.bilibili.com/video/BV1xx411c7mD"}
			So(Run(context.Background(), options), ShouldBeNil)

			So(out.String(), ShouldContainSubstring, "URL cannot be empty.")
			So(runs, ShouldHaveLength, 1)
			So(runs[0].URLs, ShouldResemble, []string{"https://www.bilibili.com/video/BV1xx411c7mD"})
			So(runs[0].NoCookies, ShouldBeTrue)
			So(runs[0].Dir, ShouldEqual, "/downloads")
		})

		Convey("Change Cookie File re-asks until the file exists", func() {
			prompt.selects = []int{int(changeCookie), int(startDownload), int(quit)}
			prompt.inputs = []string{"/missing.txt", "/sdcard/cookies.txt", "https://b23.tv/abc"}
			So(Run(context.Background(), options), ShouldBeNil)

			So(out.String(), ShouldContainSubstring, "File not found. Try again.")
			So(out.String(), ShouldContainSubstring, "Cookie file updated.")
			So(runs[0].Cookie, ShouldEqual, "/sdcard/cookies.txt")
			So(runs[0].NoCookies, ShouldBeFalse)

			Convey("And none clears it", func() {
				prompt.selects = []int{int(changeCookie), int(showSettings), int(quit)}
				prompt.inputs = []string{"None"}
				out.Reset()
				So(Run(context.Background(), options), ShouldBeNil)
				So(out.String(), ShouldContainSubstring, "Cookie file cleared.")
				So(out.String(), ShouldContainSubstring, "Cookie file:        None detected")
			})
		})

		Convey("Show Current Settings prints the configuration", func() {
			prompt.selects = []int{int(showSettings), int(quit)}
			So(Run(context.Background(), options), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Current Settings")
			So(out.String(), ShouldContainSubstring, "Download directory: /downloads")
		})

		Convey("An interrupt ends the loop quietly", func() {
			So(Run(context.Background(), options), ShouldBeNil)
		})

		Convey("A cancelled context ends the loop", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			prompt.selects = []int{int(startDownload)}
			So(Run(ctx, options), ShouldBeNil)
			So(runs, ShouldBeEmpty)
		})
	})
}
