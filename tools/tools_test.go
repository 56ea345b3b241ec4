package tools

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/bilidl/bilidl/constant"
	"github.com/bilidl/bilidl/key"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func fakeLookPath(found map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if path, ok := found[name]; ok {
			return path, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestDetect(t *testing.T) {
	Convey("Given a PATH with yt-dlp and ffmpeg", t, func() {
		original := lookPath
		Reset(func() {
			lookPath = original
			viper.Set(key.ExtractorFFmpegPath, "")
		})

		lookPath = fakeLookPath(map[string]string{
			constant.YtDlp:           "/usr/bin/yt-dlp",
			constant.FFmpeg:          "/usr/bin/ffmpeg",
			"/opt/ffmpeg/bin/ffmpeg": "/opt/ffmpeg/bin/ffmpeg",
		})

		Convey("Detect resolves what is present", func() {
			tools := Detect()
			So(tools.YtDlp.OrEmpty(), ShouldEqual, "/usr/bin/yt-dlp")
			So(tools.FFmpeg.OrEmpty(), ShouldEqual, "/usr/bin/ffmpeg")
			So(tools.Aria2c.IsAbsent(), ShouldBeTrue)
			So(tools.Missing(), ShouldResemble, []string{constant.Aria2c})
		})

		Convey("A configured ffmpeg path takes precedence", func() {
			viper.Set(key.ExtractorFFmpegPath, "/opt/ffmpeg/bin/ffmpeg")
			So(Detect().FFmpeg.OrEmpty(), ShouldEqual, "/opt/ffmpeg/bin/ffmpeg")
		})
	})
}

func TestAria2Args(t *testing.T) {
	Convey("Given the default aria2 arguments", t, func() {
		viper.Set(key.Aria2Args, []string{"-x", "16", "-s", "16", "-k", "1M", "--file-allocation=none"})

		Convey("They are split into words", func() {
			So(Aria2Args(), ShouldResemble, []string{"-x", "16", "-s", "16", "-k", "1M", "--file-allocation=none"})
		})

		Convey("They are prefixed for yt-dlp", func() {
			So(DownloaderArgs(), ShouldEqual, "aria2c:-x 16 -s 16 -k 1M --file-allocation=none")
		})

		Convey("A whitespace separated string is accepted", func() {
			viper.Set(key.Aria2Args, "-x 4 -s 4")
			So(Aria2Args(), ShouldResemble, []string{"-x", "4", "-s", "4"})
		})

		Convey("Direct transfers include cookies when given", func() {
			args := DirectArgs("https://example.com/v.mp4", mo.Some("/sdcard/cookies.txt"))
			So(args[:3], ShouldResemble, []string{"--seed-time=0", "--enable-dht=true", "--enable-peer-exchange=true"})
			So(args, ShouldContain, "--load-cookies=/sdcard/cookies.txt")
			So(args[len(args)-1], ShouldEqual, "https://example.com/v.mp4")
		})

		Convey("Direct transfers omit cookies otherwise", func() {
			args := DirectArgs("https://example.com/v.mp4", mo.None[string]())
			So(args, ShouldNotContain, "--load-cookies=/sdcard/cookies.txt")
			So(len(args), ShouldEqual, 11)
		})
	})
}

func TestRunAria2(t *testing.T) {
	Convey("RunAria2 without aria2c", t, func() {
		err := RunAria2(context.Background(), mo.None[string](), "https://example.com", ".", mo.None[string](), io.Discard)
		So(err, ShouldEqual, ErrNoAria2)
	})
}

func TestInstallHint(t *testing.T) {
	Convey("Install hints", t, func() {
		So(installHint(constant.Android, constant.Aria2c), ShouldEqual, "pkg install aria2")
		So(installHint(constant.Android, constant.YtDlp), ShouldEqual, "pip install -U yt-dlp")
		So(installHint(constant.Darwin, constant.FFmpeg), ShouldEqual, "brew install ffmpeg")
		So(installHint(constant.Windows, constant.FFmpeg), ShouldEqual, "scoop install ffmpeg")
		So(installHint("plan9", constant.FFmpeg), ShouldBeEmpty)
	})

	Convey("The missing banner names the program", t, func() {
		So(MissingBanner(constant.FFmpeg), ShouldContainSubstring, "'ffmpeg' was not found")
	})
}
