package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bilidl/bilidl/filesystem"
	"github.com/bilidl/bilidl/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Metadata() lives inside the cache", func() {
			So(Metadata(), ShouldStartWith, Cache())
		})
	})
}

func TestDownloads(t *testing.T) {
	Convey("Given the download directory resolver", t, func() {
		home := lo.Must(os.UserHomeDir())
		viper.Set(key.DownloadsPath, "")

		Reset(func() {
			filesystem.SetMemMapFs()
			viper.Set(key.DownloadsPath, "")
		})

		Convey("Candidates are probed in the documented order", func() {
			So(DownloadCandidates(), ShouldResemble, []string{
				filepath.Join(home, "storage", "downloads"),
				filepath.Join(home, "storage", "shared"),
				filepath.Join(home, "downloads"),
				home,
			})
		})

		Convey("When only ~/downloads exists", func() {
			lo.Must0(filesystem.API().MkdirAll(filepath.Join(home, "downloads"), os.ModePerm))

			Convey("It is chosen over the home directory", func() {
				So(Downloads(), ShouldEqual, filepath.Join(home, "downloads"))
			})
		})

		Convey("When shared storage exists alongside ~/downloads", func() {
			lo.Must0(filesystem.API().MkdirAll(filepath.Join(home, "downloads"), os.ModePerm))
			lo.Must0(filesystem.API().MkdirAll(filepath.Join(home, "storage", "shared"), os.ModePerm))

			Convey("Shared storage wins", func() {
				So(Downloads(), ShouldEqual, filepath.Join(home, "storage", "shared"))
			})
		})

		Convey("When a path is configured", func() {
			custom := filepath.Join(home, "videos", "bili")
			viper.Set(key.DownloadsPath, custom)

			Convey("It is used and created", func() {
				So(Downloads(), ShouldEqual, custom)
				So(lo.Must(filesystem.API().IsDir(custom)), ShouldBeTrue)
			})
		})
	})
}

func TestCookieSearchDirs(t *testing.T) {
	Convey("Cookie search directories", t, func() {
		viper.Set(key.CookiesSearchPaths, []string{"/extra/cookies", "/sdcard"})

		dirs := CookieSearchDirs()

		So(dirs, ShouldContain, "/sdcard/Download")
		So(dirs, ShouldContain, "/extra/cookies")
		So(len(lo.Filter(dirs, func(d string, _ int) bool { return d == "/sdcard" })), ShouldEqual, 1)
	})
}

func TestLocations(t *testing.T) {
	Convey("Named locations", t, func() {
		Convey("Lookup ignores case", func() {
			l, ok := Lookup(" Metadata ")
			So(ok, ShouldBeTrue)
			So(l.Path(), ShouldEqual, Metadata())
			So(l.Listed, ShouldBeFalse)
		})

		Convey("Unknown names are not found", func() {
			_, ok := Lookup("temp")
			So(ok, ShouldBeFalse)
		})

		Convey("Names are unique", func() {
			names := lo.Map(Locations(), func(l Location, _ int) string { return l.Name })
			So(lo.Uniq(names), ShouldHaveLength, len(names))
		})
	})
}
