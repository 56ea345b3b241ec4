package util

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/bilidl/bilidl/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace reserved chars", func() {
			So(SanitizeFilename(`a<b>c:d"e/f\g|h?i*j`), ShouldEqual, "a_b_c_d_e_f_g_h_i_j")
		})
		Convey("Should replace control chars", func() {
			So(SanitizeFilename("line\x01break"), ShouldEqual, "line_break")
		})
		Convey("Should collapse whitespace", func() {
			So(SanitizeFilename("  my   video\t\ttitle  "), ShouldEqual, "my video title")
		})
		Convey("Should keep unicode titles intact", func() {
			So(SanitizeFilename("【4K】夏日祭り"), ShouldEqual, "【4K】夏日祭り")
		})
	})
}

func TestHumanSize(t *testing.T) {
	Convey("HumanSize", t, func() {
		So(HumanSize(-1), ShouldEqual, "N/A")
		So(HumanSize(0), ShouldEqual, "0 B")
		So(HumanSize(1024), ShouldEqual, "1.0 KiB")
		So(HumanSize(5*1024*1024), ShouldEqual, "5.0 MiB")
	})
}

func TestFormatDuration(t *testing.T) {
	Convey("FormatDuration", t, func() {
		So(FormatDuration(0), ShouldEqual, "0:00")
		So(FormatDuration(65), ShouldEqual, "1:05")
		So(FormatDuration(3725.9), ShouldEqual, "62:05")
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<first>\w+)\s(?P<last>\w+)`)
		groups := ReGroups(re, "John Doe")
		So(groups["first"], ShouldEqual, "John")
		So(groups["last"], ShouldEqual, "Doe")
		So(ReGroups(re, "nospace"), ShouldBeEmpty)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory with a file", t, func() {
		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("/tmp/bilidl-test/sub", 0o755))
		lo.Must0(fs.WriteFile("/tmp/bilidl-test/sub/a.txt", []byte("x"), 0o644))

		Convey("Delete removes it recursively", func() {
			So(Delete("/tmp/bilidl-test"), ShouldBeNil)
			exists := lo.Must(fs.Exists("/tmp/bilidl-test"))
			So(exists, ShouldBeFalse)
		})

		Convey("Delete reports missing paths", func() {
			So(Delete("/tmp/does-not-exist"), ShouldNotBeNil)
		})
	})
}

func TestPrintErasableTo(t *testing.T) {
	Convey("PrintErasableTo", t, func() {
		var buf bytes.Buffer
		erase := PrintErasableTo(&buf, "working")
		So(buf.String(), ShouldEqual, "\rworking")
		erase()
		So(buf.String(), ShouldEqual, "\rworking\r       \r")
	})
}
