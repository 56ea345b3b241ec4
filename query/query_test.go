package query

import (
	"testing"

	"github.com/bilidl/bilidl/filesystem"
	"github.com/bilidl/bilidl/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuery(t *testing.T) {
	Convey("Given remembered URLs", t, func() {
		viper.Set(key.HistorySuggestURLs, true)
		Reset(func() {
			So(Clear(), ShouldBeNil)
		})

		u1 := "https://www.bilibili.com/video/BV1Ab411c7mD"
		u2 := "https://www.bilibili.com/video/BV1Zz411c7mD"

		So(Remember(u1, 1), ShouldBeNil)
		So(Remember(u2, 10), ShouldBeNil)

		Convey("Suggestions are sorted by rank", func() {
			s := SuggestMany("bilibili")
			So(s, ShouldResemble, []string{u2, u1})
		})

		Convey("Matching is fuzzy", func() {
			So(Suggest("BV1Ab").OrEmpty(), ShouldEqual, u1)
		})

		Convey("Remembering again changes the order", func() {
			So(Remember(u1, 20), ShouldBeNil)
			So(Suggest("bilibili").OrEmpty(), ShouldEqual, u1)
		})

		Convey("Case is preserved", func() {
			So(sanitize("  https://b23.tv/AbC  "), ShouldEqual, "https://b23.tv/AbC")
			So(Suggest("bv1ab").IsAbsent(), ShouldBeTrue)
		})

		Convey("Blank input is not remembered", func() {
			So(Remember("   ", 1), ShouldBeNil)
			So(SuggestMany(""), ShouldHaveLength, 2)
		})

		Convey("Suggestions can be disabled", func() {
			viper.Set(key.HistorySuggestURLs, false)
			So(SuggestMany("bilibili"), ShouldBeEmpty)
		})
	})
}
