package filesystem

import (
	"errors"
	"io"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteAtomic(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()
		const path = "/cache/metadata/doc.json"

		Convey("The document is written and the temporary file is gone", func() {
			err := WriteAtomic(path, func(w io.Writer) error {
				_, err := io.WriteString(w, `{"id":"BV1"}`)
				return err
			})
			So(err, ShouldBeNil)
			So(string(lo.Must(API().ReadFile(path))), ShouldEqual, `{"id":"BV1"}`)
			So(lo.Must(API().Exists(path+".tmp")), ShouldBeFalse)
		})

		Convey("A failed write leaves the previous document untouched", func() {
			lo.Must0(API().MkdirAll("/cache/metadata", 0o755))
			lo.Must0(API().WriteFile(path, []byte("old"), 0o644))

			err := WriteAtomic(path, func(io.Writer) error {
				return errors.New("encode failed")
			})
			So(err, ShouldNotBeNil)
			So(string(lo.Must(API().ReadFile(path))), ShouldEqual, "old")
			So(lo.Must(API().Exists(path+".tmp")), ShouldBeFalse)
		})
	})
}
