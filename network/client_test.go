package network

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bilidl/bilidl/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given a server echoing the User-Agent", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.Header.Get("User-Agent")))
		}))
		Reset(server.Close)

		read := func(req *http.Request) string {
			resp, err := Client.Do(req)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			buf := make([]byte, 128)
			n, _ := resp.Body.Read(buf)
			return string(buf[:n])
		}

		Convey("The application agent is added", func() {
			req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
			So(read(req), ShouldEqual, constant.App+"/"+constant.Version)
		})

		Convey("An explicit agent is kept", func() {
			req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
			req.Header.Set("User-Agent", "custom")
			So(read(req), ShouldEqual, "custom")
		})
	})
}
