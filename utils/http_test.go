package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitWriteJSONWithStatus(t *testing.T) {
	Convey("Failure to marshal json", t, func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		// causes an UnsupportedTypeError
		WriteJSONWithStatus(w, r, make(chan int), http.StatusInternalServerError)

		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(w.Body.String(), ShouldEqual, "")
	})

	Convey("contents are written as json", t, func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		WriteJSONWithStatus(w, r, "message", http.StatusCreated)

		So(w.Code, ShouldEqual, http.StatusCreated)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(w.Body.String(), ShouldContainSubstring, "message")
	})
}

type decodeTarget struct {
	Name string `json:"name"`
}

func TestUnitDecodeJSONBody(t *testing.T) {
	Convey("Valid body is decoded", t, func() {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"checkout"}`))
		var target decodeTarget
		So(DecodeJSONBody(r, &target), ShouldBeNil)
		So(target.Name, ShouldEqual, "checkout")
	})

	Convey("Empty body is rejected", t, func() {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var target decodeTarget
		So(DecodeJSONBody(r, &target), ShouldEqual, ErrEmptyBody)
	})

	Convey("Unknown fields are rejected", t, func() {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"checkout","other":1}`))
		var target decodeTarget
		err := DecodeJSONBody(r, &target)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "request body invalid")
	})

	Convey("Malformed json is rejected", t, func() {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		var target decodeTarget
		So(DecodeJSONBody(r, &target), ShouldNotBeNil)
	})
}
