package dialogue_test

import (
	"reflect"
	"testing"

	"github.com/carterkozak/dialogue"
)

func TestRequestBuilder(t *testing.T) {
	request := dialogue.NewRequest().
		PutPathParam("id", "42").
		PutHeaderParam("X-First", "a").
		PutHeaderParam("X-First", "b").
		PutQueryParam("q", "1").
		PutAllQueryParams("r", "2", "3").
		Build()

	if want, have := map[string]string{"id": "42"}, request.PathParams(); !reflect.DeepEqual(want, have) {
		t.Errorf("want path params %v, have %v", want, have)
	}
	wantHeaders := []dialogue.Param{{Key: "X-First", Value: "a"}, {Key: "X-First", Value: "b"}}
	if have := request.HeaderParams(); !reflect.DeepEqual(wantHeaders, have) {
		t.Errorf("want header params %v, have %v", wantHeaders, have)
	}
	wantQuery := []dialogue.Param{{Key: "q", Value: "1"}, {Key: "r", Value: "2"}, {Key: "r", Value: "3"}}
	if have := request.QueryParams(); !reflect.DeepEqual(wantQuery, have) {
		t.Errorf("want query params %v, have %v", wantQuery, have)
	}
	if request.Body() != nil {
		t.Error("expected nil body")
	}
}
