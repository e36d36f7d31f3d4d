package channels_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/carterkozak/dialogue"
	"github.com/carterkozak/dialogue/channels"
)

func annotate(name string, trace *[]string) channels.Middleware {
	return func(next dialogue.Channel) dialogue.Channel {
		return dialogue.ChannelFunc(func(ctx context.Context, endpoint dialogue.Endpoint, request dialogue.Request) (dialogue.Response, error) {
			*trace = append(*trace, name)
			return next.Execute(ctx, endpoint, request)
		})
	}
}

func TestChainOrder(t *testing.T) {
	var trace []string
	inner := &scriptedChannel{script: []scriptedResult{succeed(okResponse(200, "", ""))}}
	chained := channels.Chain(
		annotate("first", &trace),
		annotate("second", &trace),
		annotate("third", &trace),
	)(inner)

	if _, err := chained.Execute(context.Background(), testEndpoint, testRequest); err != nil {
		t.Fatal(err)
	}
	if want := []string{"first", "second", "third"}; !reflect.DeepEqual(want, trace) {
		t.Errorf("want %v, have %v", want, trace)
	}
	if want, have := 1, inner.callCount(); want != have {
		t.Errorf("want %d calls, have %d", want, have)
	}
}
