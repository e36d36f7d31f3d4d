package channels_test

import (
	"context"
	"errors"
	"testing"

	"github.com/carterkozak/dialogue/channels"
	"github.com/sony/gobreaker"
)

func TestCircuitBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &scriptedChannel{script: []scriptedResult{fail(errTransport)}}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "test"})
	decorated := channels.NewCircuitBreaker(inner, breaker)

	// The default breaker trips after more than five consecutive failures.
	for i := 0; i < 6; i++ {
		if _, err := decorated.Execute(context.Background(), testEndpoint, testRequest); !errors.Is(err, errTransport) {
			t.Fatalf("call %d: expected transport failure, got %v", i, err)
		}
	}
	_, err := decorated.Execute(context.Background(), testEndpoint, testRequest)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker, got %v", err)
	}
	if want, have := 6, inner.callCount(); want != have {
		t.Errorf("want %d calls, have %d", want, have)
	}
}

func TestCircuitBreakerPassesSuccessThrough(t *testing.T) {
	want := okResponse(200, "", "")
	inner := &scriptedChannel{script: []scriptedResult{succeed(want)}}
	decorated := channels.NewCircuitBreaker(inner, gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "test"}))

	have, err := decorated.Execute(context.Background(), testEndpoint, testRequest)
	if err != nil {
		t.Fatal(err)
	}
	if want != have {
		t.Errorf("want %v, have %v", want, have)
	}
}
