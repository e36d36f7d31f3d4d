package channels_test

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/carterkozak/dialogue"
)

var testEndpoint = dialogue.NewEndpoint(dialogue.MethodGet, dialogue.NewPathTemplate().Fixed("test").MustBuild())

var testRequest = dialogue.NewRequest().Build()

func okResponse(code int, contentType, body string) dialogue.Response {
	return dialogue.NewResponse(code, contentType, io.NopCloser(strings.NewReader(body)))
}

// scriptedChannel replays a fixed sequence of outcomes and counts calls.
// The last outcome repeats once the script is exhausted.
type scriptedChannel struct {
	mu     sync.Mutex
	calls  int
	script []scriptedResult
}

type scriptedResult struct {
	response dialogue.Response
	err      error
}

func succeed(response dialogue.Response) scriptedResult { return scriptedResult{response: response} }

func fail(err error) scriptedResult { return scriptedResult{err: err} }

func (c *scriptedChannel) Execute(context.Context, dialogue.Endpoint, dialogue.Request) (dialogue.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.calls
	if i >= len(c.script) {
		i = len(c.script) - 1
	}
	c.calls++
	result := c.script[i]
	return result.response, result.err
}

func (c *scriptedChannel) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
