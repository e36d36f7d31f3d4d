package sampleservice_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/carterkozak/dialogue"
	"github.com/carterkozak/dialogue/bodyserde"
	"github.com/carterkozak/dialogue/example/sampleservice"
	"github.com/carterkozak/dialogue/httpchannel"
	"github.com/carterkozak/dialogue/plainserde"
)

type capturingChannel struct {
	endpoint dialogue.Endpoint
	request  dialogue.Request
	response dialogue.Response
	err      error
}

func (c *capturingChannel) Execute(_ context.Context, endpoint dialogue.Endpoint, request dialogue.Request) (dialogue.Response, error) {
	c.endpoint = endpoint
	c.request = request
	return c.response, c.err
}

func jsonResponse(code int, body string) dialogue.Response {
	return dialogue.NewResponse(code, "application/json", io.NopCloser(strings.NewReader(body)))
}

func mustRID(t *testing.T, value string) plainserde.ResourceIdentifier {
	t.Helper()
	rid, err := plainserde.ParseResourceIdentifier(value)
	if err != nil {
		t.Fatal(err)
	}
	return rid
}

func TestObjectToObjectBuildsRequest(t *testing.T) {
	channel := &capturingChannel{response: jsonResponse(200, `{"name":"result","value":7}`)}
	client := sampleservice.NewBlocking(channel, bodyserde.DefaultRuntime(), time.Second)

	header := time.Date(2019, 4, 3, 12, 30, 0, 0, time.FixedZone("plus2", 2*60*60))
	query := []plainserde.ResourceIdentifier{
		mustRID(t, "ri.service.main.folder.b"),
		mustRID(t, "ri.service.main.folder.a"),
	}
	result, err := client.ObjectToObject("oid", header, query, sampleservice.SampleObject{Name: "in", Value: 1})
	if err != nil {
		t.Fatal(err)
	}
	if want, have := "result", result.Name; want != have {
		t.Errorf("want %q, have %q", want, have)
	}

	if want, have := dialogue.MethodPost, channel.endpoint.Method(); want != have {
		t.Errorf("want method %q, have %q", want, have)
	}
	if want, have := "oid", channel.request.PathParams()["objectId"]; want != have {
		t.Errorf("want path param %q, have %q", want, have)
	}
	headers := channel.request.HeaderParams()
	if len(headers) != 1 || headers[0].Key != "headerKey" || headers[0].Value != "2019-04-03T10:30:00Z" {
		t.Errorf("unexpected headers %v", headers)
	}
	queries := channel.request.QueryParams()
	if len(queries) != 2 || queries[0].Value != "ri.service.main.folder.b" || queries[1].Value != "ri.service.main.folder.a" {
		t.Errorf("unexpected query params %v", queries)
	}
	body := channel.request.Body()
	if body == nil {
		t.Fatal("expected request body")
	}
	if want, have := "application/json", body.ContentType(); want != have {
		t.Errorf("want content type %q, have %q", want, have)
	}
	data, err := io.ReadAll(body.Content())
	if err != nil {
		t.Fatal(err)
	}
	if want, have := `{"name":"in","value":1}`, strings.TrimSpace(string(data)); want != have {
		t.Errorf("want body %q, have %q", want, have)
	}
}

func TestObjectToObjectRequiresArguments(t *testing.T) {
	client := sampleservice.NewBlocking(&capturingChannel{}, bodyserde.DefaultRuntime(), time.Second)

	_, err := client.ObjectToObject("", time.Now(), nil, sampleservice.SampleObject{})
	var precondition *dialogue.PreconditionError
	if !errors.As(err, &precondition) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	if want, have := "objectId", precondition.Param; want != have {
		t.Errorf("want param %q, have %q", want, have)
	}

	_, err = client.ObjectToObject("oid", time.Time{}, nil, sampleservice.SampleObject{})
	if !errors.As(err, &precondition) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	if want, have := "header", precondition.Param; want != have {
		t.Errorf("want param %q, have %q", want, have)
	}
}

func TestVoidToVoidExpectsEmptyBody(t *testing.T) {
	empty := dialogue.NewResponse(204, "", io.NopCloser(strings.NewReader("")))
	client := sampleservice.NewBlocking(&capturingChannel{response: empty}, bodyserde.DefaultRuntime(), time.Second)
	if err := client.VoidToVoid(); err != nil {
		t.Fatal(err)
	}

	nonEmpty := dialogue.NewResponse(200, "", io.NopCloser(strings.NewReader("x")))
	client = sampleservice.NewBlocking(&capturingChannel{response: nonEmpty}, bodyserde.DefaultRuntime(), time.Second)
	err := client.VoidToVoid()
	if !errors.Is(err, bodyserde.ErrNonEmptyBody) {
		t.Fatalf("expected ErrNonEmptyBody, got %v", err)
	}
}

func TestBlockingTimeout(t *testing.T) {
	blocked := make(chan struct{})
	defer close(blocked)
	channel := dialogue.ChannelFunc(func(ctx context.Context, _ dialogue.Endpoint, _ dialogue.Request) (dialogue.Response, error) {
		// The timeout does not cancel ctx, so the call ends only when the test
		// releases it; that release is reported as a failure, not a response.
		select {
		case <-blocked:
			return nil, errors.New("released by the test")
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
	client := sampleservice.NewBlocking(channel, bodyserde.DefaultRuntime(), 50*time.Millisecond)

	err := client.VoidToVoid()
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected timeout cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "Waited 50 milliseconds") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestConnectFailureSurfacesTransportCause(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := server.URL
	server.Close() // connection refused from here on

	channel, err := httpchannel.New(base)
	if err != nil {
		t.Fatal(err)
	}

	blocking := sampleservice.NewBlocking(channel, bodyserde.DefaultRuntime(), time.Second)
	err = blocking.VoidToVoid()
	var transportErr httpchannel.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}

	async := sampleservice.NewAsync(channel, bodyserde.DefaultRuntime())
	_, err = async.VoidToVoid().Get(context.Background())
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError on the future, got %v", err)
	}
}

func TestAsyncObjectToObject(t *testing.T) {
	channel := &capturingChannel{response: jsonResponse(200, `{"name":"result","value":7}`)}
	client := sampleservice.NewAsync(channel, bodyserde.DefaultRuntime())

	future := client.ObjectToObject("oid", time.Now(), nil, sampleservice.SampleObject{Name: "in"})
	result, err := future.Get(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if want, have := 7, result.Value; want != have {
		t.Errorf("want %d, have %d", want, have)
	}
}
