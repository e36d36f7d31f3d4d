package remote_test

import (
	"io"
	"strings"
	"testing"

	"github.com/carterkozak/dialogue"
	"github.com/carterkozak/dialogue/remote"
)

const serializedError = `{
	"errorCode": "FAILED_PRECONDITION",
	"errorName": "Default:FailedPrecondition",
	"errorInstanceId": "abc",
	"parameters": {"key": "value"}
}`

func response(code int, contentType, body string) dialogue.Response {
	return dialogue.NewResponse(code, contentType, io.NopCloser(strings.NewReader(body)))
}

func TestDecodeExtractsRemoteErrorForAllErrorCodes(t *testing.T) {
	for _, code := range []int{300, 400, 404, 500} {
		decoded, err := remote.DefaultDecoder.Decode(response(code, "application/json", serializedError))
		if err != nil {
			t.Fatalf("code %d: %v", code, err)
		}
		if want, have := code, decoded.Status; want != have {
			t.Errorf("want status %d, have %d", want, have)
		}
		if want, have := "FAILED_PRECONDITION", decoded.ErrorCode; want != have {
			t.Errorf("want error code %q, have %q", want, have)
		}
		if want, have := "Default:FailedPrecondition", decoded.ErrorName; want != have {
			t.Errorf("want error name %q, have %q", want, have)
		}
		if want, have := "value", decoded.Parameters["key"]; want != have {
			t.Errorf("want parameter %q, have %q", want, have)
		}
		wantMessage := "RemoteException: FAILED_PRECONDITION (Default:FailedPrecondition) with instance ID abc"
		if have := decoded.Error(); wantMessage != have {
			t.Errorf("want message %q, have %q", wantMessage, have)
		}
	}
}

func TestDecodeToleratesContentTypeParameters(t *testing.T) {
	decoded, err := remote.DefaultDecoder.Decode(response(500, "application/json; charset=UTF-8", serializedError))
	if err != nil {
		t.Fatal(err)
	}
	if want, have := 500, decoded.Status; want != have {
		t.Errorf("want status %d, have %d", want, have)
	}
}

func TestDecodeRejectsNonJSONMediaTypes(t *testing.T) {
	_, err := remote.DefaultDecoder.Decode(response(500, "text/plain", serializedError))
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if want, have := "Failed to interpret response body as SerializableError: {code=500}", err.Error(); want != have {
		t.Errorf("want %q, have %q", want, have)
	}
}

func TestDecodeRejectsMissingContentType(t *testing.T) {
	_, err := remote.DefaultDecoder.Decode(response(404, "", serializedError))
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if want, have := "Failed to interpret response body as SerializableError: {code=404}", err.Error(); want != have {
		t.Errorf("want %q, have %q", want, have)
	}
}

func TestDecodeRejectsUnparseableBody(t *testing.T) {
	_, err := remote.DefaultDecoder.Decode(response(500, "application/json", "not json"))
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !strings.HasPrefix(err.Error(), "Failed to interpret response body as SerializableError:") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestDecodeRejectsEmptyBody(t *testing.T) {
	_, err := remote.DefaultDecoder.Decode(response(500, "application/json", ""))
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !strings.HasPrefix(err.Error(), "Failed to deserialize response body as JSON, could not deserialize SerializableError:") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestDecodeRejectsMissingRequiredFields(t *testing.T) {
	_, err := remote.DefaultDecoder.Decode(response(500, "application/json", `{"errorInstanceId": "abc"}`))
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !strings.HasPrefix(err.Error(), "Failed to interpret response body as SerializableError:") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestIsError(t *testing.T) {
	for code, want := range map[int]bool{
		200: false,
		204: false,
		299: false,
		300: true,
		199: true,
		404: true,
		500: true,
	} {
		if have := remote.IsError(response(code, "", "")); want != have {
			t.Errorf("code %d: want %v, have %v", code, want, have)
		}
	}
}
