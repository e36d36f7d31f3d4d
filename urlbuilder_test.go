package dialogue_test

import (
	"net/url"
	"testing"

	"github.com/carterkozak/dialogue"
)

func TestURLBuilderDefaultPortOmitted(t *testing.T) {
	for _, tc := range []struct {
		scheme string
		port   int
		want   string
	}{
		{"http", 80, "http://host/a"},
		{"http", 8080, "http://host:8080/a"},
		{"https", 443, "https://host/a"},
		{"https", 8443, "https://host:8443/a"},
		{"http", 0, "http://host/a"},
	} {
		builder := dialogue.NewURLBuilder(tc.scheme, "host", tc.port)
		builder.PathSegment("a")
		if have := builder.Build(); tc.want != have {
			t.Errorf("%s:%d: want %q, have %q", tc.scheme, tc.port, tc.want, have)
		}
	}
}

func TestURLBuilderEmptyPath(t *testing.T) {
	if want, have := "http://host/", dialogue.NewURLBuilder("http", "host", 0).Build(); want != have {
		t.Errorf("want %q, have %q", want, have)
	}
}

func TestURLBuilderPathSegmentEncoding(t *testing.T) {
	builder := dialogue.NewURLBuilder("http", "host", 0)
	builder.PathSegment("a-b.c_d~e")
	builder.PathSegment("sp ace/slash?q")
	if want, have := "http://host/a-b.c_d~e/sp%20ace%2Fslash%3Fq", builder.Build(); want != have {
		t.Errorf("want %q, have %q", want, have)
	}
}

func TestURLBuilderNonASCIIPathSegment(t *testing.T) {
	builder := dialogue.NewURLBuilder("http", "host", 0)
	builder.PathSegment("café")
	if want, have := "http://host/caf%C3%A9", builder.Build(); want != have {
		t.Errorf("want %q, have %q", want, have)
	}
}

func TestURLBuilderQueryEncoding(t *testing.T) {
	builder := dialogue.NewURLBuilder("http", "host", 0)
	builder.PathSegment("p")
	builder.QueryParam("k*-._", "a b&c=d")
	if want, have := "http://host/p?k*-._=a+b%26c%3Dd", builder.Build(); want != have {
		t.Errorf("want %q, have %q", want, have)
	}
}

func TestURLBuilderQueryMultiplicityPreservesOrder(t *testing.T) {
	builder := dialogue.NewURLBuilder("http", "host", 0)
	builder.PathSegment("p")
	builder.QueryParam("k", "first")
	builder.QueryParam("other", "x")
	builder.QueryParam("k", "second")
	if want, have := "http://host/p?k=first&other=x&k=second", builder.Build(); want != have {
		t.Errorf("want %q, have %q", want, have)
	}
}

func TestURLBuilderFromURLCarriesBasePath(t *testing.T) {
	base, err := url.Parse("https://example.com:8443/api/v1")
	if err != nil {
		t.Fatal(err)
	}
	builder, err := dialogue.URLBuilderFromURL(base)
	if err != nil {
		t.Fatal(err)
	}
	builder.PathSegment("objects")
	if want, have := "https://example.com:8443/api/v1/objects", builder.Build(); want != have {
		t.Errorf("want %q, have %q", want, have)
	}
}

func TestURLBuilderFromURLRejectsUnknownScheme(t *testing.T) {
	base, err := url.Parse("ftp://example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := dialogue.URLBuilderFromURL(base); err == nil {
		t.Fatal("expected error, got none")
	}
}
