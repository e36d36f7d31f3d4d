package dialogue

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// URLBuilder accumulates the parts of a request URL: scheme, host, port,
// percent-encoded path segments in insertion order, and a query multimap
// whose repeated keys keep their insertion order. Builders are mutable
// during a single request render and discarded afterwards.
type URLBuilder struct {
	scheme   string
	host     string
	port     int
	segments []string
	query    []Param
}

// NewURLBuilder returns a builder for scheme://host:port. A port of 0 means
// the scheme default.
func NewURLBuilder(scheme, host string, port int) *URLBuilder {
	return &URLBuilder{scheme: scheme, host: host, port: port}
}

// URLBuilderFromURL seeds a builder from a base URL, carrying over any base
// path segments so that endpoint paths append after them.
func URLBuilderFromURL(base *url.URL) (*URLBuilder, error) {
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.Errorf("unsupported scheme %q", base.Scheme)
	}
	port := 0
	if p := base.Port(); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid port %q", p)
		}
		port = parsed
	}
	b := NewURLBuilder(base.Scheme, base.Hostname(), port)
	for _, seg := range strings.Split(base.EscapedPath(), "/") {
		if seg == "" {
			continue
		}
		b.segments = append(b.segments, seg)
	}
	return b, nil
}

// PathSegment appends one path segment, percent-encoding it per the
// RFC 3986 path rules.
func (b *URLBuilder) PathSegment(segment string) *URLBuilder {
	b.segments = append(b.segments, encodePathSegment(segment))
	return b
}

// QueryParam appends one key=value query pair, encoding both per
// application/x-www-form-urlencoded with *-._ left unescaped. Repeated keys
// repeat in the final URL in insertion order.
func (b *URLBuilder) QueryParam(key, value string) *URLBuilder {
	b.query = append(b.query, Param{Key: encodeQueryComponent(key), Value: encodeQueryComponent(value)})
	return b
}

// Build renders the accumulated URL. The port is omitted when it matches
// the scheme default.
func (b *URLBuilder) Build() string {
	var sb strings.Builder
	sb.WriteString(b.scheme)
	sb.WriteString("://")
	sb.WriteString(b.host)
	if b.port != 0 && b.port != defaultPort(b.scheme) {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(b.port))
	}
	for _, seg := range b.segments {
		sb.WriteByte('/')
		sb.WriteString(seg)
	}
	if len(b.segments) == 0 {
		sb.WriteByte('/')
	}
	for i, param := range b.query {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(param.Key)
		sb.WriteByte('=')
		sb.WriteString(param.Value)
	}
	return sb.String()
}

func defaultPort(scheme string) int {
	switch scheme {
	case "http":
		return 80
	case "https":
		return 443
	default:
		return 0
	}
}

const upperhex = "0123456789ABCDEF"

// encodePathSegment passes through the RFC 3986 unreserved set and
// percent-encodes every other byte of the segment's UTF-8 form.
func encodePathSegment(segment string) string {
	return percentEncode(segment, func(c byte) bool {
		return isUnreserved(c)
	}, false)
}

// encodeQueryComponent applies application/x-www-form-urlencoded rules,
// keeping '*', '-', '.' and '_' unescaped and mapping space to '+'.
func encodeQueryComponent(component string) string {
	return percentEncode(component, func(c byte) bool {
		return isAlphanumeric(c) || c == '*' || c == '-' || c == '.' || c == '_'
	}, true)
}

func percentEncode(s string, allowed func(byte) bool, spaceAsPlus bool) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case allowed(c):
			sb.WriteByte(c)
		case spaceAsPlus && c == ' ':
			sb.WriteByte('+')
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&0xf])
		}
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	return isAlphanumeric(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

func isAlphanumeric(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
