package resp

import (
	"fmt"
	"net/textproto"

	"github.com/xy-planning-network/convey"
)

// Headers is an insertable, iterable multimap of header names to values.
// Names are canonicalized in the manner of net/http.
type Headers map[string][]string

// Add appends value to the values already recorded for name.
func (h Headers) Add(name, value string) {
	name = textproto.CanonicalMIMEHeaderKey(name)
	h[name] = append(h[name], value)
}

// Set replaces any values recorded for name with value.
func (h Headers) Set(name, value string) {
	h[textproto.CanonicalMIMEHeaderKey(name)] = []string{value}
}

// Get retrieves the first value recorded for name, or "".
func (h Headers) Get(name string) string {
	vals := h[textproto.CanonicalMIMEHeaderKey(name)]
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// Values retrieves all values recorded for name.
func (h Headers) Values(name string) []string {
	return h[textproto.CanonicalMIMEHeaderKey(name)]
}

// Clone copies the multimap so mutations of one do not show up in the other.
func (h Headers) Clone() Headers {
	out := make(Headers, len(h))
	for name, vals := range h {
		out[name] = append([]string(nil), vals...)
	}
	return out
}

// A Field is a single validated header entry.
type Field struct {
	Name  string
	Value string
}

// NewField validates the raw name and value, returning a Field with the
// name canonicalized.
//
// The name must be a non-empty RFC 7230 token; the value must not
// contain control bytes other than horizontal tab. A violation of
// either returns an error wrapping convey.ErrNotValid.
func NewField(name, value string) (Field, error) {
	if name == "" {
		return Field{}, fmt.Errorf("%w: empty header name", convey.ErrNotValid)
	}

	for i := 0; i < len(name); i++ {
		if !isTokenByte(name[i]) {
			return Field{}, fmt.Errorf("%w: header name %q", convey.ErrNotValid, name)
		}
	}

	for i := 0; i < len(value); i++ {
		if b := value[i]; b < 0x20 && b != '\t' || b == 0x7f {
			return Field{}, fmt.Errorf("%w: header value for %q", convey.ErrNotValid, name)
		}
	}

	return Field{Name: textproto.CanonicalMIMEHeaderKey(name), Value: value}, nil
}

// isTokenByte reports whether b belongs to the RFC 7230 token character set.
func isTokenByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}

	switch b {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}

	return false
}
