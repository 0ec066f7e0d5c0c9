package resp

import (
	"bytes"
	"sync"
)

// pool holds *bytes.Buffer to assemble bodies into.
var pool = &sync.Pool{New: func() any { return new(bytes.Buffer) }}

// A Builder incrementally assembles a *Response.
//
// A Builder is consumed by Finish; it must not be reused afterwards.
// Construction never fails mid-chain: the first malformed header is
// recorded and reported by Err.
type Builder struct {
	code    int
	headers Headers
	buf     *bytes.Buffer
	err     error
}

// Build begins a Builder for a response with the given status code.
func Build(code int) *Builder {
	b := pool.Get().(*bytes.Buffer)
	b.Reset()

	return &Builder{
		code:    code,
		headers: make(Headers),
		buf:     b,
	}
}

// ContentType sets the Content-Type header.
func (b *Builder) ContentType(ct string) *Builder {
	b.headers.Set("Content-Type", ct)
	return b
}

// Header records a validated header entry, appending to any values
// already recorded for the name. A malformed name or value sets the
// Builder's pending error and the chain continues.
func (b *Builder) Header(name, value string) *Builder {
	f, err := NewField(name, value)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}

	b.headers.Add(f.Name, f.Value)
	return b
}

// Body appends p to the response body.
func (b *Builder) Body(p []byte) *Builder {
	b.buf.Write(p)
	return b
}

// BodyString appends s to the response body.
func (b *Builder) BodyString(s string) *Builder {
	b.buf.WriteString(s)
	return b
}

// Err reports the first construction error recorded, if any.
func (b *Builder) Err() error {
	return b.err
}

// Finish consumes the Builder, producing the assembled *Response.
//
// Finishing a Builder twice returns an empty-bodied response the
// second time; do not reuse one.
func (b *Builder) Finish() *Response {
	re := &Response{code: b.code, headers: b.headers}
	if b.headers == nil {
		re.headers = make(Headers)
	}

	if b.buf != nil {
		if b.buf.Len() > 0 {
			re.body = append([]byte(nil), b.buf.Bytes()...)
		}
		pool.Put(b.buf)
		b.buf = nil
	}

	return re
}
