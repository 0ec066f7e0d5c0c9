package convert

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/convey"
	"github.com/xy-planning-network/convey/http/resp"
)

const (
	plainTextType   = "text/plain; charset=utf-8"
	octetStreamType = "application/octet-stream"
)

// Empty responds with 200 OK and no body.
type Empty struct{}

func (Empty) Respond(_ *http.Request) Outcome {
	return Ready(resp.Build(http.StatusOK).Finish())
}

// Text responds with 200 OK and the text as a plain-text body.
type Text string

func (t Text) Respond(_ *http.Request) Outcome {
	return Ready(resp.Build(http.StatusOK).
		ContentType(plainTextType).
		BodyString(string(t)).
		Finish())
}

// Blob responds with 200 OK and the bytes as an octet-stream body.
type Blob []byte

func (b Blob) Respond(_ *http.Request) Outcome {
	return Ready(resp.Build(http.StatusOK).
		ContentType(octetStreamType).
		Body(b).
		Finish())
}

// Buffer responds with 200 OK and the buffer's contents as an
// octet-stream body. A nil buffer responds with an empty body.
type Buffer struct {
	B *bytes.Buffer
}

func (b Buffer) Respond(_ *http.Request) Outcome {
	builder := resp.Build(http.StatusOK).ContentType(octetStreamType)
	if b.B != nil {
		builder.Body(b.B.Bytes())
	}

	return Ready(builder.Finish())
}

// Fixed passes a pre-built response through unchanged.
type Fixed struct {
	Response *resp.Response
}

func (f Fixed) Respond(_ *http.Request) Outcome {
	if f.Response == nil {
		return Failed(fmt.Errorf("%w: nil response", convey.ErrBadConfig))
	}

	return Ready(f.Response)
}

// Built finalizes a *resp.Builder into its response. A builder with a
// pending construction error resolves to that error instead.
type Built struct {
	Builder *resp.Builder
}

func (b Built) Respond(_ *http.Request) Outcome {
	if b.Builder == nil {
		return Failed(fmt.Errorf("%w: nil builder", convey.ErrBadConfig))
	}

	if err := b.Builder.Err(); err != nil {
		return Failed(err)
	}

	return Ready(b.Builder.Finish())
}
