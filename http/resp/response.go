package resp

// A Response is the canonical value a conversion resolves to: a status
// code, a header multimap, and the body bytes.
//
// A Response is request-scoped. It is built once, possibly mutated by
// decorating adapters, written to the wire, and discarded.
type Response struct {
	code    int
	headers Headers
	body    []byte
}

// Status returns the response status code.
func (re *Response) Status() int { return re.code }

// SetStatus replaces the response status code.
func (re *Response) SetStatus(code int) { re.code = code }

// Headers returns the header multimap. The returned value is the live
// map; mutations show up on the Response. The map is allocated on first
// use, so a zero Response is safe to decorate.
func (re *Response) Headers() Headers {
	if re.headers == nil {
		re.headers = make(Headers)
	}
	return re.headers
}

// Body returns the body bytes.
func (re *Response) Body() []byte { return re.body }
