/*

The resp package provides the canonical response value every conversion
in convey ultimately resolves to, alongside the Builder used to
assemble one.

A *Response carries a mutable status code, a Headers multimap and the
body bytes. It holds no connection state; writing it to the wire is the
dispatch layer's job (see the serve package).

Header entries constructed from raw input are validated through
NewField; a malformed name or value surfaces a construction error
rather than corrupting the header set.

*/
package resp
