package web

import "bytes"

// Response accumulates one outbound response entirely in memory. Handlers
// and flights write into it; the transport serializes it once dispatch is
// over. Because nothing is streamed, the dispatcher can still reset it and
// render a failure page after a handler dies halfway through.
type Response struct {
	Header Header

	status      int
	contentType string
	body        bytes.Buffer
}

// NewResponse returns an empty response.
func NewResponse() *Response {
	return &Response{Header: make(Header)}
}

// Status returns the effective status code: the one set, or 200.
func (r *Response) Status() int {
	if r.status == 0 {
		return 200
	}
	return r.status
}

// StatusSet reports whether a status code was explicitly set.
func (r *Response) StatusSet() bool {
	return r.status != 0
}

// SetStatus sets the response status code.
func (r *Response) SetStatus(code int) {
	r.status = code
}

// ContentType returns the content type, or "" if unset.
func (r *Response) ContentType() string {
	return r.contentType
}

// SetContentType sets the Content-Type emitted with the response. It is kept
// apart from Header so transports can apply their own default when empty.
func (r *Response) SetContentType(ct string) {
	r.contentType = ct
}

// Write appends to the response body. It never fails; the error return
// satisfies io.Writer.
func (r *Response) Write(p []byte) (int, error) {
	return r.body.Write(p)
}

// WriteString appends a string to the response body.
func (r *Response) WriteString(s string) (int, error) {
	return r.body.WriteString(s)
}

// Bytes returns the body accumulated so far.
func (r *Response) Bytes() []byte {
	return r.body.Bytes()
}

// Len returns the body length in bytes.
func (r *Response) Len() int {
	return r.body.Len()
}

// Written reports whether anything observable was produced: a status code,
// a content type, or body bytes.
func (r *Response) Written() bool {
	return r.status != 0 || r.contentType != "" || r.body.Len() > 0
}

// Reset clears status, content type, headers, and body, returning the
// response to its empty state.
func (r *Response) Reset() {
	r.status = 0
	r.contentType = ""
	r.Header = make(Header)
	r.body.Reset()
}

// AddCookie appends a Set-Cookie header. Repeated calls accumulate; nothing
// deduplicates cookies with the same name.
func (r *Response) AddCookie(c *Cookie) {
	if r.Header == nil {
		r.Header = make(Header)
	}
	r.Header.Add("Set-Cookie", c.String())
}
