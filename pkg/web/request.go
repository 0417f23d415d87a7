package web

import (
	"fmt"
	"net/url"
	"strings"
)

// Request carries one inbound request through the framework. Method, Path,
// Header, and Body are filled by the transport; path parameters are bound by
// the router during matching and are never merged with query parameters.
type Request struct {
	Method string
	Path   string
	Header Header
	Body   []byte

	query      url.Values
	form       url.Values
	formParsed bool
	pathParams map[string]string
	cookies    map[string]string
}

// RequestOption configures a request built by NewRequest.
type RequestOption func(*Request)

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		r.Header.Add(key, value)
	}
}

// WithBody sets the raw request body.
func WithBody(body []byte) RequestOption {
	return func(r *Request) {
		r.Body = body
	}
}

// WithForm sets an urlencoded form body and the matching Content-Type header.
func WithForm(values url.Values) RequestOption {
	return func(r *Request) {
		r.Body = []byte(values.Encode())
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
}

// WithCookie appends a cookie pair to the Cookie header.
func WithCookie(name, value string) RequestOption {
	return func(r *Request) {
		if existing := r.Header.Get("Cookie"); existing != "" {
			r.Header.Set("Cookie", existing+"; "+name+"="+value)
		} else {
			r.Header.Set("Cookie", name+"="+value)
		}
	}
}

// NewRequest builds a request from a method and a URL consisting of a path
// and an optional query string ("/user/alice?tab=posts").
func NewRequest(method, rawURL string, opts ...RequestOption) (*Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse request url: %w", err)
	}
	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("parse query string: %w", err)
	}

	r := &Request{
		Method: method,
		Path:   u.Path,
		Header: make(Header),
		query:  query,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Query returns the first query-string value for the name, or "".
func (r *Request) Query(name string) string {
	return r.query.Get(name)
}

// QueryValues returns all query-string values for the name.
func (r *Request) QueryValues(name string) []string {
	return r.query[name]
}

// QueryDefault returns the query value for the name, or def when absent.
func (r *Request) QueryDefault(name, def string) string {
	if v := r.query.Get(name); v != "" {
		return v
	}
	return def
}

// PathParam returns the value bound to a :name route segment, or "".
func (r *Request) PathParam(name string) string {
	return r.pathParams[name]
}

// PathParams returns a copy of all bound path parameters.
func (r *Request) PathParams() map[string]string {
	params := make(map[string]string, len(r.pathParams))
	for k, v := range r.pathParams {
		params[k] = v
	}
	return params
}

// SetPathParam binds a path parameter. The router calls this for each :name
// segment of the matched route; anything else should leave it alone.
func (r *Request) SetPathParam(name, value string) {
	if r.pathParams == nil {
		r.pathParams = make(map[string]string)
	}
	r.pathParams[name] = value
}

// Param looks the name up among path parameters first, then the query string.
func (r *Request) Param(name string) string {
	if v, ok := r.pathParams[name]; ok {
		return v
	}
	return r.query.Get(name)
}

// Form returns the first form-body value for the name, or "". The body is
// parsed on first use and only when the Content-Type announces an urlencoded
// form; a malformed body yields no values rather than an error.
func (r *Request) Form(name string) string {
	r.parseForm()
	return r.form.Get(name)
}

// FormValues returns all form-body values for the name.
func (r *Request) FormValues(name string) []string {
	r.parseForm()
	return r.form[name]
}

func (r *Request) parseForm() {
	if r.formParsed {
		return
	}
	r.formParsed = true
	ct := r.Header.Get("Content-Type")
	if mt, _, _ := strings.Cut(ct, ";"); strings.TrimSpace(mt) != "application/x-www-form-urlencoded" {
		return
	}
	form, err := url.ParseQuery(string(r.Body))
	if err != nil {
		return
	}
	r.form = form
}

// Cookie returns the named cookie value from the Cookie header.
func (r *Request) Cookie(name string) (string, bool) {
	if r.cookies == nil {
		r.cookies = ParseCookies(r.Header.Get("Cookie"))
	}
	v, ok := r.cookies[name]
	return v, ok
}
