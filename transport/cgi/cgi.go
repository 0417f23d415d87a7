package cgi

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/runway/pkg/web"
)

// Handler is the dispatch surface the transport drives. *runway.App
// implements it for any session payload type.
type Handler interface {
	Handle(ctx context.Context, req *web.Request, res *web.Response) error
}

// Provider builds the request from the process boundary and writes the
// response back out. CGI is the shipped implementation; tests and other
// embeddings substitute their own.
type Provider interface {
	Request() (*web.Request, error)
	Write(*web.Response) error
}

// CGI reads one request from CGI meta-variables and stdin and writes the
// response to stdout, the way a web server expects from a CGI child process.
type CGI struct {
	env    []string
	stdin  io.Reader
	stdout io.Writer
}

// Option configures the CGI provider.
type Option func(*CGI)

// WithEnviron sets the environment, in os.Environ "KEY=value" form.
func WithEnviron(env []string) Option {
	return func(c *CGI) {
		c.env = env
	}
}

// WithStdin sets the reader the request body is taken from.
func WithStdin(r io.Reader) Option {
	return func(c *CGI) {
		if r != nil {
			c.stdin = r
		}
	}
}

// WithStdout sets the writer the response is emitted to.
func WithStdout(w io.Writer) Option {
	return func(c *CGI) {
		if w != nil {
			c.stdout = w
		}
	}
}

// New creates a CGI provider. Defaults: the process environment, os.Stdin,
// os.Stdout.
func New(opts ...Option) *CGI {
	c := &CGI{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.env == nil {
		c.env = os.Environ()
	}
	return c
}

// Request builds the framework request from the CGI meta-variables:
// REQUEST_METHOD, PATH_INFO (SCRIPT_NAME as fallback), QUERY_STRING,
// CONTENT_TYPE, CONTENT_LENGTH, and the HTTP_* variables the server derived
// from request headers. The body is read from stdin, exactly CONTENT_LENGTH
// bytes.
func (c *CGI) Request() (*web.Request, error) {
	meta := make(map[string]string)
	var headers [][2]string
	for _, kv := range c.env {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if name, ok := strings.CutPrefix(k, "HTTP_"); ok {
			headers = append(headers, [2]string{strings.ReplaceAll(name, "_", "-"), v})
			continue
		}
		meta[k] = v
	}

	method := meta["REQUEST_METHOD"]
	if method == "" {
		return nil, errors.New("cgi: REQUEST_METHOD not set")
	}

	path := meta["PATH_INFO"]
	if path == "" {
		path = meta["SCRIPT_NAME"]
	}
	if path == "" {
		path = "/"
	}
	rawURL := path
	if qs := meta["QUERY_STRING"]; qs != "" {
		rawURL += "?" + qs
	}

	var body []byte
	if cl := meta["CONTENT_LENGTH"]; cl != "" {
		length, err := strconv.ParseInt(cl, 10, 64)
		if err != nil || length < 0 {
			return nil, fmt.Errorf("cgi: invalid CONTENT_LENGTH %q", cl)
		}
		if length > 0 {
			body = make([]byte, length)
			if _, err := io.ReadFull(c.stdin, body); err != nil {
				return nil, fmt.Errorf("cgi: read request body: %w", err)
			}
		}
	}

	opts := make([]web.RequestOption, 0, len(headers)+2)
	for _, h := range headers {
		opts = append(opts, web.WithHeader(h[0], h[1]))
	}
	if ct := meta["CONTENT_TYPE"]; ct != "" {
		opts = append(opts, web.WithHeader("Content-Type", ct))
	}
	if body != nil {
		opts = append(opts, web.WithBody(body))
	}

	return web.NewRequest(method, rawURL, opts...)
}

// Write emits the buffered response in CGI form: a Status line, headers with
// every Set-Cookie on its own line, a blank line, then the body. Content-Type
// defaults to text/html when the handler set none.
func (c *CGI) Write(res *web.Response) error {
	bw := bufio.NewWriter(c.stdout)

	code := res.Status()
	fmt.Fprintf(bw, "Status: %d %s\r\n", code, http.StatusText(code))

	ct := res.ContentType()
	if ct == "" {
		ct = res.Header.Get("Content-Type")
	}
	if ct == "" {
		ct = "text/html; charset=utf-8"
	}
	fmt.Fprintf(bw, "Content-Type: %s\r\n", ct)
	fmt.Fprintf(bw, "Content-Length: %d\r\n", res.Len())

	keys := make([]string, 0, len(res.Header))
	for k := range res.Header {
		if k == "Content-Type" || k == "Content-Length" || k == "Status" {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		for _, v := range res.Header.Values(k) {
			fmt.Fprintf(bw, "%s: %s\r\n", k, v)
		}
	}

	bw.WriteString("\r\n")
	bw.Write(res.Bytes())
	return bw.Flush()
}

var _ Provider = (*CGI)(nil)

// Serve runs one request through the app: build the request from the process
// boundary, dispatch, write the response. A request that cannot be parsed is
// answered with a 400 and the parse error is returned for logging. If the
// dispatch itself dies, nothing further is written; the server's own 500 page
// takes over.
func Serve(ctx context.Context, app Handler, opts ...Option) error {
	c := New(opts...)

	req, err := c.Request()
	if err != nil {
		res := web.NewResponse()
		res.SetStatus(http.StatusBadRequest)
		res.SetContentType("text/plain; charset=utf-8")
		res.WriteString("Bad Request")
		if werr := c.Write(res); werr != nil {
			return errors.Join(err, werr)
		}
		return err
	}

	res := web.NewResponse()
	if err := app.Handle(ctx, req, res); err != nil {
		return err
	}
	return c.Write(res)
}
