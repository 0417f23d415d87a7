// Package cgi is the process-boundary transport: it turns one CGI invocation
// (environment meta-variables and stdin in, stdout out) into one dispatch
// through the app.
//
// The usual embedding is a main function of three lines:
//
//	func main() {
//	    app := runway.New[Visitor](...)
//	    if err := cgi.Serve(context.Background(), app); err != nil {
//	        app.Logger().Error("request died", "error", err)
//	        os.Exit(1)
//	    }
//	}
//
// Everything the provider touches is injectable, so tests drive it with a
// fabricated environment and buffers instead of a web server:
//
//	c := cgi.New(
//	    cgi.WithEnviron([]string{"REQUEST_METHOD=GET", "PATH_INFO=/"}),
//	    cgi.WithStdout(&buf),
//	)
package cgi
