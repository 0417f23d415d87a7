// Package web defines the request and response carriers the framework moves
// through routing, flights, and handlers.
//
// Both types are plain data: transports build a [Request] from whatever wire
// or process boundary they sit on, handlers and flights fill a [Response],
// and the transport serializes it back out. Nothing here touches sockets or
// net/http.
//
// # Requests
//
// Construct requests with [NewRequest] or as struct literals:
//
//	req, err := web.NewRequest("GET", "/user/alice?tab=posts",
//		web.WithHeader("Accept", "text/html"),
//		web.WithCookie("__sid", sid),
//	)
//
// Path parameters are bound by the router and stay separate from query
// parameters:
//
//	req.PathParam("name") // "alice", from a /user/:name route
//	req.Query("tab")      // "posts"
//	req.Param("name")     // path first, then query
//
// # Responses
//
// A [Response] buffers everything in memory. Status, content type, headers,
// and body are all inspectable until the transport writes them out:
//
//	res := web.NewResponse()
//	res.SetStatus(200)
//	res.SetContentType("text/html; charset=utf-8")
//	res.WriteString("<h1>hello</h1>")
//
// Multiple Set-Cookie headers accumulate without deduplication; each
// [Response.AddCookie] call appends one more.
package web
