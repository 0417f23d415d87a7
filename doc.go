// Package runway is a request-handling substrate for server-rendered web
// applications that run one process per request, CGI style.
//
// Runway matches requests against an ordered route table, runs short-circuit
// pre- and post-handler steps called flights, and persists per-visitor
// session state under a random identifier carried in a cookie. Requests and
// responses are plain buffered values, so the core never touches a socket;
// a transport (the bundled CGI provider, or a test) parses the request,
// calls the app once, and writes the buffered response out.
//
// # Quick Start
//
// Create an application with runway.New, configure it with options, and hand
// it to a transport:
//
//	type Visitor struct {
//	    Name string `json:"name"`
//	    Seen int    `json:"seen"`
//	}
//
//	store := session.NewFileStore[Visitor]("/var/lib/app/sessions")
//
//	app := runway.New[Visitor](
//	    runway.WithSession(store),
//	    runway.WithHandlers[Visitor](
//	        handlers.NewGuestbook(repo),
//	    ),
//	)
//
//	if err := cgi.Serve(context.Background(), app); err != nil {
//	    log.Fatal(err)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes. Patterns are
// slash-delimited; a :name segment binds the matching request segment:
//
//	type GuestbookHandler struct {
//	    repo *repository.Queries
//	}
//
//	func NewGuestbook(repo *repository.Queries) *GuestbookHandler {
//	    return &GuestbookHandler{repo: repo}
//	}
//
//	func (h *GuestbookHandler) Routes(r runway.Router[Visitor]) {
//	    r.GET("/", h.listEntries)
//	    r.POST("/entries", h.createEntry)
//	    r.GET("/entries/:author", h.entriesByAuthor)
//	}
//
//	func (h *GuestbookHandler) entriesByAuthor(c runway.Context[Visitor]) error {
//	    return c.HTML(200, h.renderEntries(c.PathParam("author")))
//	}
//
// Routes are tried in registration order and the first full match wins;
// there is no specificity ranking.
//
// # Flights
//
// A flight runs before or after the handler and either continues the chain
// or rejects the request after writing its own response:
//
//	func RequireName() runway.Flight[Visitor] {
//	    return func(c runway.Context[Visitor]) (runway.Outcome, error) {
//	        sess, err := c.Session()
//	        if err != nil {
//	            return runway.Continue, err
//	        }
//	        if sess.Data().Name == "" {
//	            if err := c.Redirect(303, "/hello"); err != nil {
//	                return runway.Continue, err
//	            }
//	            return runway.Rejected, nil
//	        }
//	        return runway.Continue, nil
//	    }
//	}
//
// A rejecting pre-flight skips the handler and every post-flight; a
// rejecting post-flight skips only the post-flights after it.
//
// # Sessions
//
// Sessions are generic over the application's payload type. The payload is
// materialized lazily and persisted only when marked modified:
//
//	sess, err := c.Session()
//	if err != nil {
//	    return err
//	}
//	sess.Data().Seen++
//	sess.MarkModified()
//
// The session cookie is emitted once, on the request that created the
// session; DestroySession removes the stored record and expires the cookie.
package runway
