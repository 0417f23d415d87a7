// Package flights provides stock pre- and post-flights for Runway applications.
//
// A flight runs before or after the route handler and either continues the
// chain or rejects the request after writing its own response. This package
// includes five flights most server-rendered apps want:
//
// # Request ID
//
// RequestID assigns a unique ID to each request for tracing and debugging.
// It checks incoming headers for existing IDs or generates new ones using ULID.
//
//	app := runway.New[Visitor](
//	    runway.WithPreFlights(
//	        flights.RequestID[Visitor](),
//	    ),
//	)
//
// Use RequestIDExtractor() with WithLogger for automatic request_id in all logs:
//
//	app := runway.New[Visitor](
//	    runway.WithLogger[Visitor]("guestbook", flights.RequestIDExtractor()),
//	    runway.WithPreFlights(
//	        flights.RequestID[Visitor](),
//	    ),
//	)
//
// # Logging
//
// Logging emits one log line per served request with method, path, status,
// response size, and duration. It is a pre/post pair: the pre-flight records
// the start time, the post-flight writes the line.
//
//	pre, post := flights.Logging[Visitor]()
//	app := runway.New[Visitor](
//	    runway.WithPreFlights(pre),
//	    runway.WithPostFlights(post),
//	)
//
// Rejected and failed requests skip post-flights, so only served requests are
// logged here; the dispatcher's error path logs the rest.
//
// # Sessions
//
// LoadSession materializes the session before the handler runs, so handlers
// behind it use Session() without initialization ceremony:
//
//	app.GET("/profile", h.profile, runway.WithPreFlight(
//	    flights.LoadSession[Visitor](),
//	))
//
// # Authorization
//
// RequireAuth gates routes behind an application-defined predicate. Requests
// that fail it are redirected (default /login) and rejected:
//
//	authorized := func(c runway.Context[Visitor], s *session.Session[Visitor]) bool {
//	    return s.Data().Name != ""
//	}
//
//	app.GET("/admin", h.admin, runway.WithPreFlight(
//	    flights.RequireAuth(authorized),
//	))
//
// # CSRF
//
// CSRF implements double-submit protection: safe methods receive a token in a
// signed cookie, mutating methods must echo it in a form field or header.
// A cookie secret must be configured.
//
//	app := runway.New[Visitor](
//	    runway.WithCookieOptions[Visitor](runway.WithCookieSecret(secret)),
//	    runway.WithPreFlights(
//	        flights.CSRF[Visitor](),
//	    ),
//	)
//
// Embed the token in forms via TokenFromContext:
//
//	fmt.Fprintf(w, `<input type="hidden" name="_csrf" value="%s">`,
//	    flights.TokenFromContext(c))
//
// # Recommended Order
//
// Apply pre-flights in this order for best results:
//
//	pre, post := flights.Logging[Visitor]()
//	runway.WithPreFlights(
//	    flights.RequestID[Visitor](), // First: assign ID for all subsequent logging
//	    pre,                          // Second: start the request timer
//	    flights.CSRF[Visitor](),      // Third: stop forgeries before touching state
//	    flights.LoadSession[Visitor](), // Fourth: sessions for handlers and RequireAuth
//	),
//	runway.WithPostFlights(post)
package flights
