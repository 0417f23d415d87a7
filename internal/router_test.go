package internal

import (
	"net/http"
	"testing"
)

func noopHandler(Context[visitor]) error { return nil }

func TestRouteMatching(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		path       string
		wantMatch  bool
		wantParams map[string]string
	}{
		{name: "exact literal", pattern: "/about", path: "/about", wantMatch: true},
		{name: "literal mismatch", pattern: "/about", path: "/contact", wantMatch: false},
		{name: "binder binds segment", pattern: "/user/:username", path: "/user/alice", wantMatch: true, wantParams: map[string]string{"username": "alice"}},
		{name: "binder needs its segment", pattern: "/user/:username", path: "/user", wantMatch: false},
		{name: "extra segment", pattern: "/a/b", path: "/a/b/c", wantMatch: false},
		{name: "missing segment", pattern: "/a/b/c", path: "/a/b", wantMatch: false},
		{name: "root matches root", pattern: "/", path: "/", wantMatch: true},
		{name: "root rejects one segment", pattern: "/", path: "/x", wantMatch: false},
		{name: "trailing slash on request", pattern: "/posts", path: "/posts/", wantMatch: true},
		{name: "no leading slash on pattern", pattern: "posts/", path: "/posts", wantMatch: true},
		{name: "double slash collapses", pattern: "/a/b", path: "/a//b", wantMatch: true},
		{name: "two binders", pattern: "/:a/:b", path: "/x/y", wantMatch: true, wantParams: map[string]string{"a": "x", "b": "y"}},
		{name: "binder never spans segments", pattern: "/files/:name", path: "/files/a/b", wantMatch: false},
		{name: "literal is byte exact", pattern: "/User", path: "/user", wantMatch: false},
		{name: "mixed literals and binders", pattern: "/entries/:author/edit", path: "/entries/bob/edit", wantMatch: true, wantParams: map[string]string{"author": "bob"}},
		{name: "binder value looks like binder", pattern: "/tag/:name", path: "/tag/:weird", wantMatch: true, wantParams: map[string]string{"name": ":weird"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := &route[visitor]{
				method:   http.MethodGet,
				pattern:  tt.pattern,
				segments: parsePattern(tt.pattern),
				handler:  noopHandler,
			}
			params, ok := rt.match(http.MethodGet, splitPath(tt.path))
			if ok != tt.wantMatch {
				t.Fatalf("match = %v, want %v", ok, tt.wantMatch)
			}
			if !tt.wantMatch {
				return
			}
			if len(params) != len(tt.wantParams) {
				t.Fatalf("params = %v, want %v", params, tt.wantParams)
			}
			for k, want := range tt.wantParams {
				if got := params[k]; got != want {
					t.Errorf("param %q = %q, want %q", k, got, want)
				}
			}
		})
	}
}

func TestRouteMatchRequiresMethod(t *testing.T) {
	rt := &route[visitor]{
		method:   http.MethodGet,
		segments: parsePattern("/x"),
		handler:  noopHandler,
	}
	if _, ok := rt.match(http.MethodPost, splitPath("/x")); ok {
		t.Error("POST matched a GET route")
	}
}

func TestFirstRegisteredWins(t *testing.T) {
	table := &routeTable[visitor]{}
	r := newRouter(table)
	r.GET("/user/:name", noopHandler)
	r.GET("/user/admin", noopHandler)

	rt, params, ok := table.match(http.MethodGet, "/user/admin")
	if !ok {
		t.Fatal("no route matched")
	}
	if rt.pattern != "/user/:name" {
		t.Errorf("matched %q, want the first registered pattern", rt.pattern)
	}
	if params["name"] != "admin" {
		t.Errorf("name = %q, want %q", params["name"], "admin")
	}
}

func TestMethodMismatchFallsThrough(t *testing.T) {
	table := &routeTable[visitor]{}
	r := newRouter(table)
	r.GET("/entries", noopHandler)
	r.POST("/entries", noopHandler)

	rt, _, ok := table.match(http.MethodPost, "/entries")
	if !ok {
		t.Fatal("no route matched")
	}
	if rt.method != http.MethodPost {
		t.Errorf("matched method %q, want POST", rt.method)
	}
}

func TestNoMatch(t *testing.T) {
	table := &routeTable[visitor]{}
	r := newRouter(table)
	r.GET("/a", noopHandler)

	if _, _, ok := table.match(http.MethodGet, "/b"); ok {
		t.Error("expected no match")
	}
	if _, _, ok := table.match(http.MethodGet, "/"); ok {
		t.Error("root should not match a one-segment route")
	}
}

func TestRoutePrefixes(t *testing.T) {
	table := &routeTable[visitor]{}
	r := newRouter(table)
	r.Route("/admin", func(r Router[visitor]) {
		r.GET("/users", noopHandler)
		r.Route("/settings", func(r Router[visitor]) {
			r.GET("/profile", noopHandler)
		})
		r.GET("/", noopHandler)
	})

	if _, _, ok := table.match(http.MethodGet, "/admin/users"); !ok {
		t.Error("prefixed route did not match")
	}
	if _, _, ok := table.match(http.MethodGet, "/admin/settings/profile"); !ok {
		t.Error("nested prefix route did not match")
	}
	if _, _, ok := table.match(http.MethodGet, "/admin"); !ok {
		t.Error("group index route did not match")
	}
	if _, _, ok := table.match(http.MethodGet, "/users"); ok {
		t.Error("unprefixed path matched a prefixed route")
	}
}

func TestFlightInheritance(t *testing.T) {
	pass := func(Context[visitor]) (Outcome, error) { return Continue, nil }

	table := &routeTable[visitor]{}
	r := newRouter(table)
	r.GET("/before", noopHandler)
	r.Use(pass)
	r.GET("/a", noopHandler)
	r.Group(func(g Router[visitor]) {
		g.Use(pass)
		g.GET("/b", noopHandler)
	})
	r.GET("/c", noopHandler, WithPreFlight(pass, pass))
	r.UseAfter(pass)
	r.GET("/d", noopHandler, WithPostFlight(pass))

	wantPre := map[string]int{"/before": 0, "/a": 1, "/b": 2, "/c": 3, "/d": 1}
	wantPost := map[string]int{"/before": 0, "/a": 0, "/b": 0, "/c": 0, "/d": 2}
	for _, rt := range table.routes {
		if got := len(rt.pre); got != wantPre[rt.pattern] {
			t.Errorf("route %s pre flights = %d, want %d", rt.pattern, got, wantPre[rt.pattern])
		}
		if got := len(rt.post); got != wantPost[rt.pattern] {
			t.Errorf("route %s post flights = %d, want %d", rt.pattern, got, wantPost[rt.pattern])
		}
	}
}

func TestGroupDoesNotLeakFlights(t *testing.T) {
	pass := func(Context[visitor]) (Outcome, error) { return Continue, nil }

	table := &routeTable[visitor]{}
	r := newRouter(table)
	r.Group(func(g Router[visitor]) {
		g.Use(pass)
		g.GET("/inside", noopHandler)
	})
	r.GET("/outside", noopHandler)

	for _, rt := range table.routes {
		switch rt.pattern {
		case "/inside":
			if len(rt.pre) != 1 {
				t.Errorf("group route pre flights = %d, want 1", len(rt.pre))
			}
		case "/outside":
			if len(rt.pre) != 0 {
				t.Errorf("sibling route pre flights = %d, want 0", len(rt.pre))
			}
		}
	}
}
