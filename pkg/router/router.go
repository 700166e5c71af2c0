// Package router is a thin named-route layer over chi. Routes register
// under a stable name ("products.store") so the CLI can list them and
// handlers can reverse paths.
package router

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

type Middleware func(http.Handler) http.Handler

// RouteInfo describes one registered named route.
type RouteInfo struct {
	Method string
	Path   string
	Name   string
}

type Router struct {
	mux    chi.Router
	mu     sync.RWMutex
	routes map[string]RouteInfo
}

// Group carries a path prefix and a middleware stack shared by its routes.
type Group struct {
	router      *Router
	prefix      string
	middlewares []Middleware
}

func New() *Router {
	return &Router{
		mux:    chi.NewRouter(),
		routes: make(map[string]RouteInfo),
	}
}

func (r *Router) Handler() http.Handler { return r.mux }

func (r *Router) Use(middlewares ...Middleware) {
	for _, mw := range middlewares {
		r.mux.Use(mw)
	}
}

func (r *Router) Group(prefix string, middlewares ...Middleware) *Group {
	return &Group{
		router:      r,
		prefix:      normalizePath(prefix),
		middlewares: append([]Middleware(nil), middlewares...),
	}
}

func (r *Router) Get(path, name string, h http.HandlerFunc, mws ...Middleware) {
	r.mount(http.MethodGet, path, name, h, mws...)
}

func (r *Router) Post(path, name string, h http.HandlerFunc, mws ...Middleware) {
	r.mount(http.MethodPost, path, name, h, mws...)
}

func (r *Router) Put(path, name string, h http.HandlerFunc, mws ...Middleware) {
	r.mount(http.MethodPut, path, name, h, mws...)
}

func (r *Router) Delete(path, name string, h http.HandlerFunc, mws ...Middleware) {
	r.mount(http.MethodDelete, path, name, h, mws...)
}

// Static serves files under urlPrefix from dir.
func (r *Router) Static(urlPrefix, dir string) {
	prefix := normalizePath(urlPrefix)
	fs := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	if prefix == "/" {
		r.mux.Handle("/*", fs)
		return
	}
	r.mux.Handle(prefix+"/*", fs)
}

// Routes returns every named route, unordered.
func (r *Router) Routes() []RouteInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]RouteInfo, 0, len(r.routes))
	for _, ri := range r.routes {
		out = append(out, ri)
	}
	return out
}

// Path returns the registered path for a route name.
func (r *Router) Path(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ri, ok := r.routes[name]
	return ri.Path, ok
}

// URL builds a concrete URL for a named route, substituting {param}s.
func (r *Router) URL(name string, params map[string]string) (string, error) {
	path, ok := r.Path(name)
	if !ok {
		return "", fmt.Errorf("route %q not found", name)
	}

	for key, value := range params {
		path = strings.ReplaceAll(path, "{"+key+"}", value)
	}
	if strings.Contains(path, "{") {
		return "", fmt.Errorf("missing parameters for route %q", name)
	}
	return path, nil
}

func (r *Router) mount(method, path, name string, h http.Handler, mws ...Middleware) {
	fullPath := normalizePath(path)
	r.mux.Method(method, fullPath, chain(h, mws...))

	if name == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[name] = RouteInfo{Method: method, Path: fullPath, Name: name}
}

func (g *Group) Group(prefix string, middlewares ...Middleware) *Group {
	return &Group{
		router:      g.router,
		prefix:      joinPath(g.prefix, prefix),
		middlewares: append(append([]Middleware(nil), g.middlewares...), middlewares...),
	}
}

func (g *Group) Get(path, name string, h http.HandlerFunc, mws ...Middleware) {
	g.mount(http.MethodGet, path, name, h, mws...)
}

func (g *Group) Post(path, name string, h http.HandlerFunc, mws ...Middleware) {
	g.mount(http.MethodPost, path, name, h, mws...)
}

func (g *Group) Put(path, name string, h http.HandlerFunc, mws ...Middleware) {
	g.mount(http.MethodPut, path, name, h, mws...)
}

func (g *Group) Delete(path, name string, h http.HandlerFunc, mws ...Middleware) {
	g.mount(http.MethodDelete, path, name, h, mws...)
}

func (g *Group) mount(method, path, name string, h http.Handler, mws ...Middleware) {
	fullPath := joinPath(g.prefix, path)
	combined := append(append([]Middleware(nil), g.middlewares...), mws...)
	g.router.mux.Method(method, fullPath, chain(h, combined...))

	if name == "" {
		return
	}

	g.router.mu.Lock()
	defer g.router.mu.Unlock()
	g.router.routes[name] = RouteInfo{Method: method, Path: fullPath, Name: name}
}

func chain(h http.Handler, mws ...Middleware) http.Handler {
	wrapped := h
	for i := len(mws) - 1; i >= 0; i-- {
		wrapped = mws[i](wrapped)
	}
	return wrapped
}

func joinPath(parts ...string) string {
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.Trim(part, "/"); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	if len(segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(segments, "/")
}

func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	return joinPath(path)
}
