package router

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// --- ANSI color codes ---
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

// Observer is called after every request, for metrics hookup.
type Observer func(method, path string, status int, duration time.Duration)

type route struct {
	method   string
	segments []string // "*" matches one segment; a trailing "*" matches the rest
	raw      string
	handler  HandlerFunc
}

// Router is a small method-aware mux with wildcard segments and request
// logging. Routes are matched in registration order, so register specific
// paths before wildcard ones.
type Router struct {
	routes   []route
	mounts   map[string]http.Handler // prefix-mounted handlers (metrics, swagger)
	observer Observer
}

func New() *Router {
	return &Router{mounts: make(map[string]http.Handler)}
}

// SetObserver installs a per-request callback.
func (r *Router) SetObserver(obs Observer) {
	r.observer = obs
}

// Mount attaches a plain http.Handler under a path prefix.
func (r *Router) Mount(prefix string, h http.Handler) {
	r.mounts[strings.TrimSuffix(prefix, "/")] = h
}

// --- Register paths ---

func (r *Router) register(method, path string, handler HandlerFunc) {
	r.routes = append(r.routes, route{
		method:   method,
		segments: splitPath(path),
		raw:      path,
		handler:  handler,
	})
}

func (r *Router) GET(path string, handler HandlerFunc)  { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc) { r.register(http.MethodPost, path, handler) }
func (r *Router) PUT(path string, handler HandlerFunc)  { r.register(http.MethodPut, path, handler) }
func (r *Router) DELETE(path string, handler HandlerFunc) {
	r.register(http.MethodDelete, path, handler)
}

func splitPath(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}

// match reports whether the request segments satisfy the route pattern.
func (rt route) match(segments []string) bool {
	for i, pattern := range rt.segments {
		if pattern == "*" && i == len(rt.segments)-1 {
			// trailing wildcard swallows the remainder
			return len(segments) >= len(rt.segments)
		}
		if i >= len(segments) {
			return false
		}
		if pattern != "*" && pattern != segments[i] {
			return false
		}
	}
	return len(segments) == len(rt.segments)
}

// ServeHTTP dispatches to mounts first, then registered routes.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	for prefix, h := range r.mounts {
		if req.URL.Path == prefix || strings.HasPrefix(req.URL.Path, prefix+"/") {
			h.ServeHTTP(w, req)
			return
		}
	}

	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	segments := splitPath(req.URL.Path)
	pathKnown := false
	dispatched := false
	for _, rt := range r.routes {
		if !rt.match(segments) {
			continue
		}
		pathKnown = true
		if rt.method == req.Method {
			rt.handler(lrw, req)
			dispatched = true
			break
		}
	}
	if !dispatched {
		if pathKnown {
			http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
		} else {
			http.Error(lrw, "Not Found", http.StatusNotFound)
		}
	}

	duration := time.Since(start)
	if r.observer != nil {
		r.observer(req.Method, req.URL.Path, lrw.statusCode, duration)
	}

	log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
		colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
		methodColor(req.Method), req.Method, colorReset,
		req.URL.Path,
		statusColor(lrw.statusCode), lrw.statusCode, colorReset,
		colorBlue, duration, colorReset,
	)
}

// --- Start server ---
func (r *Router) Start(addr string) {
	log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	log.Fatal(http.ListenAndServe(addr, r))
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// --- Color helpers ---
func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodPut:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
