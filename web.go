package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
)

// WebServer serves the built bundle, the build API and the setup page
type WebServer struct {
	config  *Config
	builder *Builder
	server  *http.Server
}

// NewWebServer creates a new web server instance
func NewWebServer(config *Config, builder *Builder) *WebServer {
	ws := &WebServer{
		config:  config,
		builder: builder,
	}
	// No WriteTimeout: a build request lasts as long as the script runs.
	ws.server = &http.Server{
		Addr:              config.ListenAddr(),
		Handler:           ws.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return ws
}

// Router builds the route table
func (ws *WebServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequests)

	r.HandleFunc("/api/build", ws.handleBuildAPI).Methods(http.MethodPost)
	r.HandleFunc("/api/status", ws.handleStatusAPI).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/api/version", ws.handleVersionAPI).Methods(http.MethodGet, http.MethodHead)

	// Static files from the bundle, then the entry file or the setup page
	r.PathPrefix("/").HandlerFunc(ws.handleApp).Methods(http.MethodGet, http.MethodHead)

	return r
}

// Start binds the listener and serves until Shutdown is called
func (ws *WebServer) Start() error {
	listener, err := net.Listen("tcp", ws.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", ws.server.Addr, err)
	}

	LogInfof("Flutter Web Server running at http://%s", listener.Addr())

	status := ProbeBundle(ws.config.Bundle.Dir, ws.config.Bundle.EntryFile)
	if status.IndexFileExists {
		LogInfof("Serving the Flutter web application from %s", ws.config.Bundle.Dir)
	} else {
		LogInfof("Flutter web application needs to be built. Visit the site to build it.")
	}

	if err := ws.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (ws *WebServer) Shutdown(ctx context.Context) error {
	return ws.server.Shutdown(ctx)
}

// handleBuildAPI runs the build script and reports its outcome
func (ws *WebServer) handleBuildAPI(w http.ResponseWriter, r *http.Request) {
	LogInfof("Received request to build the Flutter web application")

	result := ws.builder.Run()

	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, result.Response())
}

// handleStatusAPI reports bundle presence; always 200
func (ws *WebServer) handleStatusAPI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ProbeBundle(ws.config.Bundle.Dir, ws.config.Bundle.EntryFile))
}

// handleVersionAPI returns the server version as JSON
func (ws *WebServer) handleVersionAPI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, VersionInfo{Version: Version})
}

// handleApp serves a bundle file matching the request path, otherwise the
// entry file, otherwise the setup page.
func (ws *WebServer) handleApp(w http.ResponseWriter, r *http.Request) {
	if name, ok := ws.resolveStatic(r.URL.Path); ok && serveFile(w, r, name) {
		return
	}

	entry := filepath.Join(ws.config.Bundle.Dir, ws.config.Bundle.EntryFile)
	if isFile(entry) && serveFile(w, r, entry) {
		return
	}

	LogDebugf("Bundle not built, sending setup page for %s", r.URL.Path)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		w.Write([]byte(setupPageHTML))
	}
}

// resolveStatic maps a request path to a regular file inside the bundle
// directory. The cleaned path can never climb above the bundle root.
func (ws *WebServer) resolveStatic(urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)
	if clean == "/" {
		return "", false
	}
	name := filepath.Join(ws.config.Bundle.Dir, filepath.FromSlash(clean))
	if !isFile(name) {
		return "", false
	}
	return name, true
}

// serveFile writes a file with a content type derived from its extension.
// It reports false when the file could not be opened so the caller can
// fall through.
func serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		LogDebugf("Failed to open %s: %v", name, err)
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	// ServeContent instead of ServeFile: no redirect for paths ending in index.html
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		LogDebugf("%s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}
