// Package httpserver constructs the process-wide HTTP server.
package httpserver

import (
	"net/http"
	"time"
)

// New returns a server bound to addr. ReadHeaderTimeout guards against
// slow-header clients; request deadlines are owned by the handlers, which set
// their own context timeouts where needed.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
