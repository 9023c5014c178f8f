package httpserver

import (
	"net/http"
	"time"
)

// Timeouts sized around the router's 30s request timeout: the server's write
// timeout must outlast it so the timeout middleware, not the TCP layer, is
// what ends a slow request with a response the dashboard can read.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 35 * time.Second
	idleTimeout       = 60 * time.Second
)

// New builds an HTTP server with the timeouts this service needs.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}
