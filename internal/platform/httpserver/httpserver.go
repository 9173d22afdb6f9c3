package httpserver

import (
	"net/http"
	"time"
)

// Timeouts bounds how long the server waits on slow clients.
type Timeouts struct {
	ReadHeader time.Duration
	Write      time.Duration
}

// New builds an HTTP server with sane defaults for this project.
func New(addr string, handler http.Handler, t Timeouts) *http.Server {
	if t.ReadHeader <= 0 {
		t.ReadHeader = 5 * time.Second
	}
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: t.ReadHeader,
		WriteTimeout:      t.Write,
		IdleTimeout:       2 * time.Minute,
	}
}
