package handler

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// NewRouter wires all HTTP routes.
func NewRouter(ws *WebsocketHandler, rest *RestHandler, logger zerolog.Logger) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/ws", ws.HandleConnection).Methods(http.MethodGet)
	r.HandleFunc("/messages/{senderId}/{recipientId}", rest.GetMessages).Methods(http.MethodGet)
	r.HandleFunc("/users", rest.GetUsers).Methods(http.MethodGet)

	r.Use(requestLogger(logger))

	return r
}

// requestLogger logs every request once it completes.
func requestLogger(logger zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Dur("latency", time.Since(start)).
				Str("remote_addr", r.RemoteAddr).
				Msg("request completed")
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Hijack keeps websocket upgrades working behind the logger.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	w.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}
