package mcp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/docuvault/docstore-mcp-server/internal/protocol"
)

// NewHandler builds the HTTP surface: one JSON-RPC POST endpoint at the root
// path, a permissive OPTIONS responder, and liveness/readiness probes.
// Clients POST a single envelope per request.
func NewHandler(server *Server, log *logrus.Entry) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeCORS(w)

		switch r.Method {
		case http.MethodOptions:
			w.WriteHeader(http.StatusNoContent)
			return
		case http.MethodPost:
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		rl := log.WithField("request_id", requestID)

		var req protocol.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			rl.Warnf("invalid JSON: %v", err)
			writeJSON(w, &protocol.Response{JSONRPC: "2.0", Error: &protocol.ResponseError{Code: protocol.CodeParseError, Message: "invalid JSON"}}, http.StatusBadRequest)
			return
		}

		resp := server.Handle(r.Context(), req)
		if resp == nil {
			// Notification: empty 200, no body.
			w.WriteHeader(http.StatusOK)
			rl.WithFields(logrus.Fields{
				"rpc_method":  req.Method,
				"duration_ms": time.Since(start).Milliseconds(),
			}).Info("notification acknowledged")
			return
		}

		writeJSON(w, resp, http.StatusOK)
		rl.WithFields(logrus.Fields{
			"rpc_method":  req.Method,
			"duration_ms": time.Since(start).Milliseconds(),
			"rpc_error":   resp.Error != nil,
		}).Info("request handled")
	})

	return mux
}

// RunHTTP starts an HTTP server that serves MCP JSON-RPC requests via POST
// on addr and blocks until the listener fails.
func RunHTTP(server *Server, addr string, log *logrus.Entry) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(server, log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Infof("MCP HTTP server listening on %s", addr)
	return srv.ListenAndServe()
}

func writeCORS(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

func writeJSON(w http.ResponseWriter, resp *protocol.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
