package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/docuvault/docstore-mcp-server/internal/protocol"
	"github.com/docuvault/docstore-mcp-server/internal/version"
)

const (
	protocolVersion     = "2024-11-05"
	serverName          = "docstore-mcp-server"
	notificationsPrefix = "notifications/"
)

// Server handles MCP JSON-RPC requests against a toolbox. It holds no
// per-request state: dispatch is a pure function of the envelope plus the
// backing store's response.
type Server struct {
	toolbox *Toolbox
	log     *logrus.Entry
}

// NewServer wires a toolbox into an MCP server.
func NewServer(tb *Toolbox, log *logrus.Entry) *Server {
	return &Server{toolbox: tb, log: log}
}

// Handle routes a single request. Method matching is case-insensitive; the
// request's id travels back verbatim. A nil response means the request was a
// notification and the transport should acknowledge with an empty body.
func (s *Server) Handle(ctx context.Context, req protocol.Request) (resp *protocol.Response) {
	method := strings.ToLower(req.Method)

	// Notifications are acknowledged unconditionally: no body, no error,
	// whatever the payload looks like. Failures are logged only.
	if strings.HasPrefix(method, notificationsPrefix) {
		s.log.WithField("method", req.Method).Debug("notification acknowledged")
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("method", req.Method).Errorf("panic during dispatch: %v", r)
			resp = protocol.NewInternalError(req.ID, fmt.Sprintf("%v", r))
		}
	}()

	switch method {
	case "initialize":
		return protocol.NewResult(req.ID, map[string]any{
			"protocolVersion": protocolVersion,
			"serverInfo": map[string]string{
				"name":    serverName,
				"version": version.Get().Version,
			},
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
		})
	case "tools/list":
		return protocol.NewResult(req.ID, protocol.ListResult{Tools: s.toolbox.Describe()})
	case "tools/call":
		return s.handleToolCall(ctx, req)
	default:
		return protocol.NewMethodNotFound(req.ID, req.Method)
	}
}

func (s *Server) handleToolCall(ctx context.Context, req protocol.Request) *protocol.Response {
	var params protocol.CallParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return protocol.NewInternalError(req.ID, fmt.Sprintf("invalid params: %v", err))
		}
	}
	if params.Name == "" {
		// A call without a tool name drops into the unknown-method path.
		return protocol.NewMethodNotFound(req.ID, req.Method)
	}

	tool, ok := s.toolbox.Lookup(params.Name)
	if !ok {
		return protocol.NewInternalError(req.ID, fmt.Sprintf("unknown tool: %s", params.Name))
	}

	args, err := CoerceArguments(params.Arguments, tool.Descriptor().InputSchema)
	if err != nil {
		return protocol.NewInternalError(req.ID, err.Error())
	}

	outcome, err := tool.Invoke(ctx, args)
	if err != nil {
		s.log.WithField("tool", params.Name).Warnf("backing operation failed: %v", err)
		return protocol.NewInternalError(req.ID, err.Error())
	}
	return protocol.NewResult(req.ID, ShapeResult(outcome))
}
