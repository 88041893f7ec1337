package mcp

import (
	"context"

	"github.com/docuvault/docstore-mcp-server/internal/protocol"
	"github.com/docuvault/docstore-mcp-server/internal/store"
)

// Tool defines the behavior of a single MCP tool: a static descriptor and an
// invocation over already-coerced arguments.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, args protocol.Arguments) (store.Outcome, error)
}

// Toolbox stores and dispatches tools by name. It is built once at process
// start and read-only afterwards, so concurrent lookups need no locking.
// Registration order is preserved: tools/list must be stable across calls.
type Toolbox struct {
	order []Tool
	index map[string]Tool
}

// NewToolbox constructs a toolbox with the provided tools.
func NewToolbox(tools ...Tool) *Toolbox {
	m := make(map[string]Tool, len(tools))
	for _, t := range tools {
		m[t.Descriptor().Name] = t
	}
	return &Toolbox{order: tools, index: m}
}

// Describe returns all tool descriptors in registration order.
func (tb *Toolbox) Describe() []protocol.ToolDescriptor {
	list := make([]protocol.ToolDescriptor, 0, len(tb.order))
	for _, t := range tb.order {
		list = append(list, t.Descriptor())
	}
	return list
}

// Lookup finds a tool by name.
func (tb *Toolbox) Lookup(name string) (Tool, bool) {
	t, ok := tb.index[name]
	return t, ok
}
