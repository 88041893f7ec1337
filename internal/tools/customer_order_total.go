package tools

import (
	"context"

	"github.com/docuvault/docstore-mcp-server/internal/protocol"
	"github.com/docuvault/docstore-mcp-server/internal/store"
)

// customerOrderTotalTool sums a customer's order amounts.
type customerOrderTotalTool struct {
	exec store.Executor
}

// CustomerOrderTotal constructs the tool.
func CustomerOrderTotal(exec store.Executor) *customerOrderTotalTool {
	return &customerOrderTotalTool{exec: exec}
}

func (t *customerOrderTotalTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        store.ToolCustomerOrderTotal,
		Description: "Sum the amount field across one customer's documents, with a document count.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"db_name":         {Type: "string", Description: "Database holding the collection"},
				"collection_name": {Type: "string", Description: "Collection to read"},
				"customer_id":     {Type: "string", Description: "Customer to scope the sum to"},
			},
			Required: []string{"db_name", "collection_name", "customer_id"},
		},
	}
}

func (t *customerOrderTotalTool) Invoke(ctx context.Context, args protocol.Arguments) (store.Outcome, error) {
	return t.exec.Execute(ctx, store.ToolCustomerOrderTotal, args)
}
