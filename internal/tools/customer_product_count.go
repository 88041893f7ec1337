package tools

import (
	"context"

	"github.com/docuvault/docstore-mcp-server/internal/protocol"
	"github.com/docuvault/docstore-mcp-server/internal/store"
)

// customerProductCountTool counts the distinct products a customer bought.
type customerProductCountTool struct {
	exec store.Executor
}

// CustomerProductCount constructs the tool.
func CustomerProductCount(exec store.Executor) *customerProductCountTool {
	return &customerProductCountTool{exec: exec}
}

func (t *customerProductCountTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        store.ToolCustomerProductCount,
		Description: "Count the distinct product_id values across one customer's documents.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"db_name":         {Type: "string", Description: "Database holding the collection"},
				"collection_name": {Type: "string", Description: "Collection to read"},
				"customer_id":     {Type: "string", Description: "Customer to scope the count to"},
			},
			Required: []string{"db_name", "collection_name", "customer_id"},
		},
	}
}

func (t *customerProductCountTool) Invoke(ctx context.Context, args protocol.Arguments) (store.Outcome, error) {
	return t.exec.Execute(ctx, store.ToolCustomerProductCount, args)
}
