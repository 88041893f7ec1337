package tools

import (
	"context"

	"github.com/docuvault/docstore-mcp-server/internal/protocol"
	"github.com/docuvault/docstore-mcp-server/internal/store"
)

// findDocumentTool looks up a single document by its id.
type findDocumentTool struct {
	exec store.Executor
}

// FindDocumentByID constructs the tool.
func FindDocumentByID(exec store.Executor) *findDocumentTool {
	return &findDocumentTool{exec: exec}
}

func (t *findDocumentTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        store.ToolFindDocumentByID,
		Description: "Find a single document by its id. Accepts ObjectID hex or a raw string id.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"db_name":         {Type: "string", Description: "Database holding the collection"},
				"collection_name": {Type: "string", Description: "Collection to read"},
				"document_id":     {Type: "string", Description: "Document id to match"},
			},
			Required: []string{"db_name", "collection_name", "document_id"},
		},
	}
}

func (t *findDocumentTool) Invoke(ctx context.Context, args protocol.Arguments) (store.Outcome, error) {
	return t.exec.Execute(ctx, store.ToolFindDocumentByID, args)
}
