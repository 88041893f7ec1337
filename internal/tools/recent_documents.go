package tools

import (
	"context"

	"github.com/docuvault/docstore-mcp-server/internal/protocol"
	"github.com/docuvault/docstore-mcp-server/internal/store"
)

// recentDocumentsTool fetches the newest documents in a collection.
type recentDocumentsTool struct {
	exec store.Executor
}

// RecentDocuments constructs the tool.
func RecentDocuments(exec store.Executor) *recentDocumentsTool {
	return &recentDocumentsTool{exec: exec}
}

func (t *recentDocumentsTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        store.ToolRecentDocuments,
		Description: "Fetch the n most recent documents from a collection, newest first.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"db_name":         {Type: "string", Description: "Database holding the collection"},
				"collection_name": {Type: "string", Description: "Collection to read"},
				"n":               {Type: "integer", Description: "Number of documents to return (1-20)"},
			},
			Required: []string{"db_name", "collection_name", "n"},
		},
	}
}

func (t *recentDocumentsTool) Invoke(ctx context.Context, args protocol.Arguments) (store.Outcome, error) {
	return t.exec.Execute(ctx, store.ToolRecentDocuments, args)
}
