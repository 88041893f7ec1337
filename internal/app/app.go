package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/docuvault/docstore-mcp-server/internal/config"
	"github.com/docuvault/docstore-mcp-server/internal/mcp"
	"github.com/docuvault/docstore-mcp-server/internal/store"
	"github.com/docuvault/docstore-mcp-server/internal/tools"
)

// NewToolbox builds the shared document-store toolbox. Order here is the
// order tools/list reports.
func NewToolbox(exec store.Executor) *mcp.Toolbox {
	return mcp.NewToolbox(
		tools.RecentDocuments(exec),
		tools.FindDocumentByID(exec),
		tools.CustomerProductCount(exec),
		tools.CustomerOrderTotal(exec),
	)
}

// NewMCPServer constructs an MCP server over the executor.
func NewMCPServer(exec store.Executor, log *logrus.Entry) *mcp.Server {
	return mcp.NewServer(NewToolbox(exec), log)
}

// Run connects the store client, wires the server, and serves HTTP until the
// listener fails. The client is a process-wide singleton, torn down on exit.
func Run(ctx context.Context, cfg config.Config, log *logrus.Entry) error {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := store.Connect(connectCtx, cfg.StoreURI, cfg.QueryTimeout)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Close(closeCtx); err != nil {
			log.Warnf("store close: %v", err)
		}
	}()

	return mcp.RunHTTP(NewMCPServer(client, log), cfg.HTTPAddr, log)
}
