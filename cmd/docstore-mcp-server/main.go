package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/docuvault/docstore-mcp-server/internal/app"
	"github.com/docuvault/docstore-mcp-server/internal/config"
	"github.com/docuvault/docstore-mcp-server/internal/logging"
	"github.com/docuvault/docstore-mcp-server/internal/version"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	httpAddr := flag.String("http", cfg.HTTPAddr, "MCP HTTP listen address (e.g., :3333)")
	storeURI := flag.String("store-uri", cfg.StoreURI, "document store connection URI")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		info := version.Get()
		fmt.Printf("docstore-mcp-server %s (%s, built %s)\n", info.Version, info.Commit, info.BuildDate)
		return
	}

	cfg.HTTPAddr = *httpAddr
	cfg.StoreURI = *storeURI

	logger, cleanup, err := logging.New("mcp-server")
	if err != nil {
		log.Fatalf("logging init: %v", err)
	}
	defer cleanup()

	if err := app.Run(context.Background(), cfg, logger); err != nil {
		logger.Errorf("MCP server error: %v", err)
		cleanup()
		log.Fatalf("MCP server error: %v", err)
	}
}
