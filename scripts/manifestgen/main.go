package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/docuvault/docstore-mcp-server/internal/app"
	"github.com/docuvault/docstore-mcp-server/internal/protocol"
	"github.com/docuvault/docstore-mcp-server/internal/version"
)

// Options captures manifest generation settings.
type Options struct {
	Name        string
	GeneratedAt time.Time
	OutputDir   string
}

// Manifest is the catalog document written for clients and deploy tooling:
// the server identity plus every tool descriptor with its input schema.
type Manifest struct {
	Name        string                    `json:"name"`
	Version     string                    `json:"version"`
	GeneratedAt string                    `json:"generated_at"`
	Tools       []protocol.ToolDescriptor `json:"tools"`
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	raw, err := Generate(*opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("manifest written to %s (%d bytes)\n", filepath.Join(opts.OutputDir, "manifest.json"), len(raw))
}

func parseFlags() (*Options, error) {
	var (
		name        = flag.String("name", "docstore-mcp-server", "manifest name")
		outDir      = flag.String("output_dir", ".", "output directory for manifest.json")
		generatedAt = flag.String("generated_at", "", "RFC3339 timestamp (default: now UTC)")
	)

	flag.Parse()

	ts := *generatedAt
	if ts == "" {
		ts = time.Now().UTC().Format(time.RFC3339)
	}
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return nil, fmt.Errorf("invalid generated_at: %w", err)
	}

	return &Options{Name: *name, GeneratedAt: parsed, OutputDir: *outDir}, nil
}

// Generate renders the manifest and writes it to <OutputDir>/manifest.json.
// The catalog is described only, never invoked, so no store handle is needed.
func Generate(opts Options) ([]byte, error) {
	m := Manifest{
		Name:        opts.Name,
		Version:     version.Get().Version,
		GeneratedAt: opts.GeneratedAt.UTC().Format(time.RFC3339),
		Tools:       app.NewToolbox(nil).Describe(),
	}

	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	raw = append(raw, '\n')

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(opts.OutputDir, "manifest.json"), raw, 0o644); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	return raw, nil
}
