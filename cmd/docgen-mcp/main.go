// Command docgen-mcp is a Model Context Protocol server for the document
// generator. It speaks MCP over stdio, so it is started by the client.
//
// # Available Tools
//
//   - list_templates: List the document templates
//   - describe_template: Tabs and fields of a template
//   - render_document: Generate a PDF from form values
//   - document_text: Extract the text of a PDF
//   - validate_national_id: Check a CPF or CNPJ
//   - amount_to_words: Spell an amount in Portuguese
//
// # Available Resources
//
//   - docgen://templates : Template ids and titles
//   - docgen://templates/{id} : Template schema as YAML
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/anixcopiadora/docgen"
	"github.com/anixcopiadora/docgen/internal/config"
	"github.com/anixcopiadora/docgen/mcp"
)

var (
	version   = "dev"     // set by build flags
	buildTime = "unknown" // set by build flags
)

// setupLogging sends logs to stderr, which the client does not parse. They
// are discarded unless debug logging is on.
func setupLogging(cfg *config.Config) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetPrefix("docgen-mcp: ")
	if cfg.IsDebug() {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
}

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion(os.Stdout)
			return
		}
	}

	cfg, err := config.Load("docgen-mcp", os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "docgen-mcp: %v\n", err)
		os.Exit(2)
	}
	setupLogging(cfg)
	if version != "dev" {
		cfg.Version = version
	}
	log.Printf("Starting with configuration: %s", cfg)

	server, err := mcp.NewServer(cfg, docgen.New(cfg.GeneratorOptions()...))
	if err != nil {
		fmt.Fprintf(os.Stderr, "docgen-mcp: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := server.Run(ctx); err != nil {
		log.Printf("Server error: %v", err)
		os.Exit(1)
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "docgen MCP server\n")
	fmt.Fprintf(w, "Version: %s\n", version)
	fmt.Fprintf(w, "Build Time: %s\n", buildTime)
	fmt.Fprintf(w, "Built with: %s\n", runtime.Version())
}
