// mcp-stdio-test: minimal MCP server for container stdio testing.
//
// Exposes three trivial tools (random data, echo, status) over the MCP
// stdio transport so a client can verify that a container exchanges
// stdio messages correctly. No external services, no persistence.
//
// Usage:
//
//	mcp-stdio-test serve          # Start the MCP server (stdio transport)
//	mcp-stdio-test logs < file    # Render a captured JSON log stream
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/mcplabs/mcp-stdio-test/internal/config"
	"github.com/mcplabs/mcp-stdio-test/internal/logging"
	"github.com/mcplabs/mcp-stdio-test/internal/logview"
	mcpserver "github.com/mcplabs/mcp-stdio-test/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "logs":
		if err := runLogs(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("mcp-stdio-test v%s\n", mcpserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("server starting",
		zap.String("version", mcpserver.Version),
		zap.String("log_level", cfg.LogLevel),
	)

	s := mcpserver.New(logger)

	// Log shutdown on interrupt. The stdio server itself exits when
	// stdin closes, which is how MCP hosts normally stop a server.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("server stopped", zap.String("signal", sig.String()))
		_ = logger.Sync()
		os.Exit(0)
	}()

	if err := server.ServeStdio(s); err != nil {
		logger.Error("server crashed", zap.Error(err))
		return err
	}

	logger.Info("server stopped")
	return nil
}

// runLogs renders a JSON log stream from stdin (or a file argument)
// as a compact table. Typically fed from `docker logs` output.
func runLogs() error {
	in := os.Stdin
	if len(os.Args) > 2 {
		f, err := os.Open(os.Args[2])
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		in = f
	}
	return logview.Run(in, os.Stdout, logview.Options{NoColor: os.Getenv("NO_COLOR") != ""})
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `mcp-stdio-test v%s — MCP stdio test server

Usage:
  mcp-stdio-test serve           Start the MCP server (stdio transport)
  mcp-stdio-test logs [file]     Render a JSON log stream as a table (default: stdin)
  mcp-stdio-test version         Print the version

Environment:
  LOG_LEVEL    Log verbosity: debug, info, warn, error (default: info)

Configuration for MCP hosts:

  {
    "mcpServers": {
      "stdio-test": {
        "command": "mcp-stdio-test",
        "args": ["serve"]
      }
    }
  }
`, mcpserver.Version)
}
