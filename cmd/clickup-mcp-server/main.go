// ClickUp MCP Server
//
// An MCP server (stdio transport) that lets AI coding tools manage a
// ClickUp workspace: spaces, folders, lists, views, and tasks, with
// name-or-id addressing backed by a cached hierarchy.
//
// Usage:
//
//	clickup-mcp-server serve     # Start MCP server (stdio transport)
//	clickup-mcp-server version   # Print the version
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ayyazzafar/clickup-mcp-server/internal/config"
	"github.com/ayyazzafar/clickup-mcp-server/internal/logging"
	cuserver "github.com/ayyazzafar/clickup-mcp-server/internal/server"
	"github.com/ayyazzafar/clickup-mcp-server/internal/updater"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
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
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("clickup-mcp-server v%s\n", cuserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	// No user config dir just means env-only configuration.
	path, err := config.DefaultPath()
	if err != nil {
		path = ""
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// All logging goes to stderr: stdout belongs to the MCP transport.
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	s, cleanup, err := cuserver.New(cfg, log)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// Background version check, printed to stderr so it doesn't interfere
	// with MCP's stdio transport. Best-effort: failures are silent.
	go checkForUpdates()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutting down")
		cleanup()
		_ = log.Sync()
		os.Exit(0)
	}()

	log.Info("serving", zap.String("version", cuserver.Version), zap.String("team", cfg.TeamID))
	return server.ServeStdio(s)
}

func checkForUpdates() {
	result := updater.CheckVersion(cuserver.Version)
	if result.UpdateAvailable {
		fmt.Fprintf(os.Stderr,
			"\n  Update available: v%s -> v%s\n     Release: %s\n\n",
			result.CurrentVersion, result.LatestVersion, result.ReleaseURL,
		)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `clickup-mcp-server v%s — ClickUp MCP Server

Usage:
  clickup-mcp-server serve     Start the MCP server (stdio transport)
  clickup-mcp-server version   Print the version

Configuration:
  Set CLICKUP_API_TOKEN and CLICKUP_TEAM_ID, or create
  <user config dir>/clickup-mcp-server/config.json.

  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "clickup": {
        "command": "clickup-mcp-server",
        "args": ["serve"],
        "env": {
          "CLICKUP_API_TOKEN": "pk_...",
          "CLICKUP_TEAM_ID": "1234567"
        }
      }
    }
  }
`, cuserver.Version)
}
