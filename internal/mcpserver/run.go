package mcpserver

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run serves the journal tools over stdin/stdout until the client leaves
// or ctx is done.
func Run(ctx context.Context, js *JournalServer, version string) error {
	server := NewServer(js, version)
	log.Printf("🔗 Starting journal MCP server on stdin/stdout, journal file %s", js.journalPath)
	return server.Run(ctx, mcp.NewStdioTransport())
}
