package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"journal/internal/entry"
	"journal/internal/journal"
	"journal/internal/prompts"
)

// AddEntryParams are the arguments of the add_entry tool.
type AddEntryParams struct {
	Date     string `json:"date,omitempty" mcp:"entry date, defaults to today (MM/DD/YYYY)"`
	Prompt   string `json:"prompt" mcp:"the prompt the entry answers"`
	Response string `json:"response" mcp:"the written response"`
}

type FileParams struct {
	Path string `json:"path,omitempty" mcp:"file name inside the journal directory, defaults to the configured journal"`
}

type EmptyParams struct{}

// JournalServer exposes one journal as MCP tools. The SDK may run handlers
// concurrently, so every call holds mu while it touches the store.
type JournalServer struct {
	mu          sync.Mutex
	store       *journal.Store
	prompts     prompts.Source
	journalPath string
	now         func() time.Time
}

func NewJournalServer(store *journal.Store, src prompts.Source, journalPath string) *JournalServer {
	return &JournalServer{
		store:       store,
		prompts:     src,
		journalPath: journalPath,
		now:         time.Now,
	}
}

// NewServer builds the MCP server with all journal tools registered.
func NewServer(js *JournalServer, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "journal-mcp",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "random_prompt",
		Description: "Returns a reflective prompt to write a journal entry about",
	}, js.RandomPrompt)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_entry",
		Description: "Adds an entry (date, prompt, response) to the end of the journal",
	}, js.AddEntry)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_entries",
		Description: "Lists all journal entries in the order they were written",
	}, js.ListEntries)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_journal",
		Description: "Saves the journal to a file, replacing its contents",
	}, js.SaveJournal)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "load_journal",
		Description: "Loads the journal from a file, replacing the current entries",
	}, js.LoadJournal)

	return server
}

func (s *JournalServer) RandomPrompt(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[EmptyParams]) (*mcp.CallToolResultFor[any], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.prompts.Next(ctx)
	if err != nil {
		return errorResult(fmt.Sprintf("❌ Failed to get prompt: %v", err)), nil
	}
	return textResult(p), nil
}

func (s *JournalServer) AddEntry(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[AddEntryParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	if strings.TrimSpace(args.Prompt) == "" {
		return errorResult("❌ prompt is required"), nil
	}
	date := args.Date
	if date == "" {
		date = s.now().Format(entry.DateLayout)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Add(entry.New(date, args.Prompt, args.Response))
	log.Printf("📝 MCP Server: entry added, journal has %d entries", s.store.Len())
	return textResult(fmt.Sprintf("✅ Entry added (%d total)", s.store.Len())), nil
}

func (s *JournalServer) ListEntries(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[EmptyParams]) (*mcp.CallToolResultFor[any], error) {
	s.mu.Lock()
	entries := s.store.List()
	s.mu.Unlock()

	if len(entries) == 0 {
		return textResult("📄 No entries to display."), nil
	}
	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "#%d\n", i+1)
		e.Display(&b)
	}
	return textResult(b.String()), nil
}

func (s *JournalServer) SaveJournal(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[FileParams]) (*mcp.CallToolResultFor[any], error) {
	path, err := s.resolvePath(params.Arguments.Path)
	if err != nil {
		return errorResult(fmt.Sprintf("❌ %v", err)), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.SaveToFile(path); err != nil {
		return errorResult(fmt.Sprintf("❌ Failed to save journal: %v", err)), nil
	}
	return textResult(fmt.Sprintf("✅ Journal saved to '%s' (%d entries)", path, s.store.Len())), nil
}

func (s *JournalServer) LoadJournal(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[FileParams]) (*mcp.CallToolResultFor[any], error) {
	path, err := s.resolvePath(params.Arguments.Path)
	if err != nil {
		return errorResult(fmt.Sprintf("❌ %v", err)), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.store.LoadFromFile(path)
	var nf *journal.NotFoundError
	if errors.As(err, &nf) {
		return textResult(fmt.Sprintf("File '%s' not found, current entries are kept", path)), nil
	}
	if err != nil {
		return errorResult(fmt.Sprintf("❌ Failed to load journal: %v", err)), nil
	}

	msg := fmt.Sprintf("✅ Loaded %d entries from '%s'", res.Loaded, path)
	for _, f := range res.Failures {
		msg += fmt.Sprintf("\n⚠️ Skipped %v", f)
	}
	return textResult(msg), nil
}

func (s *JournalServer) resolvePath(name string) (string, error) {
	if name == "" {
		return s.journalPath, nil
	}
	return journal.ResolveIn(filepath.Dir(s.journalPath), name)
}

func textResult(text string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
