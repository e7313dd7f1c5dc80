// Package mcpserver exposes calculators as Model Context Protocol tools.
//
// Each client session drives its own engine; the tools press buttons and
// read back the display or the full state.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/leapstack-labs/leapcalc/pkg/calc"
	"github.com/leapstack-labs/leapcalc/pkg/token"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"
)

// Tool names.
const (
	ToolPress   = "press"
	ToolDisplay = "display"
	ToolState   = "state"
	ToolClear   = "clear"
)

// Server holds one calculator engine per MCP client session.
type Server struct {
	mu      sync.Mutex
	engines map[string]*calc.Engine
	cfg     calc.Config
	logger  *slog.Logger
	mcp     *server.MCPServer
}

// New creates a server whose engines are built from cfg.
func New(version string, cfg calc.Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		engines: make(map[string]*calc.Engine),
		cfg:     cfg,
		logger:  logger,
	}

	hooks := &server.Hooks{}
	hooks.AddOnUnregisterSession(func(_ context.Context, session server.ClientSession) {
		s.forget(session.SessionID())
	})

	s.mcp = server.NewMCPServer("leapcalc", version,
		server.WithToolCapabilities(false),
		server.WithHooks(hooks),
	)
	s.registerTools()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) registerTools() {
	s.mcp.AddTools(s.tools()...)
}

func (s *Server) tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool(ToolPress,
				mcp.WithDescription("Press calculator buttons in order and return the display. "+
					`Buttons: 0-9 . + - * / +/- DEL CE C =, e.g. "12+3=".`),
				mcp.WithString("tokens",
					mcp.Required(),
					mcp.Description("Button labels, optionally separated by spaces or commas"),
				),
			),
			Handler: s.HandlePress,
		},
		{
			Tool:    mcp.NewTool(ToolDisplay, mcp.WithDescription("Return the current calculator display")),
			Handler: s.HandleDisplay,
		},
		{
			Tool:    mcp.NewTool(ToolState, mcp.WithDescription("Return the full calculator state as JSON")),
			Handler: s.HandleState,
		},
		{
			Tool:    mcp.NewTool(ToolClear, mcp.WithDescription("Reset the calculator, like pressing C")),
			Handler: s.HandleClear,
		},
	}
}

// Tools returns the definitions of the tools the server registers.
func (s *Server) Tools() []mcp.Tool {
	defs := s.tools()
	out := make([]mcp.Tool, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.Tool)
	}
	return out
}

// HandlePress scans the tokens argument and submits every press.
func (s *Server) HandlePress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, ok := request.GetArguments()["tokens"].(string)
	if !ok {
		return mcp.NewToolResultError("tokens is required"), nil
	}

	toks, err := token.Scan(input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	display := s.withEngine(ctx, func(e *calc.Engine) string {
		return e.SubmitAll(toks)
	})
	return mcp.NewToolResultText(display), nil
}

// HandleDisplay returns the display without pressing anything.
func (s *Server) HandleDisplay(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	display := s.withEngine(ctx, func(e *calc.Engine) string {
		return e.Display()
	})
	return mcp.NewToolResultText(display), nil
}

// HandleState returns the engine state encoded as JSON.
func (s *Server) HandleState(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var state calc.State
	s.withEngine(ctx, func(e *calc.Engine) string {
		state = e.State()
		return ""
	})
	data, err := json.Marshal(state)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode state: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// HandleClear presses C.
func (s *Server) HandleClear(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	display := s.withEngine(ctx, func(e *calc.Engine) string {
		return e.Submit(token.Clear)
	})
	return mcp.NewToolResultText(display), nil
}

// withEngine runs fn against the session's engine while holding the lock.
// Calls outside a session share the engine keyed by the empty string.
func (s *Server) withEngine(ctx context.Context, fn func(*calc.Engine) string) string {
	id := ""
	if session := server.ClientSessionFromContext(ctx); session != nil {
		id = session.SessionID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.engines[id]
	if !ok {
		e = calc.New(s.cfg)
		s.engines[id] = e
		s.logger.Debug("engine created", "session", id)
	}
	return fn(e)
}

func (s *Server) forget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.engines[id]; ok {
		delete(s.engines, id)
		s.logger.Debug("engine released", "session", id)
	}
}

// Sessions returns the number of live engines.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.engines)
}

// ServeStdio serves the tools over standard input and output until EOF.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio")
	return server.ServeStdio(s.mcp)
}

// ServeHTTP serves the tools over streamable HTTP on addr until ctx is done.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpServer := server.NewStreamableHTTPServer(s.mcp)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("serving MCP over HTTP", "addr", addr)
		if err := httpServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down MCP server")
		return httpServer.Shutdown(context.WithoutCancel(ctx))
	})
	return g.Wait()
}
