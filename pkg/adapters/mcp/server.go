package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/derelict"
	"github.com/aretw0/derelict/internal/logging"
	"github.com/aretw0/derelict/internal/presentation/graph"
	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	GraphURI        = "derelict://graph"
	GraphMermaidURI = "derelict://graph/mermaid"
)

// SceneResponse is the structured result of every gameplay tool.
type SceneResponse struct {
	Render    *domain.Render `json:"render,omitempty" jsonschema_description:"The scene to present: text, choices, pending input or animation"`
	Inventory []string       `json:"inventory" jsonschema_description:"Items held, in the order they were found"`
	Ended     bool           `json:"ended" jsonschema_description:"True once the player left the game"`
}

// Server exposes one play session as MCP tools.
// Tool calls are serialized: a Session is not safe for concurrent use.
type Server struct {
	engine    *derelict.Engine
	logger    *slog.Logger
	maxSize   int
	mcpServer *server.MCPServer

	mu      sync.Mutex
	session *derelict.Session
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMaxInputSize bounds the size of choices and answers.
func WithMaxInputSize(size int) Option {
	return func(s *Server) {
		s.maxSize = size
	}
}

// NewServer creates a new MCP Server instance around a fresh session.
func NewServer(engine *derelict.Engine, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		logger:    logging.NewNop(),
		session:   engine.NewSession(),
		mcpServer: server.NewMCPServer("derelict-mcp", strings.TrimSpace(derelict.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server, for custom transports.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on addr until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL("http://"+addr))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{Addr: addr, Handler: mux}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("look",
		mcp.WithDescription("Show the current scene. Starts the game on first use."),
		mcp.WithOutputSchema[SceneResponse](),
	), mcp.NewStructuredToolHandler(s.handleLook))

	s.mcpServer.AddTool(mcp.NewTool("choose",
		mcp.WithDescription("Pick one of the offered choices by id, label or 1-based number."),
		mcp.WithString("choice", mcp.Required(), mcp.Description("Choice id, label or number")),
		mcp.WithOutputSchema[SceneResponse](),
	), mcp.NewStructuredToolHandler(s.handleChoose))

	s.mcpServer.AddTool(mcp.NewTool("answer",
		mcp.WithDescription("Answer the riddle or puzzle the current scene is waiting for."),
		mcp.WithString("input", mcp.Required(), mcp.Description("The answer")),
		mcp.WithOutputSchema[SceneResponse](),
	), mcp.NewStructuredToolHandler(s.handleAnswer))

	s.mcpServer.AddTool(mcp.NewTool("complete_animation",
		mcp.WithDescription("Report that the animation of the current scene finished playing."),
		mcp.WithOutputSchema[SceneResponse](),
	), mcp.NewStructuredToolHandler(s.handleCompleteAnimation))

	s.mcpServer.AddTool(mcp.NewTool("inventory",
		mcp.WithDescription("List the items the player carries."),
	), s.handleInventory)

	s.mcpServer.AddTool(mcp.NewTool("exit",
		mcp.WithDescription("Leave the game. Ask the player to confirm before calling it."),
		mcp.WithOutputSchema[SceneResponse](),
	), mcp.NewStructuredToolHandler(s.handleExit))

	s.mcpServer.AddTool(mcp.NewTool("restart",
		mcp.WithDescription("Start a new game from the first scene."),
		mcp.WithOutputSchema[SceneResponse](),
	), mcp.NewStructuredToolHandler(s.handleRestart))
}

func (s *Server) handleLook(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SceneResponse, error) {
	return s.play(ctx, "look", func(ctx context.Context) (*domain.Render, error) {
		return s.session.Render(ctx)
	})
}

func (s *Server) handleChoose(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SceneResponse, error) {
	choice, err := s.input(args, "choice")
	if err != nil {
		return SceneResponse{}, err
	}
	return s.play(ctx, "choose", func(ctx context.Context) (*domain.Render, error) {
		return s.session.Choose(ctx, choice)
	})
}

func (s *Server) handleAnswer(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SceneResponse, error) {
	input, err := s.input(args, "input")
	if err != nil {
		return SceneResponse{}, err
	}
	return s.play(ctx, "answer", func(ctx context.Context) (*domain.Render, error) {
		return s.session.ResolveGuardedTransition(ctx, input)
	})
}

func (s *Server) handleCompleteAnimation(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SceneResponse, error) {
	return s.play(ctx, "complete_animation", func(ctx context.Context) (*domain.Render, error) {
		return s.session.CompleteAnimation(ctx)
	})
}

func (s *Server) handleInventory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mcp.NewToolResultText(s.session.InventoryReport().String()), nil
}

func (s *Server) handleExit(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SceneResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.State().SessionID == "" {
		if _, err := s.session.Start(ctx); err != nil {
			return SceneResponse{}, fmt.Errorf("start failed: %w", err)
		}
	}
	s.session.End()
	return s.response(nil), nil
}

func (s *Server) handleRestart(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SceneResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	render, err := s.session.Start(ctx)
	if err != nil {
		return SceneResponse{}, fmt.Errorf("restart failed: %w", err)
	}
	return s.response(render), nil
}

func (s *Server) play(ctx context.Context, op string, fn func(context.Context) (*domain.Render, error)) (SceneResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.State().SessionID == "" {
		if _, err := s.session.Start(ctx); err != nil {
			return SceneResponse{}, fmt.Errorf("start failed: %w", err)
		}
	}

	render, err := fn(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownChoice) || errors.Is(err, domain.ErrSessionEnded) {
			s.logger.Debug("MCP tool rejected", "op", op, "err", err)
		} else {
			s.logger.Error("MCP tool failed", "op", op, "err", err)
		}
		return SceneResponse{}, fmt.Errorf("%s failed: %w", op, err)
	}
	return s.response(render), nil
}

func (s *Server) response(render *domain.Render) SceneResponse {
	return SceneResponse{
		Render:    render,
		Inventory: s.session.InventoryReport().Items,
		Ended:     s.session.Ended(),
	}
}

func (s *Server) input(args map[string]interface{}, key string) (string, error) {
	raw, _ := args[key].(string)
	clean, err := runner.SanitizeInput(strings.TrimSpace(raw), s.maxSize)
	if err != nil {
		s.logger.Warn("MCP input rejected", "err", err, "size", len(raw))
		return "", fmt.Errorf("input rejected: %w", err)
	}
	return clean, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(GraphURI, "Scene Graph",
		mcp.WithMIMEType("application/json"),
	), s.readGraph)

	s.mcpServer.AddResource(mcp.NewResource(GraphMermaidURI, "Scene Graph (Mermaid)",
		mcp.WithMIMEType("text/plain"),
	), s.readMermaid)
}

func (s *Server) readGraph(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.engine.Graph().Story())
	if err != nil {
		return nil, fmt.Errorf("failed to encode graph: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      GraphURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}

func (s *Server) readMermaid(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	s.mu.Lock()
	state := s.session.State()
	s.mu.Unlock()

	var overlay *graph.GraphOverlay
	if state.SessionID != "" {
		overlay = graph.OverlayFromState(state)
	}
	g := s.engine.Graph()
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      GraphMermaidURI,
			MIMEType: "text/plain",
			Text:     graph.GenerateMermaid(g.Entry(), g.Scenes(), overlay),
		},
	}, nil
}
