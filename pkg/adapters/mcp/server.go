// Package mcp exposes the step generators as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/algoviz"
	"github.com/aretw0/algoviz/internal/logging"
	"github.com/aretw0/algoviz/internal/sanitizer"
	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"
)

// GenerateResponse is the structured result of generate_steps.
type GenerateResponse struct {
	Algorithm  string        `json:"algorithm" jsonschema_description:"The algorithm that produced the steps"`
	Steps      []domain.Step `json:"steps" jsonschema_description:"Ordered, self-contained animation steps"`
	TotalSteps int           `json:"totalSteps" jsonschema_description:"Number of steps"`
}

// AlgorithmsResponse is the structured result of list_algorithms.
type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms" jsonschema_description:"Supported algorithm ids"`
}

// GenerateArgs are the arguments of generate_steps.
type GenerateArgs struct {
	Algorithm string         `json:"algorithm"`
	Data      map[string]any `json:"data,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
}

// LinkedListArgs are the arguments of linked_list.
type LinkedListArgs struct {
	SessionID string `json:"session_id"`
	Action    string `json:"action"`
	Value     *int   `json:"value,omitempty"`
	Position  *int   `json:"position,omitempty"`
	Values    []int  `json:"values,omitempty"`
}

// Engine defines the engine operations required by the MCP server.
type Engine interface {
	Algorithms() []domain.AlgorithmID
	Generate(ctx context.Context, id domain.AlgorithmID, data map[string]any) ([]domain.Step, error)
	GenerateSession(ctx context.Context, sessionID string, id domain.AlgorithmID, data map[string]any) ([]domain.Step, error)
	LinkedListAction(ctx context.Context, sessionID, action string, data map[string]any) (algoviz.ListResult, error)
	Session(ctx context.Context, sessionID string) (*domain.ListState, error)
}

// Server wraps the Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("algoviz-mcp", strings.TrimSpace(algoviz.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on addr until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	baseURL := "http://localhost" + addr
	if !strings.HasPrefix(addr, ":") {
		baseURL = "http://" + addr
	}
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func algorithmNames(ids []domain.AlgorithmID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func (s *Server) registerTools() {
	generateTool := mcp.NewTool("generate_steps",
		mcp.WithDescription("Generate the animation steps of an algorithm. Each step is a full snapshot of the data structure."),
		mcp.WithString("algorithm", mcp.Required(),
			mcp.Description("Algorithm id"),
			mcp.Enum(algorithmNames(s.engine.Algorithms())...),
		),
		mcp.WithObject("data", mcp.Description(`Input data: {"array": [...]} for sorts, {"values": [...]} for the tree, `+
			`{"operation", "value", "position"} for the linked list, {"values", "capacity"} for the stack`)),
		mcp.WithString("session_id", mcp.Description("Apply linked list operations to this session's list (optional)")),
		mcp.WithOutputSchema[GenerateResponse](),
	)
	s.mcpServer.AddTool(generateTool, mcp.NewStructuredToolHandler(s.handleGenerate))

	listTool := mcp.NewTool("linked_list",
		mcp.WithDescription("Run a linked list action on a session and summarise it."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session id")),
		mcp.WithString("action", mcp.Required(), mcp.Description("init, search, insertHead, insertTail, insertAt, removeHead, removeTail, removeAt or reset")),
		mcp.WithNumber("value", mcp.Description("Value to search or insert")),
		mcp.WithNumber("position", mcp.Description("Zero-based position for insertAt/removeAt")),
		mcp.WithArray("values", mcp.Description("Initial values for init"), mcp.Items(map[string]any{"type": "integer"})),
		mcp.WithOutputSchema[algoviz.ListResult](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleLinkedList))

	algorithmsTool := mcp.NewTool("list_algorithms",
		mcp.WithDescription("List the supported algorithm ids."),
		mcp.WithOutputSchema[AlgorithmsResponse](),
	)
	s.mcpServer.AddTool(algorithmsTool, mcp.NewStructuredToolHandler(s.handleAlgorithms))
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest, args GenerateArgs) (GenerateResponse, error) {
	id := domain.AlgorithmID(strings.TrimSpace(args.Algorithm))

	var (
		steps []domain.Step
		err   error
	)
	if args.SessionID != "" {
		sessionID, idErr := sanitizer.Identifier(args.SessionID)
		if idErr != nil {
			return GenerateResponse{}, idErr
		}
		steps, err = s.engine.GenerateSession(ctx, sessionID, id, args.Data)
	} else {
		steps, err = s.engine.Generate(ctx, id, args.Data)
	}
	if err != nil {
		s.logger.Warn("MCP generate_steps failed", "algorithm", id, "err", err)
		return GenerateResponse{}, fmt.Errorf("generate failed: %w", err)
	}
	return GenerateResponse{Algorithm: string(id), Steps: steps, TotalSteps: len(steps)}, nil
}

func (s *Server) handleLinkedList(ctx context.Context, request mcp.CallToolRequest, args LinkedListArgs) (algoviz.ListResult, error) {
	sessionID, err := sanitizer.Identifier(args.SessionID)
	if err != nil {
		return algoviz.ListResult{}, err
	}
	action, err := sanitizer.Text(args.Action)
	if err != nil {
		return algoviz.ListResult{}, fmt.Errorf("input rejected: %w", err)
	}

	data := map[string]any{}
	if args.Value != nil {
		data["value"] = *args.Value
	}
	if args.Position != nil {
		data["position"] = *args.Position
	}
	if args.Values != nil {
		data["values"] = args.Values
	}

	res, err := s.engine.LinkedListAction(ctx, sessionID, action, data)
	if err != nil {
		return algoviz.ListResult{}, fmt.Errorf("linked list action failed: %w", err)
	}
	return res, nil
}

func (s *Server) handleAlgorithms(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (AlgorithmsResponse, error) {
	return AlgorithmsResponse{Algorithms: algorithmNames(s.engine.Algorithms())}, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("algoviz://algorithms", "Supported algorithms",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(algorithmNames(s.engine.Algorithms()))
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "algoviz://algorithms",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})

	s.mcpServer.AddResourceTemplate(mcp.NewResourceTemplate("algoviz://sessions/{id}", "Linked list session",
		mcp.WithTemplateMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := strings.TrimPrefix(request.Params.URI, "algoviz://sessions/")
		state, err := s.engine.Session(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		jsonBytes, _ := json.Marshal(state)
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
