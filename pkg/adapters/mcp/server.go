package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/calculator"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/tables"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// TablesURI is the resource listing every transition table.
const TablesURI = "turing://tables"

// Calculator defines what the MCP server needs from the calculation service.
type Calculator interface {
	Calculate(ctx context.Context, req calculator.Request) (*domain.Record, error)
	Get(ctx context.Context, id string) (*domain.Record, error)
}

// RunArgs are the arguments of the run_machine tool.
type RunArgs struct {
	Left      string `json:"left"`
	Right     string `json:"right"`
	Operation string `json:"operation"`
}

// Server wraps a Calculator and exposes it as an MCP Server.
type Server struct {
	calc      Calculator
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(calc Calculator, opts ...Option) *Server {
	s := &Server{
		calc:      calc,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		mcpServer: server.NewMCPServer("turing-mcp", strings.TrimSpace(turing.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer exposes the underlying server, e.g. for in-process transports.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: run_machine
	runTool := mcp.NewTool("run_machine",
		mcp.WithDescription("Write two binary operands on the tape, run the table for the operation and report the final tape, halt reason and the decimal cross-check."),
		mcp.WithString("left", mcp.Required(), mcp.Description("Left operand in binary, e.g. 101")),
		mcp.WithString("right", mcp.Required(), mcp.Description("Right operand in binary, e.g. 11")),
		mcp.WithString("operation", mcp.Required(), mcp.Description("One of +, -, *, / or a table name"), mcp.Enum("+", "-", "*", "/", "addition", "subtraction", "multiplication", "division")),
		mcp.WithOutputSchema[domain.Record](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRunMachine))

	// TOOL: list_tables
	s.mcpServer.AddTool(mcp.NewTool("list_tables",
		mcp.WithDescription("List the transition tables with their operation, state count and which states are reachable from q0."),
	), s.handleListTables)

	// TOOL: describe_table
	s.mcpServer.AddTool(mcp.NewTool("describe_table",
		mcp.WithDescription("Return one transition table as JSON or as a Mermaid state diagram."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Table name or operator")),
		mcp.WithString("format", mcp.Description("json (default) or mermaid"), mcp.Enum("json", "mermaid")),
	), s.handleDescribeTable)

	// TOOL: get_run
	s.mcpServer.AddTool(mcp.NewTool("get_run",
		mcp.WithDescription("Load a previously recorded run by ID."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Run ID returned by run_machine")),
	), s.handleGetRun)
}

func (s *Server) handleRunMachine(ctx context.Context, request mcp.CallToolRequest, args RunArgs) (*domain.Record, error) {
	op, err := domain.ParseOperation(args.Operation)
	if err != nil {
		table, lookupErr := tables.ByName(strings.TrimSpace(args.Operation))
		if lookupErr != nil {
			return nil, err
		}
		op = table.Operation
	}

	record, err := s.calc.Calculate(ctx, calculator.Request{Left: args.Left, Right: args.Right, Op: op})
	if err != nil {
		s.logger.Warn("MCP run_machine: calculation rejected", "error", err)
		return nil, fmt.Errorf("run failed: %w", err)
	}
	return record, nil
}

type tableSummary struct {
	Name         string           `json:"name"`
	Operation    domain.Operation `json:"operation"`
	States       int              `json:"states"`
	Terminal     int              `json:"terminal"`
	Reachability validator.Report `json:"reachability"`
}

func (s *Server) handleListTables(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var out []tableSummary
	for _, t := range tables.All() {
		report, err := validator.ValidateTable(t)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		out = append(out, tableSummary{Name: t.Name, Operation: t.Operation, States: t.States(), Terminal: t.Terminal, Reachability: report})
	}
	jsonBytes, _ := json.Marshal(out)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleDescribeTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	table, err := tables.ByName(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch format := request.GetString("format", "json"); format {
	case "mermaid":
		return mcp.NewToolResultText(graph.GenerateMermaid(table, nil)), nil
	case "json":
		jsonBytes, _ := json.Marshal(table)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q", format)), nil
	}
}

func (s *Server) handleGetRun(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	record, err := s.calc.Get(ctx, id)
	if errors.Is(err, domain.ErrRunNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("run %q not found", id)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	jsonBytes, _ := json.Marshal(record)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) registerResources() {
	// EXPOSE: turing://tables
	s.mcpServer.AddResource(mcp.NewResource(TablesURI, "Transition Tables",
		mcp.WithMIMEType("application/json"),
	), s.readTables)
}

func (s *Server) readTables(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(tables.All())
	if err != nil {
		return nil, fmt.Errorf("failed to encode tables: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      TablesURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
