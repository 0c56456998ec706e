package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/calculator"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	calc := calculator.New(nil,
		calculator.WithStore(memory.NewStore()),
		calculator.WithIDGenerator(func() string { return "run-1" }),
	)
	return NewServer(calc)
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestRunMachine(t *testing.T) {
	s := newTestServer(t)

	rec, err := s.handleRunMachine(context.Background(), callRequest("run_machine", nil), RunArgs{
		Left: "101", Right: "11", Operation: "+",
	})
	require.NoError(t, err)
	assert.Equal(t, "run-1", rec.ID)
	assert.Equal(t, domain.HaltStuck, rec.Reason)
	assert.Equal(t, 3, rec.Steps)
	assert.Equal(t, "1000", rec.ExpectedBinary)
}

func TestRunMachine_TableName(t *testing.T) {
	s := newTestServer(t)

	rec, err := s.handleRunMachine(context.Background(), callRequest("run_machine", nil), RunArgs{
		Left: "11", Right: "1", Operation: "subtraction",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OpSubtract, rec.Operation)
	assert.Equal(t, 2, rec.Steps)
}

func TestRunMachine_Rejected(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.handleRunMachine(ctx, callRequest("run_machine", nil), RunArgs{Left: "1", Right: "0", Operation: "/"})
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)

	_, err = s.handleRunMachine(ctx, callRequest("run_machine", nil), RunArgs{Left: "1", Right: "1", Operation: "%"})
	assert.ErrorIs(t, err, domain.ErrUnknownOperation)

	_, err = s.handleRunMachine(ctx, callRequest("run_machine", nil), RunArgs{Left: "2", Right: "1", Operation: "+"})
	assert.ErrorIs(t, err, domain.ErrInvalidOperand)
}

func TestListTables(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleListTables(context.Background(), callRequest("list_tables", nil))
	require.NoError(t, err)

	var out []tableSummary
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	require.Len(t, out, 4)
	assert.Equal(t, "division", out[3].Name)
	assert.Equal(t, out[3].Terminal+1, out[3].States)
	assert.Equal(t, []int{0, 1, 2}, out[2].Reachability.Reachable)
	assert.False(t, out[2].Reachability.TerminalReachable)
}

func TestDescribeTable(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	res, err := s.handleDescribeTable(ctx, callRequest("describe_table", map[string]any{"name": "*"}))
	require.NoError(t, err)
	var table domain.Table
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &table))
	assert.Equal(t, "multiplication", table.Name)

	res, err = s.handleDescribeTable(ctx, callRequest("describe_table", map[string]any{"name": "addition", "format": "mermaid"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "stateDiagram-v2")

	res, err = s.handleDescribeTable(ctx, callRequest("describe_table", map[string]any{"name": "modulo"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleDescribeTable(ctx, callRequest("describe_table", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleDescribeTable(ctx, callRequest("describe_table", map[string]any{"name": "+", "format": "svg"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestGetRun(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	res, err := s.handleGetRun(ctx, callRequest("get_run", map[string]any{"id": "run-1"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	_, err = s.handleRunMachine(ctx, callRequest("run_machine", nil), RunArgs{Left: "1", Right: "1", Operation: "+"})
	require.NoError(t, err)

	res, err = s.handleGetRun(ctx, callRequest("get_run", map[string]any{"id": "run-1"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), `"id":"run-1"`)
}

func TestReadTablesResource(t *testing.T) {
	s := newTestServer(t)

	contents, err := s.readTables(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, TablesURI, text.URI)
	assert.Contains(t, text.Text, `"name":"addition"`)
}

func TestNewServer(t *testing.T) {
	s := newTestServer(t)
	assert.NotNil(t, s.MCPServer())
}
