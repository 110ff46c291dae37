package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/algoviz"
	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleGenerate(t *testing.T) {
	s := NewServer(algoviz.New(), nil)
	ctx := context.Background()

	resp, err := s.handleGenerate(ctx, mcp.CallToolRequest{}, GenerateArgs{
		Algorithm: "insertionSort",
		Data:      map[string]any{"array": []any{3.0, 2.0, 1.0}},
	})
	require.NoError(t, err)
	assert.Equal(t, "insertionSort", resp.Algorithm)
	assert.Equal(t, len(resp.Steps), resp.TotalSteps)
	assert.Equal(t, []int{1, 2, 3}, resp.Steps[resp.TotalSteps-1].Array.Values)

	_, err = s.handleGenerate(ctx, mcp.CallToolRequest{}, GenerateArgs{Algorithm: "bogoSort"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedAlgorithm)

	_, err = s.handleGenerate(ctx, mcp.CallToolRequest{}, GenerateArgs{Algorithm: "stack", SessionID: "../etc"})
	assert.Error(t, err)
}

func TestHandleGenerate_Session(t *testing.T) {
	eng := algoviz.New()
	s := NewServer(eng, nil)
	ctx := context.Background()

	_, err := s.handleGenerate(ctx, mcp.CallToolRequest{}, GenerateArgs{
		Algorithm: "linkedList",
		SessionID: "agent-1",
		Data:      map[string]any{"operation": "removeTail"},
	})
	require.NoError(t, err)

	state, err := eng.Session(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, []int{6, 1, 7, 4}, state.Values())
}

func TestHandleLinkedList(t *testing.T) {
	s := NewServer(algoviz.New(), nil)
	ctx := context.Background()

	pos, val := 1, 99
	res, err := s.handleLinkedList(ctx, mcp.CallToolRequest{}, LinkedListArgs{
		SessionID: "s",
		Action:    "insert_at",
		Value:     &val,
		Position:  &pos,
	})
	require.NoError(t, err)
	assert.True(t, res.Info.Success)
	assert.Equal(t, "insertAt", res.Info.Operation)
	assert.Equal(t, []int{6, 99, 1, 7, 4, 8}, res.Info.Values)

	res, err = s.handleLinkedList(ctx, mcp.CallToolRequest{}, LinkedListArgs{SessionID: "s", Action: "init", Values: []int{}})
	require.NoError(t, err)
	assert.Empty(t, res.Info.Values)

	_, err = s.handleLinkedList(ctx, mcp.CallToolRequest{}, LinkedListArgs{SessionID: "", Action: "init"})
	assert.Error(t, err)
}

func TestHandleAlgorithms(t *testing.T) {
	s := NewServer(algoviz.New(), nil)
	resp, err := s.handleAlgorithms(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Algorithms, len(domain.Algorithms))
	assert.Contains(t, resp.Algorithms, "countingSort")
}

func TestInProcessClient(t *testing.T) {
	s := NewServer(algoviz.New(), nil)
	ctx := context.Background()

	c, err := client.NewInProcessClient(s.MCPServer())
	require.NoError(t, err)
	defer c.Close()
	require.NoError(t, c.Start(ctx))

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "algoviz-test", Version: "0.0.0"}
	_, err = c.Initialize(ctx, initReq)
	require.NoError(t, err)

	tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"generate_steps", "linked_list", "list_algorithms"}, names)

	call := mcp.CallToolRequest{}
	call.Params.Name = "generate_steps"
	call.Params.Arguments = map[string]any{"algorithm": "stack"}
	res, err := c.CallTool(ctx, call)
	require.NoError(t, err)
	assert.False(t, res.IsError)
	require.NotEmpty(t, res.Content)

	call.Params.Arguments = map[string]any{"algorithm": "nope"}
	res, err = c.CallTool(ctx, call)
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
