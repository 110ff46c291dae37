package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/algoviz/internal/config"
	"github.com/aretw0/algoviz/internal/logging"
	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRuntime(t *testing.T, mutate func(*config.Config)) *Runtime {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())
	rt, err := NewRuntime(cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { rt.Close() })
	return rt
}

func TestParseData(t *testing.T) {
	data, err := ParseData(`{"array":[3,1,2]}`)
	require.NoError(t, err)
	assert.Equal(t, []any{3, 1, 2}, data["array"])

	data, err = ParseData(`{operation: insertAt, value: 5, position: 1}`)
	require.NoError(t, err)
	assert.Equal(t, "insertAt", data["operation"])
	assert.Equal(t, 5, data["value"])

	data, err = ParseData("  ")
	require.NoError(t, err)
	assert.Nil(t, data)

	_, err = ParseData(`{array: [1, 2`)
	assert.Error(t, err)
}

func TestParseInts(t *testing.T) {
	vals, err := ParseInts("5, 3,1")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 1}, vals)

	vals, err = ParseInts("")
	require.NoError(t, err)
	assert.Empty(t, vals)

	_, err = ParseInts("1,x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	vals, err = ParseInts("-2147483648,2147483647")
	require.NoError(t, err)
	assert.Equal(t, []int{math.MinInt32, math.MaxInt32}, vals)

	_, err = ParseInts("9223372036854775807,1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseData_ExtremeValuesRejected(t *testing.T) {
	rt := newRuntime(t, nil)
	data, err := ParseData("{array: [9223372036854775807, -9223372036854775808]}")
	require.NoError(t, err)

	for _, id := range []domain.AlgorithmID{domain.AlgorithmCountingSort, domain.AlgorithmRadixSort, domain.AlgorithmBucketSort} {
		_, err := rt.Engine.Generate(context.Background(), id, data)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, string(id))
	}
}

func TestNewRuntime_Backends(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	cases := map[string]func(*config.Config){
		"memory": nil,
		"file": func(c *config.Config) {
			c.Store.Backend = config.BackendFile
			c.Store.Path = filepath.Join(dir, "sessions")
		},
		"bolt": func(c *config.Config) {
			c.Store.Backend = config.BackendBolt
			c.Store.Path = filepath.Join(dir, "sessions.db")
		},
		"redis": func(c *config.Config) {
			c.Store.Backend = config.BackendRedis
			c.Store.Redis.Addr = mr.Addr()
			c.Store.Redis.Lock = true
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			rt := newRuntime(t, mutate)
			ctx := context.Background()

			_, err := rt.Engine.LinkedListAction(ctx, "cli-"+name, "insertHead", map[string]any{"value": 1})
			require.NoError(t, err)

			state, err := rt.Store.Load(ctx, "cli-"+name)
			require.NoError(t, err)
			assert.Equal(t, []int{1, 6, 1, 7, 4, 8}, state.Values())
		})
	}
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = "tape"
	_, _, _, err := openStore(cfg)
	assert.ErrorContains(t, err, "unknown store backend")
}

func TestRender_Formats(t *testing.T) {
	rt := newRuntime(t, nil)
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, Run(ctx, rt.Engine, RunOptions{Algorithm: "stack"}, &out))
	assert.Contains(t, out.String(), "Total: 9 steps")

	out.Reset()
	require.NoError(t, Run(ctx, rt.Engine, RunOptions{Algorithm: "selectionSort", Data: map[string]any{"array": []int{2, 1}}, Format: FormatJSON}, &out))
	var doc struct {
		Steps      []domain.Step `json:"steps"`
		TotalSteps int           `json:"totalSteps"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, len(doc.Steps), doc.TotalSteps)

	out.Reset()
	require.NoError(t, Run(ctx, rt.Engine, RunOptions{Algorithm: "stack", Format: FormatMarkdown}, &out))
	assert.Contains(t, out.String(), "### Step 9/9: complete")

	out.Reset()
	require.NoError(t, Run(ctx, rt.Engine, RunOptions{Algorithm: "binaryTree", Format: FormatMermaid}, &out))
	assert.Contains(t, out.String(), "```mermaid\ngraph TD")

	out.Reset()
	err := Run(ctx, rt.Engine, RunOptions{Algorithm: "bubbleSort", Format: FormatMermaid}, &out)
	assert.ErrorContains(t, err, "only available")

	err = Run(ctx, rt.Engine, RunOptions{Algorithm: "stack", Format: "xml"}, &out)
	assert.ErrorContains(t, err, "unknown format")

	err = Run(ctx, rt.Engine, RunOptions{Algorithm: "bogoSort"}, &out)
	assert.ErrorIs(t, err, domain.ErrUnsupportedAlgorithm)
}

func TestRun_Scenario(t *testing.T) {
	rt := newRuntime(t, nil)
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: demo
runs:
  - title: push some
    algorithm: stack
    data: {values: [1, 2]}
  - algorithm: linkedList
    data: {operation: insertTail, value: 9}
`), 0o644))

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), rt.Engine, RunOptions{Scenario: path, SessionID: "scn"}, &out))
	assert.Contains(t, out.String(), "push some")
	assert.Contains(t, out.String(), "linkedList insertTail")

	state, err := rt.Engine.Session(context.Background(), "scn")
	require.NoError(t, err)
	assert.Equal(t, []int{6, 1, 7, 4, 8, 9}, state.Values())
}

func TestPlay_Headless(t *testing.T) {
	rt := newRuntime(t, nil)

	var out bytes.Buffer
	err := Play(context.Background(), rt.Engine, PlayOptions{
		RunOptions: RunOptions{Algorithm: "stack"},
		Headless:   true,
	}, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), ">>> stack: 9 steps")
	assert.Contains(t, out.String(), "### Step 9/9: complete")
}

func TestPlay_Interactive(t *testing.T) {
	rt := newRuntime(t, nil)

	var out bytes.Buffer
	err := Play(context.Background(), rt.Engine, PlayOptions{
		RunOptions: RunOptions{Algorithm: "stack"},
		Quiet:      true,
	}, strings.NewReader("n\nq\n"), &out)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), ">>>")
	assert.Contains(t, out.String(), "### Step 2/9")
	assert.Contains(t, out.String(), "Bye!")
}

func TestSessionCommands(t *testing.T) {
	rt := newRuntime(t, nil)
	ctx := context.Background()
	var out bytes.Buffer

	require.NoError(t, SessionList(ctx, rt.Engine, &out))
	assert.Contains(t, out.String(), "No active sessions found.")

	out.Reset()
	require.NoError(t, ListAction(ctx, rt.Engine, "alpha", "insertHead", map[string]any{"value": 2}, FormatTable, &out))
	assert.Contains(t, out.String(), "Insert at head (O(1), ok)")

	out.Reset()
	require.NoError(t, ListAction(ctx, rt.Engine, "beta", "removeAt", map[string]any{"position": 9}, FormatTable, &out))
	assert.Contains(t, out.String(), "failed")

	out.Reset()
	require.NoError(t, SessionList(ctx, rt.Engine, &out))
	assert.Contains(t, out.String(), "alpha")
	assert.Contains(t, out.String(), "[2] -> [6]")

	out.Reset()
	require.NoError(t, SessionInspect(ctx, rt.Engine, "alpha", &out))
	var state domain.ListState
	require.NoError(t, json.Unmarshal(out.Bytes(), &state))
	assert.Equal(t, 1, state.Version)

	assert.Error(t, SessionInspect(ctx, rt.Engine, "missing", io.Discard))

	out.Reset()
	require.NoError(t, SessionRemove(ctx, rt.Engine, nil, true, &out))
	assert.Contains(t, out.String(), "Removed session 'alpha'")
	assert.Contains(t, out.String(), "Removed session 'beta'")

	ids, err := rt.Engine.Sessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestServeListeners(t *testing.T) {
	rt := newRuntime(t, nil)
	cfg := config.Default()
	cfg.Server.MetricsAddr = "127.0.0.1:0"

	api, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	metrics, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveListeners(ctx, cfg, rt, api, metrics) }()

	resp, err := http.Get("http://" + api.Addr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post("http://"+api.Addr().String()+"/visualize", "application/json", strings.NewReader(`{"algorithm":"stack"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get("http://" + metrics.Addr().String() + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), `algoviz_generations_total{algorithm="stack",outcome="ok"} 1`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
