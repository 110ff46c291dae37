package algoviz_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/algoviz"
	"github.com/aretw0/algoviz/pkg/adapters/memory"
	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/aretw0/algoviz/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Generate(t *testing.T) {
	eng := algoviz.New()
	ctx := context.Background()

	assert.Equal(t, domain.Algorithms, eng.Algorithms())

	steps, err := eng.Generate(ctx, domain.AlgorithmBubbleSort, map[string]any{"array": []any{3.0, 1.0, 2.0}})
	require.NoError(t, err)
	require.NotEmpty(t, steps)
	last := steps[len(steps)-1]
	assert.Equal(t, domain.ActionComplete, last.Action)
	assert.Equal(t, []int{1, 2, 3}, last.Array.Values)

	_, err = eng.Generate(ctx, "foo", nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedAlgorithm)
}

func TestEngine_MaxArrayLength(t *testing.T) {
	eng := algoviz.New(algoviz.WithMaxArrayLength(3))
	ctx := context.Background()

	_, err := eng.Generate(ctx, domain.AlgorithmQuickSort, map[string]any{"array": []int{4, 3, 2, 1}})
	assert.ErrorIs(t, err, domain.ErrInputTooLarge)

	_, err = eng.LinkedListAction(ctx, "s", "init", map[string]any{"values": []int{1, 2, 3, 4}})
	assert.ErrorIs(t, err, domain.ErrInputTooLarge)
}

func TestEngine_GenerateIgnoresSessions(t *testing.T) {
	eng := algoviz.New()
	ctx := context.Background()

	_, err := eng.Generate(ctx, domain.AlgorithmLinkedList, map[string]any{"operation": "insertHead", "value": 1})
	require.NoError(t, err)

	ids, err := eng.Sessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestEngine_GenerateSession(t *testing.T) {
	store := memory.NewStore()
	eng := algoviz.New(algoviz.WithStore(store))
	ctx := context.Background()

	_, err := eng.GenerateSession(ctx, "s1", domain.AlgorithmLinkedList, map[string]any{"operation": "insertTail", "value": 9})
	require.NoError(t, err)
	_, err = eng.GenerateSession(ctx, "s1", domain.AlgorithmLinkedList, map[string]any{"operation": "removeHead"})
	require.NoError(t, err)

	state, err := eng.Session(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7, 4, 8, 9}, state.Values())
	assert.Equal(t, 2, state.Version)

	// Non list algorithms never create a session.
	_, err = eng.GenerateSession(ctx, "s2", domain.AlgorithmStack, nil)
	require.NoError(t, err)
	_, err = eng.Session(ctx, "s2")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestEngine_SessionsAreIsolated(t *testing.T) {
	eng := algoviz.New()
	ctx := context.Background()

	_, err := eng.LinkedListAction(ctx, "a", "removeHead", nil)
	require.NoError(t, err)
	res, err := eng.LinkedListAction(ctx, "b", "search", map[string]any{"value": 6})
	require.NoError(t, err)

	assert.Equal(t, domain.ActionFound, res.Steps[len(res.Steps)-1].Action)
	assert.Equal(t, 0, res.Info.Version)
}

func TestEngine_LinkedListActionFailure(t *testing.T) {
	eng := algoviz.New()
	ctx := context.Background()

	res, err := eng.LinkedListAction(ctx, "s", "removeAt", map[string]any{"position": 42})
	require.NoError(t, err)
	assert.False(t, res.Info.Success)
	require.Len(t, res.Steps, 1)
	assert.Equal(t, domain.ActionError, res.Steps[0].Action)
	assert.Equal(t, []int{6, 1, 7, 4, 8}, res.Info.Values)

	_, err = eng.LinkedListAction(ctx, "s", "insertAt", map[string]any{"value": 1.5, "position": 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEngine_ConcurrentActions(t *testing.T) {
	eng := algoviz.New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			_, err := eng.LinkedListAction(ctx, "shared", "insertTail", map[string]any{"value": v})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	state, err := eng.Session(ctx, "shared")
	require.NoError(t, err)
	assert.Len(t, state.Nodes, 25)
	assert.Equal(t, 20, state.Version)
}

func TestEngine_SessionLifecycle(t *testing.T) {
	eng := algoviz.New()
	ctx := context.Background()

	state, err := eng.NewSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, state.SessionID)

	ids, err := eng.Sessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{state.SessionID}, ids)

	require.NoError(t, eng.DeleteSession(ctx, state.SessionID))
	_, err = eng.Session(ctx, state.SessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestEngine_Hooks(t *testing.T) {
	var (
		mu     sync.Mutex
		events []*domain.GenerateEvent
	)
	record := func(_ context.Context, ev *domain.GenerateEvent) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
	}

	eng := algoviz.New(algoviz.WithLifecycleHooks(domain.LifecycleHooks{OnGenerate: record, OnError: record}))
	ctx := context.Background()

	_, err := eng.Generate(ctx, domain.AlgorithmStack, nil)
	require.NoError(t, err)
	_, err = eng.Generate(ctx, "nope", nil)
	require.Error(t, err)
	_, err = eng.LinkedListAction(ctx, "s", "removeAt", map[string]any{"position": 9})
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, domain.EventGenerate, events[0].Type)
	assert.Equal(t, 9, events[0].Steps)
	assert.Equal(t, domain.EventGenerateError, events[1].Type)
	assert.ErrorIs(t, events[1].Err, domain.ErrUnsupportedAlgorithm)
	assert.True(t, events[2].Failed)
	assert.Equal(t, "s", events[2].SessionID)
}

func TestEngine_Metrics(t *testing.T) {
	m, err := observability.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	eng := algoviz.New(algoviz.WithLifecycleHooks(m.Hooks()))
	ctx := context.Background()

	_, err = eng.Generate(ctx, domain.AlgorithmHeapSort, nil)
	require.NoError(t, err)
	_, err = eng.Generate(ctx, domain.AlgorithmHeapSort, map[string]any{"array": "bad"})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Generations.WithLabelValues("heapSort", observability.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Generations.WithLabelValues("heapSort", observability.OutcomeError)))
}
