package stack_test

import (
	"testing"

	"github.com/aretw0/algoviz/internal/stack"
	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actions(steps []domain.Step) []domain.Action {
	out := make([]domain.Action, len(steps))
	for i, s := range steps {
		out[i] = s.Action
	}
	return out
}

func TestGenerate_Demo(t *testing.T) {
	steps := stack.Generate(nil, 0)

	assert.Equal(t, []domain.Action{
		domain.ActionInit,
		domain.ActionPush, domain.ActionPush, domain.ActionPush, domain.ActionPush,
		domain.ActionPop, domain.ActionPop,
		domain.ActionPeek,
		domain.ActionComplete,
	}, actions(steps))

	assert.Equal(t, []int{10, 20, 30, 40}, steps[4].Stack.Items)
	assert.Equal(t, 8, steps[4].Stack.Capacity)

	push := steps[4].Stack.Animation
	require.NotNil(t, push)
	assert.Equal(t, domain.AnimationPush, push.Type)
	assert.Equal(t, 40, push.Value)
	assert.Equal(t, 3, *push.TargetIndex)

	pop := steps[5].Stack.Animation
	assert.Equal(t, domain.AnimationPop, pop.Type)
	assert.Equal(t, 40, pop.Value)
	assert.Equal(t, 3, *pop.SourceIndex)
	assert.Equal(t, []int{10, 20, 30}, steps[5].Stack.Items)

	peek := steps[7].Stack
	assert.Equal(t, domain.AnimationHighlight, peek.Animation.Type)
	assert.Equal(t, 20, peek.Animation.Value)
	assert.Equal(t, 1, *peek.Animation.Index)
	assert.Equal(t, 1, *peek.ChangedIndex)
	assert.Equal(t, []int{10, 20}, peek.Items)
}

func TestGenerate_RefusesBeyondCapacity(t *testing.T) {
	steps := stack.Generate([]int{1, 2, 3, 4}, 2)

	pushes := 0
	for _, s := range steps {
		if s.Action == domain.ActionPush {
			pushes++
		}
	}
	assert.Equal(t, 2, pushes)
	assert.Empty(t, steps[len(steps)-1].Stack.Items)
}

func TestGenerate_EmptyStack(t *testing.T) {
	steps := stack.Generate([]int{}, 4)

	assert.Equal(t, []domain.Action{domain.ActionInit, domain.ActionComplete}, actions(steps))
	assert.NotNil(t, steps[0].Stack.Items)
}

func TestGenerate_Snapshots(t *testing.T) {
	steps := stack.Generate(nil, 0)
	steps[1].Stack.Items[0] = 99

	assert.Equal(t, 10, steps[2].Stack.Items[0])
}

func TestStack(t *testing.T) {
	s := stack.New(1)
	assert.True(t, s.Push(5))
	assert.False(t, s.Push(6))

	v, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	v, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = s.Pop()
	assert.False(t, ok)
}
