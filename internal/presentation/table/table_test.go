package table_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/algoviz/internal/presentation/table"
	"github.com/aretw0/algoviz/internal/stack"
	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestSteps(t *testing.T) {
	var buf bytes.Buffer
	steps := stack.Generate(nil, 0)
	table.Steps(&buf, "stack", steps)

	out := buf.String()
	assert.Contains(t, out, "ACTION")
	assert.Contains(t, out, "Push 10 onto the stack")
	assert.Contains(t, out, "Total: 9 steps")
}

func TestAlgorithms(t *testing.T) {
	var buf bytes.Buffer
	table.Algorithms(&buf, domain.Algorithms)

	out := buf.String()
	assert.Contains(t, out, "bubbleSort")
	assert.Contains(t, out, "binaryTree")
	assert.Contains(t, out, "operation, value, position")
}
