// Package registry maps algorithm ids to step generators.
//
// It is the single integration point transports call: it decodes the request
// data, applies input limits and defaults, and delegates to the generator.
// It holds no state besides its table; the only mutable state a generator
// may touch is the *domain.ListState supplied with the request.
package registry

import (
	"fmt"
	"sync"

	"github.com/aretw0/algoviz/internal/sorting"
	"github.com/aretw0/algoviz/pkg/domain"
)

// Generator produces the steps for one algorithm.
// list is non-nil only for the linked list generator.
type Generator func(in domain.Input, list *domain.ListState) []domain.Step

// Request is the data handed to Generate.
type Request struct {
	// Data is the raw payload, e.g. {"array": [3,1,2]}.
	Data map[string]any
	// List is the session's current linked list. Nil runs linked list
	// operations against a scratch list.
	List *domain.ListState
}

// Registry manages the generator table.
type Registry struct {
	mu             sync.RWMutex
	generators     map[domain.AlgorithmID]Generator
	maxArrayLength int
}

// Option configures a Registry.
type Option func(*Registry)

// WithMaxArrayLength bounds array and values inputs. Zero or less disables the bound.
func WithMaxArrayLength(n int) Option {
	return func(r *Registry) {
		r.maxArrayLength = n
	}
}

// New creates a registry with an empty table.
func New(opts ...Option) *Registry {
	r := &Registry{
		generators:     make(map[domain.AlgorithmID]Generator),
		maxArrayLength: domain.DefaultMaxArrayLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default creates a registry with every supported algorithm registered.
func Default(opts ...Option) *Registry {
	r := New(opts...)
	for id, gen := range map[domain.AlgorithmID]func([]int) []domain.Step{
		domain.AlgorithmBubbleSort:    sorting.Bubble,
		domain.AlgorithmSelectionSort: sorting.Selection,
		domain.AlgorithmInsertionSort: sorting.Insertion,
		domain.AlgorithmQuickSort:     sorting.Quick,
		domain.AlgorithmHeapSort:      sorting.Heap,
		domain.AlgorithmMergeSort:     sorting.Merge,
		domain.AlgorithmRadixSort:     sorting.Radix,
		domain.AlgorithmBucketSort:    sorting.Bucket,
		domain.AlgorithmCountingSort:  sorting.Counting,
	} {
		_ = r.Register(id, sortGenerator(gen))
	}
	_ = r.Register(domain.AlgorithmBinaryTree, treeGenerator)
	_ = r.Register(domain.AlgorithmLinkedList, linkedListGenerator)
	_ = r.Register(domain.AlgorithmStack, stackGenerator)
	return r
}

// Register adds a generator for a supported algorithm id.
// If one is already registered, it is overwritten.
// Ids outside the supported set are rejected.
func (r *Registry) Register(id domain.AlgorithmID, gen Generator) error {
	if !id.Known() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedAlgorithm, id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[id] = gen
	return nil
}

// Loaded reports whether a generator is registered for id.
func (r *Registry) Loaded(id domain.AlgorithmID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.generators[id]
	return ok
}

// Generate looks up the generator for id and runs it.
func (r *Registry) Generate(id domain.AlgorithmID, req Request) ([]domain.Step, error) {
	if !id.Known() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedAlgorithm, id)
	}

	r.mu.RLock()
	gen, ok := r.generators[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrGeneratorNotLoaded, id)
	}

	in, err := DecodeInput(req.Data)
	if err != nil {
		return nil, err
	}
	if err := r.checkLimits(in); err != nil {
		return nil, err
	}
	if id == domain.AlgorithmCountingSort && !sorting.CountingFits(in.Array) {
		return nil, fmt.Errorf("%w: value range exceeds %d counters", domain.ErrInputTooLarge, sorting.MaxCountingRange)
	}

	return gen(in, req.List), nil
}

func (r *Registry) checkLimits(in domain.Input) error {
	if r.maxArrayLength <= 0 {
		return nil
	}
	if len(in.Array) > r.maxArrayLength {
		return fmt.Errorf("%w: array has %d elements, limit is %d", domain.ErrInputTooLarge, len(in.Array), r.maxArrayLength)
	}
	if len(in.Values) > r.maxArrayLength {
		return fmt.Errorf("%w: values has %d elements, limit is %d", domain.ErrInputTooLarge, len(in.Values), r.maxArrayLength)
	}
	return nil
}
