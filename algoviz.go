package algoviz

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/algoviz/internal/linkedlist"
	"github.com/aretw0/algoviz/internal/logging"
	"github.com/aretw0/algoviz/pkg/adapters/memory"
	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/aretw0/algoviz/pkg/ports"
	"github.com/aretw0/algoviz/pkg/registry"
	"github.com/aretw0/algoviz/pkg/session"
	"github.com/google/uuid"
)

// ListResult is the outcome of a linked list action: its steps and a summary.
type ListResult = linkedlist.Result

// OperationInfo summarises a linked list action.
type OperationInfo = linkedlist.OperationInfo

// Engine is the high-level entry point of the library.
// It dispatches generation requests and owns the linked list sessions.
type Engine struct {
	registry *registry.Registry
	sessions *session.Manager

	store          ports.ListStore
	locker         ports.DistributedLocker
	maxArrayLength int
	hooks          domain.LifecycleHooks
	logger         *slog.Logger
	now            func() time.Time
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStore persists linked list sessions in store (default: in memory).
func WithStore(store ports.ListStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLocker enables distributed session locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(e *Engine) {
		e.locker = locker
	}
}

// WithMaxArrayLength bounds array inputs (default: domain.DefaultMaxArrayLength).
// Zero or less disables the bound.
func WithMaxArrayLength(n int) Option {
	return func(e *Engine) {
		e.maxArrayLength = n
	}
}

// WithRegistry replaces the generator table.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// New initializes an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		maxArrayLength: domain.DefaultMaxArrayLength,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	if e.store == nil {
		e.store = memory.NewStore()
	}
	if e.registry == nil {
		e.registry = registry.Default(registry.WithMaxArrayLength(e.maxArrayLength))
	}

	sessionOpts := []session.Option{session.WithLogger(e.logger)}
	if e.locker != nil {
		sessionOpts = append(sessionOpts, session.WithLocker(e.locker))
	}
	e.sessions = session.NewManager(e.store, sessionOpts...)
	return e
}

// Algorithms returns the supported algorithm ids in display order.
func (e *Engine) Algorithms() []domain.AlgorithmID {
	return append([]domain.AlgorithmID(nil), domain.Algorithms...)
}

// Generate runs a generator without touching any session. Linked list
// operations run against a scratch list that starts from the default values.
func (e *Engine) Generate(ctx context.Context, id domain.AlgorithmID, data map[string]any) ([]domain.Step, error) {
	start := e.now()
	steps, err := e.registry.Generate(id, registry.Request{Data: data})
	e.report(ctx, "", id, steps, start, err)
	return steps, err
}

// GenerateSession is Generate with linked list operations applied to the
// session's current list. Other algorithms ignore the session.
func (e *Engine) GenerateSession(ctx context.Context, sessionID string, id domain.AlgorithmID, data map[string]any) ([]domain.Step, error) {
	if id != domain.AlgorithmLinkedList {
		return e.Generate(ctx, id, data)
	}

	start := e.now()
	var steps []domain.Step
	_, err := e.sessions.Update(ctx, sessionID, func(list *domain.ListState) error {
		var err error
		steps, err = e.registry.Generate(id, registry.Request{Data: data, List: list})
		return err
	})
	e.report(ctx, sessionID, id, steps, start, err)
	return steps, err
}

// LinkedListAction runs one linked list action on a session and summarises it.
// data carries "value", "position" and, for init, "values".
func (e *Engine) LinkedListAction(ctx context.Context, sessionID, action string, data map[string]any) (ListResult, error) {
	in, err := registry.DecodeInput(data)
	if err != nil {
		return ListResult{}, err
	}
	if len(in.Values) > e.maxArrayLength && e.maxArrayLength > 0 {
		return ListResult{}, fmt.Errorf("%w: values has %d elements, limit is %d", domain.ErrInputTooLarge, len(in.Values), e.maxArrayLength)
	}

	start := e.now()
	var res ListResult
	_, err = e.sessions.Update(ctx, sessionID, func(list *domain.ListState) error {
		res = linkedlist.HandleAction(list, action, linkedlist.ArgsFromInput(in))
		return nil
	})
	e.report(ctx, sessionID, domain.AlgorithmLinkedList, res.Steps, start, err)
	return res, err
}

// NewSession creates a session with a fresh id.
func (e *Engine) NewSession(ctx context.Context) (*domain.ListState, error) {
	return e.sessions.LoadOrInit(ctx, uuid.NewString())
}

// Session returns a session's current list.
func (e *Engine) Session(ctx context.Context, sessionID string) (*domain.ListState, error) {
	return e.sessions.Load(ctx, sessionID)
}

// DeleteSession removes a session.
func (e *Engine) DeleteSession(ctx context.Context, sessionID string) error {
	return e.sessions.Delete(ctx, sessionID)
}

// Sessions lists the stored session ids.
func (e *Engine) Sessions(ctx context.Context) ([]string, error) {
	return e.sessions.List(ctx)
}

func (e *Engine) report(ctx context.Context, sessionID string, id domain.AlgorithmID, steps []domain.Step, start time.Time, err error) {
	ev := &domain.GenerateEvent{
		EventBase: domain.EventBase{
			Timestamp: e.now(),
			Type:      domain.EventGenerate,
			SessionID: sessionID,
		},
		Algorithm: id,
		Steps:     len(steps),
		Duration:  e.now().Sub(start),
		Failed:    err == nil && domain.AllFailed(steps),
		Err:       err,
	}

	if err != nil {
		ev.Type = domain.EventGenerateError
		e.logger.Warn("generation failed", "algorithm", id, "session_id", sessionID, "err", err)
		if e.hooks.OnError != nil {
			e.hooks.OnError(ctx, ev)
		}
		return
	}
	if e.hooks.OnGenerate != nil {
		e.hooks.OnGenerate(ctx, ev)
	}
}
