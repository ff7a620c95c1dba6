// Package loader implementa el contenedor de estado para una carga
// asincronica: Idle -> Loading -> Ready | Failed.
package loader

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type State int

const (
	Idle State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// DefaultFailureMessage se muestra cuando el recurso no define uno propio.
const DefaultFailureMessage = "Failed to load data. Please try again later."

// Fetcher obtiene el payload del recurso.
type Fetcher[T any] func(ctx context.Context) (T, error)

// Snapshot es una vista inmutable del estado del recurso.
type Snapshot[T any] struct {
	State State
	Data  T
	Error string
}

type options struct {
	name           string
	failureMessage string
	logger         *zap.Logger
	observer       func(State)
}

type Option func(*options)

// WithName identifica el recurso en los logs.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithFailureMessage define el texto para el usuario cuando la carga falla.
func WithFailureMessage(msg string) Option {
	return func(o *options) { o.failureMessage = msg }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithObserver recibe cada transicion de estado. Se invoca fuera del lock.
func WithObserver(fn func(State)) Option {
	return func(o *options) { o.observer = fn }
}

// Resource envuelve una unica carga por montaje. El resultado de una
// carga que termina despues de Unmount se descarta.
type Resource[T any] struct {
	mu         sync.Mutex
	fetch      Fetcher[T]
	opts       options
	state      State
	data       T
	errMsg     string
	generation uint64
	started    bool
	mounted    bool
}

// New crea un recurso montado en estado Idle.
func New[T any](fetch Fetcher[T], opts ...Option) *Resource[T] {
	o := options{
		name:           "resource",
		failureMessage: DefaultFailureMessage,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Resource[T]{
		fetch:   fetch,
		opts:    o,
		state:   Idle,
		mounted: true,
	}
}

// Load dispara la carga si el montaje actual todavia no la inicio y
// espera su resultado. Llamadas posteriores devuelven el estado actual.
func (r *Resource[T]) Load(ctx context.Context) Snapshot[T] {
	generation, ok := r.begin()
	if !ok {
		return r.Snapshot()
	}
	data, err := r.fetch(ctx)
	r.finish(generation, data, err)
	return r.Snapshot()
}

// Start corre Load en una goroutine; el canal se cierra al terminar.
func (r *Resource[T]) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Load(ctx)
	}()
	return done
}

func (r *Resource[T]) begin() (uint64, bool) {
	r.mu.Lock()
	if !r.mounted || r.started {
		r.mu.Unlock()
		return 0, false
	}
	r.started = true
	r.state = Loading
	generation := r.generation
	r.mu.Unlock()

	r.notify(Loading)
	return generation, true
}

func (r *Resource[T]) finish(generation uint64, data T, err error) {
	r.mu.Lock()
	if !r.mounted || generation != r.generation {
		r.mu.Unlock()
		r.opts.logger.Debug("discarding result after unmount", zap.String("resource", r.opts.name))
		return
	}
	var next State
	if err != nil {
		r.errMsg = r.opts.failureMessage
		next = Failed
	} else {
		r.data = data
		next = Ready
	}
	r.state = next
	r.mu.Unlock()

	if err != nil {
		r.opts.logger.Warn("resource load failed", zap.String("resource", r.opts.name), zap.Error(err))
	}
	r.notify(next)
}

func (r *Resource[T]) notify(s State) {
	if r.opts.observer != nil {
		r.opts.observer(s)
	}
}

// Unmount marca el recurso como desmontado; cargas pendientes no escriben.
func (r *Resource[T]) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mounted = false
	r.generation++
}

// Remount inicia un montaje nuevo en Idle, habilitando otra carga.
func (r *Resource[T]) Remount() {
	r.mu.Lock()
	var zero T
	r.generation++
	r.mounted = true
	r.started = false
	r.state = Idle
	r.data = zero
	r.errMsg = ""
	r.mu.Unlock()

	r.notify(Idle)
}

// Reload es Remount seguido de Load.
func (r *Resource[T]) Reload(ctx context.Context) Snapshot[T] {
	r.Remount()
	return r.Load(ctx)
}

func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot[T]{State: r.state, Data: r.data, Error: r.errMsg}
}

func (r *Resource[T]) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Resource[T]) Mounted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mounted
}
