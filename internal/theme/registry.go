package theme

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultLoadTimeout acota la lectura inicial del modo persistido.
const DefaultLoadTimeout = 2 * time.Second

type entry struct {
	store *Store
	refs  int
	// ready se cierra cuando store ya fue cargado.
	ready chan struct{}
}

// Registry mantiene un Store por sesion de navegacion mientras alguien
// lo tenga adquirido; el repositorio es la fuente de verdad entre usos.
type Registry struct {
	mu          sync.Mutex
	repo        Repository
	logger      *zap.Logger
	entries     map[string]*entry
	loadTimeout time.Duration
}

func NewRegistry(repo Repository, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		repo:        repo,
		logger:      logger,
		entries:     make(map[string]*entry),
		loadTimeout: DefaultLoadTimeout,
	}
}

// Acquire devuelve el Store de la sesion y una funcion release que debe
// llamarse en todos los caminos de salida. La carga desde el repositorio
// ocurre fuera del lock del registro: solo esperan los que piden la
// misma sesion. La carga no depende de la cancelacion de ctx porque el
// Store se comparte con otros consumidores.
func (r *Registry) Acquire(ctx context.Context, sessionID string) (*Store, func()) {
	r.mu.Lock()
	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry{ready: make(chan struct{})}
		r.entries[sessionID] = e
	}
	e.refs++
	r.mu.Unlock()

	if ok {
		<-e.ready
	} else {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.loadTimeout)
		e.store = NewStore(loadCtx, sessionID, r.repo, r.logger)
		cancel()
		close(e.ready)
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			e.refs--
			if e.refs <= 0 && r.entries[sessionID] == e {
				delete(r.entries, sessionID)
			}
		})
	}
	return e.store, release
}

// Active devuelve cuantas sesiones tienen un Store adquirido.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
