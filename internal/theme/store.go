package theme

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"portfolio-web/internal/domain"
)

// Repository persiste el modo bajo una clave.
type Repository interface {
	Load(ctx context.Context, key string) (domain.ThemeMode, bool, error)
	Save(ctx context.Context, key string, mode domain.ThemeMode) error
}

type subscriber struct {
	id int
	fn func(domain.ThemeMode)
}

// Store es el estado de apariencia compartido. Toggle es la unica
// mutacion y notifica a todos los suscriptores antes de volver.
type Store struct {
	// toggleMu serializa Toggle completo (persistencia + avisos).
	toggleMu sync.Mutex

	mu     sync.Mutex
	key    string
	repo   Repository
	logger *zap.Logger
	mode   domain.ThemeMode
	subs   []subscriber
	nextID int
}

// NewStore inicializa el modo desde el repositorio; si no hay valor
// persistido (o falla la lectura) arranca en light.
func NewStore(ctx context.Context, key string, repo Repository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		key:    key,
		repo:   repo,
		logger: logger,
		mode:   domain.ThemeLight,
	}
	if repo == nil {
		return s
	}
	mode, found, err := repo.Load(ctx, key)
	if err != nil {
		logger.Warn("theme load failed", zap.String("key", key), zap.Error(err))
		return s
	}
	if found {
		s.mode = mode
	}
	return s
}

func (s *Store) Get() domain.ThemeMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Toggle invierte el modo, lo persiste y lo propaga. Un error de
// persistencia se devuelve pero el cambio en memoria se mantiene.
// Los suscriptores no deben llamar a Toggle.
func (s *Store) Toggle(ctx context.Context) (domain.ThemeMode, error) {
	s.toggleMu.Lock()
	defer s.toggleMu.Unlock()

	s.mu.Lock()
	s.mode = s.mode.Opposite()
	mode := s.mode
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	var persistErr error
	if s.repo != nil {
		if err := s.repo.Save(ctx, s.key, mode); err != nil {
			s.logger.Error("theme persist failed", zap.String("key", s.key), zap.Error(err))
			persistErr = fmt.Errorf("persist theme: %w", err)
		}
	}

	for _, sub := range subs {
		sub.fn(mode)
	}
	return mode, persistErr
}

// Subscribe registra fn para cada cambio. La funcion devuelta cancela la
// suscripcion y es idempotente.
func (s *Store) Subscribe(fn func(domain.ThemeMode)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Subscribers devuelve la cantidad de consumidores activos.
func (s *Store) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
