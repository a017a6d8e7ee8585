package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"talent-scout/internal/domain"
	"talent-scout/internal/repository"
)

var (
	ErrIntakeServiceNotConfigured = errors.New("intake service not configured")
	ErrNothingToExport            = errors.New("nothing to export")
)

// IntakeService mantiene la unica conversacion activa del proceso.
// Serializa los turnos para que el sink y el store tengan un solo escritor.
type IntakeService struct {
	mu       sync.Mutex
	machine  *IntakeMachine
	sessions repository.SessionRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewIntakeService(machine *IntakeMachine, sessions repository.SessionRepository, logger *zap.Logger) *IntakeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeService{
		machine:  machine,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// Start devuelve la sesion activa o crea una nueva con el saludo.
func (s *IntakeService) Start(ctx context.Context) (domain.Session, error) {
	if s == nil || s.machine == nil || s.sessions == nil {
		return domain.Session{}, ErrIntakeServiceNotConfigured
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrCreate(ctx)
}

// Submit procesa un turno del usuario y guarda el resultado.
func (s *IntakeService) Submit(ctx context.Context, input string) (domain.Session, []domain.Message, error) {
	if s == nil || s.machine == nil || s.sessions == nil {
		return domain.Session{}, nil, ErrIntakeServiceNotConfigured
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadOrCreate(ctx)
	if err != nil {
		return domain.Session{}, nil, err
	}
	next, replies, completed := s.machine.advance(ctx, current, input)
	if err := s.sessions.Save(ctx, next); err != nil {
		return domain.Session{}, nil, fmt.Errorf("save session: %w", err)
	}
	// El registro se escribe solo si la sesion terminada quedo guardada;
	// reintentar tras un fallo de Save no duplica registros.
	if completed {
		s.machine.persist(ctx, next)
	}
	return next, replies, nil
}

// Reset descarta todo el estado y vuelve a greeting.
func (s *IntakeService) Reset(ctx context.Context) (domain.Session, error) {
	if s == nil || s.machine == nil || s.sessions == nil {
		return domain.Session{}, ErrIntakeServiceNotConfigured
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Clear(ctx); err != nil {
		return domain.Session{}, fmt.Errorf("clear session: %w", err)
	}
	sess := s.machine.NewSession()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}
	s.logger.Info("intake session reset", zap.String("session_id", sess.ID))
	return sess, nil
}

// Export arma la descarga local con el perfil sin seudonimizar.
func (s *IntakeService) Export(ctx context.Context) (domain.ExportBundle, error) {
	if s == nil || s.sessions == nil {
		return domain.ExportBundle{}, ErrIntakeServiceNotConfigured
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Load(ctx)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return domain.ExportBundle{}, ErrNothingToExport
	}
	if err != nil {
		return domain.ExportBundle{}, fmt.Errorf("load session: %w", err)
	}
	if sess.Profile.Empty() {
		return domain.ExportBundle{}, ErrNothingToExport
	}
	questions := append([]string{}, sess.Questions...)
	return domain.ExportBundle{
		Candidate: sess.Profile,
		Questions: questions,
		Timestamp: s.now().Unix(),
	}, nil
}

func (s *IntakeService) loadOrCreate(ctx context.Context) (domain.Session, error) {
	sess, err := s.sessions.Load(ctx)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, repository.ErrSessionNotFound) {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	sess = s.machine.NewSession()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}
	s.logger.Info("intake session created", zap.String("session_id", sess.ID))
	return sess, nil
}
