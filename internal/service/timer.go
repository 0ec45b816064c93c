package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/enviro_health_system/internal/alert"
	"github.com/shenikar/enviro_health_system/internal/timer"
	"github.com/sirupsen/logrus"
)

// ErrTimerNotFound возвращается при обращении к несуществующей сессии таймера
var ErrTimerNotFound = errors.New("timer session not found")

// TimerService определяет контракт для сессий таймера экспозиции.
// Сессии живут только в памяти процесса.
type TimerService interface {
	Create(ctx context.Context, userID string, duration time.Duration) (uuid.UUID, timer.State, error)
	Get(ctx context.Context, id uuid.UUID) (timer.State, error)
	Start(ctx context.Context, id uuid.UUID) (timer.State, error)
	Pause(ctx context.Context, id uuid.UUID) (timer.State, error)
	Reset(ctx context.Context, id uuid.UUID) (timer.State, error)
	SetDuration(ctx context.Context, id uuid.UUID, duration time.Duration) (timer.State, error)
}

type timerSession struct {
	userID    string
	countdown *timer.Countdown
	alertSent bool
}

type timerService struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*timerSession
	publisher alert.Publisher
	logger    *logrus.Logger
	now       func() time.Time
}

// NewTimerService создает реестр сессий таймера
func NewTimerService(publisher alert.Publisher, logger *logrus.Logger) TimerService {
	return &timerService{
		sessions:  make(map[uuid.UUID]*timerSession),
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Create регистрирует новую сессию в состоянии Idle
func (s *timerService) Create(ctx context.Context, userID string, duration time.Duration) (uuid.UUID, timer.State, error) {
	if duration <= 0 {
		return uuid.Nil, timer.State{}, fmt.Errorf("service: timer duration must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	session := &timerSession{
		userID:    userID,
		countdown: timer.New(duration, s.now),
	}
	s.sessions[id] = session

	s.logger.WithFields(logrus.Fields{
		"service":  "timer",
		"timer_id": id,
		"user_id":  userID,
		"duration": duration,
	}).Info("Timer session created")

	return id, session.countdown.Snapshot(), nil
}

// Get возвращает снимок сессии
func (s *timerService) Get(ctx context.Context, id uuid.UUID) (timer.State, error) {
	return s.withSession(ctx, id, func(session *timerSession) error { return nil })
}

// Start запускает или возобновляет отсчет
func (s *timerService) Start(ctx context.Context, id uuid.UUID) (timer.State, error) {
	return s.withSession(ctx, id, func(session *timerSession) error {
		session.countdown.Start()
		return nil
	})
}

// Pause замораживает накопленное время
func (s *timerService) Pause(ctx context.Context, id uuid.UUID) (timer.State, error) {
	return s.withSession(ctx, id, func(session *timerSession) error {
		session.countdown.Pause()
		return nil
	})
}

// Reset возвращает сессию в Idle и разрешает повторную тревогу
func (s *timerService) Reset(ctx context.Context, id uuid.UUID) (timer.State, error) {
	return s.withSession(ctx, id, func(session *timerSession) error {
		session.countdown.Reset()
		session.alertSent = false
		return nil
	})
}

// SetDuration меняет длительность остановленной сессии
func (s *timerService) SetDuration(ctx context.Context, id uuid.UUID, duration time.Duration) (timer.State, error) {
	if duration <= 0 {
		return timer.State{}, fmt.Errorf("service: timer duration must be positive")
	}
	return s.withSession(ctx, id, func(session *timerSession) error {
		if err := session.countdown.SetDuration(duration); err != nil {
			return fmt.Errorf("service: could not change timer duration: %w", err)
		}
		return nil
	})
}

// withSession выполняет операцию под общим замком и после нее снимает
// состояние. Защелкнувшаяся тревога публикуется один раз за запуск.
func (s *timerService) withSession(ctx context.Context, id uuid.UUID, op func(*timerSession) error) (timer.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return timer.State{}, fmt.Errorf("service: %w: %s", ErrTimerNotFound, id)
	}
	if err := op(session); err != nil {
		return timer.State{}, err
	}

	state := session.countdown.Snapshot()
	if state.Alert && !session.alertSent {
		session.alertSent = true
		event := alert.Event{
			UserID:    session.userID,
			Kind:      alert.KindTimerExpired,
			Message:   "Exposure countdown expired, immediate medical attention required",
			Timestamp: s.now().UTC(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.WithError(err).WithField("timer_id", id).Warn("Failed to publish timer expiry alert")
		}
	}
	return state, nil
}
