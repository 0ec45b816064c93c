package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/enviro_health_system/internal/alert"
	alert_mocks "github.com/shenikar/enviro_health_system/internal/alert/mocks"
	"github.com/shenikar/enviro_health_system/internal/timer"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestTimerService — вспомогательная функция для создания инстанса сервиса
// с моками и управляемым временем.
func newTestTimerService(t *testing.T) (*timerService, *alert_mocks.MockPublisher, *time.Time) {
	ctrl := gomock.NewController(t)
	publisherMock := alert_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service := NewTimerService(publisherMock, logger)
	ts := service.(*timerService)
	ts.now = func() time.Time { return current }

	return ts, publisherMock, &current
}

func TestTimerCreate(t *testing.T) {
	service, _, _ := newTestTimerService(t)
	ctx := context.Background()

	id, state, err := service.Create(ctx, "user-123", time.Hour)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.False(t, state.IsRunning)
	assert.Equal(t, time.Hour.Milliseconds(), state.TotalMs)
}

func TestTimerCreate_NonPositiveDuration(t *testing.T) {
	service, _, _ := newTestTimerService(t)

	_, _, err := service.Create(context.Background(), "user-123", 0)

	require.Error(t, err)
	assert.ErrorContains(t, err, "duration must be positive")
}

func TestTimerGet_NotFound(t *testing.T) {
	service, _, _ := newTestTimerService(t)

	_, err := service.Get(context.Background(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimerNotFound)
}

func TestTimerStartPauseResume(t *testing.T) {
	// Подготовка
	service, publisherMock, clock := newTestTimerService(t)
	ctx := context.Background()
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	id, _, err := service.Create(ctx, "user-123", time.Hour)
	require.NoError(t, err)

	// Действие: полчаса отсчета, пауза, возобновление
	_, err = service.Start(ctx, id)
	require.NoError(t, err)
	*clock = clock.Add(30 * time.Minute)

	state, err := service.Pause(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, (30 * time.Minute).Milliseconds(), state.ElapsedMs)
	assert.False(t, state.IsRunning)

	// Пауза длилась два часа, накопленное время не изменилось
	*clock = clock.Add(2 * time.Hour)
	state, err = service.Start(ctx, id)
	require.NoError(t, err)
	assert.True(t, state.IsRunning)
	assert.Equal(t, (30 * time.Minute).Milliseconds(), state.ElapsedMs)
}

func TestTimerExpiry_PublishesAlertOnce(t *testing.T) {
	// Подготовка
	service, publisherMock, clock := newTestTimerService(t)
	ctx := context.Background()
	userID := "user-123"

	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event alert.Event) {
			assert.Equal(t, alert.KindTimerExpired, event.Kind)
			assert.Equal(t, userID, event.UserID)
		}).Return(nil).Times(1)

	id, _, err := service.Create(ctx, userID, time.Hour)
	require.NoError(t, err)
	_, err = service.Start(ctx, id)
	require.NoError(t, err)

	// Действие: отсчет истек, снимок снимается трижды
	*clock = clock.Add(2 * time.Hour)
	state, err := service.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, state.Alert)

	// Повторные снимки не дают второй тревоги
	_, err = service.Get(ctx, id)
	require.NoError(t, err)
	_, err = service.Pause(ctx, id)
	require.NoError(t, err)
}

func TestTimerReset_AllowsAlertAgain(t *testing.T) {
	// Подготовка: две тревоги за два запуска с сбросом между ними
	service, publisherMock, clock := newTestTimerService(t)
	ctx := context.Background()

	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	id, _, err := service.Create(ctx, "user-123", time.Hour)
	require.NoError(t, err)

	// Первый запуск до истечения
	_, err = service.Start(ctx, id)
	require.NoError(t, err)
	*clock = clock.Add(2 * time.Hour)
	state, err := service.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, state.Alert)

	// Сброс снимает тревогу и разрешает новую
	state, err = service.Reset(ctx, id)
	require.NoError(t, err)
	assert.False(t, state.Alert)

	// Второй запуск до истечения
	_, err = service.Start(ctx, id)
	require.NoError(t, err)
	*clock = clock.Add(2 * time.Hour)
	state, err = service.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, state.Alert)
}

func TestTimerSetDuration_RejectedWhileRunning(t *testing.T) {
	service, _, _ := newTestTimerService(t)
	ctx := context.Background()

	id, _, err := service.Create(ctx, "user-123", time.Hour)
	require.NoError(t, err)
	_, err = service.Start(ctx, id)
	require.NoError(t, err)

	_, err = service.SetDuration(ctx, id, 2*time.Hour)

	require.Error(t, err)
	assert.ErrorIs(t, err, timer.ErrRunning)
}

func TestTimerSetDuration_Idle(t *testing.T) {
	service, _, _ := newTestTimerService(t)
	ctx := context.Background()

	id, _, err := service.Create(ctx, "user-123", time.Hour)
	require.NoError(t, err)

	state, err := service.SetDuration(ctx, id, 2*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, (2 * time.Hour).Milliseconds(), state.TotalMs)
}
