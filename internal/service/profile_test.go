package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/enviro_health_system/internal/alert"
	alert_mocks "github.com/shenikar/enviro_health_system/internal/alert/mocks"
	"github.com/shenikar/enviro_health_system/internal/models"
	"github.com/shenikar/enviro_health_system/internal/scoring"
	"github.com/shenikar/enviro_health_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestProfileService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestProfileService(t *testing.T) (*profileService, *mocks.MockKVStore, *alert_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockKVStore(ctrl)
	publisherMock := alert_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewProfileService(storeMock, publisherMock, logger)
	return service.(*profileService), storeMock, publisherMock
}

func lowRiskAnswers() scoring.QuestionnaireAnswers {
	return scoring.QuestionnaireAnswers{
		AgeGroup:        models.Age18To35,
		HealthCondition: models.ConditionNone,
		Pregnancy:       models.PregnancyNo,
		Smoking:         models.SmokingNever,
	}
}

func criticalAnswers() scoring.QuestionnaireAnswers {
	return scoring.QuestionnaireAnswers{
		AgeGroup:         models.AgeOver65,
		HealthCondition:  models.ConditionMultiple,
		Pregnancy:        models.PregnancyNo,
		Smoking:          models.SmokingCurrent,
		LocationExposure: "I live in Delhi and commute daily",
	}
}

func TestSubmitQuestionnaire_LowRisk(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestProfileService(t)
	ctx := context.Background()
	userID := "user-123"

	// Ожидания
	storeMock.EXPECT().
		Put(ctx, "healthProfile:"+userID, gomock.Any()).
		Do(func(_ context.Context, _ string, value string) {
			var profile models.UserProfile
			require.NoError(t, json.Unmarshal([]byte(value), &profile))
			assert.Equal(t, userID, profile.ID)
			assert.Equal(t, models.VulnerabilityLow, profile.VulnerabilityLevel)
		}).Return(nil).Times(1)

	// Тревога на низком уровне не публикуется
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	report, err := service.SubmitQuestionnaire(ctx, userID, lowRiskAnswers())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, report.Score)
	assert.Equal(t, models.VulnerabilityLow, report.Level)
	assert.Equal(t, userID, report.Profile.ID)
}

func TestSubmitQuestionnaire_CriticalPublishesAlert(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestProfileService(t)
	ctx := context.Background()
	userID := "user-456"

	// Ожидания
	storeMock.EXPECT().Put(ctx, "healthProfile:"+userID, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event alert.Event) {
			assert.Equal(t, alert.KindCriticalAssessment, event.Kind)
			assert.Equal(t, userID, event.UserID)
			assert.Equal(t, models.VulnerabilityCritical, event.VulnerabilityLevel)
		}).Return(nil).Times(1)

	// Действие
	report, err := service.SubmitQuestionnaire(ctx, userID, criticalAnswers())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.VulnerabilityCritical, report.Level)
}

func TestSubmitQuestionnaire_PublishFailureIsNotFatal(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestProfileService(t)
	ctx := context.Background()
	userID := "user-789"

	// Ожидания: профиль сохранен, публикация тревоги падает
	storeMock.EXPECT().Put(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	// Действие
	report, err := service.SubmitQuestionnaire(ctx, userID, criticalAnswers())

	// Проверки: недоставленная тревога не отменяет результат
	require.NoError(t, err)
	assert.Equal(t, models.VulnerabilityCritical, report.Level)
}

func TestSubmitQuestionnaire_Idempotent(t *testing.T) {
	// Подготовка: фиксируем часы, чтобы повторная отправка дала
	// байт-в-байт идентичную запись
	service, storeMock, _ := newTestProfileService(t)
	ctx := context.Background()
	userID := "user-123"
	fixedNow := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixedNow }

	var savedPayloads []string
	storeMock.EXPECT().
		Put(ctx, "healthProfile:"+userID, gomock.Any()).
		Do(func(_ context.Context, _ string, value string) {
			savedPayloads = append(savedPayloads, value)
		}).Return(nil).Times(2)

	// Действие: одни и те же ответы дважды
	_, err := service.SubmitQuestionnaire(ctx, userID, lowRiskAnswers())
	require.NoError(t, err)
	_, err = service.SubmitQuestionnaire(ctx, userID, lowRiskAnswers())
	require.NoError(t, err)

	// Проверки
	require.Len(t, savedPayloads, 2)
	assert.Equal(t, savedPayloads[0], savedPayloads[1])
}

func TestSubmitQuestionnaire_InvalidAnswers(t *testing.T) {
	service, storeMock, publisherMock := newTestProfileService(t)
	answers := lowRiskAnswers()
	answers.AgeGroup = "0-100"

	// Хранилище не трогаем
	storeMock.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.SubmitQuestionnaire(context.Background(), "user-123", answers)

	require.Error(t, err)
	assert.ErrorIs(t, err, scoring.ErrInvalidEnum)
}

func TestGetProfile_Success(t *testing.T) {
	service, storeMock, _ := newTestProfileService(t)
	ctx := context.Background()
	userID := "user-123"
	stored := models.UserProfile{
		ID:                 userID,
		AgeGroup:           models.Age18To35,
		VulnerabilityLevel: models.VulnerabilityLow,
	}
	payload, _ := json.Marshal(stored)

	storeMock.EXPECT().Get(ctx, "healthProfile:"+userID).Return(string(payload), nil).Times(1)

	profile, err := service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, profile.ID)
	assert.Equal(t, stored.VulnerabilityLevel, profile.VulnerabilityLevel)
}

func TestGetProfile_NotFound(t *testing.T) {
	service, storeMock, _ := newTestProfileService(t)
	ctx := context.Background()

	storeMock.EXPECT().Get(ctx, gomock.Any()).Return("", ErrKeyNotFound).Times(1)

	_, err := service.GetProfile(ctx, "user-123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestGetProfile_MalformedJSON(t *testing.T) {
	service, storeMock, _ := newTestProfileService(t)
	ctx := context.Background()

	storeMock.EXPECT().Get(ctx, gomock.Any()).Return("{broken", nil).Times(1)

	// Испорченная запись трактуется как отсутствие профиля
	_, err := service.GetProfile(ctx, "user-123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestAddExposure_AppendsToHistory(t *testing.T) {
	// Подготовка
	service, storeMock, _ := newTestProfileService(t)
	ctx := context.Background()
	userID := "user-123"
	existing := []models.ExposureActivity{
		{ID: uuid.New(), Location: "Delhi", ExposureType: models.ExposureFilterAir, Duration: 2},
	}
	payload, _ := json.Marshal(existing)

	storeMock.EXPECT().Get(ctx, "exposureHistory:"+userID).Return(string(payload), nil).Times(1)
	storeMock.EXPECT().
		Put(ctx, "exposureHistory:"+userID, gomock.Any()).
		Do(func(_ context.Context, _ string, value string) {
			var history []models.ExposureActivity
			require.NoError(t, json.Unmarshal([]byte(value), &history))
			// Существующая запись на месте, новая дописана в конец
			require.Len(t, history, 2)
			assert.Equal(t, existing[0].ID, history[0].ID)
			assert.Equal(t, "Kanpur", history[1].Location)
			assert.NotEqual(t, uuid.Nil, history[1].ID)
			assert.False(t, history[1].Date.IsZero())
		}).Return(nil).Times(1)

	// Действие
	activity := &models.ExposureActivity{
		Location:     "Kanpur",
		ExposureType: models.ExposureFilterBoth,
		Duration:     5,
	}
	err := service.AddExposure(ctx, userID, activity)

	// Проверки
	require.NoError(t, err)
}

func TestGetHistory_AbsentKeyGivesEmptyLog(t *testing.T) {
	service, storeMock, _ := newTestProfileService(t)
	ctx := context.Background()

	storeMock.EXPECT().Get(ctx, gomock.Any()).Return("", ErrKeyNotFound).Times(1)

	history, err := service.GetHistory(ctx, "user-123")

	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestGetHistory_MalformedJSONGivesEmptyLog(t *testing.T) {
	service, storeMock, _ := newTestProfileService(t)
	ctx := context.Background()

	storeMock.EXPECT().Get(ctx, gomock.Any()).Return("[broken", nil).Times(1)

	history, err := service.GetHistory(ctx, "user-123")

	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestReset_DeletesProfileAndHistory(t *testing.T) {
	service, storeMock, _ := newTestProfileService(t)
	ctx := context.Background()
	userID := "user-123"

	storeMock.EXPECT().
		Delete(ctx, "healthProfile:"+userID, "exposureHistory:"+userID).
		Return(nil).
		Times(1)

	err := service.Reset(ctx, userID)

	require.NoError(t, err)
}

func TestReset_StoreError(t *testing.T) {
	service, storeMock, _ := newTestProfileService(t)
	ctx := context.Background()

	storeMock.EXPECT().Delete(ctx, gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	err := service.Reset(ctx, "user-123")

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not reset profile")
}
