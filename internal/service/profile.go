package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/enviro_health_system/internal/alert"
	"github.com/shenikar/enviro_health_system/internal/models"
	"github.com/shenikar/enviro_health_system/internal/scoring"
	"github.com/sirupsen/logrus"
)

var (
	// ErrKeyNotFound возвращается хранилищем при отсутствии ключа
	ErrKeyNotFound = errors.New("key not found")
	// ErrNoProfile возвращается, когда у пользователя нет сохраненного профиля
	ErrNoProfile = errors.New("profile not found")
)

const (
	profileKeyPrefix = "healthProfile:"
	historyKeyPrefix = "exposureHistory:"
)

// KVStore определяет контракт для key-value хранилища профилей и журнала
// воздействий. Логика ядра зависит только от этого интерфейса, а не от
// конкретного механизма хранения.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// QuestionnaireReport - итог анкеты вместе с сохраненным профилем
type QuestionnaireReport struct {
	Score   int                       `json:"score"`
	Level   models.VulnerabilityLevel `json:"vulnerability_level"`
	Factors []string                  `json:"factors"`
	Profile *models.UserProfile       `json:"profile"`
}

// ProfileService определяет контракт для профиля пользователя и журнала
// воздействий
type ProfileService interface {
	SubmitQuestionnaire(ctx context.Context, userID string, answers scoring.QuestionnaireAnswers) (*QuestionnaireReport, error)
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	AddExposure(ctx context.Context, userID string, activity *models.ExposureActivity) error
	GetHistory(ctx context.Context, userID string) ([]models.ExposureActivity, error)
	Reset(ctx context.Context, userID string) error
}

type profileService struct {
	store     KVStore
	publisher alert.Publisher
	logger    *logrus.Logger
	now       func() time.Time
}

// NewProfileService создает сервис профилей поверх key-value хранилища
func NewProfileService(store KVStore, publisher alert.Publisher, logger *logrus.Logger) ProfileService {
	return &profileService{
		store:     store,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitQuestionnaire считает балл уязвимости и перезаписывает профиль
// целиком. Идентификатор профиля выводится из userID, поэтому повторная
// отправка тех же ответов дает идентичную сохраненную запись. На
// критический уровень публикуется событие тревоги.
func (s *profileService) SubmitQuestionnaire(ctx context.Context, userID string, answers scoring.QuestionnaireAnswers) (*QuestionnaireReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "SubmitQuestionnaire",
		"user_id": userID,
	})
	log.Info("Scoring vulnerability questionnaire")

	result, err := scoring.ScoreQuestionnaire(answers)
	if err != nil {
		log.WithError(err).Warn("Questionnaire contains invalid answers")
		return nil, fmt.Errorf("service: could not score questionnaire: %w", err)
	}

	now := s.now().UTC()
	profile := &models.UserProfile{
		ID:                 userID,
		AgeGroup:           answers.AgeGroup,
		HealthConditions:   result.HealthConditions,
		VulnerabilityLevel: result.Level,
		CreatedAt:          now,
		LastUpdated:        now,
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("service: could not marshal profile: %w", err)
	}
	if err := s.store.Put(ctx, profileKeyPrefix+userID, string(payload)); err != nil {
		log.WithError(err).Error("Failed to save profile to store")
		return nil, fmt.Errorf("service: could not save profile: %w", err)
	}

	if result.Level == models.VulnerabilityCritical {
		event := alert.Event{
			UserID:             userID,
			Kind:               alert.KindCriticalAssessment,
			Message:            "Questionnaire assessment reached critical vulnerability level",
			VulnerabilityLevel: result.Level,
			Score:              result.Score,
			Timestamp:          now,
		}
		// Недоставленная тревога не отменяет сохраненный профиль
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish critical assessment alert")
		}
	}

	log.WithFields(logrus.Fields{"score": result.Score, "level": result.Level}).Info("Profile saved")
	return &QuestionnaireReport{
		Score:   result.Score,
		Level:   result.Level,
		Factors: result.Factors,
		Profile: profile,
	}, nil
}

// GetProfile читает сохраненный профиль. Испорченный JSON логируется и
// трактуется как отсутствие профиля, а не как фатальная ошибка.
func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "GetProfile",
		"user_id": userID,
	})

	raw, err := s.store.Get(ctx, profileKeyPrefix+userID)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, fmt.Errorf("service: %w", ErrNoProfile)
		}
		log.WithError(err).Error("Failed to read profile from store")
		return nil, fmt.Errorf("service: could not read profile: %w", err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		log.WithError(err).Warn("Stored profile is malformed, treating as absent")
		return nil, fmt.Errorf("service: %w", ErrNoProfile)
	}
	return &profile, nil
}

// AddExposure дописывает запись в журнал воздействий. Журнал только
// растет, существующие записи не изменяются.
func (s *profileService) AddExposure(ctx context.Context, userID string, activity *models.ExposureActivity) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "AddExposure",
		"user_id": userID,
	})

	history, err := s.GetHistory(ctx, userID)
	if err != nil {
		return err
	}

	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	if activity.Date.IsZero() {
		activity.Date = s.now().UTC()
	}
	history = append(history, *activity)

	payload, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("service: could not marshal exposure history: %w", err)
	}
	if err := s.store.Put(ctx, historyKeyPrefix+userID, string(payload)); err != nil {
		log.WithError(err).Error("Failed to save exposure history to store")
		return fmt.Errorf("service: could not save exposure history: %w", err)
	}

	log.WithField("count", len(history)).Info("Exposure activity recorded")
	return nil
}

// GetHistory читает журнал воздействий. Отсутствие ключа и испорченный
// JSON дают пустой журнал.
func (s *profileService) GetHistory(ctx context.Context, userID string) ([]models.ExposureActivity, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "GetHistory",
		"user_id": userID,
	})

	raw, err := s.store.Get(ctx, historyKeyPrefix+userID)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []models.ExposureActivity{}, nil
		}
		log.WithError(err).Error("Failed to read exposure history from store")
		return nil, fmt.Errorf("service: could not read exposure history: %w", err)
	}

	var history []models.ExposureActivity
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		log.WithError(err).Warn("Stored exposure history is malformed, treating as empty")
		return []models.ExposureActivity{}, nil
	}
	return history, nil
}

// Reset целиком удаляет профиль и журнал воздействий
func (s *profileService) Reset(ctx context.Context, userID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "Reset",
		"user_id": userID,
	})

	if err := s.store.Delete(ctx, profileKeyPrefix+userID, historyKeyPrefix+userID); err != nil {
		log.WithError(err).Error("Failed to delete profile data from store")
		return fmt.Errorf("service: could not reset profile: %w", err)
	}
	log.Info("Profile and exposure history removed")
	return nil
}
