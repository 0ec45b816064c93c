package models

import (
	"time"

	"github.com/google/uuid"
)

// VulnerabilityLevel - итоговый уровень уязвимости по анкете
type VulnerabilityLevel string

const (
	VulnerabilityLow      VulnerabilityLevel = "low"
	VulnerabilityModerate VulnerabilityLevel = "moderate"
	VulnerabilityHigh     VulnerabilityLevel = "high"
	VulnerabilityCritical VulnerabilityLevel = "critical"
)

// AgeGroup - возрастная группа из анкеты, закрытый перечень
type AgeGroup string

const (
	AgeUnder18 AgeGroup = "Under 18"
	Age18To35  AgeGroup = "18-35"
	Age36To50  AgeGroup = "36-50"
	Age51To65  AgeGroup = "51-65"
	AgeOver65  AgeGroup = "Over 65"
)

// HealthCondition - категория хронических заболеваний из анкеты
type HealthCondition string

const (
	ConditionNone           HealthCondition = "none"
	ConditionRespiratory    HealthCondition = "respiratory"
	ConditionCardiovascular HealthCondition = "cardiovascular"
	ConditionDiabetes       HealthCondition = "diabetes"
	ConditionImmune         HealthCondition = "immune"
	ConditionMultiple       HealthCondition = "multiple"
)

// PregnancyStatus - статус беременности/грудного вскармливания
type PregnancyStatus string

const (
	PregnancyNo            PregnancyStatus = "no"
	PregnancyPregnant      PregnancyStatus = "pregnant"
	PregnancyBreastfeeding PregnancyStatus = "breastfeeding"
	PregnancyNoAnswer      PregnancyStatus = "no_answer"
)

// SmokingStatus - статус курения
type SmokingStatus string

const (
	SmokingNever      SmokingStatus = "never"
	SmokingFormer     SmokingStatus = "former"
	SmokingCurrent    SmokingStatus = "current"
	SmokingSecondhand SmokingStatus = "secondhand"
)

// UserProfile - профиль пользователя, создается по завершенной анкете.
// При повторном прохождении перезаписывается целиком, удаляется только
// при явном сбросе.
type UserProfile struct {
	ID                 string             `json:"id"`
	AgeGroup           AgeGroup           `json:"age_group"`
	HealthConditions   []HealthCondition  `json:"health_conditions"`
	VulnerabilityLevel VulnerabilityLevel `json:"vulnerability_level"`
	CreatedAt          time.Time          `json:"created_at"`
	LastUpdated        time.Time          `json:"last_updated"`
}

// ExposureActivity - одна запись журнала воздействий. Журнал только
// дополняется, записи не изменяются, удаление - только полным сбросом
// вместе с профилем.
type ExposureActivity struct {
	ID           uuid.UUID      `json:"id"`
	Date         time.Time      `json:"date"`
	Location     string         `json:"location"`
	ExposureType ExposureFilter `json:"exposure_type"`
	Duration     float64        `json:"duration_hours"`
	AQI          *int           `json:"aqi,omitempty"`
	Symptoms     []string       `json:"symptoms,omitempty"`
	Notes        string         `json:"notes,omitempty"`
}
