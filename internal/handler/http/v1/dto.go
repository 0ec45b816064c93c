package v1

import (
	"time"

	"github.com/google/uuid"
)

// NearestCityRequest DTO для поиска ближайшего города по координатам
// @Description DTO для поиска ближайшего города по координатам
type NearestCityRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// DetectLocationRequest DTO для определения местоположения.
// Координаты необязательны: без них используется GeoIP по адресу клиента.
// @Description DTO для определения местоположения
type DetectLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// NearestCityResponse DTO для результата поиска ближайшего города
// @Description DTO для результата поиска ближайшего города
type NearestCityResponse struct {
	Matched    bool          `json:"matched"`
	DistanceKm float64       `json:"distance_km"`
	City       *CityResponse `json:"city,omitempty"`
}

// DetectLocationResponse DTO для результата определения местоположения
// @Description DTO для результата определения местоположения
type DetectLocationResponse struct {
	Latitude  float64             `json:"latitude"`
	Longitude float64             `json:"longitude"`
	Source    string              `json:"source"`
	Nearest   NearestCityResponse `json:"nearest"`
}

// CityResponse DTO для записи справочника городов
// @Description DTO для записи справочника городов
type CityResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	State        string  `json:"state"`
	AQI          int     `json:"aqi"`
	WaterQuality string  `json:"water_quality"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Population   int     `json:"population"`

	AirPollution       int `json:"air_pollution"`
	WaterContamination int `json:"water_contamination"`
	IndustrialActivity int `json:"industrial_activity"`
}

// CityRiskResponse DTO для оценки риска города
// @Description DTO для оценки риска города
type CityRiskResponse struct {
	City           CityResponse `json:"city"`
	RiskScore      float64      `json:"risk_score"`
	AQILevel       string       `json:"aqi_level"`
	AQIDescription string       `json:"aqi_description"`
	WaterScore     float64      `json:"water_score"`
}

// HealthRiskResponse DTO для записи справочника болезней
// @Description DTO для записи справочника болезней
type HealthRiskResponse struct {
	Disease         string `json:"disease"`
	ExposureType    string `json:"exposure_type"`
	DurationToRisk  string `json:"duration_to_risk"`
	Severity        string `json:"severity"`
	HealthyOnset    string `json:"healthy_onset"`
	VulnerableOnset string `json:"vulnerable_onset"`
}

// PredictionsRequest DTO для расчета таймлайна рисков
// @Description DTO для расчета таймлайна рисков
type PredictionsRequest struct {
	CityID        string `json:"city_id" validate:"required"`
	HealthProfile string `json:"health_profile" validate:"required,oneof=healthy vulnerable"`
	ExposureType  string `json:"exposure_type" validate:"required,oneof=air water both"`
}

// RiskPredictionResponse DTO для одного предсказания риска
// @Description DTO для одного предсказания риска
type RiskPredictionResponse struct {
	Condition       string `json:"condition"`
	TimeToRiskHours int    `json:"time_to_risk_hours"`
	Severity        string `json:"severity"`
	Recommendation  string `json:"recommendation"`
}

// QuestionnaireRequest DTO для анкеты уязвимости
// @Description DTO для анкеты уязвимости
type QuestionnaireRequest struct {
	UserID           string `json:"user_id" validate:"required"`
	AgeGroup         string `json:"age_group" validate:"required,oneof='Under 18' '18-35' '36-50' '51-65' 'Over 65'"`
	HealthCondition  string `json:"health_condition" validate:"required,oneof=none respiratory cardiovascular diabetes immune multiple"`
	PregnancyStatus  string `json:"pregnancy_status" validate:"required,oneof=no pregnant breastfeeding no_answer"`
	SmokingStatus    string `json:"smoking_status" validate:"required,oneof=never former current secondhand"`
	LocationExposure string `json:"location_exposure"`
}

// QuestionnaireResponse DTO для итога анкеты
// @Description DTO для итога анкеты
type QuestionnaireResponse struct {
	Score              int             `json:"score"`
	VulnerabilityLevel string          `json:"vulnerability_level"`
	Factors            []string        `json:"factors"`
	Profile            ProfileResponse `json:"profile"`
}

// ProfileResponse DTO для профиля пользователя
// @Description DTO для профиля пользователя
type ProfileResponse struct {
	ID                 string    `json:"id"`
	AgeGroup           string    `json:"age_group"`
	HealthConditions   []string  `json:"health_conditions"`
	VulnerabilityLevel string    `json:"vulnerability_level"`
	CreatedAt          time.Time `json:"created_at"`
	LastUpdated        time.Time `json:"last_updated"`
}

// ExposureRequest DTO для записи в журнал воздействий
// @Description DTO для записи в журнал воздействий
type ExposureRequest struct {
	UserID        string   `json:"user_id" validate:"required"`
	Location      string   `json:"location" validate:"required"`
	ExposureType  string   `json:"exposure_type" validate:"required,oneof=air water both"`
	DurationHours float64  `json:"duration_hours" validate:"required,gt=0"`
	AQI           *int     `json:"aqi" validate:"omitempty,gte=0"`
	Symptoms      []string `json:"symptoms"`
	Notes         string   `json:"notes"`
}

// ExposureResponse DTO для записи журнала воздействий
// @Description DTO для записи журнала воздействий
type ExposureResponse struct {
	ID            uuid.UUID `json:"id"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
	ExposureType  string    `json:"exposure_type"`
	DurationHours float64   `json:"duration_hours"`
	AQI           *int      `json:"aqi,omitempty"`
	Symptoms      []string  `json:"symptoms,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

// CreateTimerRequest DTO для создания сессии таймера
// @Description DTO для создания сессии таймера
type CreateTimerRequest struct {
	UserID        string  `json:"user_id" validate:"required"`
	DurationHours float64 `json:"duration_hours" validate:"required,gt=0"`
}

// TimerDurationRequest DTO для изменения длительности таймера
// @Description DTO для изменения длительности таймера
type TimerDurationRequest struct {
	DurationHours float64 `json:"duration_hours" validate:"required,gt=0"`
}

// TimerResponse DTO для снимка сессии таймера
// @Description DTO для снимка сессии таймера
type TimerResponse struct {
	ID              uuid.UUID `json:"id"`
	ElapsedMs       int64     `json:"elapsed_ms"`
	RemainingMs     int64     `json:"remaining_ms"`
	TotalMs         int64     `json:"total_ms"`
	IsRunning       bool      `json:"is_running"`
	Alert           bool      `json:"alert"`
	ProgressPercent float64   `json:"progress_percent"`
}

// StatsResponse DTO для сводки по справочникам
// @Description DTO для сводки по справочникам
type StatsResponse struct {
	TotalHealthRisks   int `json:"total_health_risks"`
	AirQualityRisks    int `json:"air_quality_risks"`
	WaterQualityRisks  int `json:"water_quality_risks"`
	CombinedRisks      int `json:"combined_risks"`
	CriticalConditions int `json:"critical_conditions"`
	TotalCities        int `json:"total_cities"`
}
