package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shenikar/enviro_health_system/internal/geo"
	"github.com/shenikar/enviro_health_system/internal/geoip"
	"github.com/shenikar/enviro_health_system/internal/models"
	"github.com/shenikar/enviro_health_system/internal/scoring"
	"github.com/sirupsen/logrus"
)

// ErrCityNotFound возвращается при запросе города, которого нет в справочнике
var ErrCityNotFound = errors.New("city not found")

// RiskFilter - необязательные фильтры справочника болезней.
// Пустое поле означает отсутствие фильтра.
type RiskFilter struct {
	Exposure models.ExposureFilter
	Severity models.Severity
	Search   string
}

// LocationDetection - результат определения местоположения с привязкой
// к ближайшему городу
type LocationDetection struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Source    string    `json:"source"` // client или ip
	Match     geo.Match `json:"match"`
}

// AssessmentService определяет контракт для расчетов по статическим
// справочникам: оценки городов, предсказания рисков, поиск ближайшего города
type AssessmentService interface {
	ListCities(ctx context.Context, state string, maxAQI int) []models.City
	GetCity(ctx context.Context, id string) (*models.City, error)
	CityRisk(ctx context.Context, id string) (*models.CityRiskReport, error)
	ListHealthRisks(ctx context.Context, filter RiskFilter) []models.HealthRisk
	PredictTimeline(ctx context.Context, cityID string, profile models.HealthProfile, exposure models.ExposureFilter) ([]models.RiskPrediction, error)
	NearestCity(ctx context.Context, lat, lng float64) geo.Match
	DetectLocation(ctx context.Context, lat, lng *float64, clientIP string) (*LocationDetection, error)
	Stats(ctx context.Context) models.DatasetStats
}

type assessmentService struct {
	cities  []models.City
	byID    map[string]int
	risks   []models.HealthRisk
	locator geoip.Locator
	logger  *logrus.Logger
}

// NewAssessmentService принимает справочники, загруженные при старте.
// Слайсы после этого не изменяются, сервис безопасен для конкурентных
// запросов.
func NewAssessmentService(cities []models.City, risks []models.HealthRisk, locator geoip.Locator, logger *logrus.Logger) AssessmentService {
	byID := make(map[string]int, len(cities))
	for i := range cities {
		byID[cities[i].ID] = i
	}
	return &assessmentService{
		cities:  cities,
		byID:    byID,
		risks:   risks,
		locator: locator,
		logger:  logger,
	}
}

// ListCities возвращает города с необязательной фильтрацией по штату и AQI
func (s *assessmentService) ListCities(ctx context.Context, state string, maxAQI int) []models.City {
	result := make([]models.City, 0, len(s.cities))
	for _, city := range s.cities {
		if state != "" && !strings.EqualFold(city.State, state) {
			continue
		}
		if maxAQI > 0 && city.AQI > maxAQI {
			continue
		}
		result = append(result, city)
	}
	return result
}

// GetCity возвращает город по id
func (s *assessmentService) GetCity(ctx context.Context, id string) (*models.City, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("service: %w: %s", ErrCityNotFound, id)
	}
	city := s.cities[i]
	return &city, nil
}

// CityRisk считает интегральный балл риска и полосу AQI для города
func (s *assessmentService) CityRisk(ctx context.Context, id string) (*models.CityRiskReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "assessment",
		"method":  "CityRisk",
		"city_id": id,
	})

	city, err := s.GetCity(ctx, id)
	if err != nil {
		return nil, err
	}

	score, err := scoring.CityRiskScore(*city)
	if err != nil {
		log.WithError(err).Error("Failed to compute city risk score")
		return nil, fmt.Errorf("service: could not compute risk score: %w", err)
	}
	waterScore, err := scoring.WaterScore(city.WaterQuality)
	if err != nil {
		return nil, fmt.Errorf("service: could not compute water score: %w", err)
	}

	level := scoring.ClassifyAQI(city.AQI)
	return &models.CityRiskReport{
		City:           city,
		RiskScore:      score,
		AQILevel:       level.Level,
		AQIDescription: level.Description,
		WaterScore:     waterScore,
	}, nil
}

// ListHealthRisks возвращает справочник болезней с фильтрами дашборда
func (s *assessmentService) ListHealthRisks(ctx context.Context, filter RiskFilter) []models.HealthRisk {
	result := make([]models.HealthRisk, 0, len(s.risks))
	search := strings.ToLower(filter.Search)
	for _, risk := range s.risks {
		if filter.Exposure != "" && !risk.ExposureType.Matches(filter.Exposure) {
			continue
		}
		if filter.Severity != "" && risk.Severity != filter.Severity {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(risk.Disease), search) {
			continue
		}
		result = append(result, risk)
	}
	return result
}

// PredictTimeline строит таймлайн рисков для города: длительность до
// симптомов каждой болезни делится на множитель риска города и
// сортируется по возрастанию. Сортировка стабильная, при равных часах
// сохраняется порядок исходной таблицы.
func (s *assessmentService) PredictTimeline(ctx context.Context, cityID string, profile models.HealthProfile, exposure models.ExposureFilter) ([]models.RiskPrediction, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "assessment",
		"method":   "PredictTimeline",
		"city_id":  cityID,
		"profile":  profile,
		"exposure": exposure,
	})

	if profile != models.ProfileHealthy && profile != models.ProfileVulnerable {
		return nil, fmt.Errorf("service: %w: health profile %q", scoring.ErrInvalidEnum, profile)
	}
	if exposure != models.ExposureFilterAir && exposure != models.ExposureFilterWater && exposure != models.ExposureFilterBoth {
		return nil, fmt.Errorf("service: %w: exposure filter %q", scoring.ErrInvalidEnum, exposure)
	}

	city, err := s.GetCity(ctx, cityID)
	if err != nil {
		return nil, err
	}

	score, err := scoring.CityRiskScore(*city)
	if err != nil {
		log.WithError(err).Error("Failed to compute city risk score")
		return nil, fmt.Errorf("service: could not compute risk score: %w", err)
	}
	riskMultiplier := score / 5

	predictions := make([]models.RiskPrediction, 0, len(s.risks))
	for _, risk := range s.risks {
		if !risk.ExposureType.Matches(exposure) {
			continue
		}
		baseHours := scoring.ParseOnsetDuration(risk.OnsetFor(profile))
		adjusted := int(math.Round(float64(baseHours) / riskMultiplier))
		if adjusted < 1 {
			adjusted = 1
		}
		predictions = append(predictions, models.RiskPrediction{
			Condition:      risk.Disease,
			TimeToRisk:     adjusted,
			Severity:       risk.Severity,
			Recommendation: recommendationFor(risk.Severity, adjusted),
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].TimeToRisk < predictions[j].TimeToRisk
	})

	log.WithField("count", len(predictions)).Info("Risk timeline computed")
	return predictions, nil
}

// recommendationFor подбирает рекомендацию по фиксированной таблице порогов
func recommendationFor(severity models.Severity, hours int) string {
	if hours <= 24 && (severity == models.SeveritySevere || severity == models.SeverityCritical) {
		return "Seek immediate medical attention"
	}
	if hours <= 72 && severity == models.SeverityModerate {
		return "Monitor symptoms closely"
	}
	if hours <= 168 {
		return "Consider medical consultation"
	}
	return "Continue monitoring and take preventive measures"
}

// NearestCity ищет ближайший город справочника
func (s *assessmentService) NearestCity(ctx context.Context, lat, lng float64) geo.Match {
	return geo.NearestCity(lat, lng, s.cities)
}

// DetectLocation привязывает клиента к городу. Если координаты не
// переданы, делается одноразовый запасной запрос GeoIP по IP клиента.
func (s *assessmentService) DetectLocation(ctx context.Context, lat, lng *float64, clientIP string) (*LocationDetection, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "assessment",
		"method":  "DetectLocation",
	})

	if lat != nil && lng != nil {
		match := s.NearestCity(ctx, *lat, *lng)
		return &LocationDetection{Latitude: *lat, Longitude: *lng, Source: "client", Match: match}, nil
	}

	log.WithField("ip", clientIP).Info("No coordinates provided, falling back to IP geolocation")
	loc, err := s.locator.Locate(ctx, clientIP)
	if err != nil {
		log.WithError(err).Warn("IP geolocation failed")
		return nil, fmt.Errorf("service: could not detect location: %w", err)
	}

	match := s.NearestCity(ctx, loc.Latitude, loc.Longitude)
	return &LocationDetection{Latitude: loc.Latitude, Longitude: loc.Longitude, Source: "ip", Match: match}, nil
}

// Stats возвращает сводку по справочнику для карточек дашборда
func (s *assessmentService) Stats(ctx context.Context) models.DatasetStats {
	stats := models.DatasetStats{
		TotalHealthRisks: len(s.risks),
		TotalCities:      len(s.cities),
	}
	for _, risk := range s.risks {
		if risk.ExposureType.Matches(models.ExposureFilterAir) {
			stats.AirQualityRisks++
		}
		if risk.ExposureType.Matches(models.ExposureFilterWater) {
			stats.WaterQualityRisks++
		}
		if risk.ExposureType == models.ExposureCombined {
			stats.CombinedRisks++
		}
		if risk.Severity == models.SeverityCritical {
			stats.CriticalConditions++
		}
	}
	return stats
}
