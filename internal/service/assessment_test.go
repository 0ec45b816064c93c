package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/enviro_health_system/internal/geoip"
	geoip_mocks "github.com/shenikar/enviro_health_system/internal/geoip/mocks"
	"github.com/shenikar/enviro_health_system/internal/models"
	"github.com/shenikar/enviro_health_system/internal/scoring"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testCatalogCities() []models.City {
	return []models.City{
		{
			ID: "delhi", Name: "Delhi", State: "Delhi", AQI: 342,
			WaterQuality: models.WaterQualityPoor,
			Latitude:     28.6139, Longitude: 77.2090, Population: 32900000,
			RiskFactors: models.RiskFactors{AirPollution: 9, WaterContamination: 7, IndustrialActivity: 8},
		},
		{
			ID: "chandigarh", Name: "Chandigarh", State: "Chandigarh", AQI: 42,
			WaterQuality: models.WaterQualityGood,
			Latitude:     30.7333, Longitude: 76.7794, Population: 1160000,
			RiskFactors: models.RiskFactors{AirPollution: 2, WaterContamination: 2, IndustrialActivity: 3},
		},
	}
}

func testCatalogRisks() []models.HealthRisk {
	return []models.HealthRisk{
		{
			Disease: "Acute Respiratory Infection", ExposureType: models.ExposureAirOnly,
			DurationToRisk: "1–3 days", Severity: models.SeverityModerate,
			HealthyOnset: "3–5 days of continuous exposure", VulnerableOnset: "12–24 hours of exposure",
		},
		{
			Disease: "Asthma Exacerbation", ExposureType: models.ExposureAirOnly,
			DurationToRisk: "Hours to 2 days", Severity: models.SeveritySevere,
			HealthyOnset: "2–3 days in high AQI zones", VulnerableOnset: "4–6 hours in hazardous AQI",
		},
		{
			Disease: "Typhoid/Cholera", ExposureType: models.ExposureWaterOnly,
			DurationToRisk: "3–7 days", Severity: models.SeveritySevere,
			HealthyOnset: "5–7 days of exposure", VulnerableOnset: "2–3 days of exposure",
		},
		{
			Disease: "Premature Mortality", ExposureType: models.ExposureCombined,
			DurationToRisk: "Years", Severity: models.SeverityCritical,
			HealthyOnset: "3–5 years of chronic exposure", VulnerableOnset: "1–2 years of chronic exposure",
		},
	}
}

// newTestAssessmentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAssessmentService(t *testing.T) (*assessmentService, *geoip_mocks.MockLocator) {
	ctrl := gomock.NewController(t)
	locatorMock := geoip_mocks.NewMockLocator(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewAssessmentService(testCatalogCities(), testCatalogRisks(), locatorMock, logger)
	return service.(*assessmentService), locatorMock
}

func TestListCities_NoFilter(t *testing.T) {
	service, _ := newTestAssessmentService(t)

	cities := service.ListCities(context.Background(), "", 0)

	assert.Len(t, cities, 2)
	// Порядок справочника сохраняется
	assert.Equal(t, "delhi", cities[0].ID)
	assert.Equal(t, "chandigarh", cities[1].ID)
}

func TestListCities_Filters(t *testing.T) {
	service, _ := newTestAssessmentService(t)
	ctx := context.Background()

	byState := service.ListCities(ctx, "delhi", 0)
	require.Len(t, byState, 1)
	assert.Equal(t, "delhi", byState[0].ID)

	byAQI := service.ListCities(ctx, "", 100)
	require.Len(t, byAQI, 1)
	assert.Equal(t, "chandigarh", byAQI[0].ID)
}

func TestGetCity_NotFound(t *testing.T) {
	service, _ := newTestAssessmentService(t)

	_, err := service.GetCity(context.Background(), "atlantis")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestCityRisk_Delhi(t *testing.T) {
	service, _ := newTestAssessmentService(t)

	report, err := service.CityRisk(context.Background(), "delhi")

	require.NoError(t, err)
	assert.Equal(t, 7.8, report.RiskScore)
	assert.Equal(t, "Hazardous", report.AQILevel)
	assert.Equal(t, "Health alert: everyone may experience serious health effects", report.AQIDescription)
	assert.Equal(t, 8.0, report.WaterScore)
	assert.Equal(t, "delhi", report.City.ID)
}

func TestListHealthRisks_Filters(t *testing.T) {
	service, _ := newTestAssessmentService(t)
	ctx := context.Background()

	all := service.ListHealthRisks(ctx, RiskFilter{})
	assert.Len(t, all, 4)

	// Комбинированное воздействие попадает и под air, и под water
	air := service.ListHealthRisks(ctx, RiskFilter{Exposure: models.ExposureFilterAir})
	assert.Len(t, air, 3)

	water := service.ListHealthRisks(ctx, RiskFilter{Exposure: models.ExposureFilterWater})
	assert.Len(t, water, 2)

	severe := service.ListHealthRisks(ctx, RiskFilter{Severity: models.SeveritySevere})
	assert.Len(t, severe, 2)

	search := service.ListHealthRisks(ctx, RiskFilter{Search: "asthma"})
	require.Len(t, search, 1)
	assert.Equal(t, "Asthma Exacerbation", search[0].Disease)
}

func TestPredictTimeline_HealthyProfile(t *testing.T) {
	service, _ := newTestAssessmentService(t)

	predictions, err := service.PredictTimeline(context.Background(), "delhi", models.ProfileHealthy, models.ExposureFilterAir)

	require.NoError(t, err)
	require.Len(t, predictions, 3)

	// Балл Дели 7.8, множитель 1.56: 48 часов астмы сжимаются до 31,
	// 72 часа ОРЗ - до 46. Сортировка по возрастанию часов.
	assert.Equal(t, "Asthma Exacerbation", predictions[0].Condition)
	assert.Equal(t, 31, predictions[0].TimeToRisk)
	assert.Equal(t, "Consider medical consultation", predictions[0].Recommendation)

	assert.Equal(t, "Acute Respiratory Infection", predictions[1].Condition)
	assert.Equal(t, 46, predictions[1].TimeToRisk)
	assert.Equal(t, "Monitor symptoms closely", predictions[1].Recommendation)

	assert.Equal(t, "Premature Mortality", predictions[2].Condition)
	assert.Equal(t, "Continue monitoring and take preventive measures", predictions[2].Recommendation)
}

func TestPredictTimeline_VulnerableProfile(t *testing.T) {
	service, _ := newTestAssessmentService(t)

	predictions, err := service.PredictTimeline(context.Background(), "delhi", models.ProfileVulnerable, models.ExposureFilterAir)

	require.NoError(t, err)
	require.Len(t, predictions, 3)

	// 4 часа астмы у уязвимого сжимаются до 3: тяжелое состояние в
	// пределах суток требует немедленной помощи
	assert.Equal(t, "Asthma Exacerbation", predictions[0].Condition)
	assert.Equal(t, 3, predictions[0].TimeToRisk)
	assert.Equal(t, "Seek immediate medical attention", predictions[0].Recommendation)
}

func TestPredictTimeline_InvalidEnums(t *testing.T) {
	service, _ := newTestAssessmentService(t)
	ctx := context.Background()

	_, err := service.PredictTimeline(ctx, "delhi", "superhuman", models.ExposureFilterAir)
	require.Error(t, err)
	assert.ErrorIs(t, err, scoring.ErrInvalidEnum)

	_, err = service.PredictTimeline(ctx, "delhi", models.ProfileHealthy, "fire")
	require.Error(t, err)
	assert.ErrorIs(t, err, scoring.ErrInvalidEnum)
}

func TestPredictTimeline_CityNotFound(t *testing.T) {
	service, _ := newTestAssessmentService(t)

	_, err := service.PredictTimeline(context.Background(), "atlantis", models.ProfileHealthy, models.ExposureFilterBoth)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestDetectLocation_ClientCoordinates(t *testing.T) {
	service, locatorMock := newTestAssessmentService(t)
	lat, lng := 28.6139, 77.2090

	// GeoIP не вызывается, когда клиент передал координаты
	locatorMock.EXPECT().Locate(gomock.Any(), gomock.Any()).Times(0)

	detection, err := service.DetectLocation(context.Background(), &lat, &lng, "203.0.113.10")

	require.NoError(t, err)
	assert.Equal(t, "client", detection.Source)
	require.True(t, detection.Match.Matched)
	assert.Equal(t, "delhi", detection.Match.City.ID)
}

func TestDetectLocation_IPFallback(t *testing.T) {
	service, locatorMock := newTestAssessmentService(t)
	ctx := context.Background()
	clientIP := "203.0.113.10"

	locatorMock.EXPECT().
		Locate(ctx, clientIP).
		Return(&geoip.Location{Latitude: 30.7333, Longitude: 76.7794}, nil).
		Times(1)

	detection, err := service.DetectLocation(ctx, nil, nil, clientIP)

	require.NoError(t, err)
	assert.Equal(t, "ip", detection.Source)
	require.True(t, detection.Match.Matched)
	assert.Equal(t, "chandigarh", detection.Match.City.ID)
}

func TestDetectLocation_GeoIPError(t *testing.T) {
	service, locatorMock := newTestAssessmentService(t)
	ctx := context.Background()
	lookupError := errors.New("all geoip providers failed")

	locatorMock.EXPECT().
		Locate(ctx, gomock.Any()).
		Return(nil, lookupError).
		Times(1)

	_, err := service.DetectLocation(ctx, nil, nil, "203.0.113.10")

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not detect location")
}

func TestStats(t *testing.T) {
	service, _ := newTestAssessmentService(t)

	stats := service.Stats(context.Background())

	assert.Equal(t, 4, stats.TotalHealthRisks)
	assert.Equal(t, 3, stats.AirQualityRisks)
	assert.Equal(t, 2, stats.WaterQualityRisks)
	assert.Equal(t, 1, stats.CombinedRisks)
	assert.Equal(t, 1, stats.CriticalConditions)
	assert.Equal(t, 2, stats.TotalCities)
}
