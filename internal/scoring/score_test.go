package scoring

import (
	"testing"

	"github.com/shenikar/enviro_health_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaterScore(t *testing.T) {
	cases := []struct {
		quality  models.WaterQuality
		expected float64
	}{
		{models.WaterQualityGood, 2},
		{models.WaterQualityModerate, 5},
		{models.WaterQualityPoor, 8},
		{models.WaterQualityVeryPoor, 10},
	}
	for _, tc := range cases {
		score, err := WaterScore(tc.quality)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, score, "water quality %q", tc.quality)
	}
}

func TestWaterScore_InvalidEnum(t *testing.T) {
	_, err := WaterScore("Excellent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestCityRiskScore_Delhi(t *testing.T) {
	// Подготовка: Дели из справочника
	city := models.City{
		ID:           "delhi",
		AQI:          342,
		WaterQuality: models.WaterQualityPoor,
		RiskFactors: models.RiskFactors{
			AirPollution:       9,
			WaterContamination: 7,
			IndustrialActivity: 8,
		},
	}

	score, err := CityRiskScore(city)

	require.NoError(t, err)
	// (6.84 + 8 + 9 + 7 + 8) / 5 = 7.768, округление до 7.8
	assert.Equal(t, 7.8, score)
}

func TestCityRiskScore_AQICappedAtTen(t *testing.T) {
	// AQI 600 дает вклад ровно 10, а не 12
	city := models.City{
		AQI:          600,
		WaterQuality: models.WaterQualityVeryPoor,
		RiskFactors: models.RiskFactors{
			AirPollution:       10,
			WaterContamination: 10,
			IndustrialActivity: 10,
		},
	}

	score, err := CityRiskScore(city)

	require.NoError(t, err)
	// (10 + 10 + 10 + 10 + 10) / 5 = 10.0 - максимум шкалы
	assert.Equal(t, 10.0, score)
}

func TestCityRiskScore_Minimum(t *testing.T) {
	city := models.City{
		AQI:          0,
		WaterQuality: models.WaterQualityGood,
		RiskFactors: models.RiskFactors{
			AirPollution:       0,
			WaterContamination: 0,
			IndustrialActivity: 0,
		},
	}

	score, err := CityRiskScore(city)

	require.NoError(t, err)
	assert.Equal(t, 0.4, score)
}

func TestCityRiskScore_InvalidWaterQuality(t *testing.T) {
	city := models.City{
		AQI:          100,
		WaterQuality: "Unknown",
	}

	_, err := CityRiskScore(city)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestClassifyAQI_Bands(t *testing.T) {
	// Границы полос включительны: 50 еще Good, 51 уже Moderate
	cases := []struct {
		aqi   int
		level string
	}{
		{0, "Good"},
		{50, "Good"},
		{51, "Moderate"},
		{100, "Moderate"},
		{101, "Unhealthy for Sensitive Groups"},
		{150, "Unhealthy for Sensitive Groups"},
		{151, "Unhealthy"},
		{200, "Unhealthy"},
		{201, "Very Unhealthy"},
		{300, "Very Unhealthy"},
		{301, "Hazardous"},
		{999, "Hazardous"},
	}
	for _, tc := range cases {
		got := ClassifyAQI(tc.aqi)
		assert.Equal(t, tc.level, got.Level, "AQI %d", tc.aqi)
	}
}

func TestClassifyAQI_Descriptions(t *testing.T) {
	assert.Equal(t, "Air quality is satisfactory", ClassifyAQI(42).Description)
	assert.Equal(t, "Health alert: everyone may experience serious health effects", ClassifyAQI(342).Description)
}
