package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/shenikar/enviro_health_system/internal/models"
)

// ErrInvalidEnum возвращается, когда в расчет попадает значение вне
// закрытого перечня. Молчаливых значений по умолчанию здесь нет.
var ErrInvalidEnum = errors.New("invalid enum value")

var waterScores = map[models.WaterQuality]float64{
	models.WaterQualityGood:     2,
	models.WaterQualityModerate: 5,
	models.WaterQualityPoor:     8,
	models.WaterQualityVeryPoor: 10,
}

// WaterScore переводит категорию качества воды в балл для расчета риска
func WaterScore(q models.WaterQuality) (float64, error) {
	score, ok := waterScores[q]
	if !ok {
		return 0, fmt.Errorf("%w: water quality %q", ErrInvalidEnum, q)
	}
	return score, nil
}

// CityRiskScore считает интегральный балл риска города с округлением
// до одного знака. AQI нормализуется к 10-балльной шкале делением на 50
// с отсечкой сверху.
func CityRiskScore(city models.City) (float64, error) {
	aqiScore := math.Min(float64(city.AQI)/50, 10)

	waterScore, err := WaterScore(city.WaterQuality)
	if err != nil {
		return 0, err
	}

	rf := city.RiskFactors
	total := aqiScore + waterScore + float64(rf.AirPollution) + float64(rf.WaterContamination) + float64(rf.IndustrialActivity)
	return math.Round(total/5*10) / 10, nil
}

// AQILevel - полоса индекса качества воздуха с подписью для отображения
type AQILevel struct {
	Level       string `json:"level"`
	Description string `json:"description"`
}

// aqiBands - верхние границы полос AQI, включительно.
// Последняя полоса открыта сверху.
var aqiBands = []struct {
	max   int
	level AQILevel
}{
	{50, AQILevel{"Good", "Air quality is satisfactory"}},
	{100, AQILevel{"Moderate", "Air quality is acceptable for most people"}},
	{150, AQILevel{"Unhealthy for Sensitive Groups", "Members of sensitive groups may experience health effects"}},
	{200, AQILevel{"Unhealthy", "Everyone may begin to experience health effects"}},
	{300, AQILevel{"Very Unhealthy", "Health warnings of emergency conditions"}},
}

var aqiHazardous = AQILevel{"Hazardous", "Health alert: everyone may experience serious health effects"}

// ClassifyAQI относит значение AQI к одной из шести полос
func ClassifyAQI(aqi int) AQILevel {
	for _, band := range aqiBands {
		if aqi <= band.max {
			return band.level
		}
	}
	return aqiHazardous
}
