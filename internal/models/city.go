package models

// WaterQuality - категория качества воды в городе
type WaterQuality string

const (
	WaterQualityGood     WaterQuality = "Good"
	WaterQualityModerate WaterQuality = "Moderate"
	WaterQualityPoor     WaterQuality = "Poor"
	WaterQualityVeryPoor WaterQuality = "Very Poor"
)

// RiskFactors - экспертные оценки факторов риска города по шкале 1-10
type RiskFactors struct {
	AirPollution       int `json:"air_pollution"`
	WaterContamination int `json:"water_contamination"`
	IndustrialActivity int `json:"industrial_activity"`
}

// City - запись статического справочника городов. Справочник загружается
// один раз при старте и после этого не изменяется.
type City struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	State        string       `json:"state"`
	AQI          int          `json:"aqi"`
	WaterQuality WaterQuality `json:"water_quality"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	Population   int          `json:"population"`
	RiskFactors  RiskFactors  `json:"risk_factors"`
}

// CityRiskReport - рассчитанная оценка риска для одного города
type CityRiskReport struct {
	City           *City   `json:"city"`
	RiskScore      float64 `json:"risk_score"`
	AQILevel       string  `json:"aqi_level"`
	AQIDescription string  `json:"aqi_description"`
	WaterScore     float64 `json:"water_score"`
}

// DatasetStats - сводка по справочнику рисков для дашборда
type DatasetStats struct {
	TotalHealthRisks   int `json:"total_health_risks"`
	AirQualityRisks    int `json:"air_quality_risks"`
	WaterQualityRisks  int `json:"water_quality_risks"`
	CombinedRisks      int `json:"combined_risks"`
	CriticalConditions int `json:"critical_conditions"`
	TotalCities        int `json:"total_cities"`
}
