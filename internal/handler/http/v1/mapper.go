package v1

import (
	"github.com/google/uuid"
	"github.com/shenikar/enviro_health_system/internal/geo"
	"github.com/shenikar/enviro_health_system/internal/models"
	"github.com/shenikar/enviro_health_system/internal/service"
	"github.com/shenikar/enviro_health_system/internal/timer"
)

// ModelToCityResponse преобразует доменную модель города в DTO для ответа
func ModelToCityResponse(city *models.City) *CityResponse {
	return &CityResponse{
		ID:                 city.ID,
		Name:               city.Name,
		State:              city.State,
		AQI:                city.AQI,
		WaterQuality:       string(city.WaterQuality),
		Latitude:           city.Latitude,
		Longitude:          city.Longitude,
		Population:         city.Population,
		AirPollution:       city.RiskFactors.AirPollution,
		WaterContamination: city.RiskFactors.WaterContamination,
		IndustrialActivity: city.RiskFactors.IndustrialActivity,
	}
}

// ModelsToCityResponses преобразует слайс моделей в слайс DTO
func ModelsToCityResponses(cities []models.City) []*CityResponse {
	responses := make([]*CityResponse, len(cities))
	for i := range cities {
		responses[i] = ModelToCityResponse(&cities[i])
	}
	return responses
}

// ModelToCityRiskResponse преобразует оценку риска города в DTO
func ModelToCityRiskResponse(report *models.CityRiskReport) *CityRiskResponse {
	return &CityRiskResponse{
		City:           *ModelToCityResponse(report.City),
		RiskScore:      report.RiskScore,
		AQILevel:       report.AQILevel,
		AQIDescription: report.AQIDescription,
		WaterScore:     report.WaterScore,
	}
}

// ModelsToHealthRiskResponses преобразует справочник болезней в DTO
func ModelsToHealthRiskResponses(risks []models.HealthRisk) []*HealthRiskResponse {
	responses := make([]*HealthRiskResponse, len(risks))
	for i, risk := range risks {
		responses[i] = &HealthRiskResponse{
			Disease:         risk.Disease,
			ExposureType:    string(risk.ExposureType),
			DurationToRisk:  risk.DurationToRisk,
			Severity:        string(risk.Severity),
			HealthyOnset:    risk.HealthyOnset,
			VulnerableOnset: risk.VulnerableOnset,
		}
	}
	return responses
}

// ModelsToPredictionResponses преобразует предсказания рисков в DTO
func ModelsToPredictionResponses(predictions []models.RiskPrediction) []*RiskPredictionResponse {
	responses := make([]*RiskPredictionResponse, len(predictions))
	for i, p := range predictions {
		responses[i] = &RiskPredictionResponse{
			Condition:       p.Condition,
			TimeToRiskHours: p.TimeToRisk,
			Severity:        string(p.Severity),
			Recommendation:  p.Recommendation,
		}
	}
	return responses
}

// MatchToNearestCityResponse преобразует результат поиска ближайшего
// города в DTO. Расстояние возвращается и без совпадения.
func MatchToNearestCityResponse(match geo.Match) NearestCityResponse {
	resp := NearestCityResponse{
		Matched:    match.Matched,
		DistanceKm: match.DistanceKm,
	}
	if match.City != nil {
		resp.City = ModelToCityResponse(match.City)
	}
	return resp
}

// ModelToProfileResponse преобразует профиль пользователя в DTO
func ModelToProfileResponse(profile *models.UserProfile) ProfileResponse {
	conditions := make([]string, len(profile.HealthConditions))
	for i, c := range profile.HealthConditions {
		conditions[i] = string(c)
	}
	return ProfileResponse{
		ID:                 profile.ID,
		AgeGroup:           string(profile.AgeGroup),
		HealthConditions:   conditions,
		VulnerabilityLevel: string(profile.VulnerabilityLevel),
		CreatedAt:          profile.CreatedAt,
		LastUpdated:        profile.LastUpdated,
	}
}

// ReportToQuestionnaireResponse преобразует итог анкеты в DTO
func ReportToQuestionnaireResponse(report *service.QuestionnaireReport) QuestionnaireResponse {
	return QuestionnaireResponse{
		Score:              report.Score,
		VulnerabilityLevel: string(report.Level),
		Factors:            report.Factors,
		Profile:            ModelToProfileResponse(report.Profile),
	}
}

// ModelsToExposureResponses преобразует журнал воздействий в DTO
func ModelsToExposureResponses(history []models.ExposureActivity) []*ExposureResponse {
	responses := make([]*ExposureResponse, len(history))
	for i, a := range history {
		responses[i] = &ExposureResponse{
			ID:            a.ID,
			Date:          a.Date,
			Location:      a.Location,
			ExposureType:  string(a.ExposureType),
			DurationHours: a.Duration,
			AQI:           a.AQI,
			Symptoms:      a.Symptoms,
			Notes:         a.Notes,
		}
	}
	return responses
}

// StateToTimerResponse преобразует снимок таймера в DTO
func StateToTimerResponse(id uuid.UUID, state timer.State) TimerResponse {
	return TimerResponse{
		ID:              id,
		ElapsedMs:       state.ElapsedMs,
		RemainingMs:     state.RemainingMs,
		TotalMs:         state.TotalMs,
		IsRunning:       state.IsRunning,
		Alert:           state.Alert,
		ProgressPercent: state.ProgressPercent,
	}
}

// StatsToResponse преобразует сводку по справочникам в DTO
func StatsToResponse(stats models.DatasetStats) StatsResponse {
	return StatsResponse{
		TotalHealthRisks:   stats.TotalHealthRisks,
		AirQualityRisks:    stats.AirQualityRisks,
		WaterQualityRisks:  stats.WaterQualityRisks,
		CombinedRisks:      stats.CombinedRisks,
		CriticalConditions: stats.CriticalConditions,
		TotalCities:        stats.TotalCities,
	}
}
