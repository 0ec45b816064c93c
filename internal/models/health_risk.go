package models

// ExposureType - путь воздействия, через который болезнь связана со средой
type ExposureType string

const (
	ExposureAirOnly   ExposureType = "Poor AQI"
	ExposureWaterOnly ExposureType = "Contaminated Water"
	ExposureCombined  ExposureType = "Combined AQI + Water"
)

// ExposureFilter - фильтр по пути воздействия в запросах пользователя
type ExposureFilter string

const (
	ExposureFilterAir   ExposureFilter = "air"
	ExposureFilterWater ExposureFilter = "water"
	ExposureFilterBoth  ExposureFilter = "both"
)

// Matches сообщает, попадает ли тип воздействия под фильтр.
// Комбинированное воздействие попадает и под air, и под water.
func (t ExposureType) Matches(f ExposureFilter) bool {
	switch f {
	case ExposureFilterAir:
		return t == ExposureAirOnly || t == ExposureCombined
	case ExposureFilterWater:
		return t == ExposureWaterOnly || t == ExposureCombined
	case ExposureFilterBoth:
		return true
	}
	return false
}

// Severity - тяжесть состояния
type Severity string

const (
	SeverityMild     Severity = "Mild"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
	SeverityCritical Severity = "Critical"
)

// severityRanks используется только для сортировки при отображении,
// числовые сравнения тяжести в остальном коде запрещены
var severityRanks = map[Severity]int{
	SeverityMild:     1,
	SeverityModerate: 2,
	SeveritySevere:   3,
	SeverityCritical: 4,
}

// Rank возвращает порядковый номер тяжести, 0 для неизвестного значения
func (s Severity) Rank() int {
	return severityRanks[s]
}

// HealthProfile - группа населения, для которой считается время до симптомов
type HealthProfile string

const (
	ProfileHealthy    HealthProfile = "healthy"
	ProfileVulnerable HealthProfile = "vulnerable"
)

// HealthRisk - запись статического справочника болезней
type HealthRisk struct {
	Disease         string       `json:"disease"`
	ExposureType    ExposureType `json:"exposure_type"`
	DurationToRisk  string       `json:"duration_to_risk"`
	Severity        Severity     `json:"severity"`
	HealthyOnset    string       `json:"healthy_onset"`
	VulnerableOnset string       `json:"vulnerable_onset"`
}

// OnsetFor возвращает текст длительности до симптомов для выбранной группы
func (r HealthRisk) OnsetFor(p HealthProfile) string {
	if p == ProfileVulnerable {
		return r.VulnerableOnset
	}
	return r.HealthyOnset
}

// RiskPrediction - предсказание времени до риска для одного состояния.
// Пересчитывается при каждом запросе и нигде не сохраняется.
type RiskPrediction struct {
	Condition      string   `json:"condition"`
	TimeToRisk     int      `json:"time_to_risk_hours"`
	Severity       Severity `json:"severity"`
	Recommendation string   `json:"recommendation"`
}
