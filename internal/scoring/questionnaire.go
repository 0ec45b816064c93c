package scoring

import (
	"fmt"
	"strings"

	"github.com/shenikar/enviro_health_system/internal/models"
)

// QuestionnaireAnswers - пять фиксированных ответов анкеты уязвимости
type QuestionnaireAnswers struct {
	AgeGroup         models.AgeGroup
	HealthCondition  models.HealthCondition
	Pregnancy        models.PregnancyStatus
	Smoking          models.SmokingStatus
	LocationExposure string
}

// QuestionnaireResult - накопленный балл, итоговый уровень и список
// факторов, из которых балл сложился
type QuestionnaireResult struct {
	Score            int
	Level            models.VulnerabilityLevel
	Factors          []string
	HealthConditions []models.HealthCondition
}

// highRiskCities - города, упоминание которых в описании локаций
// добавляет балл. Сопоставление - точный подстрочный поиск без учета
// регистра, никакого NLP.
var highRiskCities = []string{"Delhi", "Kanpur", "Lucknow", "Kolkata", "Ahmedabad"}

// ScoreQuestionnaire считает аддитивный балл уязвимости. Накопление
// линейное и не зависит от порядка вопросов. Неизвестное значение любого
// закрытого перечня - ошибка ErrInvalidEnum, а не нулевой вклад.
func ScoreQuestionnaire(a QuestionnaireAnswers) (QuestionnaireResult, error) {
	var res QuestionnaireResult

	agePoints, ageFactor, err := scoreAgeGroup(a.AgeGroup)
	if err != nil {
		return QuestionnaireResult{}, err
	}
	res.add(agePoints, ageFactor)

	condPoints, condFactor, conditions, err := scoreHealthCondition(a.HealthCondition)
	if err != nil {
		return QuestionnaireResult{}, err
	}
	res.add(condPoints, condFactor)
	res.HealthConditions = conditions

	pregPoints, pregFactor, err := scorePregnancy(a.Pregnancy)
	if err != nil {
		return QuestionnaireResult{}, err
	}
	res.add(pregPoints, pregFactor)

	smokePoints, smokeFactor, err := scoreSmoking(a.Smoking)
	if err != nil {
		return QuestionnaireResult{}, err
	}
	res.add(smokePoints, smokeFactor)

	exposurePoints, exposureFactors := scoreLocationNarrative(a.LocationExposure)
	res.Score += exposurePoints
	res.Factors = append(res.Factors, exposureFactors...)

	res.Level = vulnerabilityLevel(res.Score)
	return res, nil
}

func (r *QuestionnaireResult) add(points int, factor string) {
	r.Score += points
	if factor != "" {
		r.Factors = append(r.Factors, factor)
	}
}

func vulnerabilityLevel(score int) models.VulnerabilityLevel {
	switch {
	case score >= 7:
		return models.VulnerabilityCritical
	case score >= 5:
		return models.VulnerabilityHigh
	case score >= 3:
		return models.VulnerabilityModerate
	}
	return models.VulnerabilityLow
}

func scoreAgeGroup(g models.AgeGroup) (int, string, error) {
	switch g {
	case models.AgeUnder18, models.AgeOver65:
		return 2, "Age group (higher risk)", nil
	case models.Age51To65:
		return 1, "Age group (moderate risk)", nil
	case models.Age18To35, models.Age36To50:
		return 0, "", nil
	}
	return 0, "", fmt.Errorf("%w: age group %q", ErrInvalidEnum, g)
}

func scoreHealthCondition(c models.HealthCondition) (int, string, []models.HealthCondition, error) {
	switch c {
	case models.ConditionMultiple:
		all := []models.HealthCondition{
			models.ConditionRespiratory,
			models.ConditionCardiovascular,
			models.ConditionDiabetes,
			models.ConditionImmune,
		}
		return 3, "Multiple pre-existing conditions", all, nil
	case models.ConditionRespiratory:
		return 2, "Respiratory conditions", []models.HealthCondition{c}, nil
	case models.ConditionCardiovascular:
		return 2, "Cardiovascular conditions", []models.HealthCondition{c}, nil
	case models.ConditionDiabetes:
		return 2, "Diabetes", []models.HealthCondition{c}, nil
	case models.ConditionImmune:
		return 2, "Immune system disorders", []models.HealthCondition{c}, nil
	case models.ConditionNone:
		return 0, "", nil, nil
	}
	return 0, "", nil, fmt.Errorf("%w: health condition %q", ErrInvalidEnum, c)
}

func scorePregnancy(p models.PregnancyStatus) (int, string, error) {
	switch p {
	case models.PregnancyPregnant, models.PregnancyBreastfeeding:
		return 2, "Pregnancy/breastfeeding status", nil
	case models.PregnancyNo, models.PregnancyNoAnswer:
		return 0, "", nil
	}
	return 0, "", fmt.Errorf("%w: pregnancy status %q", ErrInvalidEnum, p)
}

func scoreSmoking(s models.SmokingStatus) (int, string, error) {
	switch s {
	case models.SmokingCurrent:
		return 2, "Current smoking", nil
	case models.SmokingFormer, models.SmokingSecondhand:
		return 1, "Smoking exposure", nil
	case models.SmokingNever:
		return 0, "", nil
	}
	return 0, "", fmt.Errorf("%w: smoking status %q", ErrInvalidEnum, s)
}

// scoreLocationNarrative сканирует свободный текст о локациях по трем
// таблицам ключевых слов: города повышенного риска, длительность и
// частота пребывания
func scoreLocationNarrative(text string) (int, []string) {
	lower := strings.ToLower(text)
	score := 0
	var factors []string

	var mentioned []string
	for _, city := range highRiskCities {
		if strings.Contains(lower, strings.ToLower(city)) {
			mentioned = append(mentioned, city)
		}
	}
	if len(mentioned) > 0 {
		score += len(mentioned)
		factors = append(factors, "High-risk location exposure: "+strings.Join(mentioned, ", "))
	}

	if strings.Contains(lower, "years") || strings.Contains(lower, "live") {
		score += 2
		factors = append(factors, "Long-term exposure (years)")
	} else if strings.Contains(lower, "months") {
		score++
		factors = append(factors, "Medium-term exposure (months)")
	}

	if strings.Contains(lower, "daily") || strings.Contains(lower, "regularly") {
		score += 2
		factors = append(factors, "Daily/regular exposure")
	} else if strings.Contains(lower, "weekly") || strings.Contains(lower, "monthly") {
		score++
		factors = append(factors, "Frequent exposure (weekly/monthly)")
	}

	return score, factors
}
