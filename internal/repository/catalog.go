package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/enviro_health_system/internal/models"
)

// CatalogRepository читает статические справочники городов и болезней.
// Таблицы заполняются миграциями и на рантайме не изменяются, поэтому
// репозиторий используется один раз при старте приложения.
type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// LoadCities загружает справочник городов в порядке исходной таблицы.
// Порядок важен: он задает tie-break при поиске ближайшего города.
func (r *CatalogRepository) LoadCities(ctx context.Context) ([]models.City, error) {
	query := `
		SELECT id, name, state, aqi, water_quality, latitude, longitude, population,
		       air_pollution, water_contamination, industrial_activity
		FROM cities
		ORDER BY position;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	var cities []models.City
	for rows.Next() {
		var city models.City
		err := rows.Scan(
			&city.ID,
			&city.Name,
			&city.State,
			&city.AQI,
			&city.WaterQuality,
			&city.Latitude,
			&city.Longitude,
			&city.Population,
			&city.RiskFactors.AirPollution,
			&city.RiskFactors.WaterContamination,
			&city.RiskFactors.IndustrialActivity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read city rows: %w", err)
	}
	return cities, nil
}

// LoadHealthRisks загружает справочник болезней в порядке исходной таблицы.
// Порядок задает tie-break стабильной сортировки предсказаний.
func (r *CatalogRepository) LoadHealthRisks(ctx context.Context) ([]models.HealthRisk, error) {
	query := `
		SELECT disease, exposure_type, duration_to_risk, severity, healthy_onset, vulnerable_onset
		FROM health_risks
		ORDER BY position;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query health risks: %w", err)
	}
	defer rows.Close()

	var risks []models.HealthRisk
	for rows.Next() {
		var risk models.HealthRisk
		err := rows.Scan(
			&risk.Disease,
			&risk.ExposureType,
			&risk.DurationToRisk,
			&risk.Severity,
			&risk.HealthyOnset,
			&risk.VulnerableOnset,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan health risk row: %w", err)
		}
		risks = append(risks, risk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read health risk rows: %w", err)
	}
	return risks, nil
}
