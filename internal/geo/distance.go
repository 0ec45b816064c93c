package geo

import (
	"math"

	"github.com/shenikar/enviro_health_system/internal/models"
)

// earthRadiusKm - радиус Земли для расчета по большому кругу
const earthRadiusKm = 6371

// MaxMatchDistanceKm - порог, дальше которого совпадение с городом
// не засчитывается
const MaxMatchDistanceKm = 100

// Haversine считает расстояние между двумя точками в километрах
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// Match - результат поиска ближайшего города. DistanceKm заполняется
// и при Matched=false, чтобы его можно было показать пользователю.
type Match struct {
	City       *models.City
	DistanceKm float64
	Matched    bool
}

// NearestCity ищет ближайший город справочника к заданным координатам.
// При равных расстояниях побеждает первый по порядку таблицы: сравнение
// строгое, более поздний город не вытесняет более ранний. Совпадение
// дальше MaxMatchDistanceKm - валидный отрицательный результат, не ошибка.
func NearestCity(lat, lng float64, cities []models.City) Match {
	minDistance := math.Inf(1)
	nearest := -1

	for i := range cities {
		d := Haversine(lat, lng, cities[i].Latitude, cities[i].Longitude)
		if d < minDistance {
			minDistance = d
			nearest = i
		}
	}

	if nearest < 0 {
		return Match{DistanceKm: minDistance}
	}
	if minDistance > MaxMatchDistanceKm {
		return Match{DistanceKm: minDistance}
	}
	return Match{City: &cities[nearest], DistanceKm: minDistance, Matched: true}
}
