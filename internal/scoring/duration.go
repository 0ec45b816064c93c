package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// defaultOnsetHours используется, когда в тексте нет ни одной единицы времени
const defaultOnsetHours = 24

var firstDigits = regexp.MustCompile(`\d+`)

// onsetUnits проверяются строго в этом порядке: первая найденная единица
// считается главной, даже если в строке упомянуто несколько.
// fallback возвращается, когда единица есть, а числа в строке нет
// ("Years", "Weeks to months").
var onsetUnits = []struct {
	keyword    string
	multiplier int
	fallback   int
}{
	{"hour", 1, 12},
	{"day", 24, 24},
	{"week", 168, 168},
	{"month", 720, 720},
	{"year", 8760, 8760},
}

// ParseOnsetDuration переводит текстовую оценку длительности до симптомов
// в часы. Берется первое число во всей строке: "12-24 hours" дает 12,
// "Hours to 2 days" дает 2 часа. Строка без единиц и чисел ("chronic")
// дает 24 часа.
func ParseOnsetDuration(text string) int {
	lower := strings.ToLower(text)
	for _, unit := range onsetUnits {
		if !strings.Contains(lower, unit.keyword) {
			continue
		}
		match := firstDigits.FindString(lower)
		if match == "" {
			return unit.fallback
		}
		n, err := strconv.Atoi(match)
		if err != nil {
			return unit.fallback
		}
		return n * unit.multiplier
	}
	return defaultOnsetHours
}
