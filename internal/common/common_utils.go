package common

import (
	"fmt"
	"strings"
	"time"
)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// Initials builds up to two uppercase initials from a full name, "NA" when
// the name is empty.
func Initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "NA"
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}

	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]))
	}
	return b.String()
}

// CityCode takes the first three letters of a city name, uppercased, for the
// synthetic DEP-ARR-### booking codes.
func CityCode(city string) string {
	if len(city) > 3 {
		city = city[:3]
	}
	return strings.ToUpper(city)
}
