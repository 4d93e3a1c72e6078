package weather

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type IconCategory string

const (
	IconThunderstorm IconCategory = "thunderstorm"
	IconDrizzle      IconCategory = "drizzle"
	IconRain         IconCategory = "rain"
	IconSnow         IconCategory = "snow"
	IconAtmosphere   IconCategory = "atmosphere"
	IconVolcanicAsh  IconCategory = "volcanic_ash"
	IconSquall       IconCategory = "squall"
	IconTornado      IconCategory = "tornado"
	IconClear        IconCategory = "clear"
	IconClouds       IconCategory = "clouds"
	IconUnknown      IconCategory = "unknown"
)

type WeatherResult struct {
	TemperatureCelsius float64      `json:"temperature_celsius"`
	Description        string       `json:"description"`
	IconCategory       IconCategory `json:"icon_category"`
}

// conditionRange bounds are inclusive.
type conditionRange struct {
	low, high int
	category  IconCategory
}

// Ordered, non-overlapping. First match wins.
var conditionTable = []conditionRange{
	{200, 232, IconThunderstorm},
	{300, 320, IconDrizzle},
	{500, 530, IconRain},
	{600, 621, IconSnow},
	{701, 740, IconAtmosphere},
	{762, 762, IconVolcanicAsh},
	{771, 771, IconSquall},
	{781, 781, IconTornado},
	{800, 800, IconClear},
	{801, 804, IconClouds},
}

// CategoryFor maps an OpenWeatherMap condition code to its icon category.
// Codes outside every known range, including the 9xx extreme group, are IconUnknown.
func CategoryFor(conditionID int) IconCategory {
	for _, r := range conditionTable {
		if conditionID >= r.low && conditionID <= r.high {
			return r.category
		}
	}
	return IconUnknown
}

// Classify reduces a successful provider payload to a presentation record.
func Classify(tempC float64, description string, conditionID int) WeatherResult {
	return WeatherResult{
		TemperatureCelsius: tempC,
		Description:        cases.Title(language.Und).String(description),
		IconCategory:       CategoryFor(conditionID),
	}
}
