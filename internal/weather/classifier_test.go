package weather_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"ulascansenturk/weather-viewer/internal/weather"
)

func TestCategoryForRanges(t *testing.T) {
	ranges := []struct {
		low, high int
		want      weather.IconCategory
	}{
		{200, 232, weather.IconThunderstorm},
		{300, 320, weather.IconDrizzle},
		{500, 530, weather.IconRain},
		{600, 621, weather.IconSnow},
		{701, 740, weather.IconAtmosphere},
		{801, 804, weather.IconClouds},
	}

	for _, r := range ranges {
		for code := r.low; code <= r.high; code++ {
			require.Equal(t, r.want, weather.CategoryFor(code), "code %d", code)
		}
		require.NotEqual(t, r.want, weather.CategoryFor(r.low-1), "code %d", r.low-1)
		require.NotEqual(t, r.want, weather.CategoryFor(r.high+1), "code %d", r.high+1)
	}
}

func TestCategoryForExactCodes(t *testing.T) {
	exact := map[int]weather.IconCategory{
		762: weather.IconVolcanicAsh,
		771: weather.IconSquall,
		781: weather.IconTornado,
		800: weather.IconClear,
	}

	for code, want := range exact {
		require.Equal(t, want, weather.CategoryFor(code), "code %d", code)
		require.Equal(t, weather.IconUnknown, weather.CategoryFor(code-1), "code %d", code-1)
	}
}

func TestCategoryForUnknownCodes(t *testing.T) {
	for _, code := range []int{-1, 0, 199, 233, 299, 321, 400, 531, 622, 700, 741, 761, 805, 900, 962, 999} {
		require.Equal(t, weather.IconUnknown, weather.CategoryFor(code), "code %d", code)
	}
}

func TestClassify(t *testing.T) {
	got := weather.Classify(23.456, "light rain", 500)

	require.Equal(t, weather.WeatherResult{
		TemperatureCelsius: 23.456,
		Description:        "Light Rain",
		IconCategory:       weather.IconRain,
	}, got)
}

func TestClassifyTitleCasesDescription(t *testing.T) {
	tests := map[string]string{
		"clear sky":                    "Clear Sky",
		"OVERCAST CLOUDS":              "Overcast Clouds",
		"thunderstorm with heavy rain": "Thunderstorm With Heavy Rain",
		"":                             "",
	}

	for in, want := range tests {
		require.Equal(t, want, weather.Classify(0, in, 800).Description, "input %q", in)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := weather.Classify(-3.5, "light snow", 600)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, weather.Classify(-3.5, "light snow", 600))
	}
	require.Equal(t, -3.5, first.TemperatureCelsius)
}
