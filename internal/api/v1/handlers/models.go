package handlers

type WeatherResponse struct {
	Location           string  `json:"location"`
	Temperature        float64 `json:"temperature"`
	TemperatureDisplay string  `json:"temperature_display"`
	Description        string  `json:"description"`
	IconCategory       string  `json:"icon_category"`
	Icon               string  `json:"icon,omitempty"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
