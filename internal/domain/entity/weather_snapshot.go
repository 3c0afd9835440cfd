package entity

// WeatherSnapshot is the normalized current-conditions record
type WeatherSnapshot struct {
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Temperature   int     `json:"temperature"`
	FeelsLike     int     `json:"feels_like"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	Humidity      int     `json:"humidity"`
	Pressure      int     `json:"pressure"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection int     `json:"wind_direction"`
	Visibility    float64 `json:"visibility"`
	Sunrise       string  `json:"sunrise"`
	Sunset        string  `json:"sunset"`
	Timestamp     string  `json:"timestamp"`
}
