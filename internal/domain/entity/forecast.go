package entity

type ForecastEntry struct {
	Datetime    string  `json:"datetime"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Temperature int     `json:"temperature"`
	FeelsLike   int     `json:"feels_like"`
	TempMin     int     `json:"temp_min"`
	TempMax     int     `json:"temp_max"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Pop         int     `json:"pop"`
}

// ForecastBundle is the ordered three-hour forecast for one city
type ForecastBundle struct {
	City     string          `json:"city"`
	Country  string          `json:"country"`
	Forecast []ForecastEntry `json:"forecast"`
}
