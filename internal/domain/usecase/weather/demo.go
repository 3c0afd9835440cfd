package weather

import (
	"strings"
	"time"

	"go-weather/internal/domain/entity"
)

const demoBaseTemperature = 20

var (
	demoDescriptions = [...]string{"Clear Sky", "Few Clouds", "Scattered Clouds", "Light Rain", "Broken Clouds"}
	demoIcons        = [...]string{"01d", "02d", "03d", "10d", "04d"}

	demoCities = []entity.CityMatch{
		{Name: "London", Country: "GB", State: "", Lat: 51.5074, Lon: -0.1278},
		{Name: "New York", Country: "US", State: "NY", Lat: 40.7128, Lon: -74.0060},
		{Name: "Tokyo", Country: "JP", State: "", Lat: 35.6762, Lon: 139.6503},
		{Name: "Paris", Country: "FR", State: "", Lat: 48.8566, Lon: 2.3522},
		{Name: "Sydney", Country: "AU", State: "NSW", Lat: -33.8688, Lon: 151.2093},
	}
)

// newDemoSnapshot builds the fixed current-conditions record. The timestamp is
// taken once, when the usecase is created.
func newDemoSnapshot(createdAt time.Time) entity.WeatherSnapshot {
	return entity.WeatherSnapshot{
		City:          "London",
		Country:       "GB",
		Temperature:   22,
		FeelsLike:     24,
		Description:   "Partly Cloudy",
		Icon:          "02d",
		Humidity:      65,
		Pressure:      1013,
		WindSpeed:     3.5,
		WindDirection: 180,
		Visibility:    10.0,
		Sunrise:       "06:30",
		Sunset:        "19:45",
		Timestamp:     createdAt.Format(timestampLayout),
	}
}

// demoForecast synthesizes forecastWindow entries three hours apart starting at now.
func demoForecast(city string, now time.Time) *entity.ForecastBundle {
	entries := make([]entity.ForecastEntry, 0, forecastWindow)
	for i := 0; i < forecastWindow; i++ {
		at := now.Add(time.Duration(i*3) * time.Hour)
		temperature := demoBaseTemperature + (i%8-4)*2 + i/8

		entries = append(entries, entity.ForecastEntry{
			Datetime:    at.Format(timestampLayout),
			Date:        at.Format(dateLayout),
			Time:        at.Format(clockLayout),
			Temperature: temperature,
			FeelsLike:   temperature + 2,
			TempMin:     temperature - 2,
			TempMax:     temperature + 3,
			Description: demoDescriptions[i%len(demoDescriptions)],
			Icon:        demoIcons[i%len(demoIcons)],
			Humidity:    60 + i%20,
			WindSpeed:   2.5 + float64(i%5),
			Pop:         (i * 5) % 80,
		})
	}

	return &entity.ForecastBundle{
		City:     city,
		Country:  "Demo",
		Forecast: entries,
	}
}

// demoSearch filters the reference cities by case-insensitive substring, keeping their order.
func demoSearch(query string) []entity.CityMatch {
	needle := strings.ToLower(query)
	matches := make([]entity.CityMatch, 0, len(demoCities))
	for _, city := range demoCities {
		if strings.Contains(strings.ToLower(city.Name), needle) {
			matches = append(matches, city)
		}
	}
	return matches
}
