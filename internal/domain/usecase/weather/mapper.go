package weather

import (
	"math"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
	clockLayout     = "15:04"
)

// roundInt rounds half to even, the way the provider's own clients present temperatures.
func roundInt(value float64) int {
	return int(math.RoundToEven(value))
}

// titleCase upper-cases the first letter of every word. A Caser keeps state,
// so one is built per call.
func titleCase(value string) string {
	return cases.Title(language.English).String(value)
}

func clock(unix int64, loc *time.Location) string {
	return time.Unix(unix, 0).In(loc).Format(clockLayout)
}

func firstCondition(conditions []external.WeatherConditionDTO) (string, string) {
	if len(conditions) == 0 {
		return "", ""
	}
	return conditions[0].Description, conditions[0].Icon
}

func toSnapshot(resp *external.CurrentWeatherResponse, capturedAt time.Time, loc *time.Location) *entity.WeatherSnapshot {
	description, icon := firstCondition(resp.Weather)

	return &entity.WeatherSnapshot{
		City:          resp.Name,
		Country:       resp.Sys.Country,
		Temperature:   roundInt(resp.Main.Temp),
		FeelsLike:     roundInt(resp.Main.FeelsLike),
		Description:   titleCase(description),
		Icon:          icon,
		Humidity:      roundInt(resp.Main.Humidity),
		Pressure:      roundInt(resp.Main.Pressure),
		WindSpeed:     resp.Wind.Speed,
		WindDirection: roundInt(resp.Wind.Deg),
		Visibility:    resp.Visibility / 1000,
		Sunrise:       clock(resp.Sys.Sunrise, loc),
		Sunset:        clock(resp.Sys.Sunset, loc),
		Timestamp:     capturedAt.In(loc).Format(timestampLayout),
	}
}

func toForecastBundle(resp *external.ForecastResponse, loc *time.Location) *entity.ForecastBundle {
	items := resp.List
	if len(items) > forecastWindow {
		items = items[:forecastWindow]
	}

	entries := make([]entity.ForecastEntry, 0, len(items))
	for _, item := range items {
		description, icon := firstCondition(item.Weather)
		at := time.Unix(item.Dt, 0).In(loc)

		entries = append(entries, entity.ForecastEntry{
			Datetime:    item.DtTxt,
			Date:        at.Format(dateLayout),
			Time:        at.Format(clockLayout),
			Temperature: roundInt(item.Main.Temp),
			FeelsLike:   roundInt(item.Main.FeelsLike),
			TempMin:     roundInt(item.Main.TempMin),
			TempMax:     roundInt(item.Main.TempMax),
			Description: titleCase(description),
			Icon:        icon,
			Humidity:    roundInt(item.Main.Humidity),
			WindSpeed:   item.Wind.Speed,
			Pop:         roundInt(item.Pop * 100),
		})
	}

	return &entity.ForecastBundle{
		City:     resp.City.Name,
		Country:  resp.City.Country,
		Forecast: entries,
	}
}

func toCityMatches(results []external.GeoCityDTO) []entity.CityMatch {
	matches := make([]entity.CityMatch, 0, len(results))
	for _, result := range results {
		matches = append(matches, entity.CityMatch{
			Name:    result.Name,
			Country: result.Country,
			State:   result.State,
			Lat:     result.Lat,
			Lon:     result.Lon,
		})
	}
	return matches
}
