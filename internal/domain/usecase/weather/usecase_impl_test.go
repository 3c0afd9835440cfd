package weather

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model/external"
)

type fakeGateway struct {
	current     *external.CurrentWeatherResponse
	forecast    *external.ForecastResponse
	cities      []external.GeoCityDTO
	err         error
	calls       int
	lastCity    string
	lastLimit   int
	lastLat     float64
	lastLon     float64
	coordinates bool
}

func (f *fakeGateway) GetCurrentWeather(_ context.Context, city string) (*external.CurrentWeatherResponse, error) {
	f.calls++
	f.lastCity = city
	return f.current, f.err
}

func (f *fakeGateway) GetCurrentWeatherByCoordinates(_ context.Context, lat float64, lon float64) (*external.CurrentWeatherResponse, error) {
	f.calls++
	f.coordinates = true
	f.lastLat, f.lastLon = lat, lon
	return f.current, f.err
}

func (f *fakeGateway) GetForecast(_ context.Context, city string) (*external.ForecastResponse, error) {
	f.calls++
	f.lastCity = city
	return f.forecast, f.err
}

func (f *fakeGateway) SearchCities(_ context.Context, query string, limit int) ([]external.GeoCityDTO, error) {
	f.calls++
	f.lastCity = query
	f.lastLimit = limit
	return f.cities, f.err
}

var fixedNow = time.Date(2024, 3, 10, 14, 7, 30, 0, time.UTC)

func newTestUseCase(demo bool, gateway api.WeatherGateway) *weatherUseCase {
	uc := NewWeatherUseCase(Config{DemoMode: demo, Location: time.UTC}, gateway).(*weatherUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestDemoCurrentWeatherOnlySubstitutesCity(t *testing.T) {
	gateway := &fakeGateway{}
	uc := newTestUseCase(true, gateway)

	for _, city := range []string{"London", "Tokyo", "São Paulo", "x"} {
		got, err := uc.GetCurrentWeather(context.Background(), city)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := uc.demoSnapshot
		want.City = city
		if *got != want {
			t.Fatalf("city %q: expected %+v, got %+v", city, want, *got)
		}
	}

	if gateway.calls != 0 {
		t.Fatalf("demo mode must not call the provider, got %d calls", gateway.calls)
	}
	if uc.demoSnapshot.City != "London" {
		t.Fatalf("fixture was mutated: %+v", uc.demoSnapshot)
	}
}

func TestDemoCurrentWeatherDefaultsToLondon(t *testing.T) {
	uc := newTestUseCase(true, &fakeGateway{})

	got, _ := uc.GetCurrentWeather(context.Background(), "")
	if got.City != "London" || got.Temperature != 22 || got.Description != "Partly Cloudy" || got.Visibility != 10 {
		t.Fatalf("unexpected demo snapshot %+v", got)
	}

	byPoint, _ := uc.GetCurrentWeatherByCoordinates(context.Background(), 1, 2)
	if byPoint.City != "London" {
		t.Fatalf("expected default city for coordinates in demo mode, got %q", byPoint.City)
	}
}

func TestDemoForecast(t *testing.T) {
	uc := newTestUseCase(true, &fakeGateway{})

	bundle, err := uc.GetForecast(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bundle.City != "Paris" || bundle.Country != "Demo" {
		t.Fatalf("unexpected header %s/%s", bundle.City, bundle.Country)
	}
	if len(bundle.Forecast) != 40 {
		t.Fatalf("expected 40 entries, got %d", len(bundle.Forecast))
	}

	for i, entry := range bundle.Forecast {
		at := fixedNow.Add(time.Duration(3*i) * time.Hour)
		if entry.Datetime != at.Format("2006-01-02 15:04:05") || entry.Date != at.Format("2006-01-02") || entry.Time != at.Format("15:04") {
			t.Fatalf("entry %d: unexpected time fields %+v", i, entry)
		}
		temperature := 20 + (i%8-4)*2 + i/8
		if entry.Temperature != temperature || entry.FeelsLike != temperature+2 || entry.TempMin != temperature-2 || entry.TempMax != temperature+3 {
			t.Fatalf("entry %d: unexpected temperatures %+v", i, entry)
		}
		if entry.Description != demoDescriptions[i%5] || entry.Icon != demoIcons[i%5] {
			t.Fatalf("entry %d: unexpected condition %s/%s", i, entry.Description, entry.Icon)
		}
		if entry.Humidity != 60+i%20 || entry.WindSpeed != 2.5+float64(i%5) || entry.Pop != (i*5)%80 {
			t.Fatalf("entry %d: unexpected humidity/wind/pop %+v", i, entry)
		}
	}

	first := bundle.Forecast[0]
	if first.Temperature != 12 || first.Description != "Clear Sky" || first.Pop != 0 {
		t.Fatalf("unexpected first entry %+v", first)
	}
}

func TestSearchShortQueryNeverCallsProvider(t *testing.T) {
	for _, demo := range []bool{true, false} {
		gateway := &fakeGateway{cities: []external.GeoCityDTO{{Name: "N"}}}
		uc := newTestUseCase(demo, gateway)

		for _, query := range []string{"", "N", "é"} {
			got := uc.SearchCities(context.Background(), query)
			if got == nil || len(got) != 0 {
				t.Fatalf("demo=%v query=%q: expected empty non-nil list, got %#v", demo, query, got)
			}
		}
		if gateway.calls != 0 {
			t.Fatalf("demo=%v: expected no provider calls, got %d", demo, gateway.calls)
		}
	}
}

func TestDemoSearch(t *testing.T) {
	uc := newTestUseCase(true, &fakeGateway{})

	got := uc.SearchCities(context.Background(), "New")
	if len(got) != 1 || got[0].Name != "New York" || got[0].Country != "US" || got[0].State != "NY" {
		t.Fatalf("unexpected matches %+v", got)
	}

	got = uc.SearchCities(context.Background(), "ON")
	if len(got) != 1 || got[0].Name != "London" {
		t.Fatalf("expected case-insensitive match on London, got %+v", got)
	}

	got = uc.SearchCities(context.Background(), "y")
	if len(got) != 0 {
		t.Fatalf("single character must short-circuit, got %+v", got)
	}

	got = uc.SearchCities(context.Background(), "ar")
	if len(got) != 1 || got[0].Name != "Paris" {
		t.Fatalf("unexpected matches for 'ar': %+v", got)
	}

	got = uc.SearchCities(context.Background(), "zz")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %#v", got)
	}
}

func TestLiveCurrentWeatherMapping(t *testing.T) {
	gateway := &fakeGateway{current: &external.CurrentWeatherResponse{
		Name:       "Berlin",
		Visibility: 7500,
		Main:       external.MainDTO{Temp: 12.5, FeelsLike: 13.5, Pressure: 1009, Humidity: 71},
		Weather:    []external.WeatherConditionDTO{{Description: "overcast clouds", Icon: "04n"}},
		Wind:       external.WindDTO{Speed: 5.66},
		Sys: external.SysDTO{
			Country: "DE",
			Sunrise: time.Date(2024, 3, 10, 5, 41, 0, 0, time.UTC).Unix(),
			Sunset:  time.Date(2024, 3, 10, 17, 9, 0, 0, time.UTC).Unix(),
		},
	}}
	uc := newTestUseCase(false, gateway)

	got, err := uc.GetCurrentWeather(context.Background(), "berlin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := entity.WeatherSnapshot{
		City:          "Berlin",
		Country:       "DE",
		Temperature:   12,
		FeelsLike:     14,
		Description:   "Overcast Clouds",
		Icon:          "04n",
		Humidity:      71,
		Pressure:      1009,
		WindSpeed:     5.66,
		WindDirection: 0,
		Visibility:    7.5,
		Sunrise:       "05:41",
		Sunset:        "17:09",
		Timestamp:     "2024-03-10 14:07:30",
	}
	if *got != want {
		t.Fatalf("expected %+v, got %+v", want, *got)
	}
	if gateway.lastCity != "berlin" {
		t.Fatalf("expected the requested name to be forwarded, got %q", gateway.lastCity)
	}
}

func TestLiveCurrentWeatherByCoordinates(t *testing.T) {
	gateway := &fakeGateway{current: &external.CurrentWeatherResponse{Name: "Lisbon"}}
	uc := newTestUseCase(false, gateway)

	got, err := uc.GetCurrentWeatherByCoordinates(context.Background(), 38.72, -9.14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gateway.coordinates || gateway.lastLat != 38.72 || gateway.lastLon != -9.14 {
		t.Fatalf("coordinates were not forwarded: %+v", gateway)
	}
	if got.City != "Lisbon" || got.Description != "" || got.Icon != "" {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}

func TestLiveCurrentWeatherErrorsKeepKind(t *testing.T) {
	notFound := fmt.Errorf("%w: upstream returned status 404", api.ErrCityNotFound)
	uc := newTestUseCase(false, &fakeGateway{err: notFound})

	_, err := uc.GetCurrentWeather(context.Background(), "Atlantis")
	if !errors.Is(err, api.ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}

	transport := errors.New("dial tcp: connection refused")
	uc = newTestUseCase(false, &fakeGateway{err: transport})
	_, err = uc.GetForecast(context.Background(), "Paris")
	if !errors.Is(err, transport) || errors.Is(err, api.ErrCityNotFound) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

func TestLiveForecastTruncatesAndRoundsPop(t *testing.T) {
	list := make([]external.ForecastItemDTO, 45)
	start := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	for i := range list {
		at := start.Add(time.Duration(3*i) * time.Hour)
		list[i] = external.ForecastItemDTO{
			Dt:      at.Unix(),
			DtTxt:   at.Format("2006-01-02 15:04:05"),
			Main:    external.MainDTO{Temp: 9.51, FeelsLike: 7.49, TempMin: 8.5, TempMax: 9.5, Humidity: 80},
			Weather: []external.WeatherConditionDTO{{Description: "light rain", Icon: "10d"}},
			Wind:    external.WindDTO{Speed: 3.2},
			Pop:     0.29,
		}
	}
	gateway := &fakeGateway{forecast: &external.ForecastResponse{
		List: list,
		City: external.ForecastCityDTO{Name: "Paris", Country: "FR"},
	}}
	uc := newTestUseCase(false, gateway)

	bundle, err := uc.GetForecast(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gateway.lastCity != "London" {
		t.Fatalf("expected default city, got %q", gateway.lastCity)
	}
	if bundle.City != "Paris" || bundle.Country != "FR" || len(bundle.Forecast) != 40 {
		t.Fatalf("unexpected bundle header or size: %s %s %d", bundle.City, bundle.Country, len(bundle.Forecast))
	}

	first := bundle.Forecast[0]
	want := entity.ForecastEntry{
		Datetime:    "2024-03-10 15:00:00",
		Date:        "2024-03-10",
		Time:        "15:00",
		Temperature: 10,
		FeelsLike:   7,
		TempMin:     8,
		TempMax:     10,
		Description: "Light Rain",
		Icon:        "10d",
		Humidity:    80,
		WindSpeed:   3.2,
		Pop:         29,
	}
	if first != want {
		t.Fatalf("expected %+v, got %+v", want, first)
	}
}

func TestLiveForecastKeepsShortLists(t *testing.T) {
	gateway := &fakeGateway{forecast: &external.ForecastResponse{
		List: make([]external.ForecastItemDTO, 3),
	}}
	uc := newTestUseCase(false, gateway)

	bundle, err := uc.GetForecast(context.Background(), "Reykjavik")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bundle.Forecast) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(bundle.Forecast))
	}
}

func TestLiveSearch(t *testing.T) {
	gateway := &fakeGateway{cities: []external.GeoCityDTO{
		{Name: "Portland", Country: "US", State: "Oregon", Lat: 45.5, Lon: -122.6},
		{Name: "Portland", Country: "US", Lat: 43.6, Lon: -70.2},
	}}
	uc := newTestUseCase(false, gateway)

	got := uc.SearchCities(context.Background(), "Port")
	if len(got) != 2 || got[0].State != "Oregon" || got[1].State != "" {
		t.Fatalf("unexpected matches %+v", got)
	}
	if gateway.lastLimit != 5 {
		t.Fatalf("expected limit 5, got %d", gateway.lastLimit)
	}
}

func TestLiveSearchSwallowsFailures(t *testing.T) {
	for _, err := range []error{api.ErrCityNotFound, errors.New("timeout")} {
		uc := newTestUseCase(false, &fakeGateway{err: err})

		got := uc.SearchCities(context.Background(), "Paris")
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty list for %v, got %#v", err, got)
		}
	}
}
