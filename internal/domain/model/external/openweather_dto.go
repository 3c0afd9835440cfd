package external

// CurrentWeatherResponse is the body of GET /data/2.5/weather
type CurrentWeatherResponse struct {
	Name       string                `json:"name"`
	Dt         int64                 `json:"dt"`
	Timezone   int                   `json:"timezone"`
	Visibility float64               `json:"visibility"`
	Main       MainDTO               `json:"main"`
	Weather    []WeatherConditionDTO `json:"weather"`
	Wind       WindDTO               `json:"wind"`
	Sys        SysDTO                `json:"sys"`
}

// MainDTO holds the thermodynamic block shared by current and forecast payloads
type MainDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

// WeatherConditionDTO represents one entry of the "weather" array
type WeatherConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type WindDTO struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

type SysDTO struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// ForecastResponse is the body of GET /data/2.5/forecast (5 days, 3 hour steps)
type ForecastResponse struct {
	Cod  string            `json:"cod"`
	Cnt  int               `json:"cnt"`
	List []ForecastItemDTO `json:"list"`
	City ForecastCityDTO   `json:"city"`
}

type ForecastItemDTO struct {
	Dt      int64                 `json:"dt"`
	DtTxt   string                `json:"dt_txt"`
	Main    MainDTO               `json:"main"`
	Weather []WeatherConditionDTO `json:"weather"`
	Wind    WindDTO               `json:"wind"`
	Pop     float64               `json:"pop"`
}

type ForecastCityDTO struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone int    `json:"timezone"`
}

// GeoCityDTO is one element of GET /geo/1.0/direct
type GeoCityDTO struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// APIErrorResponse represents error bodies returned by OpenWeatherMap
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
