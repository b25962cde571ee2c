package weather

// Location is where a zone's weather is read.
// Fallback marks a best-effort name with no coordinates.
type Location struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Fallback  bool    `json:"fallback"`
}

// WeatherData is the display record for one zone's current weather.
// A record at rest is either loading, errored, or carrying measurements.
type WeatherData struct {
	LocationName string  `json:"locationName"`
	ZoneID       string  `json:"zoneId"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`

	Temperature     float64 `json:"temperature"`
	WeatherCode     int     `json:"weatherCode"`
	WindSpeed       float64 `json:"windSpeed"`
	Humidity        float64 `json:"humidity"`
	Precipitation   float64 `json:"precipitation"`
	ObservationTime string  `json:"observationTime"`

	IsLoading bool `json:"isLoading"`
	HasError  bool `json:"hasError"`
}

// Description is the human-readable condition for WeatherCode.
func (d WeatherData) Description() string {
	return Description(d.WeatherCode)
}

// Icon is the glyph for WeatherCode.
func (d WeatherData) Icon() string {
	return Icon(d.WeatherCode)
}

// TemperatureColor is the hex colour bucket for Temperature.
func (d WeatherData) TemperatureColor() string {
	return TemperatureColor(d.Temperature)
}
