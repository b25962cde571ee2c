package weather

// WMO weather interpretation codes as reported by Open-Meteo.
var descriptionByCode = map[int]string{
	0: "Clear sky",
	1: "Partly cloudy", 2: "Partly cloudy", 3: "Partly cloudy",
	45: "Foggy", 48: "Foggy",
	51: "Drizzle", 53: "Drizzle", 55: "Drizzle",
	61: "Rain", 63: "Rain", 65: "Rain",
	71: "Snow", 73: "Snow", 75: "Snow",
	77: "Snow grains",
	80: "Rain showers", 81: "Rain showers", 82: "Rain showers",
	85: "Snow showers", 86: "Snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with hail", 99: "Thunderstorm with hail",
}

var iconByCode = map[int]string{
	0: "☀️",
	1: "🌤️", 2: "🌤️",
	3:  "☁️",
	45: "🌫️", 48: "🌫️",
	51: "🌦️", 53: "🌦️", 55: "🌦️",
	61: "🌧️", 63: "🌧️", 65: "🌧️",
	71: "🌨️", 73: "🌨️", 75: "🌨️",
	77: "❄️",
	80: "☔", 81: "☔", 82: "☔",
	85: "☃️", 86: "☃️",
	95: "⛈️",
	96: "🌩️", 99: "🌩️",
}

const (
	UnknownDescription = "Unknown"
	UnknownIcon        = "🌡️"
)

// temperatureBuckets are checked in order; each bound is exclusive.
var temperatureBuckets = []struct {
	below float64
	color string
}{
	{0, "#0066cc"},
	{10, "#3399ff"},
	{20, "#66cc66"},
	{25, "#ffcc00"},
	{30, "#ff9933"},
}

// HotColor is used at and above the last bucket bound.
const HotColor = "#ff3333"

// Description maps a weather code to its description, "Unknown" when unmapped.
func Description(code int) string {
	if d, ok := descriptionByCode[code]; ok {
		return d
	}
	return UnknownDescription
}

// Icon maps a weather code to a glyph.
func Icon(code int) string {
	if i, ok := iconByCode[code]; ok {
		return i
	}
	return UnknownIcon
}

// TemperatureColor maps a Celsius temperature to a hex colour.
func TemperatureColor(celsius float64) string {
	for _, b := range temperatureBuckets {
		if celsius < b.below {
			return b.color
		}
	}
	return HotColor
}

// KnownCodes returns every weather code with a description.
func KnownCodes() []int {
	codes := make([]int, 0, len(descriptionByCode))
	for code := range descriptionByCode {
		codes = append(codes, code)
	}
	return codes
}
