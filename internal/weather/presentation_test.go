package weather

import "testing"

func TestDescriptionCoversKnownCodes(t *testing.T) {
	for _, code := range KnownCodes() {
		if got := Description(code); got == UnknownDescription {
			t.Fatalf("code %d: expected a description, got %q", code, got)
		}
		if got := Icon(code); got == UnknownIcon {
			t.Fatalf("code %d: expected an icon, got %q", code, got)
		}
	}
}

func TestDescriptionUnmappedCodes(t *testing.T) {
	for _, code := range []int{-1, 4, 50, 100, 1000} {
		if got := Description(code); got != UnknownDescription {
			t.Fatalf("code %d: expected %q, got %q", code, UnknownDescription, got)
		}
		if got := Icon(code); got != UnknownIcon {
			t.Fatalf("code %d: expected %q, got %q", code, UnknownIcon, got)
		}
	}
}

func TestDescriptionGroups(t *testing.T) {
	tests := map[int]string{
		0:  "Clear sky",
		2:  "Partly cloudy",
		48: "Foggy",
		63: "Rain",
		77: "Snow grains",
		86: "Snow showers",
		95: "Thunderstorm",
		99: "Thunderstorm with hail",
	}
	for code, want := range tests {
		if got := Description(code); got != want {
			t.Fatalf("code %d: expected %q, got %q", code, want, got)
		}
	}
}

func TestTemperatureColorBuckets(t *testing.T) {
	tests := []struct {
		celsius float64
		want    string
	}{
		{-20, "#0066cc"},
		{-0.1, "#0066cc"},
		{0, "#3399ff"},
		{9.99, "#3399ff"},
		{10.0, "#66cc66"},
		{19.9, "#66cc66"},
		{20, "#ffcc00"},
		{25, "#ff9933"},
		{29.9, "#ff9933"},
		{30, HotColor},
		{45, HotColor},
	}
	for _, tt := range tests {
		if got := TemperatureColor(tt.celsius); got != tt.want {
			t.Fatalf("%.2f: expected %s, got %s", tt.celsius, tt.want, got)
		}
	}
}

func TestWeatherDataPresentation(t *testing.T) {
	d := WeatherData{Temperature: 22, WeatherCode: 61}
	if d.Description() != "Rain" || d.Icon() != "🌧️" || d.TemperatureColor() != "#ffcc00" {
		t.Fatalf("unexpected presentation: %q %q %q", d.Description(), d.Icon(), d.TemperatureColor())
	}
}
