package httpapi

import (
	"time"

	"github.com/i474232898/timezone-weather/internal/timezone"
	"github.com/i474232898/timezone-weather/internal/weather"
)

type zoneView struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Selected    bool   `json:"selected"`
}

type referenceView struct {
	ZoneID      string             `json:"zoneId"`
	DisplayName string             `json:"displayName"`
	LocalTime   timezone.WallClock `json:"localTime"`
	Instant     time.Time          `json:"instant"`
}

type timeView struct {
	timezone.DisplayRecord
	Formatted string `json:"formatted"`
}

type timesResponse struct {
	Reference referenceView `json:"reference"`
	Times     []timeView    `json:"times"`
}

type weatherView struct {
	weather.WeatherData
	Description      string `json:"description"`
	Icon             string `json:"icon"`
	TemperatureColor string `json:"temperatureColor"`
}

func newWeatherView(d weather.WeatherData) weatherView {
	return weatherView{
		WeatherData:      d,
		Description:      d.Description(),
		Icon:             d.Icon(),
		TemperatureColor: d.TemperatureColor(),
	}
}

type selectionBody struct {
	ZoneIDs []string `json:"zoneIds" validate:"required,dive,required"`
}

type displayModeBody struct {
	Mode string `json:"mode" validate:"required,oneof=Grid List Compact"`
}
