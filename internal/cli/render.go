package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/i474232898/timezone-weather/internal/selection"
	"github.com/i474232898/timezone-weather/internal/timezone"
	"github.com/i474232898/timezone-weather/internal/weather"
)

// temperatureColors maps the weather colour buckets onto terminal colours.
var temperatureColors = map[string]color.Attribute{
	"#0066cc":        color.FgBlue,
	"#3399ff":        color.FgHiBlue,
	"#66cc66":        color.FgGreen,
	"#ffcc00":        color.FgYellow,
	"#ff9933":        color.FgHiRed,
	weather.HotColor: color.FgRed,
}

// painter colours text only when --color is set, and then regardless of
// whether stdout is a terminal.
type painter bool

func (p painter) paint(s string, attrs ...color.Attribute) string {
	if !p {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

func newTable(w io.Writer, colorEnabled bool) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false
	if colorEnabled {
		t.Style().Color.Header = text.Colors{text.FgHiBlue, text.Bold}
	}
	return t
}

func renderZones(w io.Writer, entries []timezone.Entry, selected func(string) bool, colorEnabled bool) {
	p := painter(colorEnabled)
	t := newTable(w, colorEnabled)
	t.AppendHeader(table.Row{"", "Zone", "Name"})
	for _, e := range entries {
		mark := ""
		if selected(e.ID) {
			mark = p.paint("*", color.FgGreen, color.Bold)
		}
		t.AppendRow(table.Row{mark, e.ID, e.DisplayName})
	}
	t.AppendFooter(table.Row{"", "Total", len(entries)})
	t.Render()
}

func workingLabel(working bool, p painter) string {
	if working {
		return p.paint("working", color.FgGreen)
	}
	return p.paint("off hours", color.FgHiBlack)
}

func renderTimes(w io.Writer, records []timezone.DisplayRecord, mode selection.DisplayMode, colorEnabled bool) {
	p := painter(colorEnabled)
	switch mode {
	case selection.List:
		for _, r := range records {
			fmt.Fprintf(w, "%s\n  %s  %s  %s\n", r.DisplayName, r.ZoneID,
				timezone.FormatTimeWithOffset(r.LocalTime, r.Zone.Location), workingLabel(r.IsWithinWorkingHours, p))
		}
	case selection.Compact:
		parts := make([]string, 0, len(records))
		for _, r := range records {
			clock := fmt.Sprintf("%02d:%02d", r.LocalTime.Hour, r.LocalTime.Minute)
			if r.IsWithinWorkingHours {
				clock = p.paint(clock+"*", color.FgGreen)
			}
			parts = append(parts, fmt.Sprintf("%s %s", r.ZoneID, clock))
		}
		fmt.Fprintln(w, strings.Join(parts, " | "))
	default:
		t := newTable(w, colorEnabled)
		t.AppendHeader(table.Row{"Zone", "Name", "Date", "Time", "Hours"})
		for _, r := range records {
			t.AppendRow(table.Row{
				r.ZoneID,
				r.DisplayName,
				fmt.Sprintf("%04d-%02d-%02d", r.LocalTime.Year, r.LocalTime.Month, r.LocalTime.Day),
				timezone.FormatTimeWithOffset(r.LocalTime, r.Zone.Location),
				workingLabel(r.IsWithinWorkingHours, p),
			})
		}
		t.Render()
	}
}

func temperatureLabel(d weather.WeatherData, p painter) string {
	if d.HasError {
		return p.paint("n/a", color.FgHiBlack)
	}
	return p.paint(fmt.Sprintf("%.1f°C", d.Temperature), temperatureColors[d.TemperatureColor()])
}

func conditionLabel(d weather.WeatherData) string {
	if d.HasError {
		return "unavailable"
	}
	return fmt.Sprintf("%s %s", d.Icon(), d.Description())
}

// renderWeather prints data in the order of ids; ids without data are skipped.
func renderWeather(w io.Writer, ids []string, data map[string]weather.WeatherData, mode selection.DisplayMode, colorEnabled bool) {
	p := painter(colorEnabled)
	switch mode {
	case selection.List:
		for _, id := range ids {
			d, ok := data[id]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "%s (%s)\n  %s  %s", d.LocationName, id, temperatureLabel(d, p), conditionLabel(d))
			if !d.HasError {
				fmt.Fprintf(w, "  wind %.1f km/h  humidity %.0f%%  precip %.1f mm", d.WindSpeed, d.Humidity, d.Precipitation)
			}
			fmt.Fprintln(w)
		}
	case selection.Compact:
		parts := make([]string, 0, len(ids))
		for _, id := range ids {
			if d, ok := data[id]; ok {
				parts = append(parts, fmt.Sprintf("%s %s", d.LocationName, temperatureLabel(d, p)))
			}
		}
		fmt.Fprintln(w, strings.Join(parts, " | "))
	default:
		t := newTable(w, colorEnabled)
		t.AppendHeader(table.Row{"Zone", "Location", "Temp", "Conditions", "Wind km/h", "Humidity %", "Observed"})
		for _, id := range ids {
			d, ok := data[id]
			if !ok {
				continue
			}
			row := table.Row{id, d.LocationName, temperatureLabel(d, p), conditionLabel(d), "", "", ""}
			if !d.HasError {
				row[4] = fmt.Sprintf("%.1f", d.WindSpeed)
				row[5] = fmt.Sprintf("%.0f", d.Humidity)
				row[6] = d.ObservationTime
			}
			t.AppendRow(row)
		}
		t.Render()
	}
}
