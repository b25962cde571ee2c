package httpapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/timezone-weather/internal/common"
	"github.com/i474232898/timezone-weather/internal/logger"
	"github.com/i474232898/timezone-weather/internal/selection"
	"github.com/i474232898/timezone-weather/internal/timezone"
	"github.com/i474232898/timezone-weather/internal/weather"
)

var validate = validator.New()

// Deps are the components the handlers read from.
type Deps struct {
	Zones     timezone.Provider
	Catalog   *timezone.Catalog
	Converter *timezone.Converter
	Session   *selection.Session
	Weather   *weather.Service

	// ReferenceZone is used when a request names none.
	ReferenceZone string
	Now           func() time.Time
	Log           *logger.Logger
}

type handler struct {
	Deps
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.ReferenceZone == "" {
		deps.ReferenceZone = timezone.UTC.ID
	}
	h := &handler{Deps: deps}

	v1 := app.Group("/api/v1")

	v1.Get("/zones", h.listZones)
	v1.Get("/times", h.times)

	v1.Get("/selection", h.getSelection)
	v1.Put("/selection", h.putSelection)

	v1.Get("/display-mode", h.getDisplayMode)
	v1.Put("/display-mode", h.putDisplayMode)

	v1.Get("/weather", h.weather)
	v1.Get("/weather/board", h.weatherBoard)
}

// listZones returns the catalog, optionally filtered by ?q= on ID or name.
func (h *handler) listZones(c *fiber.Ctx) error {
	q := c.Query("q")
	entries := h.Catalog.List()
	out := make([]zoneView, 0, len(entries))
	for _, e := range entries {
		if !common.MatchesAny(q, e.ID, e.DisplayName) {
			continue
		}
		out = append(out, zoneView{ID: e.ID, DisplayName: e.DisplayName, Selected: h.Session.IsSelected(e.ID)})
	}
	return c.JSON(out)
}

// times converts a reference reading (default: now in the reference zone)
// onto the requested targets (default: the selection).
func (h *handler) times(c *fiber.Ctx) error {
	refZoneID := c.Query("zone", h.ReferenceZone)
	refZone := h.Converter.ReferenceZone(refZoneID)

	var ref timezone.WallClock
	if raw := c.Query("reference"); raw != "" {
		parsed, err := timezone.ParseWallClock(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		ref = parsed
	} else {
		ref = timezone.DefaultReferenceTime(h.Zones, refZone.ID, h.Now())
	}

	targets := splitList(c.Query("targets"))
	if len(targets) == 0 {
		targets = h.Session.Selected()
	}

	records := h.Converter.Convert(ref, refZone.ID, targets)
	if missing := timezone.Missing(targets, records); len(missing) > 0 {
		h.Log.Debugw("skipped unresolved zones", "zones", missing)
	}

	views := make([]timeView, 0, len(records))
	for _, r := range records {
		views = append(views, timeView{
			DisplayRecord: r,
			Formatted:     timezone.FormatTimeWithOffset(r.LocalTime, r.Zone.Location),
		})
	}

	return c.JSON(timesResponse{
		Reference: referenceView{
			ZoneID:      refZone.ID,
			DisplayName: refZone.DisplayName,
			LocalTime:   ref,
			Instant:     h.Converter.Instant(ref, refZone.ID),
		},
		Times: views,
	})
}

func (h *handler) getSelection(c *fiber.Ctx) error {
	return c.JSON(selectionBody{ZoneIDs: h.Session.Selected()})
}

func (h *handler) putSelection(c *fiber.Ctx) error {
	var req selectionBody
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var unknown []string
	for _, id := range req.ZoneIDs {
		if !h.Catalog.Contains(id) {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown zones: %s", strings.Join(unknown, ", ")))
	}

	if err := h.Session.SetSelected(c.UserContext(), req.ZoneIDs); err != nil {
		h.Log.Warnw("selection not persisted", "error", err)
	}
	return c.JSON(selectionBody{ZoneIDs: h.Session.Selected()})
}

func (h *handler) getDisplayMode(c *fiber.Ctx) error {
	return c.JSON(displayModeBody{Mode: h.Session.DisplayMode().String()})
}

func (h *handler) putDisplayMode(c *fiber.Ctx) error {
	var req displayModeBody
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	mode, err := selection.ParseDisplayMode(req.Mode)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.Session.SetDisplayMode(c.UserContext(), mode); err != nil {
		h.Log.Warnw("display mode not persisted", "error", err)
	}
	return c.JSON(displayModeBody{Mode: h.Session.DisplayMode().String()})
}

func (h *handler) weather(c *fiber.Ctx) error {
	zoneID := c.Query("zone")
	if err := validate.Var(zoneID, "required"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "zone query parameter is required")
	}
	return c.JSON(newWeatherView(h.Weather.Fetch(c.UserContext(), zoneID)))
}

// weatherBoard fetches every selected zone concurrently.
func (h *handler) weatherBoard(c *fiber.Ctx) error {
	ids := h.Session.Selected()
	data := h.Weather.FetchAll(c.UserContext(), ids)

	out := make([]weatherView, 0, len(ids))
	for _, id := range ids {
		if d, ok := data[id]; ok {
			out = append(out, newWeatherView(d))
		}
	}
	return c.JSON(fiber.Map{
		"mode":    h.Session.DisplayMode().String(),
		"weather": out,
	})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
