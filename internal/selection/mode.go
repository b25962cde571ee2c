package selection

import (
	"fmt"
	"strings"
)

// DisplayMode is how the caller lays out the zone list.
type DisplayMode int

const (
	Grid DisplayMode = iota
	List
	Compact
)

var displayModeNames = map[DisplayMode]string{
	Grid:    "Grid",
	List:    "List",
	Compact: "Compact",
}

func (m DisplayMode) String() string {
	if name, ok := displayModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("DisplayMode(%d)", int(m))
}

// ParseDisplayMode accepts a mode name, ignoring case.
func ParseDisplayMode(s string) (DisplayMode, error) {
	for mode, name := range displayModeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return mode, nil
		}
	}
	return Grid, fmt.Errorf("unknown display mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m DisplayMode) MarshalText() ([]byte, error) {
	if _, ok := displayModeNames[m]; !ok {
		return nil, fmt.Errorf("unknown display mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *DisplayMode) UnmarshalText(b []byte) error {
	parsed, err := ParseDisplayMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
