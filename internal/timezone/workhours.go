package timezone

// Working hours are the half-open local interval [09:00, 17:00).
const (
	WorkdayStartHour = 9
	WorkdayEndHour   = 17
)

// IsWorkingHours reports whether a local hour falls inside working hours.
func IsWorkingHours(hour int) bool {
	return hour >= WorkdayStartHour && hour < WorkdayEndHour
}
