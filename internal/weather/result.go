package weather

// Outcome tags how a fetch ended.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeUnlocated
	OutcomeFetchFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeUnlocated:
		return "unlocated"
	case OutcomeFetchFailed:
		return "fetch_failed"
	default:
		return "unknown"
	}
}

// Result keeps the failure cause that WeatherData flattens into HasError.
type Result struct {
	Data    WeatherData
	Outcome Outcome
	Err     error
}
