// Package pricing holds the static rate table and the display-only cost
// estimator behind the pricing page. Nothing here is persisted; the final
// price is always settled by a manual quote.
package pricing

// Range is a cost band in whole dollars. Min <= Max always holds for every
// range produced by this package.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Estimate modes.
const (
	ModeHourly  = "hourly"
	ModeProject = "project"
	ModeFlat    = "flat"
)

// Project durations for ModeProject.
const (
	DurationHalfDay = "half_day"
	DurationFullDay = "full_day"
)

// Hourly rate bounds in dollars per hour.
const (
	MinHourlyRate = 75
	MaxHourlyRate = 110
)

// Hours accepted by the hourly estimator; out-of-range input is clamped.
const (
	MinHours = 1
	MaxHours = 40
)

// HourlyRate is the standard labor band.
var HourlyRate = Range{Min: MinHourlyRate, Max: MaxHourlyRate}

// ProjectRates maps a project duration to its fixed band.
var ProjectRates = map[string]Range{
	DurationHalfDay: {Min: 300, Max: 400},
	DurationFullDay: {Min: 600, Max: 750},
}

// FlatRates maps a flat-rate job key to its fixed band.
var FlatRates = map[string]Range{
	"toilet_replacement": {Min: 150, Max: 250},
	"vanity_install":     {Min: 300, Max: 600},
	"backsplash_small":   {Min: 400, Max: 900},
	"dishwasher_install": {Min: 200, Max: 350},
}

// Hourly returns the band for the given number of hours. Hours outside
// [MinHours, MaxHours] are clamped into range.
func Hourly(hours int) Range {
	if hours < MinHours {
		hours = MinHours
	}
	if hours > MaxHours {
		hours = MaxHours
	}
	return Range{Min: HourlyRate.Min * hours, Max: HourlyRate.Max * hours}
}

// Project returns the fixed band for a half-day or full-day booking.
// Unknown durations yield nil.
func Project(duration string) *Range {
	if r, ok := ProjectRates[duration]; ok {
		return &r
	}
	return nil
}

// Flat returns the fixed band for an enumerated flat-rate job.
// Unknown keys yield nil.
func Flat(serviceKey string) *Range {
	if r, ok := FlatRates[serviceKey]; ok {
		return &r
	}
	return nil
}

// Estimate resolves a mode plus its parameter to a band. A missing mode or
// an unresolved parameter returns nil — no estimate, not an error.
func Estimate(mode string, hours int, duration, serviceKey string) *Range {
	switch mode {
	case ModeHourly:
		if hours == 0 {
			return nil
		}
		r := Hourly(hours)
		return &r
	case ModeProject:
		return Project(duration)
	case ModeFlat:
		return Flat(serviceKey)
	}
	return nil
}
