package domain

// ColorTemperature is the visual mood tag of a suite
type ColorTemperature string

const (
	ColorCool    ColorTemperature = "cool"
	ColorWarm    ColorTemperature = "warm"
	ColorNeutral ColorTemperature = "neutral"
	ColorMuted   ColorTemperature = "muted"
)

// IsValid reports whether the tag is one of the known temperatures
func (c ColorTemperature) IsValid() bool {
	switch c {
	case ColorCool, ColorWarm, ColorNeutral, ColorMuted:
		return true
	}
	return false
}

// Suite is a bookable unit in the catalog. Suites are loaded once at startup
// and never mutated afterwards.
type Suite struct {
	ID          string           `toml:"id"`
	Name        string           `toml:"name"`
	Tagline     string           `toml:"tagline"`
	Image       string           `toml:"image"`
	Highlights  []string         `toml:"highlights"`
	WeeklyRate  float64          `toml:"weekly_rate"`
	MonthlyRate float64          `toml:"monthly_rate"`
	Available   bool             `toml:"available"`
	ColorTemp   ColorTemperature `toml:"color_temp"`
	LastBooked  string           `toml:"last_booked"`
	IsHourly    bool             `toml:"is_hourly"`
}
