package domain

// TimeOfDay buckets the workout start hour into the four day segments used
// throughout the time-of-day analyses.
type TimeOfDay int

const (
	Night     TimeOfDay = iota // 00:00–05:59
	Morning                    // 06:00–11:59
	Afternoon                  // 12:00–17:59
	Evening                    // 18:00–23:59
)

// TimeOfDayBuckets lists the buckets in canonical report order.
var TimeOfDayBuckets = []TimeOfDay{Night, Morning, Afternoon, Evening}

// TimeOfDayFor maps an hour of day (0–23) to its bucket.
func TimeOfDayFor(hour int) TimeOfDay {
	switch {
	case hour < 6:
		return Night
	case hour < 12:
		return Morning
	case hour < 18:
		return Afternoon
	default:
		return Evening
	}
}

func (t TimeOfDay) String() string {
	switch t {
	case Night:
		return "Night (0-6)"
	case Morning:
		return "Morning (6-12)"
	case Afternoon:
		return "Afternoon (12-18)"
	case Evening:
		return "Evening (18-24)"
	default:
		return "Unknown"
	}
}
