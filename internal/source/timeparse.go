package source

import "time"

// Timestamp layouts seen across the news APIs, tried in order.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000000Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime is tolerant of the layout drift between providers. An
// unparseable value falls back to now so sorting stays stable.
func parseTime(value string) time.Time {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Now().UTC()
}
