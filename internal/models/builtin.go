package models

const (
	colorRed    = "#d73027"
	colorYellow = "#fee08b"
)

// Builtin returns the default event-project register.
func Builtin() Register {
	return Register{
		{Name: "Hybrid Delivery", Severity: 80, Probability: 80, Color: colorRed, MarkerSize: DefaultMarkerSize},
		{Name: "Coordination", Severity: 60, Probability: 70, Color: colorYellow, MarkerSize: DefaultMarkerSize},
		{Name: "Speaker Budget", Severity: 50, Probability: 50, Color: colorYellow, MarkerSize: DefaultMarkerSize},
		{Name: "GDPR Compliance", Severity: 90, Probability: 20, Color: colorYellow, MarkerSize: DefaultMarkerSize},
		{Name: "Speaker Cancellation", Severity: 95, Probability: 15, Color: colorRed, MarkerSize: DefaultMarkerSize},
	}
}

// DefaultColor is used for entries loaded without a color.
const DefaultColor = colorYellow
