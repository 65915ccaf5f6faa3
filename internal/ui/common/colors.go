package common

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// ContextualColors is the fixed palette used to tint contextual categories.
// Categories added without an explicit color cycle through it in order.
var ContextualColors = []color.Color{
	lipgloss.Color("#C9599C"), // rose
	lipgloss.Color("#F2CB1D"), // yellow
	lipgloss.Color("#FF9D00"), // orange
	lipgloss.Color("#0E51A7"), // blue
	lipgloss.Color("#E40045"), // red
	lipgloss.Color("#439400"), // green
}
