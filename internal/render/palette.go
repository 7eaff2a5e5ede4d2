package render

import (
	"regexp"
	"strings"
)

// Color is a palette entry: the bar fill and the phase header text color.
type Color struct {
	Key    string
	Bar    string
	Header string
}

// DefaultColorKey is used for keys the palette does not know.
const DefaultColorKey = "planning"

// Palette is ordered so generated styles are stable.
var Palette = []Color{
	{Key: "planning", Bar: "#2196f3", Header: "#1976d2"},
	{Key: "design", Bar: "#ff9800", Header: "#f57c00"},
	{Key: "development", Bar: "#ff5722", Header: "#ff5722"},
	{Key: "launch", Bar: "#00bfa5", Header: "#00bfa5"},
	{Key: "testing", Bar: "#9c27b0", Header: "#7b1fa2"},
	{Key: "research", Bar: "#607d8b", Header: "#455a64"},
	{Key: "deployment", Bar: "#4caf50", Header: "#388e3c"},
	{Key: "review", Bar: "#03a9f4", Header: "#0288d1"},
}

var reHexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ResolveColor maps a color key to its palette entry, ignoring case.
// Unknown keys resolve to the planning entry.
func ResolveColor(key string) Color {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, c := range Palette {
		if c.Key == key {
			return c
		}
	}
	return Palette[0]
}

// ColorKeys lists the palette keys in order.
func ColorKeys() []string {
	keys := make([]string, len(Palette))
	for i, c := range Palette {
		keys[i] = c.Key
	}
	return keys
}

func isHexColor(s string) bool {
	return reHexColor.MatchString(s)
}
