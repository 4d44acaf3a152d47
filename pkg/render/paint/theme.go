package paint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// Theme is the named palette shared by every renderer.
type Theme struct {
	Background      Color // canvas background
	Grid            Color // grid lines
	Border          Color
	Muted           Color
	MutedForeground Color
	Primary         Color
	Accent          Color
	Card            Color
	Label           Color // table label text
}

// DefaultTheme returns the light palette.
func DefaultTheme() Theme {
	return Theme{
		Background:      HSL(210, 40, 98),
		Grid:            HSL(214, 32, 91),
		Border:          HSL(214, 32, 80),
		Muted:           HSL(210, 40, 94),
		MutedForeground: HSL(215, 16, 47),
		Primary:         HSL(217, 91, 50),
		Accent:          HSL(142, 71, 45),
		Card:            HSL(0, 0, 100),
		Label:           HSL(0, 0, 100),
	}
}

func (t *Theme) slots() map[string]*Color {
	return map[string]*Color{
		"background":       &t.Background,
		"grid":             &t.Grid,
		"border":           &t.Border,
		"muted":            &t.Muted,
		"muted-foreground": &t.MutedForeground,
		"primary":          &t.Primary,
		"accent":           &t.Accent,
		"card":             &t.Card,
		"label":            &t.Label,
	}
}

// SlotNames lists the keys accepted by [Theme.Override], sorted.
func SlotNames() []string {
	var t Theme
	names := make([]string, 0, 9)
	for k := range t.slots() {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Override returns a copy of t with the named slots replaced by hex colours.
// Unknown slot names and malformed colours are reported as INVALID_CONFIG.
func (t Theme) Override(hex map[string]string) (Theme, error) {
	slots := t.slots()
	for _, name := range sortedKeys(hex) {
		dst, ok := slots[strings.ToLower(name)]
		if !ok {
			return t, errors.New(errors.ErrCodeInvalidConfig, "unknown theme slot %q (want one of %s)", name, strings.Join(SlotNames(), ", "))
		}
		c, err := ParseHex(hex[name])
		if err != nil {
			return t, errors.Wrap(errors.ErrCodeInvalidConfig, err, "theme slot %q", name)
		}
		*dst = c
	}
	return t, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// String lists the theme slots as name=hex pairs.
func (t Theme) String() string {
	slots := t.slots()
	parts := make([]string, 0, len(slots))
	for _, name := range SlotNames() {
		parts = append(parts, fmt.Sprintf("%s=%s", name, slots[name].Hex()))
	}
	return strings.Join(parts, " ")
}
