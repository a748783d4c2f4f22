package world

import "strings"

// LegacyActivity adapts a bare activity name from the old authoring
// format into a canonical Activity with fixed defaults. The engines only
// ever see the canonical shape.
func LegacyActivity(name string) Activity {
	id := "legacy_" + strings.Join(strings.Fields(strings.ToLower(name)), "_")
	return Activity{
		ID:          id,
		Name:        name,
		Description: "Enjoy " + strings.ToLower(name),
		VibeChange:  3,
		EventChance: 0.3,
	}
}
