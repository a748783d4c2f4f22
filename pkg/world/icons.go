package world

import "strings"

// activityIconKeywords maps an emoji to the name/description keywords
// that suggest it. First match in iteration order wins, so the slice
// keeps author intent stable.
var activityIconKeywords = []struct {
	icon     string
	keywords []string
}{
	{"🌲", []string{"hike", "nature", "walk", "trail", "forest", "mountain", "outdoor"}},
	{"🍽️", []string{"eat", "food", "restaurant", "dining", "meal", "breakfast", "lunch", "dinner"}},
	{"🎭", []string{"theater", "show", "performance", "play", "festival", "concert", "music"}},
	{"🏛️", []string{"museum", "history", "culture", "gallery", "exhibit", "tour"}},
	{"🏖️", []string{"beach", "ocean", "coast", "sand", "tide", "shore"}},
	{"🛒", []string{"shop", "shopping", "store", "market", "buy"}},
	{"🚶", []string{"visit", "explore", "wander", "stroll"}},
	{"🚗", []string{"drive", "road", "trip", "car", "route"}},
	{"🏕️", []string{"camp", "camping", "tent", "night", "fire"}},
	{"📸", []string{"photo", "picture", "camera", "view", "viewpoint", "lookout"}},
	{"🏃", []string{"run", "jog", "exercise", "sport"}},
	{"🛌", []string{"rest", "sleep", "motel", "hotel", "stay", "lodge"}},
	{"🎣", []string{"fish", "fishing", "catch", "river", "lake"}},
	{"☕", []string{"coffee", "tea", "cafe", "brew"}},
	{"🍺", []string{"beer", "brewery", "drink", "pub", "bar"}},
	{"🍦", []string{"ice cream", "dessert", "sweet", "treat"}},
}

const fallbackActivityIcon = "🔍"

var eventTypeIcons = map[EventType]string{
	EventPositive: "✨",
	EventNegative: "⚠️",
	EventNeutral:  "💬",
	EventUrgent:   "🚨",
}

// ActivityIcon picks an emoji for an activity from keywords in its name
// and description. Cosmetic data enrichment only.
func ActivityIcon(a Activity) string {
	text := strings.ToLower(a.Name) + " " + strings.ToLower(a.Description)
	for _, entry := range activityIconKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.icon
			}
		}
	}
	return fallbackActivityIcon
}

// EnrichLocationIcons fills in missing activity icons on a location.
func EnrichLocationIcons(loc *Location) {
	for i := range loc.Activities {
		if loc.Activities[i].Icon == "" {
			loc.Activities[i].Icon = ActivityIcon(loc.Activities[i])
		}
	}
}

// EnrichEventIcon fills in a missing event icon from its type.
func EnrichEventIcon(ev *Event) {
	if ev.Icon != "" {
		return
	}
	if icon, ok := eventTypeIcons[ev.Type]; ok {
		ev.Icon = icon
	} else {
		ev.Icon = eventTypeIcons[EventNeutral]
	}
}
