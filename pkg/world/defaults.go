package world

// DefaultLocations is the stock Oregon travel graph, used to seed empty
// storage and as the fallback when storage cannot be read.
func DefaultLocations() []*Location {
	return []*Location{
		{
			ID:            "Portland",
			Name:          "Portland, Rose City",
			Description:   `A vibrant city known for its food trucks, coffee culture, and quirky "Keep Portland Weird" spirit.`,
			Icon:          "🏙️",
			Connections:   map[string]int{"Salem": 5, "Cannon Beach": 4, "Mount Hood": 3, "The Dalles": 5},
			ActivityNames: []string{"Visit Powell's Books", "Grab Voodoo Doughnuts"},
			EventChance:   0.2,
		},
		{
			ID:            "Salem",
			Name:          "Salem, The Capital",
			Description:   "Oregon's state capital, home to government buildings and historic sites.",
			Icon:          "🏛️",
			Connections:   map[string]int{"Portland": 5, "Eugene": 6},
			ActivityNames: []string{"Tour the State Capitol"},
			EventChance:   0.15,
		},
		{
			ID:            "Eugene",
			Name:          "Eugene, Track Town USA",
			Description:   "Home to the University of Oregon and legendary track and field programs.",
			Icon:          "🌲",
			Connections:   map[string]int{"Salem": 6, "Ashland": 10, "Bend": 8},
			ActivityNames: []string{"Run Pre's Trail"},
			EventChance:   0.2,
		},
		{
			ID:            "Ashland",
			Name:          "Ashland, Shakespeare's Town",
			Description:   "Famous for the Oregon Shakespeare Festival and artistic community.",
			Icon:          "🎭",
			Connections:   map[string]int{"Eugene": 10, "Crater Lake": 7},
			ActivityNames: []string{"Catch a play"},
			EventChance:   0.1,
		},
		{
			ID:            "Bend",
			Name:          "Bend, Outdoor Paradise",
			Description:   "A haven for outdoor enthusiasts with skiing, hiking, and craft beer.",
			Icon:          "🏞️",
			Connections:   map[string]int{"Eugene": 8, "Crater Lake": 6, "John Day Fossil Beds": 9},
			ActivityNames: []string{"Hike Pilot Butte"},
			EventChance:   0.25,
		},
		{
			ID:            "Crater Lake",
			Name:          "Crater Lake National Park",
			Description:   "Breathtakingly deep blue lake formed in a volcanic caldera.",
			Icon:          "🌋",
			Connections:   map[string]int{"Ashland": 7, "Bend": 6},
			ActivityNames: []string{"Drive the Rim Village"},
			EventChance:   0.3,
		},
		{
			ID:            "Cannon Beach",
			Name:          "Cannon Beach, Coastal Gem",
			Description:   "Iconic Haystack Rock and pristine Pacific coastline.",
			Icon:          "🏖️",
			Connections:   map[string]int{"Portland": 4},
			ActivityNames: []string{"Explore tide pools"},
			EventChance:   0.2,
		},
		{
			ID:            "Mount Hood",
			Name:          "Mount Hood, Majestic Peak",
			Description:   "Oregon's highest peak, perfect for skiing and mountaineering.",
			Icon:          "🏔️",
			Connections:   map[string]int{"Portland": 3, "The Dalles": 4},
			ActivityNames: []string{"Visit Timberline Lodge"},
			EventChance:   0.25,
		},
		{
			ID:            "The Dalles",
			Name:          "The Dalles, Historic Rivertown",
			Description:   "Historic town on the Columbia River with rich pioneer history.",
			Icon:          "🛶",
			Connections:   map[string]int{"Portland": 5, "Mount Hood": 4},
			ActivityNames: []string{"Visit Columbia Gorge Discovery Center"},
			EventChance:   0.15,
		},
		{
			ID:            "John Day Fossil Beds",
			Name:          "John Day Fossil Beds",
			Description:   "Journey back in time through colorful painted hills and ancient fossils.",
			Icon:          "🦴",
			Connections:   map[string]int{"Bend": 9},
			ActivityNames: []string{"Hike the Painted Hills"},
			EventChance:   0.3,
		},
	}
}

// DefaultEvents is the stock ambient event catalog.
func DefaultEvents() []Event {
	return []Event{
		{
			ID:         "GOOD_WEATHER",
			Type:       EventPositive,
			Message:    "Beautiful sunny skies! Everyone's feeling great.",
			VibeChange: 10,
		},
		{
			ID:          "FOUND_SNACKS",
			Type:        EventPositive,
			Message:     "You found a forgotten bag of trail mix!",
			VibeChange:  5,
			SnackChange: 2,
		},
		{
			ID:         "LOCAL_TIP",
			Type:       EventNeutral,
			Message:    "A friendly local gave you a tip about a hidden gem.",
			VibeChange: 5,
		},
		{
			ID:         "RAINY_DAY",
			Type:       EventNegative,
			Message:    "It's pouring rain. Dampens the mood.",
			VibeChange: -5,
		},
		{
			ID:              "POTHOLE",
			Type:            EventNegative,
			Message:         "Ouch! Hit a nasty pothole.",
			VibeChange:      -5,
			CarHealthChange: -5,
		},
		{
			ID:          "FRIENDLY_STRANGER",
			Type:        EventPositive,
			Message:     "A kind stranger offers you some homemade cookies!",
			VibeChange:  8,
			SnackChange: 1,
		},
		{
			ID:              "CAR_TROUBLE",
			Type:            EventNegative,
			Message:         "Your car makes a concerning noise. Time for some maintenance.",
			CarHealthChange: -10,
			VibeChange:      -3,
		},
		{
			ID:         "SCENIC_VIEW",
			Type:       EventPositive,
			Message:    "You stop at a breathtaking viewpoint. Oregon's beauty lifts your spirits!",
			VibeChange: 12,
		},
		{
			ID:         "TRAFFIC_JAM",
			Type:       EventNegative,
			Message:    "Stuck in unexpected traffic. This is frustrating!",
			VibeChange: -8,
			FuelChange: -2,
		},
		{
			ID:              "ROADSIDE_ASSISTANCE",
			Type:            EventPositive,
			Message:         "AAA shows up just when you need them most!",
			CarHealthChange: 15,
			VibeChange:      5,
		},
	}
}

// DefaultWorld builds a World from the stock data.
func DefaultWorld() *World {
	return New(DefaultLocations(), DefaultEvents())
}
