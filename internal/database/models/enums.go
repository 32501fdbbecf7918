package models

// EventType is the outcome of a single plate appearance
type EventType string

const (
	EventTypeGenericOut      EventType = "Generic out"
	EventTypeStrikeout       EventType = "Strikeout"
	EventTypeWalk            EventType = "Walk"
	EventTypeIntentionalWalk EventType = "Intentional walk"
	EventTypeHitByPitch      EventType = "Hit by pitch"
	EventTypeError           EventType = "Error"
	EventTypeFieldersChoice  EventType = "Fielder's choice"
	EventTypeSacrifice       EventType = "Sacrifice"
	EventTypeSingle          EventType = "Single"
	EventTypeDouble          EventType = "Double"
	EventTypeTriple          EventType = "Triple"
	EventTypeHomeRun         EventType = "Home run"
)

// AllEventTypes lists every plate-appearance outcome stored in the events table
var AllEventTypes = []EventType{
	EventTypeGenericOut,
	EventTypeStrikeout,
	EventTypeWalk,
	EventTypeIntentionalWalk,
	EventTypeHitByPitch,
	EventTypeError,
	EventTypeFieldersChoice,
	EventTypeSacrifice,
	EventTypeSingle,
	EventTypeDouble,
	EventTypeTriple,
	EventTypeHomeRun,
}

// IsValid checks if the EventType is valid
func (e EventType) IsValid() bool {
	for _, t := range AllEventTypes {
		if e == t {
			return true
		}
	}
	return false
}

// IsHit reports whether the outcome is a base hit
func (e EventType) IsHit() bool {
	switch e {
	case EventTypeSingle, EventTypeDouble, EventTypeTriple, EventTypeHomeRun:
		return true
	}
	return false
}

// IsWalk reports whether the outcome is a base on balls, intentional or not
func (e EventType) IsWalk() bool {
	return e == EventTypeWalk || e == EventTypeIntentionalWalk
}

// IsAtBat reports whether the plate appearance counts as an official at-bat.
// Walks, hit-by-pitch and sacrifices do not.
func (e EventType) IsAtBat() bool {
	if e.IsHit() {
		return true
	}
	switch e {
	case EventTypeStrikeout, EventTypeGenericOut, EventTypeError, EventTypeFieldersChoice:
		return true
	}
	return false
}

// HitEventTypes returns the outcomes counted as hits
func HitEventTypes() []EventType {
	return filterEventTypes(EventType.IsHit)
}

// AtBatEventTypes returns the outcomes counted as official at-bats
func AtBatEventTypes() []EventType {
	return filterEventTypes(EventType.IsAtBat)
}

// WalkEventTypes returns the outcomes counted as walks
func WalkEventTypes() []EventType {
	return filterEventTypes(EventType.IsWalk)
}

func filterEventTypes(keep func(EventType) bool) []EventType {
	var out []EventType
	for _, t := range AllEventTypes {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Hand is a batting side or throwing arm
type Hand string

const (
	HandLeft  Hand = "L"
	HandRight Hand = "R"
	HandBoth  Hand = "B"
)

// IsValid checks if the Hand is valid
func (h Hand) IsValid() bool {
	switch h {
	case HandLeft, HandRight, HandBoth:
		return true
	}
	return false
}

// Venue selects which side of a matchup a team report covers
type Venue string

const (
	VenueAll  Venue = ""
	VenueHome Venue = "home"
	VenueAway Venue = "away"
)

// IsValid checks if the Venue is valid
func (v Venue) IsValid() bool {
	switch v {
	case VenueAll, VenueHome, VenueAway:
		return true
	}
	return false
}
