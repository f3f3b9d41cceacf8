package vocabulary

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned for category names outside the fixed set
var ErrUnknownCategory = errors.New("unknown vocabulary category")

// Category identifies a vocabulary table
type Category string

const (
	Greetings Category = "greetings"
	Numbers   Category = "numbers"
	Colors    Category = "colors"

	Family          Category = "family"
	Food            Category = "food"
	Travel          Category = "travel"
	Emotions        Category = "emotions"
	DailyActivities Category = "daily_activities"
)

// Tier groups categories by difficulty
type Tier int

const (
	TierBasic Tier = iota
	TierIntermediate
)

// BasicCategories are offered by /vocabulary and /quiz
var BasicCategories = []Category{Greetings, Numbers, Colors}

// IntermediateCategories feed the daily words sampler
var IntermediateCategories = []Category{Family, Food, Travel, Emotions, DailyActivities}

// ParseCategory maps a name to a Category
func ParseCategory(name string) (Category, error) {
	c := Category(name)
	if _, ok := tables[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return c, nil
}

// Tier returns the tier the category belongs to
func (c Category) Tier() Tier {
	for _, ic := range IntermediateCategories {
		if ic == c {
			return TierIntermediate
		}
	}
	return TierBasic
}

// Title returns a capitalized display name
func (c Category) Title() string {
	switch c {
	case Greetings:
		return "Greetings"
	case Numbers:
		return "Numbers"
	case Colors:
		return "Colors"
	case Family:
		return "Family"
	case Food:
		return "Food"
	case Travel:
		return "Travel"
	case Emotions:
		return "Emotions"
	case DailyActivities:
		return "Daily Activities"
	default:
		return string(c)
	}
}

// Emoji returns the icon shown next to the category
func (c Category) Emoji() string {
	switch c {
	case Greetings:
		return "👋"
	case Numbers:
		return "🔢"
	case Colors:
		return "🎨"
	case Family:
		return "👨‍👩‍👧"
	case Food:
		return "🍝"
	case Travel:
		return "✈️"
	case Emotions:
		return "😊"
	case DailyActivities:
		return "⏰"
	default:
		return "📚"
	}
}
