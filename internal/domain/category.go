package domain

// Category identifies one of the tracked activity kinds.
type Category string

const (
	CategoryFitness  Category = "fitness"
	CategoryEnglish  Category = "english"
	CategoryResearch Category = "research"
)

// Categories lists the activity categories in marker-priority order.
var Categories = []Category{CategoryFitness, CategoryEnglish, CategoryResearch}

const (
	markerFitness  = "💪"
	markerEnglish  = "🗣️" // with variation selector
	markerEnglish2 = "🗣"  // without variation selector
	markerResearch = "🔬"
	markerReading  = "📚"
)

// Marker returns the glyph that tags this category in submissions.
func (c Category) Marker() string {
	switch c {
	case CategoryFitness:
		return markerFitness
	case CategoryEnglish:
		return markerEnglish
	case CategoryResearch:
		return markerResearch
	}
	return ""
}

// Label returns the Korean label used in the weekly logs.
func (c Category) Label() string {
	switch c {
	case CategoryFitness:
		return "헬스"
	case CategoryEnglish:
		return "영어"
	case CategoryResearch:
		return "연구"
	}
	return string(c)
}

// Title returns the English display name used on the dashboard.
func (c Category) Title() string {
	switch c {
	case CategoryFitness:
		return "Fitness"
	case CategoryEnglish:
		return "English"
	case CategoryResearch:
		return "Research"
	}
	return string(c)
}

// WeeklyTarget returns the target number of active days per week.
func (c Category) WeeklyTarget() int {
	switch c {
	case CategoryFitness:
		return 3
	case CategoryEnglish:
		return 4
	case CategoryResearch:
		return 5
	}
	return 0
}
