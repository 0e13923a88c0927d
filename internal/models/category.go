package models

// Category identifies one of the six event categories. It is a closed
// enumeration: every operation that takes a Category switches over all six
// values, so adding or removing a category is a compile-time-visible change.
type Category string

const (
	CategoryFeeding   Category = "feedings"
	CategoryDiaper    Category = "diapers"
	CategorySleep     Category = "sleep"
	CategoryGrowth    Category = "growth"
	CategoryMedical   Category = "medical"
	CategoryMilestone Category = "milestones"
)

// AllCategories lists the six categories in their canonical order.
func AllCategories() []Category {
	return []Category{
		CategoryFeeding,
		CategoryDiaper,
		CategorySleep,
		CategoryGrowth,
		CategoryMedical,
		CategoryMilestone,
	}
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFeeding, CategoryDiaper, CategorySleep,
		CategoryGrowth, CategoryMedical, CategoryMilestone:
		return true
	}
	return false
}
