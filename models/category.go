package models

// Category is the label assigned to a note by the keyword categorizer.
type Category string

const (
	CategoryGoals         Category = "goals"
	CategoryTasks         Category = "tasks"
	CategoryGarden        Category = "garden"
	CategorySpiritual     Category = "spiritual"
	CategoryHealth        Category = "health"
	CategoryHome          Category = "home"
	CategoryFinance       Category = "finance"
	CategoryRelationships Category = "relationships"
	CategoryLearning      Category = "learning"
	CategoryRandom        Category = "random"
)

// Categories lists every category in matching priority order.
// CategoryRandom is last and doubles as the default.
var Categories = []Category{
	CategoryGoals,
	CategoryTasks,
	CategoryGarden,
	CategorySpiritual,
	CategoryHealth,
	CategoryHome,
	CategoryFinance,
	CategoryRelationships,
	CategoryLearning,
	CategoryRandom,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
