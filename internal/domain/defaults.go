package domain

const (
	DefaultCalorieGoal    = 1645
	DefaultBMR            = 1600
	DefaultBurnRate       = 6.0
	DefaultRestSeconds    = 90
	DefaultRecentSessions = 10
)

func DefaultGoals() Goals {
	return Goals{Calories: DefaultCalorieGoal, Carbs: 160, Protein: 150, Fat: 45, Fiber: 38}
}

// StarterCatalog is the fixed seed library used when nothing was persisted yet.
func StarterCatalog() Catalog {
	return Catalog{
		{ID: "1", Name: "Egg Whites", Unit: UnitMass, Nutrients: Nutrients{Protein: 11.7}},
		{ID: "2", Name: "Greek Yogurt", Unit: UnitMass, Nutrients: Nutrients{Carbs: 3.5, Protein: 9.4}},
		{ID: "3", Name: "Banana", Unit: UnitMass, Nutrients: Nutrients{Carbs: 23, Protein: 1, Fat: 0.3, Fiber: 2.6}},
		{ID: "4", Name: "Whole Egg", Unit: UnitCount, Nutrients: Nutrients{Carbs: 0.6, Protein: 6, Fat: 5}},
		{ID: "5", Name: "Salmon (Raw)", Unit: UnitMass, Nutrients: Nutrients{Protein: 22, Fat: 12}},
		{ID: "6", Name: "Garbanzo Beans", Unit: UnitMass, Nutrients: Nutrients{Carbs: 17, Protein: 5, Fat: 1.5, Fiber: 5}},
		{ID: "7", Name: "Corn", Unit: UnitMass, Nutrients: Nutrients{Carbs: 7, Protein: 0.8, Fat: 0.4, Fiber: 2}},
		{ID: "8", Name: "Mixed Berries", Unit: UnitMass, Nutrients: Nutrients{Carbs: 9, Protein: 0.5, Fiber: 3}},
		{ID: "9", Name: "Avocado", Unit: UnitMass, Nutrients: Nutrients{Carbs: 8.5, Protein: 2, Fat: 14.7, Fiber: 6.7}},
		{ID: "10", Name: "Chicken Breast", Unit: UnitMass, Nutrients: Nutrients{Protein: 31, Fat: 3.6}},
	}
}

func DefaultRoutines() []Routine {
	return []Routine{
		{
			ID:   "A",
			Name: "Workout A (Push Focus)",
			Exercises: []RoutineExercise{
				{Name: "DB Incline Bench", Sets: 3, Target: "3 x 6-8"},
				{Name: "DB Goblet Squats", Sets: 3, Target: "3 x 8-10"},
				{Name: "Lateral Raises", Sets: 4, Target: "4 x 12-15"},
				{Name: "Tricep Ext.", Sets: 3, Target: "3 x 10-12"},
			},
		},
		{
			ID:   "B",
			Name: "Workout B (Pull Focus)",
			Exercises: []RoutineExercise{
				{Name: "DB Romanian DL", Sets: 3, Target: "3 x 6-8"},
				{Name: "Row/Pulldown", Sets: 3, Target: "3 x 8-10"},
				{Name: "Rear Delt Fly", Sets: 3, Target: "3 x 15"},
				{Name: "Bicep Curls", Sets: 3, Target: "3 x 10-12"},
			},
		},
	}
}
