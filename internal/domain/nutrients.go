package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

type Nutrients struct {
	Carbs   float64
	Protein float64
	Fat     float64
	Fiber   float64
}

func (n Nutrients) Add(other Nutrients) Nutrients {
	return Nutrients{
		Carbs:   n.Carbs + other.Carbs,
		Protein: n.Protein + other.Protein,
		Fat:     n.Fat + other.Fat,
		Fiber:   n.Fiber + other.Fiber,
	}
}

// Scale multiplies every nutrient by ratio and rounds each to one decimal place.
func (n Nutrients) Scale(ratio float64) Nutrients {
	return Nutrients{
		Carbs:   round1(n.Carbs * ratio),
		Protein: round1(n.Protein * ratio),
		Fat:     round1(n.Fat * ratio),
		Fiber:   round1(n.Fiber * ratio),
	}
}

func (n Nutrients) Round() Nutrients {
	return n.Scale(1)
}

func (n Nutrients) Calories() int {
	return CaloriesFromMacros(n.Carbs, n.Protein, n.Fat)
}

func (n Nutrients) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"carbs", n.Carbs},
		{"protein", n.Protein},
		{"fat", n.Fat},
		{"fiber", n.Fiber},
	}
	for _, f := range fields {
		if !isFinite(f.value) {
			return invalid(f.name, "must be a number")
		}
		if f.value < 0 {
			return invalid(f.name, "must not be negative, got %v", f.value)
		}
	}

	return nil
}

// CaloriesFromMacros is the single calorie formula: 4 kcal/g carbs and protein,
// 9 kcal/g fat, rounded to the nearest whole calorie.
func CaloriesFromMacros(carbs, protein, fat float64) int {
	return int(math.Round(carbs*4 + protein*4 + fat*9))
}

func round1(v float64) float64 {
	if !isFinite(v) {
		return v
	}

	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
