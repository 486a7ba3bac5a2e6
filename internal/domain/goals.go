package domain

type Goals struct {
	Calories int
	Carbs    float64
	Protein  float64
	Fat      float64
	Fiber    float64
}

type MacroProgress struct {
	Name   string
	Eaten  float64
	Target float64
}

// Over reports whether more than the target has been eaten.
func (p MacroProgress) Over() bool {
	return p.Target > 0 && p.Eaten > p.Target
}

// Percent is Eaten relative to Target, clamped to [0, 100].
func (p MacroProgress) Percent() float64 {
	if p.Target <= 0 {
		return 0
	}
	pct := p.Eaten / p.Target * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func (g Goals) Progress(totals Nutrients) []MacroProgress {
	return []MacroProgress{
		{Name: "Carbs", Eaten: totals.Carbs, Target: g.Carbs},
		{Name: "Protein", Eaten: totals.Protein, Target: g.Protein},
		{Name: "Fat", Eaten: totals.Fat, Target: g.Fat},
		{Name: "Fiber", Eaten: totals.Fiber, Target: g.Fiber},
	}
}
