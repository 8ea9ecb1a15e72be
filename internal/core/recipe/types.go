package recipe

import "time"

// Recipe is one stored recipe record. Records are immutable once added;
// consumers must not mutate the slices they receive.
type Recipe struct {
	ID              string     `json:"id"`
	Slug            string     `json:"slug,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Category        string     `json:"category,omitempty"`
	Tags            StringList `json:"tags"`
	DurationMinutes int        `json:"duration_minutes,omitempty"`
	Difficulty      string     `json:"difficulty,omitempty"`
	Servings        int        `json:"servings,omitempty"`
	Ingredients     StringList `json:"ingredients"`
	Steps           StringList `json:"steps,omitempty"`
	Calories        *float64   `json:"calories,omitempty"`
	Protein         *float64   `json:"protein,omitempty"`
	Carbs           *float64   `json:"carbs,omitempty"`
	Fat             *float64   `json:"fat,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// HasMacros reports whether at least one macro field is present.
func (r Recipe) HasMacros() bool {
	return r.Calories != nil || r.Protein != nil || r.Carbs != nil || r.Fat != nil
}

// MacroValue dereferences an optional macro field, treating absence as zero.
func MacroValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
