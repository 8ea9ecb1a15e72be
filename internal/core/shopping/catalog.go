package shopping

import "strings"

// MacroProfile is the calories/protein/carbs/fat composition of a food.
// Values are per reference unit; zero means unknown.
type MacroProfile struct {
	Calories float64 `json:"calories,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
	Fat      float64 `json:"fat,omitempty"`
}

// CatalogEntry is one known ingredient with a fixed store price.
type CatalogEntry struct {
	Keywords  []string
	Label     string
	Unit      string
	Price     float64
	Category  CategoryID
	Nutrition MacroProfile
}

// Catalog is the static price reference, matched in declaration order
// against normalized ingredient labels. First match wins. Its category
// assignment takes precedence over the keyword categorizer.
var Catalog = []CatalogEntry{
	{
		Keywords:  []string{"poulet", "blanc de poulet", "filet de poulet"},
		Label:     "Poulet fermier",
		Unit:      "500 g",
		Price:     6.5,
		Category:  CategoryProtein,
		Nutrition: MacroProfile{Protein: 31, Fat: 3, Calories: 165},
	},
	{
		Keywords:  []string{"saumon"},
		Label:     "Saumon",
		Unit:      "2 pavés",
		Price:     8.2,
		Category:  CategoryProtein,
		Nutrition: MacroProfile{Protein: 25, Fat: 12, Calories: 208},
	},
	{
		Keywords:  []string{"tofu"},
		Label:     "Tofu",
		Unit:      "400 g",
		Price:     3.1,
		Category:  CategoryProtein,
		Nutrition: MacroProfile{Protein: 12, Fat: 8, Calories: 145},
	},
	{
		Keywords:  []string{"riz", "riz blanc", "riz basmati"},
		Label:     "Riz",
		Unit:      "500 g",
		Price:     1.9,
		Category:  CategoryGrocery,
		Nutrition: MacroProfile{Carbs: 78, Calories: 350},
	},
	{
		Keywords:  []string{"pates", "pate", "spaghetti"},
		Label:     "Pâtes",
		Unit:      "500 g",
		Price:     1.6,
		Category:  CategoryGrocery,
		Nutrition: MacroProfile{Carbs: 75, Protein: 13, Calories: 350},
	},
	{
		Keywords:  []string{"quinoa"},
		Label:     "Quinoa",
		Unit:      "400 g",
		Price:     3.8,
		Category:  CategoryGrocery,
		Nutrition: MacroProfile{Protein: 14, Carbs: 64, Fat: 6, Calories: 368},
	},
	{
		Keywords:  []string{"tomate", "tomates"},
		Label:     "Tomates",
		Unit:      "500 g",
		Price:     2.3,
		Category:  CategoryProduce,
		Nutrition: MacroProfile{Carbs: 4, Calories: 18},
	},
	{
		Keywords:  []string{"courgette"},
		Label:     "Courgettes",
		Unit:      "500 g",
		Price:     1.8,
		Category:  CategoryProduce,
		Nutrition: MacroProfile{Carbs: 3, Calories: 17},
	},
	{
		Keywords:  []string{"poivron", "poivrons"},
		Label:     "Poivrons rouges",
		Unit:      "3 pièces",
		Price:     2.5,
		Category:  CategoryProduce,
		Nutrition: MacroProfile{Carbs: 6, Calories: 26},
	},
	{
		Keywords:  []string{"oignon", "oignons"},
		Label:     "Oignons jaunes",
		Unit:      "1 kg",
		Price:     2.1,
		Category:  CategoryProduce,
		Nutrition: MacroProfile{Carbs: 9, Calories: 40},
	},
	{
		Keywords:  []string{"citron"},
		Label:     "Citron",
		Unit:      "4 pièces",
		Price:     1.6,
		Category:  CategoryProduce,
		Nutrition: MacroProfile{Carbs: 3, Calories: 29},
	},
	{
		Keywords:  []string{"creme", "crème"},
		Label:     "Crème liquide",
		Unit:      "20 cl",
		Price:     1.2,
		Category:  CategoryDairy,
		Nutrition: MacroProfile{Fat: 30, Calories: 292},
	},
	{
		Keywords:  []string{"beurre"},
		Label:     "Beurre doux",
		Unit:      "250 g",
		Price:     2.5,
		Category:  CategoryDairy,
		Nutrition: MacroProfile{Fat: 82, Calories: 717},
	},
	{
		Keywords:  []string{"fromage", "parmesan"},
		Label:     "Parmesan",
		Unit:      "150 g",
		Price:     3.9,
		Category:  CategoryDairy,
		Nutrition: MacroProfile{Protein: 35, Fat: 28, Calories: 400},
	},
	{
		Keywords:  []string{"oeuf", "oeufs"},
		Label:     "Oeufs plein air",
		Unit:      "6 pièces",
		Price:     2.3,
		Category:  CategoryDairy,
		Nutrition: MacroProfile{Protein: 6, Fat: 5, Calories: 70},
	},
	{
		Keywords:  []string{"lait"},
		Label:     "Lait entier",
		Unit:      "1 L",
		Price:     1.4,
		Category:  CategoryDairy,
		Nutrition: MacroProfile{Protein: 3, Fat: 3.5, Carbs: 5},
	},
	{
		Keywords:  []string{"pois chiche", "pois chiches"},
		Label:     "Pois chiches",
		Unit:      "400 g",
		Price:     1.7,
		Category:  CategoryProtein,
		Nutrition: MacroProfile{Protein: 19, Carbs: 61, Fat: 6, Calories: 364},
	},
	{
		Keywords:  []string{"lentille", "lentilles"},
		Label:     "Lentilles corail",
		Unit:      "500 g",
		Price:     2.1,
		Category:  CategoryProtein,
		Nutrition: MacroProfile{Protein: 25, Carbs: 50, Calories: 330},
	},
}

// MatchCatalog returns the first catalog entry whose keywords appear in the
// normalized label, or nil when none matches.
func MatchCatalog(label string) *CatalogEntry {
	normalized := Normalize(label)
	for i := range Catalog {
		for _, keyword := range Catalog[i].Keywords {
			if strings.Contains(normalized, Normalize(keyword)) {
				return &Catalog[i]
			}
		}
	}
	return nil
}
