package shopping

import "strings"

// CategoryID identifies one shopping aisle.
type CategoryID string

const (
	CategoryProduce CategoryID = "produce"
	CategoryDairy   CategoryID = "dairy"
	CategoryProtein CategoryID = "protein"
	CategoryGrocery CategoryID = "grocery"
)

// FallbackCategory is assigned when no keyword matches.
const FallbackCategory = CategoryGrocery

// Category describes one aisle of the shopping list.
type Category struct {
	ID       CategoryID `json:"id"`
	Label    string     `json:"label"`
	BaseCost float64    `json:"base_cost"` // last-resort unit price
}

// Categories lists the aisles in declaration order. The order doubles as the
// keyword-match tie-break: the first declared category with a matching
// keyword wins.
var Categories = []Category{
	{ID: CategoryProduce, Label: "Fruits & Légumes", BaseCost: 1.1},
	{ID: CategoryDairy, Label: "Frais & Crèmerie", BaseCost: 2.1},
	{ID: CategoryProtein, Label: "Protéines & Poisson", BaseCost: 4.2},
	{ID: CategoryGrocery, Label: "Épicerie", BaseCost: 0.9},
}

// categoryKeywords maps each aisle to the substrings matched against the
// normalized ingredient label. Keywords are stored pre-normalized.
var categoryKeywords = map[CategoryID][]string{
	CategoryProduce: {"salade", "tomate", "carotte", "oignon", "citron", "pomme", "poivron", "courgette", "herbe", "persil", "basilic", "ail", "legume", "epinard", "avocat"},
	CategoryDairy:   {"lait", "creme", "fromage", "beurre", "yaourt", "mozzarella", "parmesan", "chevre", "oeuf"},
	CategoryProtein: {"poulet", "saumon", "boeuf", "porc", "tofu", "poisson", "crevette", "jambon", "lentille", "pois chiche", "haricot"},
	CategoryGrocery: {"farine", "pates", "riz", "huile", "epices", "sel", "poivre", "sucre", "quinoa", "noix", "amande", "miel", "poudre"},
}

// categoryMacroPresets holds the rough nutrition profile assumed for an
// aisle when an ingredient has no catalog entry of its own.
var categoryMacroPresets = map[CategoryID]MacroProfile{
	CategoryProduce: {Calories: 35, Carbs: 7, Protein: 1},
	CategoryDairy:   {Calories: 120, Fat: 7, Protein: 6},
	CategoryProtein: {Calories: 165, Protein: 25, Fat: 7},
	CategoryGrocery: {Calories: 220, Carbs: 45, Protein: 8},
}

// CategoryByID returns the category metadata for id, falling back to the
// grocery aisle for unknown ids.
func CategoryByID(id CategoryID) Category {
	for _, c := range Categories {
		if c.ID == id {
			return c
		}
	}
	return CategoryByID(FallbackCategory)
}

// Categorize assigns an ingredient label to exactly one aisle. The first
// declared category with a keyword contained in the normalized label wins;
// labels matching nothing land in the grocery aisle.
func Categorize(label string) CategoryID {
	id, _ := matchCategory(label)
	return id
}

// matchCategory reports the matched aisle and whether a keyword actually
// matched, as opposed to the fallback being applied.
func matchCategory(label string) (CategoryID, bool) {
	normalized := Normalize(label)
	for _, c := range Categories {
		for _, keyword := range categoryKeywords[c.ID] {
			if strings.Contains(normalized, keyword) {
				return c.ID, true
			}
		}
	}
	return FallbackCategory, false
}
