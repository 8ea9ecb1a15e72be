package shopping

import (
	"sort"
	"strings"

	"nutrismart/internal/core/recipe"
)

// Item is one deduplicated shopping-list line. Items are keyed on the exact
// trimmed ingredient label, not the normalized key: "Tomates" and "tomates"
// stay separate lines. Known limitation, kept on purpose — merging spelling
// variants would change counts behind the user's back.
type Item struct {
	Label     string      `json:"label"`
	Count     int         `json:"count"`
	Category  CategoryID  `json:"category"`
	UnitPrice float64     `json:"unit_price"`
	Source    PriceSource `json:"price_source"`
}

// Aggregate merges the ingredients of the selected recipes into counted
// line items. Each recipe listing an ingredient bumps that item's count by
// one. The result is fully recomputed on every call and sorted by label
// for deterministic output.
func Aggregate(recipes []recipe.Recipe) []Item {
	index := make(map[string]int)
	var items []Item

	for _, r := range recipes {
		for _, ingredient := range r.Ingredients {
			label := strings.TrimSpace(ingredient)
			if label == "" {
				continue
			}
			if i, ok := index[label]; ok {
				items[i].Count++
				continue
			}
			price, source, categoryID := Estimate(label, nil)
			index[label] = len(items)
			items = append(items, Item{
				Label:     label,
				Count:     1,
				Category:  categoryID,
				UnitPrice: price,
				Source:    source,
			})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Label < items[j].Label
	})
	return items
}
