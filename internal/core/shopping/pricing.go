package shopping

import "math"

// PriceSource tags which pricing tier produced a unit price. Exposed for
// UI transparency only; totals never branch on it.
type PriceSource string

const (
	SourceCatalog  PriceSource = "catalog"
	SourceMacro    PriceSource = "macro"
	SourceCategory PriceSource = "category"
)

// Linear pricing model, currency per gram (per kcal for calories).
const (
	priceCalories = 0.0008
	priceProtein  = 0.035
	priceCarbs    = 0.012
	priceFat      = 0.03
)

// recipeMacroFallback is the per-recipe cost assumed when a recipe's own
// macros produce no usable estimate.
const recipeMacroFallback = 5.0

// DeriveMacroPrice applies the linear cost model to a macro profile. The
// result is only usable when it is a finite positive number; zero, NaN and
// infinities report ok=false so callers fall through to the next tier.
func DeriveMacroPrice(profile *MacroProfile) (float64, bool) {
	if profile == nil {
		return 0, false
	}
	estimated := profile.Calories*priceCalories +
		profile.Protein*priceProtein +
		profile.Carbs*priceCarbs +
		profile.Fat*priceFat
	if estimated <= 0 || math.IsNaN(estimated) || math.IsInf(estimated, 0) {
		return 0, false
	}
	return estimated, true
}

// Estimate resolves a unit price for an ingredient label, in order:
// catalog fixed price, macro-derived price, category base cost. The macro
// tier uses the supplied profile when given, or the matched category's
// preset profile; a label that matched no category keyword carries no
// preset, so it drops straight to the base cost.
func Estimate(label string, macros *MacroProfile) (float64, PriceSource, CategoryID) {
	if entry := MatchCatalog(label); entry != nil {
		return entry.Price, SourceCatalog, entry.Category
	}

	categoryID, matched := matchCategory(label)
	profile := macros
	if profile == nil && matched {
		preset := categoryMacroPresets[categoryID]
		profile = &preset
	}
	if price, ok := DeriveMacroPrice(profile); ok {
		return price, SourceMacro, categoryID
	}

	return CategoryByID(categoryID).BaseCost, SourceCategory, categoryID
}

// EstimateRecipeMacroCost prices a whole recipe from its aggregate macro
// profile, with a fixed fallback when the model yields nothing usable.
func EstimateRecipeMacroCost(profile *MacroProfile) float64 {
	if price, ok := DeriveMacroPrice(profile); ok {
		return price
	}
	return recipeMacroFallback
}

// BlendCosts combines the per-item cart cost with the per-recipe macro
// extrapolation. Catalog-backed cart pricing is weighted higher; when one
// side is zero the other passes through unblended.
func BlendCosts(cartCost, macroCost float64) float64 {
	if cartCost == 0 && macroCost == 0 {
		return 0
	}
	if cartCost == 0 {
		return macroCost
	}
	if macroCost == 0 {
		return cartCost
	}
	return cartCost*0.7 + macroCost*0.3
}
