package shopping

import (
	"context"
	"sync"
	"time"

	"nutrismart/internal/core/recipe"
	"nutrismart/internal/pkg/common"

	"go.uber.org/zap"
)

// RecipeSource supplies the recipe records the shopping list is built from.
// The list never mutates the records it receives.
type RecipeSource interface {
	List() []recipe.Recipe
	Get(id string) (recipe.Recipe, bool)
}

// Manager owns the shopping-list state: the selected recipe ids, per-item
// quantity overrides and checked flags. Derived values (grouped items,
// totals) are recomputed on demand, never cached. Every mutation writes a
// snapshot through the store, fire-and-forget.
type Manager struct {
	source   RecipeSource
	store    SnapshotStore
	defaults []string

	mu         sync.Mutex
	selected   []string
	quantities map[string]int
	checked    map[string]bool
	restored   bool
}

// NewManager creates a manager with the given default recipe selection.
// Call Load to restore persisted state.
func NewManager(source RecipeSource, store SnapshotStore, defaults []string) *Manager {
	m := &Manager{
		source:   source,
		store:    store,
		defaults: append([]string(nil), defaults...),
	}
	m.applyDefaults()
	return m
}

func (m *Manager) applyDefaults() {
	m.selected = append([]string(nil), m.defaults...)
	m.quantities = make(map[string]int)
	m.checked = make(map[string]bool)
	m.restored = false
}

// Load restores state from the snapshot store. Stale recipe ids are
// filtered out; when the snapshot is missing or malformed, the default
// selection with empty overrides applies. A snapshot whose ids all went
// stale keeps its overrides but reverts the selection to the defaults.
func (m *Manager) Load(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap, err := m.store.Load(ctx)
	if err != nil {
		common.LogWarn("discarding unreadable shopping-list snapshot", zap.Error(err))
		m.applyDefaults()
		return
	}
	if snap == nil {
		m.applyDefaults()
		return
	}

	selected := make([]string, 0, len(snap.SelectedIDs))
	for _, id := range snap.SelectedIDs {
		if _, ok := m.source.Get(id); ok {
			selected = append(selected, id)
		}
	}

	m.quantities = make(map[string]int)
	for label, qty := range snap.Quantities {
		if qty >= 1 {
			m.quantities[label] = qty
		}
	}
	m.checked = make(map[string]bool)
	for label, checked := range snap.CheckedItems {
		m.checked[label] = checked
	}

	if len(selected) == 0 {
		m.selected = append([]string(nil), m.defaults...)
		m.restored = false
		return
	}
	m.selected = selected
	m.restored = true
}

// ToggleRecipe adds id to the selection if absent, removes it otherwise.
// Existence checks are the caller's responsibility.
func (m *Manager) ToggleRecipe(ctx context.Context, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.selected {
		if existing == id {
			m.selected = append(m.selected[:i], m.selected[i+1:]...)
			m.persistLocked(ctx)
			return
		}
	}
	m.selected = append(m.selected, id)
	m.persistLocked(ctx)
}

// SetQuantity adjusts an item's quantity by delta. The current quantity
// defaults to the aggregated count when no override exists. The result
// never drops below 1.
func (m *Manager) SetQuantity(ctx context.Context, label string, delta int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.quantities[label]
	if !ok {
		current = 1
		for _, item := range Aggregate(m.selectedRecipesLocked()) {
			if item.Label == label {
				current = item.Count
				break
			}
		}
	}

	next := current + delta
	if next < 1 {
		next = 1
	}
	m.quantities[label] = next
	m.persistLocked(ctx)
	return next
}

// SetChecked sets the checked flag for an item. Unknown labels default to
// unchecked.
func (m *Manager) SetChecked(ctx context.Context, label string, checked bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.checked[label] = checked
	m.persistLocked(ctx)
}

// Reset restores the default selection, clears all overrides and removes
// the persisted snapshot.
func (m *Manager) Reset(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.applyDefaults()
	if err := m.store.Clear(ctx); err != nil {
		common.LogWarn("failed to clear shopping-list snapshot", zap.Error(err))
	}
}

// Selected returns the selected recipe ids in selection order.
func (m *Manager) Selected() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.selected...)
}

func (m *Manager) selectedRecipesLocked() []recipe.Recipe {
	out := make([]recipe.Recipe, 0, len(m.selected))
	for _, id := range m.selected {
		if r, ok := m.source.Get(id); ok {
			out = append(out, r)
		}
	}
	return out
}

// persistLocked writes the current state through the snapshot store.
// Persistence failures are logged, never surfaced: the in-memory list
// stays usable either way.
func (m *Manager) persistLocked(ctx context.Context) {
	snap := &Snapshot{
		SelectedIDs:  append([]string(nil), m.selected...),
		Quantities:   make(map[string]int, len(m.quantities)),
		CheckedItems: make(map[string]bool, len(m.checked)),
		SavedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	for label, qty := range m.quantities {
		snap.Quantities[label] = qty
	}
	for label, checked := range m.checked {
		snap.CheckedItems[label] = checked
	}

	if err := m.store.Save(ctx, snap); err != nil {
		common.LogWarn("failed to persist shopping-list snapshot", zap.Error(err))
	}
}

// ListItem is one rendered line of the shopping list.
type ListItem struct {
	Label     string      `json:"label"`
	Quantity  int         `json:"quantity"`
	Checked   bool        `json:"checked"`
	UnitPrice float64     `json:"unit_price"`
	LineTotal float64     `json:"line_total"`
	Source    PriceSource `json:"price_source"`
}

// Group is one aisle of the rendered list.
type Group struct {
	Category Category   `json:"category"`
	Items    []ListItem `json:"items"`
}

// Totals are the aggregate figures for the current list.
type Totals struct {
	TotalItems    int     `json:"total_items"`
	CartCost      float64 `json:"cart_cost"`
	MacroCost     float64 `json:"macro_cost"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// ListView is the full presentation payload.
type ListView struct {
	SelectedIDs []string `json:"selected_ids"`
	Groups      []Group  `json:"groups"`
	Totals      Totals   `json:"totals"`
	Restored    bool     `json:"restored_from_snapshot"`
}

// View recomputes the grouped, priced, totaled list from the current
// selection and overrides.
func (m *Manager) View() ListView {
	m.mu.Lock()
	defer m.mu.Unlock()

	selectedRecipes := m.selectedRecipesLocked()
	items := Aggregate(selectedRecipes)

	byCategory := make(map[CategoryID][]ListItem)
	totals := Totals{}
	for _, item := range items {
		quantity, ok := m.quantities[item.Label]
		if !ok {
			quantity = item.Count
		}
		line := ListItem{
			Label:     item.Label,
			Quantity:  quantity,
			Checked:   m.checked[item.Label],
			UnitPrice: item.UnitPrice,
			LineTotal: item.UnitPrice * float64(quantity),
			Source:    item.Source,
		}
		byCategory[item.Category] = append(byCategory[item.Category], line)
		totals.TotalItems += quantity
		totals.CartCost += line.LineTotal
	}

	var groups []Group
	for _, category := range Categories {
		lines := byCategory[category.ID]
		if len(lines) == 0 {
			continue
		}
		groups = append(groups, Group{Category: category, Items: lines})
	}

	for _, r := range selectedRecipes {
		profile := MacroProfile{
			Calories: recipe.MacroValue(r.Calories),
			Protein:  recipe.MacroValue(r.Protein),
			Carbs:    recipe.MacroValue(r.Carbs),
			Fat:      recipe.MacroValue(r.Fat),
		}
		totals.MacroCost += EstimateRecipeMacroCost(&profile)
	}
	totals.EstimatedCost = BlendCosts(totals.CartCost, totals.MacroCost)

	return ListView{
		SelectedIDs: append([]string(nil), m.selected...),
		Groups:      groups,
		Totals:      totals,
		Restored:    m.restored,
	}
}
