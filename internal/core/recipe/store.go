package recipe

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"nutrismart/internal/pkg/common"

	"go.uber.org/zap"
)

// Store is the in-memory recipe collection. It is seeded at startup and
// only grows afterwards (AI-generated recipes are appended).
type Store struct {
	mu      sync.RWMutex
	recipes []Recipe
	byID    map[string]int
}

// NewStore creates an empty recipe store.
func NewStore() *Store {
	return &Store{
		byID: make(map[string]int),
	}
}

// NewSeededStore creates a store from the seed file when one is configured,
// falling back to the built-in seed set.
func NewSeededStore(seedPath string) *Store {
	s := NewStore()

	if seedPath != "" {
		if err := s.LoadFile(seedPath); err != nil {
			common.LogWarn("failed to load recipe seed file, using built-in seed",
				zap.String("path", seedPath),
				zap.Error(err),
			)
		}
	}

	if s.Len() == 0 {
		for _, r := range seedRecipes {
			s.Add(r)
		}
	}

	common.LogInfo("recipe store ready", zap.Int("recipes", s.Len()))
	return s
}

// LoadFile seeds the store from a JSON file containing an array of recipes.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var recipes []Recipe
	if err := common.ParseJSONBytes(data, &recipes); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for _, r := range recipes {
		s.Add(r)
	}
	return nil
}

// Add inserts a recipe, assigning an id when the record carries none.
// It returns the stored record.
func (s *Store) Add(r Recipe) Recipe {
	if r.ID == "" {
		r.ID = common.GenerateUUID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.byID[r.ID]; ok {
		s.recipes[i] = r
		return r
	}
	s.byID[r.ID] = len(s.recipes)
	s.recipes = append(s.recipes, r)
	return r
}

// Get returns the recipe with the given id.
func (s *Store) Get(id string) (Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return Recipe{}, false
	}
	return s.recipes[i], true
}

// List returns all recipes in insertion order.
func (s *Store) List() []Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Len returns the number of stored recipes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

// Categories returns the distinct non-empty recipe categories, sorted.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, r := range s.recipes {
		if r.Category == "" {
			continue
		}
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	sort.Strings(out)
	return out
}

// DefaultSelection returns the ids of the first n recipes, used to seed a
// fresh shopping list.
func (s *Store) DefaultSelection(n int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.recipes) {
		n = len(s.recipes)
	}
	out := make([]string, 0, n)
	for _, r := range s.recipes[:n] {
		out = append(out, r.ID)
	}
	return out
}

// Search filters recipes by free-text query, category and tag. The query
// matches title, description and tags case-insensitively; an empty
// argument skips that filter.
func (s *Store) Search(query, category, tag string) []Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	var out []Recipe
	for _, r := range s.recipes {
		if q != "" && !matchesQuery(r, q) {
			continue
		}
		if category != "" && !strings.EqualFold(r.Category, category) {
			continue
		}
		if tag != "" && !hasTag(r, tag) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesQuery(r Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, t := range r.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func hasTag(r Recipe, tag string) bool {
	for _, t := range r.Tags {
		if strings.Contains(strings.ToLower(t), strings.ToLower(tag)) {
			return true
		}
	}
	return false
}
