package recipe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nutrismart/internal/core/ai"
	"nutrismart/internal/pkg/common"

	"go.uber.org/zap"
)

// GenerationRequest describes the recipe the user wants.
type GenerationRequest struct {
	DishName             string   `json:"dish_name" binding:"required"`
	PreferredIngredients []string `json:"preferred_ingredients,omitempty"`
	ExcludedIngredients  []string `json:"excluded_ingredients,omitempty"`
	DietaryRestrictions  []string `json:"dietary_restrictions,omitempty"`
	Servings             int      `json:"servings,omitempty"`
}

// Generator builds recipes through the AI service and stores the result.
type Generator struct {
	aiService *ai.Service
	store     *Store
}

// NewGenerator creates a recipe generator.
func NewGenerator(aiService *ai.Service, store *Store) *Generator {
	return &Generator{
		aiService: aiService,
		store:     store,
	}
}

// generatedRecipe is the JSON shape requested from the model.
type generatedRecipe struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Tags            StringList `json:"tags"`
	DurationMinutes int        `json:"duration_minutes"`
	Difficulty      string     `json:"difficulty"`
	Servings        int        `json:"servings"`
	Ingredients     StringList `json:"ingredients"`
	Steps           StringList `json:"steps"`
	Calories        *float64   `json:"calories"`
	Protein         *float64   `json:"protein"`
	Carbs           *float64   `json:"carbs"`
	Fat             *float64   `json:"fat"`
}

// Generate asks the model for a recipe and adds the parsed result to the
// store.
func (g *Generator) Generate(ctx context.Context, req GenerationRequest) (*Recipe, error) {
	if req.Servings <= 0 {
		req.Servings = 2
	}

	prompt := fmt.Sprintf(`Generate a home-cooking recipe as strict JSON.
		Dish: %s
		Preferred ingredients: %s
		Excluded ingredients: %s
		Dietary restrictions: %s
		Servings: %d
		Rules:
		1. Use only plausible ingredients for the dish, honoring the exclusions.
		2. Every field must be present; use null for unknown numeric values.
		3. "ingredients" is an array of plain ingredient names, one per item, no quantities.
		4. "steps" is an array of short imperative sentences.
		5. "duration_minutes" is the total integer preparation plus cooking time.
		6. "calories", "protein", "carbs" and "fat" describe the whole recipe; numbers only.
		7. All keys and string values use double quotes. Return the most compact JSON possible, no markdown.
		Return exactly this shape:
		{"title":"...","description":"...","category":"...","tags":["..."],"duration_minutes":0,"difficulty":"...","servings":%d,"ingredients":["..."],"steps":["..."],"calories":null,"protein":null,"carbs":null,"fat":null}`,
		req.DishName,
		strings.Join(req.PreferredIngredients, ", "),
		strings.Join(req.ExcludedIngredients, ", "),
		strings.Join(req.DietaryRestrictions, ", "),
		req.Servings,
		req.Servings)

	resp, err := g.aiService.ProcessRequest(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("AI service error: %w", err)
	}
	if resp == nil || resp.Content == "" {
		return nil, fmt.Errorf("empty AI response")
	}

	content := strings.TrimSpace(resp.Content)
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start != -1 && end != -1 && end > start {
		content = content[start : end+1]
	}
	content = common.QuoteJSONKeys(content)

	common.LogDebug("AI response content (recipes/generate)",
		zap.Int("ai_response_length", len(content)),
	)

	var parsed generatedRecipe
	if err := common.ParseJSON(content, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}

	if parsed.Title == "" {
		parsed.Title = req.DishName
	}
	if parsed.Category == "" {
		parsed.Category = "Plat"
	}
	if parsed.Difficulty == "" {
		parsed.Difficulty = "facile"
	}
	if parsed.Servings <= 0 {
		parsed.Servings = req.Servings
	}
	if len(parsed.Ingredients) == 0 {
		return nil, fmt.Errorf("generated recipe has no ingredients")
	}

	stored := g.store.Add(Recipe{
		ID:              common.GenerateUUID(),
		Title:           parsed.Title,
		Description:     parsed.Description,
		Category:        parsed.Category,
		Tags:            parsed.Tags,
		DurationMinutes: parsed.DurationMinutes,
		Difficulty:      parsed.Difficulty,
		Servings:        parsed.Servings,
		Ingredients:     parsed.Ingredients,
		Steps:           parsed.Steps,
		Calories:        nonNegative(parsed.Calories),
		Protein:         nonNegative(parsed.Protein),
		Carbs:           nonNegative(parsed.Carbs),
		Fat:             nonNegative(parsed.Fat),
		CreatedAt:       time.Now().UTC(),
	})
	return &stored, nil
}

func nonNegative(v *float64) *float64 {
	if v == nil || *v < 0 {
		return nil
	}
	return v
}
