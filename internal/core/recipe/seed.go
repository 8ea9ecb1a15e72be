package recipe

import "time"

func f(v float64) *float64 { return &v }

var seedTime = time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)

// seedRecipes is the built-in catalog used when no seed file is configured.
var seedRecipes = []Recipe{
	{
		ID:              "poulet-citron-riz",
		Slug:            "poulet-citron-riz",
		Title:           "Poulet au citron et riz basmati",
		Description:     "Filet de poulet doré, sauce citronnée légère et riz parfumé.",
		Category:        "Plat",
		Tags:            StringList{"volaille", "rapide"},
		DurationMinutes: 35,
		Difficulty:      "facile",
		Servings:        2,
		Ingredients:     StringList{"Blanc de poulet", "Citron", "Riz basmati", "Huile d'olive", "Ail"},
		Steps: StringList{
			"Faire revenir le poulet dans l'huile d'olive.",
			"Déglacer au jus de citron et laisser réduire.",
			"Servir avec le riz basmati.",
		},
		Calories:  f(520),
		Protein:   f(42),
		Carbs:     f(58),
		Fat:       f(12),
		CreatedAt: seedTime,
	},
	{
		ID:              "pates-tomates-parmesan",
		Slug:            "pates-tomates-parmesan",
		Title:           "Pâtes aux tomates rôties et parmesan",
		Description:     "Spaghetti, tomates confites au four et copeaux de parmesan.",
		Category:        "Plat",
		Tags:            StringList{"végétarien", "italien"},
		DurationMinutes: 25,
		Difficulty:      "facile",
		Servings:        2,
		Ingredients:     StringList{"Spaghetti", "Tomates", "Parmesan", "Basilic", "Huile d'olive"},
		Steps: StringList{
			"Rôtir les tomates au four avec un filet d'huile.",
			"Cuire les spaghetti al dente.",
			"Mélanger et parsemer de parmesan et de basilic.",
		},
		Calories:  f(610),
		Protein:   f(22),
		Carbs:     f(82),
		Fat:       f(18),
		CreatedAt: seedTime,
	},
	{
		ID:              "saumon-courgettes",
		Slug:            "saumon-courgettes",
		Title:           "Pavé de saumon, courgettes sautées",
		Description:     "Saumon snacké et courgettes croquantes au citron.",
		Category:        "Plat",
		Tags:            StringList{"poisson", "léger"},
		DurationMinutes: 20,
		Difficulty:      "facile",
		Servings:        2,
		Ingredients:     StringList{"Saumon", "Courgettes", "Citron", "Huile d'olive"},
		Steps: StringList{
			"Saisir le saumon côté peau.",
			"Sauter les courgettes à feu vif.",
			"Arroser de jus de citron avant de servir.",
		},
		Calories:  f(480),
		Protein:   f(34),
		Carbs:     f(9),
		Fat:       f(30),
		CreatedAt: seedTime,
	},
	{
		ID:              "curry-pois-chiches",
		Slug:            "curry-pois-chiches",
		Title:           "Curry de pois chiches au lait de coco",
		Description:     "Curry doux, pois chiches fondants et riz blanc.",
		Category:        "Plat",
		Tags:            StringList{"végétarien", "vegan"},
		DurationMinutes: 30,
		Difficulty:      "facile",
		Servings:        3,
		Ingredients:     StringList{"Pois chiches", "Oignons", "Tomates", "Riz", "Épices curry"},
		Steps: StringList{
			"Suer les oignons avec les épices.",
			"Ajouter tomates et pois chiches, mijoter 15 minutes.",
			"Servir sur le riz.",
		},
		Calories:  f(560),
		Protein:   f(19),
		Carbs:     f(88),
		Fat:       f(14),
		CreatedAt: seedTime,
	},
	{
		ID:              "omelette-fromagere",
		Slug:            "omelette-fromagere",
		Title:           "Omelette fromagère aux herbes",
		Description:     "Oeufs battus, fromage fondu et herbes fraîches.",
		Category:        "Entrée",
		Tags:            StringList{"végétarien", "express"},
		DurationMinutes: 10,
		Difficulty:      "facile",
		Servings:        1,
		Ingredients:     StringList{"Oeufs", "Fromage", "Beurre", "Persil"},
		Steps: StringList{
			"Battre les oeufs avec le persil.",
			"Cuire au beurre à feu doux.",
			"Ajouter le fromage et plier l'omelette.",
		},
		Calories:  f(390),
		Protein:   f(24),
		Carbs:     f(3),
		Fat:       f(31),
		CreatedAt: seedTime,
	},
	{
		ID:              "salade-quinoa-avocat",
		Slug:            "salade-quinoa-avocat",
		Title:           "Salade de quinoa à l'avocat",
		Description:     "Quinoa, avocat crémeux, citron et jeunes pousses.",
		Category:        "Entrée",
		Tags:            StringList{"végétarien", "vegan", "froid"},
		DurationMinutes: 15,
		Difficulty:      "facile",
		Servings:        2,
		Ingredients:     StringList{"Quinoa", "Avocat", "Citron", "Salade", "Huile d'olive"},
		Steps: StringList{
			"Cuire et refroidir le quinoa.",
			"Mélanger avec l'avocat en dés et la salade.",
			"Assaisonner au citron et à l'huile d'olive.",
		},
		Calories:  f(430),
		Protein:   f(12),
		Carbs:     f(46),
		Fat:       f(22),
		CreatedAt: seedTime,
	},
}
