package catalog

import "github.com/khalil-js/VETANIMALIA/internal/domain"

// Статические данные витрины. Метки категорий фиксированы и определяются
// вместе с товарами; "All" — сентинел «без фильтра».
var seedCategories = []string{
	domain.CategoryAll,
	"Doogs",
	"Cats",
	"Parrots",
	"Vitamins",
	"Hamesters",
	"Collars",
	"Bowls",
	"Beds",
	"Treats",
	"Shampoo",
}

var seedProducts = []domain.Product{
	{
		ID:          1,
		Name:        "Select, Puppy Food With Chicken, Gluten-Free, 12 Kg",
		Price:       "135.00 GEL",
		Category:    "Doogs",
		Image:       "/dogfood1.png",
		Brand:       "Kopman",
		Size:        "12 Kg",
		Description: "Complete gluten-free nutrition for growing puppies.",
		Features: []string{
			"Gluten-free formula",
			"Chicken protein",
			"Suitable for puppies",
			"Large 12 Kg bag",
		},
	},
	{
		ID:          2,
		Name:        "Select, Dog Food With Lamb, Gluten-Free, 3 Kg",
		Price:       "48.00 GEL",
		Category:    "Doogs",
		Image:       "/dogfood2.png",
		Brand:       "Kopman",
		Size:        "3 Kg",
		Description: "Gentle lamb recipe for sensitive adult dogs.",
		Features: []string{
			"Gluten-free formula",
			"Lamb protein",
			"Adult dogs",
			"3 Kg pack — trial-friendly",
		},
	},
	{
		ID:          3,
		Name:        "Select, Puppy Food With Chicken, Gluten-Free, 12 Kg",
		Price:       "135.00 GEL",
		Category:    "Doogs",
		Image:       "/dogfood1.png",
		Brand:       "Kopman",
		Size:        "12 Kg",
		Description: "Balanced nutrients to support healthy growth.",
		Features: []string{
			"Balanced growth nutrients",
			"Chicken protein",
			"Gluten-free",
			"Economical 12 Kg size",
		},
	},
	{
		ID:          4,
		Name:        "Select, Puppy Food With Chicken, Gluten-Free, 12 Kg",
		Price:       "135.00 GEL",
		Category:    "Doogs",
		Image:       "/dogfood3.png",
		Brand:       "Kopman",
		Size:        "12 Kg",
		Description: "Enriched with essential vitamins and minerals.",
		Features: []string{
			"Essential vitamins & minerals",
			"Chicken protein",
			"Puppy-safe recipe",
			"12 Kg family pack",
		},
	},
}
