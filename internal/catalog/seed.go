package catalog

import "cosmetics-catalog/internal/models"

// FallbackProducts devuelve el catálogo estático que se usa cuando no hay
// base de datos configurada y que siembra la colección "products" la primera
// vez que el servicio arranca contra un store vacío. Siempre devuelve una
// copia nueva; el dataset nunca se muta en runtime.
func FallbackProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Sandalwood Glow Serum",
			Description: "A lightweight serum infused with pure sandalwood and saffron to brighten and calm the skin.",
			Category:    "Face Care",
			Price:       24.99,
			Image:       "https://images.unsplash.com/photo-1611930022073-b7a4ba5fcccd?q=80&w=1200&auto=format&fit=crop",
			Ingredients: []string{"Sandalwood", "Saffron", "Aloe Vera"},
			Rating:      4.7,
			Reviews:     213,
			Stock:       42,
			Popularity:  940,
		},
		{
			ID:          2,
			Name:        "Turmeric Repair Cream",
			Description: "Rich moisturizer with turmeric and ashwagandha for overnight repair and glow.",
			Category:    "Face Care",
			Price:       19.5,
			Image:       "https://images.unsplash.com/photo-1604881991720-f91add269bed?q=80&w=1200&auto=format&fit=crop",
			Ingredients: []string{"Turmeric", "Ashwagandha", "Ghee"},
			Rating:      4.6,
			Reviews:     156,
			Stock:       30,
			Popularity:  780,
		},
		{
			ID:          3,
			Name:        "Neem & Tulsi Cleanser",
			Description: "Purifying gel cleanser with neem and tulsi to balance oil and clarify pores.",
			Category:    "Face Care",
			Price:       12.0,
			Image:       "https://images.unsplash.com/photo-1612815154858-60aa4c59eaa0?q=80&w=1200&auto=format&fit=crop",
			Ingredients: []string{"Neem", "Tulsi", "Basil"},
			Rating:      4.4,
			Reviews:     98,
			Stock:       75,
			Popularity:  620,
		},
		{
			ID:          4,
			Name:        "Amla Shine Hair Oil",
			Description: "Nourishing hair oil with amla and bhringraj for strong, glossy hair.",
			Category:    "Hair Care",
			Price:       15.99,
			Image:       "https://images.unsplash.com/photo-1608245449230-c0aeee29fc61?q=80&w=1200&auto=format&fit=crop",
			Ingredients: []string{"Amla", "Bhringraj", "Coconut Oil"},
			Rating:      4.5,
			Reviews:     321,
			Stock:       120,
			Popularity:  1100,
		},
		{
			ID:          5,
			Name:        "Rose & Vetiver Body Butter",
			Description: "Deeply hydrating body butter with shea, rose, and vetiver for satin-soft skin.",
			Category:    "Body Care",
			Price:       17.25,
			Image:       "https://images.unsplash.com/photo-1619451334792-2506e2a5c1e5?q=80&w=1200&auto=format&fit=crop",
			Ingredients: []string{"Rose", "Vetiver", "Shea Butter"},
			Rating:      4.8,
			Reviews:     89,
			Stock:       28,
			Popularity:  540,
		},
		{
			ID:          6,
			Name:        "Sandal-Turmeric Ubtan",
			Description: "Traditional Ayurvedic ubtan blend for exfoliation and glow.",
			Category:    "Body Care",
			Price:       9.99,
			Image:       "https://images.unsplash.com/photo-1516826957135-700dedea698c?q=80&w=1200&auto=format&fit=crop",
			Ingredients: []string{"Sandalwood", "Turmeric", "Gram Flour"},
			Rating:      4.3,
			Reviews:     45,
			Stock:       64,
			Popularity:  430,
		},
	}
}
