package catalog

import (
	"sort"
	"strings"

	"cosmetics-catalog/internal/models"
)

// Claves de ordenamiento aceptadas por GET /api/products. Cualquier otro
// valor deja el orden de entrada intacto.
const (
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortNameAsc    = "name_asc"
	SortNameDesc   = "name_desc"
	SortPopularity = "popularity"
	SortRating     = "rating"
)

// Query son los filtros del listado. Los campos vacíos/nil no filtran; los
// filtros presentes se combinan con AND. Los límites de precio son
// inclusivos y se validan (>= 0) antes de llegar aquí.
type Query struct {
	Category   string
	Ingredient string
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
	Sort       string
}

// tabla de comparadores: clave de sort → less(a, b)
var comparators = map[string]func(a, b models.Product) bool{
	SortPriceAsc:   func(a, b models.Product) bool { return a.Price < b.Price },
	SortPriceDesc:  func(a, b models.Product) bool { return a.Price > b.Price },
	SortNameAsc:    func(a, b models.Product) bool { return a.Name < b.Name },
	SortNameDesc:   func(a, b models.Product) bool { return a.Name > b.Name },
	SortPopularity: func(a, b models.Product) bool { return a.Popularity > b.Popularity },
	SortRating:     func(a, b models.Product) bool { return a.Rating > b.Rating },
}

// Apply filtra y ordena el listado en memoria. El mismo pipeline corre sobre
// el store real y sobre el dataset de respaldo, así que la semántica es
// idéntica en ambos caminos. El ordenamiento es estable: empates conservan
// el orden relativo de entrada. No muta el slice recibido.
func Apply(products []models.Product, q Query) []models.Product {
	results := make([]models.Product, 0, len(products))
	for _, p := range products {
		if q.matches(p) {
			results = append(results, p)
		}
	}

	if less, ok := comparators[q.Sort]; ok {
		sort.SliceStable(results, func(i, j int) bool {
			return less(results[i], results[j])
		})
	}

	return results
}

func (q Query) matches(p models.Product) bool {
	if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
		return false
	}
	if q.Ingredient != "" && !containsIngredient(p.Ingredients, q.Ingredient) {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	if q.MinPrice != nil && p.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && p.Price > *q.MaxPrice {
		return false
	}
	return true
}

// substring case-insensitive contra cualquier ingrediente
func containsIngredient(ingredients []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, ing := range ingredients {
		if strings.Contains(strings.ToLower(ing), needle) {
			return true
		}
	}
	return false
}
