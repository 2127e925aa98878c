package models

// Product representa un producto del catálogo. El campo ID es el id numérico
// estable que usan las rutas del frontend; los productos se siembran una sola
// vez y nunca se mutan desde esta API.
type Product struct {
	ID          int      `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Category    string   `json:"category" bson:"category"`
	Price       float64  `json:"price" bson:"price"`
	Image       string   `json:"image" bson:"image"`
	Ingredients []string `json:"ingredients" bson:"ingredients"`
	Rating      float64  `json:"rating" bson:"rating"`
	Reviews     int      `json:"reviews" bson:"reviews"`
	Stock       int      `json:"stock" bson:"stock"`
	Popularity  int      `json:"popularity" bson:"popularity"`
}
