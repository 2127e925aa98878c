package models

// CartItem es una línea de carrito. Cada add-to-cart inserta un documento
// nuevo; no se fusionan líneas repetidas del mismo producto.
type CartItem struct {
	CartID    string `json:"cart_id" bson:"cart_id"`
	ProductID int    `json:"product_id" bson:"product_id"`
	Qty       int    `json:"qty" bson:"qty"`
}

// CartLine es una línea de carrito ya resuelta contra el catálogo actual.
type CartLine struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Image     string  `json:"image"`
}

// CartView es la respuesta de GET /api/cart/:cart_id.
type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}
