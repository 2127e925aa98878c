package models

// OrderStatusCreated es el único estado modelado; las órdenes no tienen
// ciclo de vida posterior.
const OrderStatusCreated = "created"

// Order es la instantánea inmutable de un carrito en el momento del checkout.
// El total siempre se recalcula en el servidor con precios actuales.
type Order struct {
	CartID string     `json:"cart_id" bson:"cart_id"`
	Items  []CartItem `json:"items" bson:"items"`
	Total  float64    `json:"total" bson:"total"`
	Email  string     `json:"email,omitempty" bson:"email,omitempty"`
	Status string     `json:"status" bson:"status"`
}
