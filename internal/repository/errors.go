package repository

import "errors"

var (
	// ErrProductNotFound se devuelve cuando un id de producto no resuelve.
	ErrProductNotFound = errors.New("product not found")

	// ErrStoreUnavailable se devuelve para mutaciones cuando el servicio
	// corre sin base de datos; las lecturas tienen el catálogo de respaldo
	// pero las escrituras no tienen fallback duradero.
	ErrStoreUnavailable = errors.New("store unavailable")
)
