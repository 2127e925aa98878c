package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cosmetics-catalog/internal/models"
)

const (
	defaultTimeout = 5 * time.Second
	queryTimeout   = 10 * time.Second
)

// ProductRepository es el CatalogSource respaldado por Mongo.
type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{
		collection: collection,
	}
}

// Products devuelve el catálogo completo en orden natural de la colección.
// El filtrado/ordenamiento corre en memoria para que la semántica sea
// idéntica a la del catálogo de respaldo.
func (r *ProductRepository) Products(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// ProductByID busca un producto por su id numérico estable.
func (r *ProductRepository) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return &product, nil
}

// HasProducts es el guardián de la siembra: cuenta a lo sumo un documento.
func (r *ProductRepository) HasProducts(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Seed inserta el dataset inicial. Solo se llama cuando la colección está
// vacía; nunca sobrescribe productos existentes.
func (r *ProductRepository) Seed(ctx context.Context, products []models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
