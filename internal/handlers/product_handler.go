package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cosmetics-catalog/internal/cache"
	"cosmetics-catalog/internal/catalog"
	"cosmetics-catalog/internal/repository"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ProductHandler struct {
	source repository.CatalogSource
	cache  *cache.Cache
}

func NewProductHandler(source repository.CatalogSource) *ProductHandler {
	return &ProductHandler{
		source: source,
		cache:  cache.Get(),
	}
}

// ListProducts lista el catálogo con filtros y ordenamiento (con caché).
// GET /api/products?category=&ingredient=&q=&min_price=&max_price=&sort=
func (h *ProductHandler) ListProducts(c *gin.Context) {
	query := catalog.Query{
		Category:   c.Query("category"),
		Ingredient: c.Query("ingredient"),
		Search:     c.Query("q"),
		Sort:       c.Query("sort"),
	}

	minPrice, err := priceBound(c.Query("min_price"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid min_price"})
		return
	}
	maxPrice, err := priceBound(c.Query("max_price"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid max_price"})
		return
	}
	query.MinPrice = minPrice
	query.MaxPrice = maxPrice

	cacheKey := fmt.Sprintf(
		"products:list:cat:%s_ing:%s_q:%s_min:%s_max:%s_sort:%s",
		query.Category, query.Ingredient, query.Search,
		c.Query("min_price"), c.Query("max_price"), query.Sort,
	)

	// Buscar en caché
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.source.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list products"})
		return
	}

	results := catalog.Apply(products, query)

	// Guardar en caché
	h.cache.Set(cacheKey, results, 2*time.Minute)
	c.JSON(http.StatusOK, results)
}

// GetProduct obtiene un producto por su id numérico (con caché).
// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
		return
	}

	cacheKey := fmt.Sprintf("product:%d", id)
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, err := h.source.ProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get product"})
		return
	}

	h.cache.Set(cacheKey, product, 5*time.Minute)
	c.JSON(http.StatusOK, product)
}

// priceBound parsea un límite de precio opcional; negativo es error del
// cliente, se rechaza antes de llegar al pipeline.
func priceBound(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	if value < 0 {
		return nil, fmt.Errorf("price bound must be >= 0")
	}
	return &value, nil
}
