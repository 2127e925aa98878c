package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"cosmetics-catalog/internal/config"
)

// StatusHandler sirve los endpoints de vida y el diagnóstico de /test.
// El cliente de Mongo es nil cuando el servicio corre en modo mock.
type StatusHandler struct {
	cfg    *config.Config
	client *mongo.Client
}

func NewStatusHandler(cfg *config.Config, client *mongo.Client) *StatusHandler {
	return &StatusHandler{
		cfg:    cfg,
		client: client,
	}
}

// Root responde el mensaje de vida. GET /
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Ayurvedic Cosmetics API is running"})
}

// Hello responde el saludo del backend. GET /api/hello
func (h *StatusHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// Diagnostics reporta el estado de la conexión al storage. GET /test
func (h *StatusHandler) Diagnostics(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Used (mock mode)",
		"database_url":      envStatus(h.cfg.MongoURI),
		"database_name":     envStatus(h.cfg.MongoDB),
		"connection_status": "Mock",
		"collections":       []string{},
	}

	if h.client != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
			response["database"] = "❌ Unreachable"
			response["connection_status"] = err.Error()
		} else {
			response["database"] = "✅ Connected"
			response["connection_status"] = "Connected"
			if names, err := h.client.Database(h.cfg.MongoDB).ListCollectionNames(ctx, bson.M{}); err == nil {
				response["collections"] = names
			}
		}
	}

	c.JSON(http.StatusOK, response)
}

func envStatus(value string) string {
	if value != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}
