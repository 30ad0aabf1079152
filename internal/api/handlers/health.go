package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leilao-digital/app-console-admin/internal/apiclient"
)

// HealthHandler cobre as sondas de liveness e readiness do console.
type HealthHandler struct {
	cliente *apiclient.Client
}

func NewHealthHandler(cliente *apiclient.Client) *HealthHandler {
	return &HealthHandler{cliente: cliente}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness confirma que o processo está de pé, sem checar dependências.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness valida a conectividade com a API de leilões antes de aceitar
// tráfego.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if h.checkAPI(ctx) {
		response.Checks["api"] = "ok"
	} else {
		response.Checks["api"] = "failed"
		response.Status = "not_ready"
		response.Error = "API de leilões indisponível"
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

func (h *HealthHandler) checkAPI(ctx context.Context) bool {
	_, err := h.cliente.GetPublico(ctx, "/leiloes/publicos?size=1")
	return err == nil
}
