package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestID garante um identificador por requisição, propagado no header de
// resposta e nos logs. Um ID vindo do cliente é reaproveitado.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()

		log.Debug().
			Str("request_id", id).
			Str("metodo", c.Request.Method).
			Str("rota", c.FullPath()).
			Int("status", c.Writer.Status()).
			Msg("requisição atendida")
	}
}
